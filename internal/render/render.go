// Package render draws a Berlin Clock state for a terminal.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/berlin-clock/internal/domain/berlinclock"
)

// ANSI color indices for the lamp backgrounds.
const (
	colorRed    = lipgloss.Color("9")
	colorYellow = lipgloss.Color("11")
	colorOff    = lipgloss.Color("8")
	colorText   = lipgloss.Color("0")
)

// Renderer turns a ClockState into text.
type Renderer struct {
	// Color switches from plain R/Y/O rows to colored lamp cells.
	Color bool

	// styles holds one style per lamp color.
	styles map[berlinclock.Lamp]lipgloss.Style
}

// New returns a renderer whose color profile is detected from w,
// the writer the rendering will be printed to.
func New(w io.Writer, color bool) *Renderer {
	return NewWithRenderer(lipgloss.NewRenderer(w), color)
}

// NewWithRenderer returns a renderer drawing lamps with styles of the provided lipgloss renderer.
func NewWithRenderer(lr *lipgloss.Renderer, color bool) *Renderer {
	cell := lr.NewStyle().Foreground(colorText).Padding(0, 1)

	return &Renderer{
		Color: color,
		styles: map[berlinclock.Lamp]lipgloss.Style{
			berlinclock.LampOff:    cell.Background(colorOff),
			berlinclock.LampYellow: cell.Background(colorYellow),
			berlinclock.LampRed:    cell.Background(colorRed),
		},
	}
}

// Render returns the rows of state separated by berlinclock.LineSeparator.
func (r *Renderer) Render(state berlinclock.ClockState) string {
	if r == nil || !r.Color {
		return state.String()
	}

	rows := state.Rows()

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = r.renderRow(row)
	}

	return strings.Join(lines, berlinclock.LineSeparator)
}

// renderRow draws each lamp as a colored cell.
func (r *Renderer) renderRow(row berlinclock.Row) string {
	cells := make([]string, len(row))
	for i, lamp := range row {
		cells[i] = r.renderLamp(lamp)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderLamp draws a single lamp cell.
func (r *Renderer) renderLamp(lamp berlinclock.Lamp) string {
	return r.styles[lamp].Render(lamp.String())
}
