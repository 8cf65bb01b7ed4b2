package berlinclock

import (
	"fmt"
	"slices"
	"strings"
)

// Lamp is the state of a single lamp position.
type Lamp uint8

const (
	// LampOff is an unlit lamp.
	LampOff Lamp = iota
	// LampYellow is a lit yellow lamp.
	LampYellow
	// LampRed is a lit red lamp.
	LampRed
)

const (
	// SecondOn is the seconds lamp on even seconds.
	SecondOn = LampYellow
	// SecondOff is the seconds lamp on odd seconds.
	SecondOff = LampOff
)

// Row lengths in display order.
const (
	SecondsRowLength      = 1
	HoursTensRowLength    = 4
	HoursUnitsRowLength   = 4
	MinutesTensRowLength  = 11
	MinutesUnitsRowLength = 4
)

// LineSeparator joins rows in ClockState.String.
const LineSeparator = "\n"

// lampsPerBlock is how many hours or minutes a lamp of a tens row stands for.
const lampsPerBlock = 5

// quarterMarkers are the minutes-tens positions lit red at 15, 30 and 45 minutes.
//
//nolint:gochecknoglobals // Fixed layout of the clock face.
var quarterMarkers = [...]int{2, 5, 8}

// Symbol returns the single character used to render the lamp.
func (l Lamp) Symbol() byte {
	switch l {
	case LampYellow:
		return 'Y'
	case LampRed:
		return 'R'
	default:
		return 'O'
	}
}

// String implements fmt.Stringer.
func (l Lamp) String() string {
	return string(l.Symbol())
}

// IsLit reports whether the lamp is on.
func (l Lamp) IsLit() bool {
	return l != LampOff
}

// Row is a fixed-length sequence of lamps.
type Row []Lamp

// Lit returns the number of lit lamps in the row.
func (r Row) Lit() int {
	var n int

	for _, lamp := range r {
		if lamp.IsLit() {
			n++
		}
	}

	return n
}

// String renders the row as a sequence of lamp symbols.
func (r Row) String() string {
	var sb strings.Builder

	sb.Grow(len(r))

	for _, lamp := range r {
		sb.WriteByte(lamp.Symbol())
	}

	return sb.String()
}

// ClockState holds the five lamp rows derived from a single Time.
type ClockState struct {
	// time is the value the rows were computed from.
	time Time
	// seconds blinks with the parity of the second.
	seconds Row
	// hoursTens has one red lamp per five hours.
	hoursTens Row
	// hoursUnits has one red lamp per remaining hour.
	hoursUnits Row
	// minutesTens has one lamp per five minutes with red quarter markers.
	minutesTens Row
	// minutesUnits has one yellow lamp per remaining minute.
	minutesUnits Row
}

// NewClockState computes the lamp rows for the provided time.
func NewClockState(t Time) (ClockState, error) {
	state := ClockState{
		time:    t,
		seconds: secondsRow(t.second),
	}

	var err error

	if state.hoursTens, err = fillRow(LampRed, t.hour/lampsPerBlock, HoursTensRowLength); err != nil {
		return ClockState{}, fmt.Errorf("hours tens row: %w", err)
	}

	if state.hoursUnits, err = fillRow(LampRed, t.hour%lampsPerBlock, HoursUnitsRowLength); err != nil {
		return ClockState{}, fmt.Errorf("hours units row: %w", err)
	}

	if state.minutesTens, err = minutesTensRow(t.minute); err != nil {
		return ClockState{}, fmt.Errorf("minutes tens row: %w", err)
	}

	if state.minutesUnits, err = fillRow(LampYellow, t.minute%lampsPerBlock, MinutesUnitsRowLength); err != nil {
		return ClockState{}, fmt.Errorf("minutes units row: %w", err)
	}

	return state, nil
}

// Time returns the time the state was computed from.
func (s ClockState) Time() Time {
	return s.time
}

// Seconds returns a copy of the seconds row.
func (s ClockState) Seconds() Row {
	return slices.Clone(s.seconds)
}

// HoursTens returns a copy of the first hours row.
func (s ClockState) HoursTens() Row {
	return slices.Clone(s.hoursTens)
}

// HoursUnits returns a copy of the second hours row.
func (s ClockState) HoursUnits() Row {
	return slices.Clone(s.hoursUnits)
}

// MinutesTens returns a copy of the first minutes row.
func (s ClockState) MinutesTens() Row {
	return slices.Clone(s.minutesTens)
}

// MinutesUnits returns a copy of the second minutes row.
func (s ClockState) MinutesUnits() Row {
	return slices.Clone(s.minutesUnits)
}

// Rows returns copies of all rows in display order.
func (s ClockState) Rows() []Row {
	return []Row{
		s.Seconds(),
		s.HoursTens(),
		s.HoursUnits(),
		s.MinutesTens(),
		s.MinutesUnits(),
	}
}

// Join renders the rows joined by sep.
func (s ClockState) Join(sep string) string {
	rows := []Row{s.seconds, s.hoursTens, s.hoursUnits, s.minutesTens, s.minutesUnits}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.String()
	}

	return strings.Join(lines, sep)
}

// String renders the rows separated by LineSeparator.
func (s ClockState) String() string {
	return s.Join(LineSeparator)
}

// secondsRow lights the single lamp on even seconds.
func secondsRow(second int) Row {
	if second%2 == 0 {
		return Row{SecondOn}
	}

	return Row{SecondOff}
}

// minutesTensRow fills yellow lamps and turns lit quarter markers red.
func minutesTensRow(minute int) (Row, error) {
	row, err := fillRow(LampYellow, minute/lampsPerBlock, MinutesTensRowLength)
	if err != nil {
		return nil, err
	}

	for _, i := range quarterMarkers {
		if row[i] == LampYellow {
			row[i] = LampRed
		}
	}

	return row, nil
}

// fillRow lights the leftmost n of length lamps with the lit color.
func fillRow(lit Lamp, n, length int) (Row, error) {
	if n < 0 || n > length {
		return nil, fmt.Errorf("%w: %d lit lamps do not fit a row of %d", ErrInvariantViolation, n, length)
	}

	row := make(Row, length)
	for i := range n {
		row[i] = lit
	}

	// The rest keeps the zero value, LampOff.
	return row, nil
}
