package converter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/berlin-clock/internal/domain/berlinclock"
	"github.com/oshokin/berlin-clock/internal/logger"
	"github.com/oshokin/berlin-clock/internal/render"
)

// errOutputRequired is returned when no output writer is provided.
var errOutputRequired = errors.New("output must be provided")

// Options controls the convert command.
type Options struct {
	// Times are HH:MM:SS values to convert. Input is read when empty.
	Times []string
	// Input supplies one time per line when Times is empty.
	Input io.Reader
	// Output receives the renderings, separated by a blank line.
	Output io.Writer
	// Color enables colored lamp cells.
	Color bool
}

// Run converts every time and writes the renderings. The first failure aborts the run.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "convert")

	if opts.Output == nil {
		return errOutputRequired
	}

	renderer := render.New(opts.Output, opts.Color)
	written := 0

	convert := func(text string) error {
		t, err := berlinclock.ParseTime(text)
		if err != nil {
			logger.WarnKV(ctx, "Rejected time", "input", text, "error", err)

			return err
		}

		state, err := berlinclock.Show(t)
		if err != nil {
			return fmt.Errorf("show %s: %w", t, err)
		}

		if written > 0 {
			if _, err = io.WriteString(opts.Output, berlinclock.LineSeparator); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		if _, err = fmt.Fprintln(opts.Output, renderer.Render(state)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		written++

		logger.DebugKV(ctx, "Time converted", "time", t.String())

		return nil
	}

	if len(opts.Times) > 0 {
		for _, text := range opts.Times {
			if err := convert(text); err != nil {
				return err
			}
		}

		return nil
	}

	if opts.Input == nil {
		return fmt.Errorf("%w: no time given", berlinclock.ErrInvalidArgument)
	}

	scanner := bufio.NewScanner(opts.Input)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Line endings are not part of the time, other whitespace is rejected by the parser.
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		if err := convert(line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}
