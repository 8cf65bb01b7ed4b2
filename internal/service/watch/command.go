package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oshokin/berlin-clock/internal/domain/berlinclock"
	"github.com/oshokin/berlin-clock/internal/logger"
	"github.com/oshokin/berlin-clock/internal/render"
)

// DefaultInterval is the time between two frames; the seconds lamp blinks at this rate.
const DefaultInterval = time.Second

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// errOutputRequired is returned when no output writer is provided.
var errOutputRequired = errors.New("output must be provided")

// Options controls the watch loop.
type Options struct {
	// Clock is the time source. The real clock is used when nil.
	Clock clockwork.Clock
	// Interval is the time between frames. DefaultInterval is used when not positive.
	Interval time.Duration
	// Frames stops the loop after that many frames. Zero runs until ctx is canceled.
	Frames int
	// Output receives the frames.
	Output io.Writer
	// Color enables colored lamp cells.
	Color bool
	// Clear redraws each frame in place instead of appending it.
	Clear bool
}

// Run writes a frame for the current time immediately and then one per tick.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "watch")

	if opts.Output == nil {
		return errOutputRequired
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	renderer := render.New(opts.Output, opts.Color)

	if err := writeFrame(opts, renderer, clock.Now(), 0); err != nil {
		return err
	}

	if opts.Frames == 1 {
		return nil
	}

	logger.DebugKV(ctx, "Watching clock", "interval", interval.String(), "frames", opts.Frames)

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for written := 1; opts.Frames <= 0 || written < opts.Frames; written++ {
		select {
		case <-ctx.Done():
			logger.Debug(ctx, "Context canceled, exiting")

			return nil
		case now := <-ticker.Chan():
			if err := writeFrame(opts, renderer, now, written); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeFrame renders the clock for now. Frames after the first are separated
// by a blank line, or replace the previous one when Clear is set.
func writeFrame(opts *Options, renderer *render.Renderer, now time.Time, index int) error {
	state, err := berlinclock.Show(berlinclock.TimeOf(now))
	if err != nil {
		return fmt.Errorf("show %s: %w", now.Format(time.TimeOnly), err)
	}

	var prefix string

	switch {
	case opts.Clear:
		prefix = clearScreen
	case index > 0:
		prefix = berlinclock.LineSeparator
	}

	if _, err = fmt.Fprint(opts.Output, prefix, renderer.Render(state), berlinclock.LineSeparator); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	return nil
}
