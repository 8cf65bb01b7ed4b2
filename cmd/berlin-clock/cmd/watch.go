package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/berlin-clock/internal/service/watch"
)

var (
	// interval between two frames of the watch command.
	interval time.Duration
	// frames limits the number of frames; zero means until interrupted.
	frames int
	// redraw draws frames in place.
	redraw bool

	// nowCmd renders the current local time once.
	nowCmd = &cobra.Command{
		Use:   "now",
		Short: "Show the current time as lamp rows.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return watch.Run(cmd.Context(), &watch.Options{
				Frames: 1,
				Output: cmd.OutOrStdout(),
				Color:  settings.Color,
			})
		},
	}

	// watchCmd keeps rendering the current local time.
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Show a live Berlin Clock.",
		Long: `Renders the current local time immediately and then on every interval
until interrupted or until the requested number of frames was shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return watch.Run(ctx, &watch.Options{
				Interval: interval,
				Frames:   frames,
				Output:   cmd.OutOrStdout(),
				Color:    settings.Color,
				Clear:    redraw,
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	watchCmd.Flags().DurationVarP(&interval, "interval", "i", watch.DefaultInterval, "time between frames")
	watchCmd.Flags().IntVarP(&frames, "frames", "n", 0, "stop after this many frames (0 runs until interrupted)")
	watchCmd.Flags().BoolVar(&redraw, "clear", false, "redraw the clock in place")
}
