package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/berlin-clock/internal/config"
	"github.com/oshokin/berlin-clock/internal/logger"
	"github.com/oshokin/berlin-clock/internal/service/server"
	"github.com/oshokin/berlin-clock/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level when set.
	logLevel string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "berlin-clock-server [listen-address]",
		Short: "Serve Berlin Clock conversions over gRPC.",
		Long: `Starts the gRPC clock server.

The server exposes two calls: Convert renders a given HH:MM:SS time,
Now renders the current time of the server.
Only the port from the configured server address is used for listening (e.g., :50551).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:50551).`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			logger.InfoKV(ctx, "Starting berlin-clock-server", "version", version.Short())

			return server.Run(ctx, &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				LogLevel:      logLevel,
			})
		},
	}
)

// Execute runs the berlin-clock-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}
