package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/berlin-clock/internal/config"
	"github.com/oshokin/berlin-clock/internal/logger"
	"github.com/oshokin/berlin-clock/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// color enables colored lamp cells; overrides the config value when set.
	color bool
	// logLevel overrides the configured log level when set.
	logLevel string
	// quiet hides everything below errors regardless of the level.
	quiet bool

	// settings are loaded before any subcommand runs.
	settings *config.Config

	// rootCmd represents the base command.
	rootCmd = &cobra.Command{
		Use:   "berlin-clock",
		Short: "Render times as Berlin Clock lamp rows.",
		Long: `Converts a time of day into the five lamp rows of the Berlin Clock.

Each row is printed as a line of lamp symbols: R (red), Y (yellow), O (off).
  1. seconds lamp, Y on even seconds
  2. hours, one R per five hours
  3. hours, one R per remaining hour
  4. minutes, one Y per five minutes, R at quarter hours
  5. minutes, one Y per remaining minute

Settings are read from the configuration file when it exists.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			settings, err = config.LoadOrDefault(configPath)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}

			if cmd.Flags().Changed("color") {
				settings.Color = color
			}

			if logLevel != "" {
				settings.LogLevel = logLevel
			}

			level, ok := logger.ParseLogLevel(settings.LogLevel)
			if !ok {
				return fmt.Errorf("%w: %q", config.ErrUnknownLogLevel, settings.LogLevel)
			}

			logger.SetLevel(level)

			if quiet {
				quietLogger := logger.Logger().WithOptions(logger.WithLevel(zapcore.ErrorLevel))
				cmd.SetContext(logger.ToContext(cmd.Context(), quietLogger))
			}

			return nil
		},
	}
)

// Execute runs the berlin-clock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.BoolVar(&color, "color", false, "draw lamps as colored cells")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "log errors only")

	rootCmd.AddCommand(convertCmd, nowCmd, watchCmd, queryCmd)
}
