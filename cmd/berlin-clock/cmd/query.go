package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/berlin-clock/internal/service/query"
)

// serverAddress overrides the configured server address for the query command.
var serverAddress string

// queryCmd asks a running berlin-clock-server for a rendering.
var queryCmd = &cobra.Command{
	Use:   "query [HH:MM:SS]",
	Short: "Ask the clock server to render a time.",
	Long: `Calls the berlin-clock-server over gRPC.

With a time argument the server converts that time; without one it renders its own current time.
The server address comes from the configuration file unless --server is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) > 0 {
			text = args[0]
		}

		return query.Run(cmd.Context(), &query.Options{
			ConfigPath:    configPath,
			ServerAddress: serverAddress,
			Time:          text,
			Output:        cmd.OutOrStdout(),
		})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	queryCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "clock server address (host:port)")
}
