package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/berlin-clock/internal/service/converter"
)

// convertCmd renders the given times or the times read from stdin.
var convertCmd = &cobra.Command{
	Use:   "convert [HH:MM:SS...]",
	Short: "Convert times to lamp rows.",
	Long: `Converts every HH:MM:SS argument to its lamp rows.

Without arguments, times are read from standard input, one per line.
Hours go up to 24 inclusive, minutes and seconds up to 59.
Renderings are separated by a blank line. The first invalid time stops the command.`,
	Example: `  berlin-clock convert 13:17:01
  printf '00:00:00\n24:00:00\n' | berlin-clock convert`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return converter.Run(cmd.Context(), &converter.Options{
			Times:  args,
			Input:  cmd.InOrStdin(),
			Output: cmd.OutOrStdout(),
			Color:  settings.Color,
		})
	},
}
