package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return non-empty consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
}

// TestAttachCobraVersionCommand runs the attached subcommand in both output modes.
func TestAttachCobraVersionCommand(t *testing.T) {
	t.Parallel()

	for args, want := range map[string]string{
		"version":         Full(),
		"version --short": Short(),
	} {
		root := &cobra.Command{Use: "berlin-clock"}
		AttachCobraVersionCommand(root)

		var out bytes.Buffer

		root.SetOut(&out)
		root.SetArgs(strings.Fields(args))

		require.NoError(t, root.Execute())
		require.Equal(t, want+"\n", out.String())
	}
}
