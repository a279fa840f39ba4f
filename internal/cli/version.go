package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/factsphere/internal/app"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print build information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			info := app.BuildInfo()
			return out.Write(info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s %s %s\n", info.Name, app.BuildVersion(), info.GoVersion)
				return err
			})
		},
	}
}
