package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/factsphere/internal/app"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the store over HTTP",
		Long: `Expose the configured store as the FactSphere REST API so clients with
store.backend=api can use it. Runs until interrupted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			if rootOpts.Verbose {
				cfg.Log.Level = "debug"
			}
			if err := app.Serve(cmd.Context(), cfg, app.NewLogger(cfg.Log)); err != nil {
				return WrapExitError(ExitFailure, "serve", err)
			}
			return nil
		},
	}
}
