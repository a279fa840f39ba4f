package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/factsphere/internal/app"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <up|down|status>",
		Short: "Apply or inspect schema migrations",
		Long: `Run the embedded migrations against the configured postgres or sqlite store.

Example:
  factsphere migrate up
  factsphere migrate status`,
		Args:          cobra.ExactArgs(1),
		ValidArgs:     []string{app.MigrateUp, app.MigrateDown, app.MigrateStatus},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case app.MigrateUp, app.MigrateDown, app.MigrateStatus:
			default:
				return NewExitError(ExitCommandError, "direction must be one of up, down, status")
			}

			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			logger := clientLogger(cfg, rootOpts)
			if err := app.Migrate(cmd.Context(), cfg, args[0], cmd.OutOrStdout(), logger); err != nil {
				return WrapExitError(ExitFailure, "migrate", err)
			}
			return nil
		},
	}
}
