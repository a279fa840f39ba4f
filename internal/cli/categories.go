package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/factsphere/internal/client/render"
	"github.com/heartmarshall/factsphere/internal/domain"
)

type categoryResult struct {
	Name  string `json:"name"  yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "categories",
		Short:         "List the fact categories and their colors",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			cats := domain.Categories()
			result := make([]categoryResult, 0, len(cats))
			for _, c := range cats {
				result = append(result, categoryResult{Name: c.String(), Color: c.Color()})
			}

			return out.Write(result, func(w io.Writer) error {
				return render.New(!rootOpts.NoColor).Categories(w)
			})
		},
	}
}
