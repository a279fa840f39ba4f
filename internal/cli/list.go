package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/factsphere/internal/client/viewstate"
	"github.com/heartmarshall/factsphere/internal/domain"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Category string
}

type listResult struct {
	Category string        `json:"category" yaml:"category"`
	Facts    []domain.Fact `json:"facts"    yaml:"facts"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List facts, most interesting first",
		Long: `List facts ordered by interesting votes, optionally filtered by category.

Example:
  factsphere list --category science`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", domain.CategoryAll, "category to show, or \"all\"")

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd, opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	ctrl := viewstate.New(s.backend.Facts, nil, s.log)
	if err := ctrl.SetCategory(ctx, opts.Category); err != nil {
		return wrapDomainError("list facts", err)
	}

	snap := ctrl.Snapshot()
	return s.out.Write(listResult{Category: snap.Category, Facts: snap.Facts}, func(w io.Writer) error {
		return s.render.Facts(w, snap.Facts)
	})
}
