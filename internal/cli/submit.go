package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/factsphere/internal/client/render"
	"github.com/heartmarshall/factsphere/internal/client/submission"
	"github.com/heartmarshall/factsphere/internal/client/viewstate"
	"github.com/heartmarshall/factsphere/internal/domain"
)

// SubmitOptions holds flags for the submit command.
type SubmitOptions struct {
	*RootOptions
	Text     string
	Source   string
	Category string
}

// NewSubmitCommand creates the submit command.
func NewSubmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SubmitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Share a new fact",
		Long: `Validate and store a new fact. Text is limited to 200 characters and the
source must be an http or https URL.

Example:
  factsphere submit --text "Honey never spoils" --source https://example.com --category history`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Text, "text", "", "fact text")
	cmd.Flags().StringVar(&opts.Source, "source", "", "trustworthy source URL")
	cmd.Flags().StringVar(&opts.Category, "category", "", "category of the fact")

	return cmd
}

func runSubmit(cmd *cobra.Command, opts *SubmitOptions) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd, opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	ctrl := viewstate.New(s.backend.Facts, nil, s.log)
	form := submission.NewForm(s.backend.Facts, ctrl, s.metrics, s.log)
	form.Open()
	// The form is open and idle, so edits cannot fail here.
	_ = form.SetText(opts.Text)
	_ = form.SetSource(opts.Source)
	_ = form.SetCategory(opts.Category)

	created, err := form.Submit(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return wrapDomainError(render.MsgInvalidDraft, err)
		}
		return wrapDomainError(render.MsgSubmitFailed, err)
	}

	return s.out.Write(created, func(w io.Writer) error {
		return s.render.Fact(w, *created)
	})
}
