package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/factsphere/internal/client/viewstate"
	"github.com/heartmarshall/factsphere/internal/client/vote"
	"github.com/heartmarshall/factsphere/internal/domain"
)

// NewVoteCommand creates the vote command.
func NewVoteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote <id> <kind>",
		Short: "Vote on a fact",
		Long: `Add one vote of the given kind to a fact.

Kinds: interesting, mindblowing, false.

Example:
  factsphere vote 7 interesting`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVote(cmd, rootOpts, args[0], args[1])
		},
	}

	return cmd
}

func runVote(cmd *cobra.Command, opts *RootOptions, rawID, rawKind string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid fact id %q", rawID))
	}
	kind, err := domain.ParseVoteKind(rawKind)
	if err != nil {
		return wrapDomainError("vote", err)
	}

	ctx := cmd.Context()
	s, err := openSession(ctx, cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	ctrl := viewstate.New(s.backend.Facts, nil, s.log)
	if err := ctrl.LoadFacts(ctx); err != nil {
		return wrapDomainError("load facts", err)
	}

	coord := vote.NewCoordinator(s.backend.Facts, ctrl, s.metrics, s.log)
	updated, err := coord.CastVote(ctx, domain.FactID(id), kind)
	if err != nil {
		return wrapDomainError("vote", err)
	}

	return s.out.Write(updated, func(w io.Writer) error {
		return s.render.Fact(w, *updated)
	})
}
