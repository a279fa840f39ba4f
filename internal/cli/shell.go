package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/factsphere/internal/client/render"
	"github.com/heartmarshall/factsphere/internal/client/submission"
	"github.com/heartmarshall/factsphere/internal/client/viewstate"
	"github.com/heartmarshall/factsphere/internal/client/vote"
	"github.com/heartmarshall/factsphere/internal/domain"
)

const shellHelp = `Commands:
  category <name|all>      show one category
  reload                   fetch the current category again
  form                     open or close the share form
  text <fact>              set the fact text
  source <url>             set the source URL
  cat <category>           set the fact category
  post                     submit the form
  vote <id> <kind>         vote interesting, mindblowing or false
  help                     show this help
  quit                     leave the shell
`

// NewShellCommand creates the interactive shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Browse, share and vote interactively",
		Long: `Start an interactive session. The fact list is loaded once on start and
updated in place as facts are shared and voted on. Type "help" for commands.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), cmd, rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			return newShell(s).run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// shell drives one controller, form and coordinator. Store calls run in
// their own goroutines; every completion redraws the screen.
type shell struct {
	s     *session
	out   io.Writer
	ctrl  *viewstate.Controller
	form  *submission.Form
	votes *vote.Coordinator

	mu sync.Mutex // serializes writes to out
	wg sync.WaitGroup
}

func newShell(s *session) *shell {
	sh := &shell{s: s, out: s.writer()}
	sh.ctrl = viewstate.New(s.backend.Facts, sh, s.log)
	sh.form = submission.NewForm(s.backend.Facts, sh.ctrl, s.metrics, s.log)
	sh.votes = vote.NewCoordinator(s.backend.Facts, sh.ctrl, s.metrics, s.log)
	return sh
}

// FetchFailed implements viewstate.Notifier.
func (sh *shell) FetchFailed(err error) {
	sh.s.metrics.FetchFailed()
	sh.mu.Lock()
	defer sh.mu.Unlock()
	_ = sh.s.render.Alert(sh.out, err)
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	// The first load completes before input is read so early commands see
	// the initial list.
	_ = sh.ctrl.LoadFacts(ctx)
	sh.redraw()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !sh.exec(ctx, scanner.Text()) {
			break
		}
	}
	sh.wg.Wait()

	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitFailure, "read input", err)
	}
	return nil
}

// exec runs one command line and reports whether the shell should continue.
func (sh *shell) exec(ctx context.Context, line string) bool {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "":
	case "quit", "exit":
		return false
	case "help":
		sh.print(shellHelp)
	case "category":
		sh.async(ctx, "load facts", func(ctx context.Context) error {
			return sh.ctrl.SetCategory(ctx, arg)
		})
	case "reload":
		sh.async(ctx, "load facts", sh.ctrl.LoadFacts)
	case "form":
		sh.form.Toggle()
		sh.redraw()
	case "text":
		sh.edit(sh.form.SetText(arg))
	case "source":
		sh.edit(sh.form.SetSource(arg))
	case "cat":
		sh.edit(sh.form.SetCategory(arg))
	case "post":
		sh.async(ctx, "submit fact", func(ctx context.Context) error {
			_, err := sh.form.Submit(ctx)
			return err
		})
	case "vote":
		id, kind, err := parseVoteArgs(arg)
		if err != nil {
			sh.print(err.Error() + "\n")
			return true
		}
		sh.async(ctx, "vote", func(ctx context.Context) error {
			_, err := sh.votes.CastVote(ctx, id, kind)
			return err
		})
	default:
		sh.print(fmt.Sprintf("unknown command %q, type \"help\"\n", name))
	}
	return true
}

func (sh *shell) edit(err error) {
	if err != nil {
		sh.print(err.Error() + "\n")
		return
	}
	sh.redraw()
}

// async runs op in the background and redraws when it completes. Failures
// already surfaced elsewhere are not printed again: fetch failures go
// through the notifier, submission failures through the form, and vote
// write failures are only logged.
func (sh *shell) async(ctx context.Context, what string, op func(ctx context.Context) error) {
	sh.wg.Add(1)
	go func() {
		defer sh.wg.Done()

		err := op(ctx)
		switch {
		case err == nil:
		case errors.Is(err, viewstate.ErrSuperseded):
			return
		case errors.Is(err, domain.ErrFetchFailed),
			errors.Is(err, domain.ErrSubmissionWrite),
			errors.Is(err, domain.ErrVoteWrite):
		case what == "submit fact" && errors.Is(err, domain.ErrValidation):
		default:
			sh.s.log.Debug("shell command failed", slog.String("op", what), slog.String("error", err.Error()))
			sh.print(err.Error() + "\n")
		}
		sh.redraw()
	}()
}

func (sh *shell) redraw() {
	view := render.View{
		State:  sh.ctrl.Snapshot(),
		Form:   sh.form.State(),
		Voting: sh.votes.InFlight,
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	_ = sh.s.render.Render(sh.out, view)
}

func (sh *shell) print(s string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	_, _ = io.WriteString(sh.out, s)
}

func parseVoteArgs(arg string) (domain.FactID, domain.VoteKind, error) {
	rawID, rawKind, ok := strings.Cut(arg, " ")
	if !ok {
		return 0, "", errors.New("usage: vote <id> <kind>")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return 0, "", fmt.Errorf("invalid fact id %q", rawID)
	}
	kind, err := domain.ParseVoteKind(strings.TrimSpace(rawKind))
	if err != nil {
		return 0, "", err
	}
	return domain.FactID(id), kind, nil
}
