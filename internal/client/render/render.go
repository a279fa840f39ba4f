// Package render draws the client state as terminal text.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/heartmarshall/factsphere/internal/client/submission"
	"github.com/heartmarshall/factsphere/internal/client/viewstate"
	"github.com/heartmarshall/factsphere/internal/domain"
)

// User-visible messages.
const (
	AppTitle        = "FactSphere"
	MsgEmpty        = "No facts for this category yet. Create the first one!"
	MsgLoading      = "Loading..."
	MsgFetchFailed  = "There was a problem getting data"
	MsgInvalidDraft = "☠ Some of the data in the input fields are not valid. Try again!"
	MsgSubmitFailed = "☠ The fact could not be saved. Try again!"
	DisputedMarker  = "[⛔ DISPUTED]"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiFaint = "\x1b[2m"
)

// View is everything one screen shows. Voting may be nil.
type View struct {
	State  viewstate.Snapshot
	Form   submission.State
	Voting func(id domain.FactID) bool
}

// Renderer formats views. Without color it emits plain text only. It is safe
// for concurrent use.
type Renderer struct {
	color   bool
	printer *message.Printer
}

// New creates a Renderer.
func New(color bool) *Renderer {
	return &Renderer{
		color:   color,
		printer: message.NewPrinter(language.English),
	}
}

// Render writes the full screen: header, category selector, the form when
// open, and the fact list.
func (r *Renderer) Render(w io.Writer, v View) error {
	var b strings.Builder

	toggle := "[Share a fact]"
	if v.Form.Open {
		toggle = "[Close]"
	}
	b.WriteString(r.style(ansiBold, AppTitle) + "  " + toggle + "\n")
	r.writeSelector(&b, v.State.Category)
	b.WriteString("\n")

	if v.Form.Open {
		r.writeForm(&b, v.Form)
		b.WriteString("\n")
	}

	if v.State.Loading {
		b.WriteString(MsgLoading + "\n")
	} else {
		r.writeList(&b, v.State.Facts, v.Voting)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Facts writes the list section only: rows and the count line, or the
// empty-state message.
func (r *Renderer) Facts(w io.Writer, facts []domain.Fact) error {
	var b strings.Builder
	r.writeList(&b, facts, nil)
	_, err := io.WriteString(w, b.String())
	return err
}

// Fact writes a single row.
func (r *Renderer) Fact(w io.Writer, f domain.Fact) error {
	var b strings.Builder
	r.writeFact(&b, f, false)
	_, err := io.WriteString(w, b.String())
	return err
}

// Categories writes every category with its display color.
func (r *Renderer) Categories(w io.Writer) error {
	var b strings.Builder
	for _, c := range domain.Categories() {
		fmt.Fprintf(&b, "%-13s %s\n", c, r.swatch(c.Color()))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Alert writes a blocking notification for a failed fetch.
func (r *Renderer) Alert(w io.Writer, err error) error {
	msg := MsgFetchFailed
	if !errors.Is(err, domain.ErrFetchFailed) {
		msg = err.Error()
	}
	_, werr := io.WriteString(w, r.style(fg("#ef4444"), "⚠ "+msg)+"\n")
	return werr
}

func (r *Renderer) writeSelector(b *strings.Builder, active string) {
	title := cases.Title(language.English)
	b.WriteString("Categories:")
	names := append([]string{domain.CategoryAll}, categoryNames()...)
	for _, name := range names {
		label := title.String(name)
		if name == active {
			label = r.style(ansiBold, "["+label+"]")
		}
		b.WriteString(" " + label)
	}
	b.WriteString("\n")
}

func (r *Renderer) writeForm(b *strings.Builder, s submission.State) {
	category := "(choose)"
	if s.Draft.Category != "" {
		category = cases.Upper(language.English).String(s.Draft.Category)
	}
	post := "[Post]"
	if s.InFlight {
		post = r.style(ansiFaint, "[Posting...]")
	}

	b.WriteString("Share a fact with the world...\n")
	fmt.Fprintf(b, "  Text:     %s (%d)\n", s.Draft.Text, s.Remaining)
	fmt.Fprintf(b, "  Source:   %s\n", s.Draft.Source)
	fmt.Fprintf(b, "  Category: %s\n", category)
	b.WriteString("  " + post + "\n")

	if s.Err == nil {
		return
	}
	var verr *domain.ValidationError
	switch {
	case errors.As(s.Err, &verr):
		b.WriteString(r.style(fg("#ef4444"), MsgInvalidDraft) + "\n")
		for _, fe := range verr.Errors {
			fmt.Fprintf(b, "  - %s: %s\n", fe.Field, fe.Message)
		}
	case errors.Is(s.Err, domain.ErrSubmissionWrite):
		b.WriteString(r.style(fg("#ef4444"), MsgSubmitFailed) + "\n")
	}
}

func (r *Renderer) writeList(b *strings.Builder, facts []domain.Fact, voting func(domain.FactID) bool) {
	if len(facts) == 0 {
		b.WriteString(MsgEmpty + "\n")
		return
	}
	for _, f := range facts {
		r.writeFact(b, f, voting != nil && voting(f.ID))
	}
	b.WriteString("\n")
	b.WriteString(r.printer.Sprintf("There are %d facts in the database. Add your own!", len(facts)) + "\n")
}

func (r *Renderer) writeFact(b *strings.Builder, f domain.Fact, voting bool) {
	disputed := ""
	if f.IsDisputed() {
		disputed = r.style(fg("#ef4444"), DisputedMarker) + " "
	}
	fmt.Fprintf(b, "#%d %s%s (Source: %s) %s\n", f.ID, disputed, f.Text, f.Source, r.tag(f.Category))

	votes := fmt.Sprintf("👍 %d  🤯 %d  ⛔️ %d", f.VotesInteresting, f.VotesMindblowing, f.VotesFalse)
	if voting {
		votes = r.style(ansiFaint, votes) + "  (voting...)"
	}
	b.WriteString("    " + votes + "\n")
}

func (r *Renderer) tag(c domain.Category) string {
	if !r.color {
		return "[" + string(c) + "]"
	}
	return bg(c.Color()) + "\x1b[97m " + string(c) + " " + ansiReset
}

func (r *Renderer) swatch(hex string) string {
	if !r.color {
		return hex
	}
	return bg(hex) + "   " + ansiReset + " " + hex
}

func (r *Renderer) style(code, s string) string {
	if !r.color || code == "" {
		return s
	}
	return code + s + ansiReset
}

func categoryNames() []string {
	cats := domain.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

func fg(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

func bg(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// parseHex accepts #rgb and #rrggbb.
func parseHex(hex string) (r, g, b uint8, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
