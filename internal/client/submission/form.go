package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// ErrSubmitInFlight is returned while a submission is outstanding.
var ErrSubmitInFlight = errors.New("submission in flight")

type factInserter interface {
	InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error)
}

type factAppender interface {
	AppendFact(f domain.Fact)
}

type failureRecorder interface {
	SubmissionFailed()
}

// State is a copy of the form for rendering.
type State struct {
	Draft     Draft
	Open      bool
	InFlight  bool
	Remaining int
	Err       error
}

// Form holds the draft and the submission surface state.
type Form struct {
	store   factInserter
	list    factAppender
	metrics failureRecorder
	log     *slog.Logger

	mu       sync.Mutex
	draft    Draft
	open     bool
	inFlight bool
	lastErr  error
}

// NewForm creates a closed, empty form. metrics may be nil or a nil
// *telemetry.Collector.
func NewForm(store factInserter, list factAppender, metrics failureRecorder, logger *slog.Logger) *Form {
	return &Form{
		store:   store,
		list:    list,
		metrics: metrics,
		log:     logger.With("service", "submission"),
	}
}

// Toggle opens a closed form or closes an open one and returns the new state.
func (f *Form) Toggle() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = !f.open
	return f.open
}

// Open shows the form.
func (f *Form) Open() {
	f.mu.Lock()
	f.open = true
	f.mu.Unlock()
}

// Close hides the form. The draft is kept.
func (f *Form) Close() {
	f.mu.Lock()
	f.open = false
	f.mu.Unlock()
}

// SetText updates the draft text.
func (f *Form) SetText(s string) error {
	return f.edit(func(d *Draft) { d.Text = s })
}

// SetSource updates the draft source.
func (f *Form) SetSource(s string) error {
	return f.edit(func(d *Draft) { d.Source = s })
}

// SetCategory updates the draft category.
func (f *Form) SetCategory(s string) error {
	return f.edit(func(d *Draft) { d.Category = s })
}

func (f *Form) edit(apply func(*Draft)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return ErrSubmitInFlight
	}
	apply(&f.draft)
	return nil
}

// State returns a copy of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Draft:     f.draft,
		Open:      f.open,
		InFlight:  f.inFlight,
		Remaining: Remaining(f.draft.Text),
		Err:       f.lastErr,
	}
}

// Submit validates the draft and inserts it. On success the draft is cleared,
// the form closed and the stored record appended to the list. On any failure
// the draft is kept and the form stays as it was.
func (f *Form) Submit(ctx context.Context) (*domain.Fact, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	draft := f.draft
	if err := Validate(draft); err != nil {
		f.lastErr = err
		f.mu.Unlock()
		return nil, err
	}
	f.inFlight = true
	f.mu.Unlock()

	created, err := f.store.InsertFact(ctx, draft.NewFact())

	f.mu.Lock()
	f.inFlight = false
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrSubmissionWrite, err)
		f.lastErr = err
		f.mu.Unlock()

		f.log.WarnContext(ctx, "submit fact failed", slog.String("error", err.Error()))
		if f.metrics != nil {
			f.metrics.SubmissionFailed()
		}
		return nil, err
	}
	f.draft = Draft{}
	f.open = false
	f.lastErr = nil
	f.mu.Unlock()

	f.list.AppendFact(*created)
	f.log.InfoContext(ctx, "fact submitted", slog.Int64("fact_id", int64(created.ID)))
	return created, nil
}
