package submission

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/factsphere/internal/domain"
	"github.com/heartmarshall/factsphere/internal/telemetry"
)

//go:generate moq -out mocks_mock_test.go -pkg submission . factInserter factAppender failureRecorder

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft Draft
		field string
	}{
		{"accept", Draft{"Water boils at 100C", "https://example.com", "science"}, ""},
		{"accept 200 runes", Draft{strings.Repeat("é", 200), "http://example.com/a?b=c", "funny"}, ""},
		{"accept trimmed", Draft{"  fact  ", " https://example.com ", "news"}, ""},
		{"empty text", Draft{"", "https://example.com", "science"}, "text"},
		{"blank text", Draft{"   ", "https://example.com", "science"}, "text"},
		{"201 chars", Draft{strings.Repeat("x", 201), "https://example.com", "science"}, "text"},
		{"not a url", Draft{"fact", "not-a-url", "science"}, "source"},
		{"wrong scheme", Draft{"fact", "ftp://example.com", "science"}, "source"},
		{"no host", Draft{"fact", "https://", "science"}, "source"},
		{"missing category", Draft{"fact", "https://example.com", ""}, "category"},
		{"unknown category", Draft{"fact", "https://example.com", "cooking"}, "category"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.draft)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tt.field), "expected error on %q, got %v", tt.field, verr.Errors)
			assert.Len(t, verr.Errors, 1)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	t.Parallel()

	var verr *domain.ValidationError
	require.ErrorAs(t, Validate(Draft{}), &verr)
	assert.True(t, verr.Has("text"))
	assert.True(t, verr.Has("source"))
	assert.True(t, verr.Has("category"))
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 200, Remaining(""))
	assert.Equal(t, 195, Remaining("héllo"))
	assert.Equal(t, -1, Remaining(strings.Repeat("x", 201)))
	assert.Equal(t, 195, Remaining("  hello \n"))
}

func TestRemaining_AgreesWithValidate(t *testing.T) {
	t.Parallel()

	d := Draft{Text: strings.Repeat("x", 200) + "   ", Source: "https://example.com", Category: "science"}

	require.NoError(t, Validate(d))
	assert.Equal(t, 0, Remaining(d.Text))
}

func fillValid(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.SetText("Honey never spoils"))
	require.NoError(t, f.SetSource("https://example.com/honey"))
	require.NoError(t, f.SetCategory("history"))
}

func TestForm_Toggle(t *testing.T) {
	t.Parallel()

	f := NewForm(&factInserterMock{}, &factAppenderMock{}, nil, discard())

	assert.False(t, f.State().Open)
	assert.True(t, f.Toggle())
	assert.False(t, f.Toggle())
	f.Open()
	assert.True(t, f.State().Open)
	f.Close()
	assert.False(t, f.State().Open)
}

func TestForm_SubmitSuccess(t *testing.T) {
	t.Parallel()

	store := &factInserterMock{
		InsertFactFunc: func(_ context.Context, nf domain.NewFact) (*domain.Fact, error) {
			return &domain.Fact{ID: 11, Text: nf.Text, Source: nf.Source, Category: nf.Category}, nil
		},
	}
	list := &factAppenderMock{}
	f := NewForm(store, list, nil, discard())
	f.Open()
	fillValid(t, f)

	created, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.FactID(11), created.ID)

	state := f.State()
	assert.Equal(t, Draft{}, state.Draft)
	assert.False(t, state.Open)
	assert.False(t, state.InFlight)
	assert.NoError(t, state.Err)

	appended := list.AppendFactCalls()
	require.Len(t, appended, 1)
	assert.Equal(t, *created, appended[0].F)

	inserted := store.InsertFactCalls()
	require.Len(t, inserted, 1)
	assert.Equal(t, domain.CategoryHistory, inserted[0].Nf.Category)
}

func TestForm_ValidationFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	store := &factInserterMock{}
	list := &factAppenderMock{}
	f := NewForm(store, list, nil, discard())
	f.Open()
	require.NoError(t, f.SetText("fact"))
	require.NoError(t, f.SetSource("not-a-url"))
	require.NoError(t, f.SetCategory("science"))

	_, err := f.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, store.InsertFactCalls())
	assert.Empty(t, list.AppendFactCalls())

	state := f.State()
	assert.True(t, state.Open)
	assert.Equal(t, "not-a-url", state.Draft.Source)
	assert.ErrorIs(t, state.Err, domain.ErrValidation)
}

func TestForm_WriteFailureKeepsDraftAndForm(t *testing.T) {
	t.Parallel()

	store := &factInserterMock{
		InsertFactFunc: func(_ context.Context, _ domain.NewFact) (*domain.Fact, error) {
			return nil, errors.New("connection reset")
		},
	}
	list := &factAppenderMock{}
	metrics := &failureRecorderMock{}
	f := NewForm(store, list, metrics, discard())
	f.Open()
	fillValid(t, f)

	_, err := f.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrSubmissionWrite)
	assert.Empty(t, list.AppendFactCalls())
	assert.Len(t, metrics.SubmissionFailedCalls(), 1)

	state := f.State()
	assert.True(t, state.Open)
	assert.False(t, state.InFlight)
	assert.Equal(t, "Honey never spoils", state.Draft.Text)
	assert.ErrorIs(t, state.Err, domain.ErrSubmissionWrite)
}

func TestForm_RefusesWhileInFlight(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	store := &factInserterMock{
		InsertFactFunc: func(_ context.Context, nf domain.NewFact) (*domain.Fact, error) {
			close(started)
			<-release
			return &domain.Fact{ID: 1, Text: nf.Text, Source: nf.Source, Category: nf.Category}, nil
		},
	}
	f := NewForm(store, &factAppenderMock{}, nil, discard())
	fillValid(t, f)

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()
	<-started

	assert.True(t, f.State().InFlight)
	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.ErrorIs(t, f.SetText("changed"), ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, store.InsertFactCalls(), 1)
	assert.False(t, f.State().InFlight)
}

func TestForm_WriteFailureWithNilCollector(t *testing.T) {
	t.Parallel()

	store := &factInserterMock{
		InsertFactFunc: func(_ context.Context, _ domain.NewFact) (*domain.Fact, error) {
			return nil, errors.New("connection reset")
		},
	}
	var metrics *telemetry.Collector
	f := NewForm(store, &factAppenderMock{}, metrics, discard())
	f.Open()
	fillValid(t, f)

	require.NotPanics(t, func() {
		_, err := f.Submit(context.Background())
		assert.ErrorIs(t, err, domain.ErrSubmissionWrite)
	})
	assert.True(t, f.State().Open)
}
