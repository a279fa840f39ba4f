// Package vote casts votes as absolute counter updates and merges the
// confirmed record back into the fact list.
//
// The new value is the locally cached counter plus one. Two clients voting on
// the same counter at once can lose an update; the store is last writer wins.
package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// ErrVoteInFlight is returned when the fact already has a vote outstanding.
var ErrVoteInFlight = errors.New("vote in flight")

type voteWriter interface {
	UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error)
}

type factList interface {
	Fact(id domain.FactID) (domain.Fact, bool)
	ReplaceFact(id domain.FactID, f domain.Fact) bool
}

type failureRecorder interface {
	VoteWriteFailed()
}

// Coordinator serializes votes per fact. Votes on different facts run
// concurrently.
type Coordinator struct {
	store   voteWriter
	list    factList
	metrics failureRecorder
	log     *slog.Logger

	mu       sync.Mutex
	inFlight map[domain.FactID]struct{}
}

// NewCoordinator creates a Coordinator. metrics may be nil or a nil
// *telemetry.Collector.
func NewCoordinator(store voteWriter, list factList, metrics failureRecorder, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		store:    store,
		list:     list,
		metrics:  metrics,
		log:      logger.With("service", "vote"),
		inFlight: make(map[domain.FactID]struct{}),
	}
}

// CastVote adds one to the given counter of the fact. On success the list
// entry is replaced by the store's record. On failure the list is untouched,
// the failure is logged and counted, and an error wrapping
// domain.ErrVoteWrite is returned.
func (c *Coordinator) CastVote(ctx context.Context, id domain.FactID, kind domain.VoteKind) (*domain.Fact, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown vote kind %q", kind))
	}

	current, ok := c.list.Fact(id)
	if !ok {
		return nil, fmt.Errorf("fact %d: %w", id, domain.ErrNotFound)
	}

	if !c.acquire(id) {
		return nil, ErrVoteInFlight
	}
	defer c.release(id)

	updated, err := c.store.UpdateVote(ctx, id, kind, current.Votes(kind)+1)
	if err != nil {
		err = fmt.Errorf("%w: fact %d: %w", domain.ErrVoteWrite, id, err)
		c.log.WarnContext(ctx, "vote failed",
			slog.Int64("fact_id", int64(id)),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		if c.metrics != nil {
			c.metrics.VoteWriteFailed()
		}
		return nil, err
	}

	c.list.ReplaceFact(id, *updated)
	return updated, nil
}

// InFlight reports whether a vote on the fact is outstanding.
func (c *Coordinator) InFlight(id domain.FactID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inFlight[id]
	return ok
}

func (c *Coordinator) acquire(id domain.FactID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.inFlight[id]; ok {
		return false
	}
	c.inFlight[id] = struct{}{}
	return true
}

func (c *Coordinator) release(id domain.FactID) {
	c.mu.Lock()
	delete(c.inFlight, id)
	c.mu.Unlock()
}
