// Package viewstate owns the authoritative list of facts the client renders,
// the active category filter and the loading flag.
package viewstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// ErrSuperseded is returned by a load that completed after a newer load was
// issued. Its result is discarded.
var ErrSuperseded = errors.New("load superseded")

type factFetcher interface {
	FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error)
}

// Notifier surfaces blocking user-visible alerts.
type Notifier interface {
	FetchFailed(err error)
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Facts    []domain.Fact
	Category string
	Loading  bool
}

// Controller is safe for concurrent use. Facts change only through
// LoadFacts/SetCategory (wholesale), AppendFact and ReplaceFact.
type Controller struct {
	store  factFetcher
	notify Notifier
	log    *slog.Logger
	limit  int

	mu       sync.Mutex
	facts    []domain.Fact
	category string
	loading  bool
	gen      uint64
}

// New creates a Controller showing every category. notifier may be nil.
func New(store factFetcher, notifier Notifier, logger *slog.Logger) *Controller {
	return &Controller{
		store:    store,
		notify:   notifier,
		log:      logger.With("service", "viewstate"),
		limit:    domain.MaxFacts,
		facts:    []domain.Fact{},
		category: domain.CategoryAll,
	}
}

// SetCategory switches the filter to c ("all" or a category name) and loads
// the matching facts. Category and facts are committed together on success
// only. An unknown category is rejected without a fetch.
func (c *Controller) SetCategory(ctx context.Context, category string) error {
	filter, err := domain.ParseCategoryFilter(category)
	if err != nil {
		return err
	}
	return c.load(ctx, filter)
}

// LoadFacts refetches the facts for the current category.
func (c *Controller) LoadFacts(ctx context.Context) error {
	c.mu.Lock()
	category := c.category
	c.mu.Unlock()

	filter, err := domain.ParseCategoryFilter(category)
	if err != nil {
		return err
	}
	return c.load(ctx, filter)
}

func (c *Controller) load(ctx context.Context, filter domain.FactFilter) error {
	filter.Limit = c.limit

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	c.mu.Unlock()

	facts, err := c.store.FetchFacts(ctx, filter)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.log.DebugContext(ctx, "stale load discarded", slog.String("category", filter.Label()))
		return ErrSuperseded
	}
	c.loading = false
	if err != nil {
		c.mu.Unlock()
		err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		c.log.ErrorContext(ctx, "fetch facts failed",
			slog.String("category", filter.Label()),
			slog.String("error", err.Error()),
		)
		if c.notify != nil {
			c.notify.FetchFailed(err)
		}
		return err
	}
	c.facts = dedupe(facts, c.limit)
	c.category = filter.Label()
	n := len(c.facts)
	c.mu.Unlock()

	c.log.DebugContext(ctx, "facts loaded",
		slog.String("category", filter.Label()),
		slog.Int("count", n),
	)
	return nil
}

// AppendFact adds f at the end of the list. An entry with the same id is
// replaced in place instead.
func (c *Controller) AppendFact(f domain.Fact) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(f.ID); i >= 0 {
		c.facts[i] = f
		return
	}
	c.facts = append(c.facts, f)
}

// ReplaceFact swaps the entry with the given id for f and reports whether it
// was found. An unknown id leaves the list unchanged.
func (c *Controller) ReplaceFact(id domain.FactID, f domain.Fact) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.facts[i] = f
	return true
}

// Fact returns the cached entry with the given id.
func (c *Controller) Fact(id domain.FactID) (domain.Fact, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		return c.facts[i], true
	}
	return domain.Fact{}, false
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	facts := make([]domain.Fact, len(c.facts))
	copy(facts, c.facts)
	return Snapshot{Facts: facts, Category: c.category, Loading: c.loading}
}

// indexOf must be called with mu held.
func (c *Controller) indexOf(id domain.FactID) int {
	for i := range c.facts {
		if c.facts[i].ID == id {
			return i
		}
	}
	return -1
}

// dedupe keeps the first entry per id and the store's order, capped at limit.
func dedupe(facts []domain.Fact, limit int) []domain.Fact {
	out := make([]domain.Fact, 0, min(len(facts), limit))
	seen := make(map[domain.FactID]struct{}, len(facts))
	for _, f := range facts {
		if len(out) == limit {
			break
		}
		if _, ok := seen[f.ID]; ok {
			continue
		}
		seen[f.ID] = struct{}{}
		out = append(out, f)
	}
	return out
}
