package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skinbazaar/storefront/pkg/models"
	"github.com/skinbazaar/storefront/pkg/services"
)

// DebounceWindow is how long the filter state must be quiescent before a
// query is issued.
const DebounceWindow = 300 * time.Millisecond

// Searcher issues debounced catalog queries. Every filter change restarts
// the quiescence timer, and each issued query gets a monotonically
// increasing sequence number: only the latest issued query may publish its
// results, so a slow stale response can never overwrite newer ones. Query
// failures degrade to an empty result set.
type Searcher struct {
	svc    services.CatalogService
	window time.Duration
	log    *logrus.Entry

	mu      sync.Mutex
	filters Filters
	timer   *time.Timer
	cancel  context.CancelFunc
	seq     uint64
	loading bool
	items   []models.Listing
	total   int
}

// NewSearcher creates a searcher with the default debounce window.
func NewSearcher(svc services.CatalogService, logger *logrus.Logger) *Searcher {
	return &Searcher{
		svc:    svc,
		window: DebounceWindow,
		log:    logger.WithField("component", "catalog"),
	}
}

// SetWindow overrides the debounce window.
func (s *Searcher) SetWindow(window time.Duration) *Searcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = window
	return s
}

// Filters returns the current filter set.
func (s *Searcher) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Results returns the latest published page of listings and the backend's
// total match count.
func (s *Searcher) Results() ([]models.Listing, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items, s.total
}

// Loading reports whether a query is pending or in flight.
func (s *Searcher) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Update mutates the filter set and restarts the quiescence timer.
func (s *Searcher) Update(mutate func(*Filters)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(&s.filters)
	s.loading = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, s.fire)
}

// SetFilters replaces the filter set wholesale.
func (s *Searcher) SetFilters(filters Filters) {
	s.Update(func(current *Filters) {
		*current = filters
	})
}

// Reset clears all filters back to their defaults and reissues the query.
func (s *Searcher) Reset() {
	s.SetFilters(Filters{})
}

// Flush stops the pending timer and issues the query immediately.
func (s *Searcher) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.fire()
}

// fire runs once the window has passed with no further filter changes.
func (s *Searcher) fire() {
	s.mu.Lock()
	if s.cancel != nil {
		// Supersede, not merely ignore, the in-flight query.
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.seq++
	issued := s.seq
	params := s.filters.Params()
	s.mu.Unlock()

	page, err := s.svc.List(ctx, params)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if issued != s.seq {
		// A newer query has been issued since; this response is stale.
		return
	}
	s.loading = false
	if err != nil {
		s.log.WithError(err).Warn("catalog query failed")
		s.items = nil
		s.total = 0
		return
	}
	s.items = page.Items
	s.total = page.Total
}
