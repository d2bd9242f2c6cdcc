// Package cart implements the client-side cart: an ordered set of lines
// keyed by listing id, kept in step with the server cart through
// optimistic mutations with deterministic compensation.
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/skinbazaar/storefront/pkg/models"
	"github.com/skinbazaar/storefront/pkg/services"
)

// Status tags the outcome of an optimistic cart mutation.
type Status string

const (
	// Applied means the local change was made and the server confirmed it.
	Applied Status = "applied"

	// RolledBack means the local change was reverted because the server
	// rejected it.
	RolledBack Status = "rolled_back"

	// Unchanged means the operation was a no-op: duplicate add, missing id,
	// already-empty cart, or no active session.
	Unchanged Status = "unchanged"
)

// Result reports what a mutation did. Err is set for RolledBack results
// and for Unchanged results rejected up front.
type Result struct {
	Status Status
	Err    error
}

// Session is the slice of the session store the cart depends on. The cart
// is only meaningful while an identity is active.
type Session interface {
	IsLoggedIn() bool
}

// line is a cart line plus the token of the insert that created it. Tokens
// let rollbacks tell apart "this exact insert" from a later line that
// happens to share the listing id.
type line struct {
	models.CartLine
	token string
}

// Store is the cart. All local mutations are synchronous; the network
// round-trip's only further effect is a possible rollback.
type Store struct {
	svc     services.CartService
	session Session
	log     *logrus.Entry

	mu     sync.Mutex
	lines  []line
	voided map[string]struct{}
}

// NewStore creates an empty cart bound to the server cart collaborator.
func NewStore(svc services.CartService, session Session, logger *logrus.Logger) *Store {
	return &Store{
		svc:     svc,
		session: session,
		log:     logger.WithField("component", "cart"),
		voided:  make(map[string]struct{}),
	}
}

// Lines returns the cart lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	for i, ln := range s.lines {
		out[i] = ln.CartLine
	}
	return out
}

// Len returns the number of lines in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Contains reports whether a line for the listing id is present.
func (s *Store) Contains(listingId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(listingId) >= 0
}

// Total is the derived sum of line prices, recomputed on every call and
// never cached.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, ln := range s.lines {
		total = total.Add(ln.Listing.Price)
	}
	return total
}

// Add optimistically inserts a line for the listing, then persists the
// membership. Duplicate ids and logged-out sessions are no-ops. On a
// persist failure the insert is rolled back and its token voided, so no
// later rollback can resurrect the line.
func (s *Store) Add(ctx context.Context, listing models.Listing) Result {
	s.mu.Lock()
	if s.session != nil && !s.session.IsLoggedIn() {
		s.mu.Unlock()
		return Result{Status: Unchanged, Err: services.ErrNotAuthenticated}
	}
	if s.indexOf(listing.Id) >= 0 {
		s.mu.Unlock()
		return Result{Status: Unchanged}
	}
	inserted := line{
		CartLine: models.CartLine{Listing: listing, AddedAt: time.Now()},
		token:    uuid.NewString(),
	}
	s.lines = append(s.lines, inserted)
	s.mu.Unlock()

	if err := s.svc.Add(ctx, listing.Id); err != nil {
		s.mu.Lock()
		s.voided[inserted.token] = struct{}{}
		s.removeToken(inserted.token)
		s.mu.Unlock()

		s.log.WithError(err).WithField("listing", listing.Id).Warn("add rolled back")
		return Result{Status: RolledBack, Err: err}
	}
	return Result{Status: Applied}
}

// Remove optimistically deletes the line, then persists the deletion. On a
// persist failure the prior full line list is restored, filtered through
// the voided-insert set and reconciled with mutations that interleaved.
func (s *Store) Remove(ctx context.Context, listingId string) Result {
	s.mu.Lock()
	idx := s.indexOf(listingId)
	if idx < 0 {
		s.mu.Unlock()
		return Result{Status: Unchanged}
	}
	snapshot := s.snapshot()
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	s.mu.Unlock()

	if err := s.svc.Remove(ctx, listingId); err != nil {
		s.restore(snapshot)
		s.log.WithError(err).WithField("listing", listingId).Warn("remove rolled back")
		return Result{Status: RolledBack, Err: err}
	}
	return Result{Status: Applied}
}

// Clear optimistically wipes the cart, then persists the wipe, restoring
// the prior line list on failure.
func (s *Store) Clear(ctx context.Context) Result {
	s.mu.Lock()
	if len(s.lines) == 0 {
		s.mu.Unlock()
		return Result{Status: Unchanged}
	}
	snapshot := s.snapshot()
	s.lines = nil
	s.mu.Unlock()

	if err := s.svc.Clear(ctx); err != nil {
		s.restore(snapshot)
		s.log.WithError(err).Warn("clear rolled back")
		return Result{Status: RolledBack, Err: err}
	}
	return Result{Status: Applied}
}

// Reset drops all local state without touching the server. Used on logout,
// where no identity implies no remote cart to reconcile with.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.voided = make(map[string]struct{})
}

// SyncFromServer replaces local state wholesale with the collaborator's
// authoritative list. Without an active session it degenerates to a local
// reset, as does a fetch failure: an unreadable remote cart is treated as
// empty.
func (s *Store) SyncFromServer(ctx context.Context) {
	if s.session != nil && !s.session.IsLoggedIn() {
		s.Reset()
		return
	}

	fetched, err := s.svc.Get(ctx)
	if err != nil {
		s.log.WithError(err).Warn("cart sync failed")
		s.Reset()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.voided = make(map[string]struct{})
	s.lines = make([]line, 0, len(fetched))
	seen := make(map[string]struct{}, len(fetched))
	for _, cl := range fetched {
		if _, dup := seen[cl.Listing.Id]; dup {
			continue
		}
		seen[cl.Listing.Id] = struct{}{}
		s.lines = append(s.lines, line{CartLine: cl, token: uuid.NewString()})
	}
}

// indexOf returns the position of the line with the listing id, or -1.
// Caller holds the lock.
func (s *Store) indexOf(listingId string) int {
	for i, ln := range s.lines {
		if ln.Listing.Id == listingId {
			return i
		}
	}
	return -1
}

// removeToken deletes the line created by one specific insert, tolerating
// its absence. Caller holds the lock.
func (s *Store) removeToken(token string) {
	for i, ln := range s.lines {
		if ln.token == token {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// snapshot copies the current line list. Caller holds the lock.
func (s *Store) snapshot() []line {
	out := make([]line, len(s.lines))
	copy(out, s.lines)
	return out
}

// restore reinstates a snapshot after a failed mutation. Lines whose
// insert has been voided stay gone, and lines added since the snapshot are
// kept, so the listing-id set stays duplicate-free under interleaving.
func (s *Store) restore(snapshot []line) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored := make([]line, 0, len(snapshot)+len(s.lines))
	seen := make(map[string]struct{}, len(snapshot))
	for _, ln := range snapshot {
		if _, void := s.voided[ln.token]; void {
			continue
		}
		if _, dup := seen[ln.Listing.Id]; dup {
			continue
		}
		seen[ln.Listing.Id] = struct{}{}
		restored = append(restored, ln)
	}
	for _, ln := range s.lines {
		if _, dup := seen[ln.Listing.Id]; dup {
			continue
		}
		seen[ln.Listing.Id] = struct{}{}
		restored = append(restored, ln)
	}
	s.lines = restored
}
