// Package session holds the storefront's single authenticated identity and
// its wallet balance.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/skinbazaar/storefront/pkg/models"
	"github.com/skinbazaar/storefront/pkg/services"
)

// Store holds at most one identity, derived solely from the auth
// collaborator. Every failure path degrades to "no identity"; Refresh and
// Logout never fail outward.
type Store struct {
	auth services.AuthService
	log  *logrus.Entry

	mu       sync.Mutex
	identity *models.Identity
}

// NewStore creates an empty session store.
func NewStore(auth services.AuthService, logger *logrus.Logger) *Store {
	return &Store{
		auth: auth,
		log:  logger.WithField("component", "session"),
	}
}

// Refresh asks the auth collaborator who the current user is and installs
// the answer. Absence or any failure clears the identity.
func (s *Store) Refresh(ctx context.Context) {
	identity, err := s.auth.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.WithError(err).Debug("session refresh failed")
		s.identity = nil
		return
	}
	if identity == nil {
		s.identity = nil
		return
	}

	installed := *identity
	// Missing numeric fields arrive as decimal zero already; only the join
	// date needs a defensive default.
	if installed.JoinedAt.IsZero() {
		installed.JoinedAt = time.Now()
	}
	s.identity = &installed
}

// Logout ends the server session best-effort and unconditionally clears the
// local identity.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.WithError(err).Warn("server logout failed")
	}

	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
}

// LoginURL is the auth collaborator's browser-level login entry point.
func (s *Store) LoginURL() string {
	return s.auth.LoginURL()
}

// Identity returns a copy of the active identity, or nil when logged out.
func (s *Store) Identity() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// IsLoggedIn reports whether an identity is active.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// Balance returns the active identity's wallet balance, or zero when
// logged out.
func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return decimal.Zero
	}
	return s.identity.Balance
}

// AdjustBalance applies a local-only delta to the wallet balance. The
// primitive enforces no floor; callers are responsible for deltas that keep
// the balance non-negative. No-op without an active identity.
func (s *Store) AdjustBalance(delta decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return
	}
	s.identity.Balance = s.identity.Balance.Add(delta)
}
