// Package mockserver is an in-memory marketplace backend implementing the
// REST contract the storefront consumes. It exists for local development
// and end-to-end tests; one seeded account owns the session.
package mockserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/skinbazaar/storefront/pkg/middleware"
	"github.com/skinbazaar/storefront/pkg/models"
)

// sessionCookie is the ambient credential attached on login. The server
// keys the session on a single flag; the cookie is issued for fidelity
// with the real backend.
const sessionCookie = "storefront_session"

// Server holds the in-memory marketplace state behind a chi router.
type Server struct {
	log *logrus.Logger

	mu           sync.Mutex
	loggedIn     bool
	identity     models.Identity
	listings     []models.Listing
	cart         []models.CartLine
	pending      []models.CartLine
	inventory    []models.InventoryItem
	transactions []models.Transaction

	router chi.Router
}

// New creates an empty server. Seed state with the Seed helpers or
// SeedDemo before serving.
func New(logger *logrus.Logger) *Server {
	s := &Server{log: logger, loggedIn: true}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Get("/auth/me", s.getMe)
	router.Get("/auth/steam", s.login)
	router.Post("/auth/logout", s.logout)

	router.Get("/skins", s.listSkins)
	router.Post("/skins", s.createSkin)
	router.Get("/skins/{id}", s.getSkin)

	router.Get("/cart", s.getCart)
	router.Post("/cart", s.addToCart)
	router.Delete("/cart/{listingId}", s.removeFromCart)
	router.Delete("/cart", s.clearCart)

	router.Get("/users/transactions", s.listTransactions)
	router.Get("/users/listings", s.listOwnListings)
	router.Post("/users/purchase", s.purchase)

	router.Get("/inventory", s.getInventory)

	s.router = router
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// writeJSON encodes v with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("failed to write response")
	}
}

// writeError sends the structured error body the storefront expects.
func (s *Server) writeError(w http.ResponseWriter, status int, format string, args ...any) {
	s.writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}

// requireSession rejects the request when no session is active. Caller
// holds the lock.
func (s *Server) requireSession(w http.ResponseWriter) bool {
	if !s.loggedIn {
		s.writeError(w, http.StatusUnauthorized, "not authenticated")
		return false
	}
	return true
}
