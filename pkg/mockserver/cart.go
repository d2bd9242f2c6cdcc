package mockserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skinbazaar/storefront/pkg/models"
)

// getCart serves the authoritative cart.
func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requireSession(w) {
		return
	}
	lines := s.cart
	if lines == nil {
		lines = []models.CartLine{}
	}
	s.writeJSON(w, http.StatusOK, lines)
}

// addToCart persists one listing's membership.
func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ListingId string `json:"listingId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requireSession(w) {
		return
	}

	for _, line := range s.cart {
		if line.Listing.Id == body.ListingId {
			s.writeError(w, http.StatusConflict, "listing %s already in cart", body.ListingId)
			return
		}
	}
	for _, listing := range s.listings {
		if listing.Id == body.ListingId {
			line := models.CartLine{Listing: listing, AddedAt: time.Now()}
			s.cart = append(s.cart, line)
			s.writeJSON(w, http.StatusCreated, line)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "listing %s not found", body.ListingId)
}

// removeFromCart deletes one listing from the cart. The delete is
// idempotent: a missing line still succeeds.
func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	listingId := chi.URLParam(r, "listingId")

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requireSession(w) {
		return
	}

	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.Listing.Id != listingId {
			kept = append(kept, line)
		}
	}
	s.cart = kept
	w.WriteHeader(http.StatusNoContent)
}

// clearCart wipes the cart. The wiped lines are held aside until the next
// purchase settles them.
func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requireSession(w) {
		return
	}

	if len(s.cart) > 0 {
		s.pending = s.cart
	}
	s.cart = nil
	w.WriteHeader(http.StatusNoContent)
}
