package mockserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skinbazaar/storefront/pkg/models"
)

// listTransactions serves the ledger projection, newest first.
func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requireSession(w) {
		return
	}

	transactions := make([]models.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	// Newest first.
	for i, j := 0, len(transactions)-1; i < j; i, j = i+1, j-1 {
		transactions[i], transactions[j] = transactions[j], transactions[i]
	}

	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit < len(transactions) {
		transactions = transactions[:limit]
	}
	s.writeJSON(w, http.StatusOK, transactions)
}

// listOwnListings serves the session account's listings.
func (s *Server) listOwnListings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requireSession(w) {
		return
	}

	own := make([]models.Listing, 0)
	for _, listing := range s.listings {
		if listing.SellerId == s.identity.Id {
			own = append(own, listing)
		}
	}
	s.writeJSON(w, http.StatusOK, own)
}

// purchase settles the most recent cart wipe (or the live cart when none
// is pending): debits the balance and records one purchase transaction per
// line.
func (s *Server) purchase(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requireSession(w) {
		return
	}

	lines := s.pending
	if len(lines) == 0 {
		lines = s.cart
	}
	if len(lines) == 0 {
		s.writeError(w, http.StatusBadRequest, "nothing to purchase")
		return
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Listing.Price)
	}
	if s.identity.Balance.LessThan(total) {
		s.writeError(w, http.StatusUnprocessableEntity, "insufficient funds")
		return
	}

	s.identity.Balance = s.identity.Balance.Sub(total)
	s.identity.TotalPurchases = s.identity.TotalPurchases.Add(total)
	for _, line := range lines {
		s.transactions = append(s.transactions, models.Transaction{
			Id:          uuid.NewString(),
			Kind:        models.TransactionPurchase,
			Amount:      line.Listing.Price.Neg(),
			Description: fmt.Sprintf("%s | %s", line.Listing.Weapon, line.Listing.Name),
			Date:        time.Now(),
			Status:      models.StatusCompleted,
		})
	}
	s.pending = nil
	s.cart = nil

	s.writeJSON(w, http.StatusOK, s.identity)
}

// getInventory serves the session account's inventory.
func (s *Server) getInventory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requireSession(w) {
		return
	}
	items := s.inventory
	if items == nil {
		items = []models.InventoryItem{}
	}
	s.writeJSON(w, http.StatusOK, items)
}
