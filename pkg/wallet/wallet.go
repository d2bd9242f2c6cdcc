// Package wallet handles the simulated top-up flow and the read-only
// ledger projections shown on the wallet screen.
package wallet

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/skinbazaar/storefront/pkg/models"
	"github.com/skinbazaar/storefront/pkg/services"
)

// ErrInvalidAmount is returned for non-positive deposit amounts.
var ErrInvalidAmount = errors.New("deposit amount must be positive")

// Session is the slice of the session store the wallet needs.
type Session interface {
	IsLoggedIn() bool
	AdjustBalance(delta decimal.Decimal)
}

// Service is the wallet flow. Deposits are simulated: the balance is
// credited locally and the ledger is expected to record a matching deposit
// server-side.
type Service struct {
	session Session
	ledger  services.LedgerService
}

// NewService creates a wallet service.
func NewService(session Session, ledger services.LedgerService) *Service {
	return &Service{session: session, ledger: ledger}
}

// Deposit credits the wallet locally. The amount must be positive and a
// session must be active.
func (s *Service) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !s.session.IsLoggedIn() {
		return services.ErrNotAuthenticated
	}
	s.session.AdjustBalance(amount)
	return nil
}

// Transactions fetches the caller's ledger projection, newest first as
// served. A limit of zero fetches everything.
func (s *Service) Transactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	params := make(map[string]string)
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	return s.ledger.Transactions(ctx, params)
}

// Summary aggregates a transactions projection for display.
type Summary struct {
	TotalDeposited decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalEarned    decimal.Decimal
}

// Summarize folds the projection: deposit amounts, absolute purchase
// spend, and sale proceeds.
func Summarize(transactions []models.Transaction) Summary {
	summary := Summary{
		TotalDeposited: decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalEarned:    decimal.Zero,
	}
	for _, tx := range transactions {
		switch tx.Kind {
		case models.TransactionDeposit:
			summary.TotalDeposited = summary.TotalDeposited.Add(tx.Amount)
		case models.TransactionPurchase:
			summary.TotalSpent = summary.TotalSpent.Add(tx.Amount.Abs())
		case models.TransactionSale:
			summary.TotalEarned = summary.TotalEarned.Add(tx.Amount)
		}
	}
	return summary
}
