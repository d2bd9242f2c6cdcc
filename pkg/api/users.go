package api

import (
	"context"
	"net/http"

	"github.com/skinbazaar/storefront/pkg/models"
)

// UsersAPI groups the ledger collaborator's read-only projections and the
// purchase-recording call.
type UsersAPI struct {
	c *Client
}

// Users returns the ledger endpoint group.
func (c *Client) Users() UsersAPI {
	return UsersAPI{c: c}
}

// Transactions fetches the caller's ledger projection.
func (u UsersAPI) Transactions(ctx context.Context, params map[string]string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := u.c.Do(ctx, http.MethodGet, "/users/transactions", Params(params), nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Listings fetches the caller's own listings, optionally filtered by
// status.
func (u UsersAPI) Listings(ctx context.Context, status string) ([]models.Listing, error) {
	var listings []models.Listing
	params := Params{"status": status}
	if err := u.c.Do(ctx, http.MethodGet, "/users/listings", params, nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// RecordPurchase asks the ledger to persist the purchase the storefront
// just committed locally.
func (u UsersAPI) RecordPurchase(ctx context.Context) error {
	return u.c.Do(ctx, http.MethodPost, "/users/purchase", nil, nil, nil)
}
