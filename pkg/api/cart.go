package api

import (
	"context"
	"net/http"

	"github.com/skinbazaar/storefront/pkg/models"
)

// CartAPI groups the cart collaborator's endpoints.
type CartAPI struct {
	c *Client
}

// Cart returns the cart endpoint group.
func (c *Client) Cart() CartAPI {
	return CartAPI{c: c}
}

// Get fetches the authoritative server-side cart.
func (a CartAPI) Get(ctx context.Context) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := a.c.Do(ctx, http.MethodGet, "/cart", nil, nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Add persists the listing's cart membership.
func (a CartAPI) Add(ctx context.Context, listingId string) error {
	body := struct {
		ListingId string `json:"listingId"`
	}{ListingId: listingId}
	return a.c.Do(ctx, http.MethodPost, "/cart", nil, body, nil)
}

// Remove deletes one listing from the server-side cart.
func (a CartAPI) Remove(ctx context.Context, listingId string) error {
	return a.c.Do(ctx, http.MethodDelete, "/cart/"+listingId, nil, nil, nil)
}

// Clear wipes the server-side cart.
func (a CartAPI) Clear(ctx context.Context) error {
	return a.c.Do(ctx, http.MethodDelete, "/cart", nil, nil, nil)
}
