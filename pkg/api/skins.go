package api

import (
	"context"
	"net/http"

	"github.com/skinbazaar/storefront/pkg/models"
)

// SkinsAPI groups the catalog collaborator's endpoints.
type SkinsAPI struct {
	c *Client
}

// Skins returns the catalog endpoint group.
func (c *Client) Skins() SkinsAPI {
	return SkinsAPI{c: c}
}

// List fetches one page of listings for the given normalized query
// parameters.
func (s SkinsAPI) List(ctx context.Context, params map[string]string) (*models.ListingPage, error) {
	var page models.ListingPage
	if err := s.c.Do(ctx, http.MethodGet, "/skins", Params(params), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single listing by id.
func (s SkinsAPI) Get(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	if err := s.c.Do(ctx, http.MethodGet, "/skins/"+id, nil, nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Create publishes a new listing from an inventory item.
func (s SkinsAPI) Create(ctx context.Context, newListing models.NewListing) (*models.Listing, error) {
	var listing models.Listing
	if err := s.c.Do(ctx, http.MethodPost, "/skins", nil, newListing, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}
