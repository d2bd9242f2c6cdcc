// Package services defines the collaborator boundaries the storefront core
// depends on. The gateway's endpoint groups are the production
// implementations; tests use the generated mocks.
package services

import (
	"context"

	"github.com/skinbazaar/storefront/pkg/models"
)

// AuthService is the authentication collaborator.
type AuthService interface {
	// Me returns the current session's identity, or nil when there is none.
	Me(ctx context.Context) (*models.Identity, error)

	// LoginURL is the browser-level login entry point.
	LoginURL() string

	// Logout ends the session server-side.
	Logout(ctx context.Context) error
}

// CatalogService is the listings collaborator.
type CatalogService interface {
	// List fetches one page of listings for normalized query parameters.
	List(ctx context.Context, params map[string]string) (*models.ListingPage, error)

	// Get fetches a single listing by id.
	Get(ctx context.Context, id string) (*models.Listing, error)

	// Create publishes a new listing.
	Create(ctx context.Context, newListing models.NewListing) (*models.Listing, error)
}

// CartService persists cart membership server-side.
type CartService interface {
	// Get fetches the authoritative cart.
	Get(ctx context.Context) ([]models.CartLine, error)

	// Add persists one listing's membership.
	Add(ctx context.Context, listingId string) error

	// Remove deletes one listing from the cart.
	Remove(ctx context.Context, listingId string) error

	// Clear wipes the cart.
	Clear(ctx context.Context) error
}

// LedgerService records purchases and serves read-only projections.
type LedgerService interface {
	// Transactions fetches the caller's ledger projection.
	Transactions(ctx context.Context, params map[string]string) ([]models.Transaction, error)

	// Listings fetches the caller's own listings by status.
	Listings(ctx context.Context, status string) ([]models.Listing, error)

	// RecordPurchase persists a purchase committed locally.
	RecordPurchase(ctx context.Context) error
}

// InventoryService serves the caller's inventory.
type InventoryService interface {
	// Items fetches the caller's inventory.
	Items(ctx context.Context) ([]models.InventoryItem, error)
}
