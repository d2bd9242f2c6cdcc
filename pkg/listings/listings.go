// Package listings is the seller-side flow: reading the caller's inventory
// and publishing selected items as marketplace listings.
package listings

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/skinbazaar/storefront/pkg/models"
	"github.com/skinbazaar/storefront/pkg/services"
)

// Service publishes inventory items and reads back the caller's own
// listings.
type Service struct {
	inventory services.InventoryService
	catalog   services.CatalogService
	ledger    services.LedgerService
	log       *logrus.Entry
}

// NewService creates a listings service.
func NewService(inventory services.InventoryService, catalog services.CatalogService, ledger services.LedgerService, logger *logrus.Logger) *Service {
	return &Service{
		inventory: inventory,
		catalog:   catalog,
		ledger:    ledger,
		log:       logger.WithField("component", "listings"),
	}
}

// Inventory fetches the caller's inventory.
func (s *Service) Inventory(ctx context.Context) ([]models.InventoryItem, error) {
	return s.inventory.Items(ctx)
}

// Publish lists the given inventory items. An item with a positive entry
// in prices goes up at that price, anything else at its market price.
// Publishing stops at the first failure, returning the listings created so
// far alongside the error.
func (s *Service) Publish(ctx context.Context, items []models.InventoryItem, prices map[string]decimal.Decimal) ([]models.Listing, error) {
	created := make([]models.Listing, 0, len(items))
	for _, item := range items {
		price, ok := prices[item.Id]
		if !ok || !price.IsPositive() {
			price = item.MarketPrice
		}

		listing, err := s.catalog.Create(ctx, models.NewListing{
			Name:     item.Name,
			Weapon:   item.Weapon,
			Category: item.Category,
			Rarity:   item.Rarity,
			Wear:     item.Wear,
			Float:    item.Float,
			StatTrak: item.StatTrak,
			Price:    price,
		})
		if err != nil {
			return created, fmt.Errorf("publish %s: %w", item.Id, err)
		}
		s.log.WithFields(logrus.Fields{
			"listing": listing.Id,
			"price":   price.StringFixed(2),
		}).Info("item listed")
		created = append(created, *listing)
	}
	return created, nil
}

// Mine fetches the caller's own listings, optionally filtered by status.
func (s *Service) Mine(ctx context.Context, status string) ([]models.Listing, error) {
	return s.ledger.Listings(ctx, status)
}
