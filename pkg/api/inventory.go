package api

import (
	"context"
	"net/http"

	"github.com/skinbazaar/storefront/pkg/models"
)

// InventoryAPI groups the inventory collaborator's endpoints.
type InventoryAPI struct {
	c *Client
}

// Inventory returns the inventory endpoint group.
func (c *Client) Inventory() InventoryAPI {
	return InventoryAPI{c: c}
}

// Items fetches the caller's inventory.
func (i InventoryAPI) Items(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := i.c.Do(ctx, http.MethodGet, "/inventory", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
