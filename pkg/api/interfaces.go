package api

import "github.com/skinbazaar/storefront/pkg/services"

// Make sure the endpoint groups conform to the collaborator interfaces.
var (
	_ services.AuthService      = AuthAPI{}
	_ services.CatalogService   = SkinsAPI{}
	_ services.CartService      = CartAPI{}
	_ services.LedgerService    = UsersAPI{}
	_ services.InventoryService = InventoryAPI{}
)
