package mockserver

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skinbazaar/storefront/pkg/models"
)

// SeedIdentity installs the account that owns the session.
func (s *Server) SeedIdentity(identity models.Identity) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	return s
}

// SeedListings adds catalog listings.
func (s *Server) SeedListings(listings ...models.Listing) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = append(s.listings, listings...)
	return s
}

// SeedInventory adds inventory items to the session account.
func (s *Server) SeedInventory(items ...models.InventoryItem) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = append(s.inventory, items...)
	return s
}

// SeedTransactions adds ledger history, oldest first.
func (s *Server) SeedTransactions(transactions ...models.Transaction) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, transactions...)
	return s
}

// SeedDemo fills the server with a small believable marketplace for local
// development.
func (s *Server) SeedDemo() *Server {
	now := time.Now()
	price := func(v string) decimal.Decimal {
		return decimal.RequireFromString(v)
	}

	s.SeedIdentity(models.Identity{
		Id:       uuid.NewString(),
		SteamId:  "76561198000000001",
		Username: "demo_trader",
		Balance:  price("250.00"),
		JoinedAt: now.AddDate(-1, 0, 0),
	})

	seller := func(name string) (string, string) {
		return uuid.NewString(), name
	}
	bSellerId, bSellerName := seller("blazeit")
	kSellerId, kSellerName := seller("knifework")
	mSellerId, mSellerName := seller("mirage_main")

	s.SeedListings(
		models.Listing{
			Id: uuid.NewString(), Name: "Redline", Weapon: "AK-47",
			Category: models.CategoryRifle, Rarity: models.RarityClassified,
			Wear: models.WearFieldTested, Float: 0.23, Price: price("120.00"),
			SellerId: bSellerId, SellerName: bSellerName,
			ListedAt: now.Add(-6 * time.Hour),
		},
		models.Listing{
			Id: uuid.NewString(), Name: "Asiimov", Weapon: "AWP",
			Category: models.CategorySniper, Rarity: models.RarityCovert,
			Wear: models.WearBattleScarred, Float: 0.61, Price: price("80.00"),
			SellerId: mSellerId, SellerName: mSellerName, StatTrak: true,
			ListedAt: now.Add(-3 * time.Hour),
		},
		models.Listing{
			Id: uuid.NewString(), Name: "Doppler", Weapon: "Karambit",
			Category: models.CategoryKnife, Rarity: models.RarityGold,
			Wear: models.WearFactoryNew, Float: 0.01, Price: price("980.00"),
			SellerId: kSellerId, SellerName: kSellerName,
			ListedAt: now.Add(-30 * time.Minute),
		},
		models.Listing{
			Id: uuid.NewString(), Name: "Fade", Weapon: "Glock-18",
			Category: models.CategoryPistol, Rarity: models.RarityRestricted,
			Wear: models.WearMinimalWear, Float: 0.04, Price: price("310.50"),
			SellerId: bSellerId, SellerName: bSellerName,
			ListedAt: now.Add(-2 * time.Hour),
		},
		models.Listing{
			Id: uuid.NewString(), Name: "Kill Confirmed", Weapon: "USP-S",
			Category: models.CategoryPistol, Rarity: models.RarityCovert,
			Wear: models.WearFieldTested, Float: 0.19, Price: price("64.20"),
			SellerId: mSellerId, SellerName: mSellerName,
			ListedAt: now.Add(-20 * time.Minute),
		},
	)

	s.SeedInventory(
		models.InventoryItem{
			Id: uuid.NewString(), Name: "Hyper Beast", Weapon: "M4A1-S",
			Category: models.CategoryRifle, Rarity: models.RarityCovert,
			Wear: models.WearMinimalWear, Float: 0.08, Tradable: true,
			MarketPrice: price("45.75"),
		},
		models.InventoryItem{
			Id: uuid.NewString(), Name: "Neon Rider", Weapon: "MAC-10",
			Category: models.CategorySMG, Rarity: models.RarityClassified,
			Wear: models.WearFactoryNew, Float: 0.03, Tradable: true,
			MarketPrice: price("12.30"),
		},
	)

	s.SeedTransactions(
		models.Transaction{
			Id: uuid.NewString(), Kind: models.TransactionDeposit,
			Amount: price("250.00"), Description: "Wallet top-up",
			Date: now.AddDate(0, 0, -7), Status: models.StatusCompleted,
		},
	)
	return s
}
