package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rarity is a listing's rarity tier.
type Rarity string

const (
	RarityConsumer   Rarity = "consumer"
	RarityIndustrial Rarity = "industrial"
	RarityMilSpec    Rarity = "milspec"
	RarityRestricted Rarity = "restricted"
	RarityClassified Rarity = "classified"
	RarityCovert     Rarity = "covert"
	RarityGold       Rarity = "gold"
)

// Wear is a listing's exterior wear tier.
type Wear string

const (
	WearFactoryNew    Wear = "Factory New"
	WearMinimalWear   Wear = "Minimal Wear"
	WearFieldTested   Wear = "Field-Tested"
	WearWellWorn      Wear = "Well-Worn"
	WearBattleScarred Wear = "Battle-Scarred"
)

// WeaponCategory groups listings by weapon class.
type WeaponCategory string

const (
	CategoryRifle   WeaponCategory = "Rifle"
	CategoryPistol  WeaponCategory = "Pistol"
	CategorySMG     WeaponCategory = "SMG"
	CategoryShotgun WeaponCategory = "Shotgun"
	CategorySniper  WeaponCategory = "Sniper"
	CategoryKnife   WeaponCategory = "Knife"
	CategoryGloves  WeaponCategory = "Gloves"
)

// SortOption is a catalog sort order accepted by the backend.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortFloatAsc  SortOption = "float-asc"
	SortFloatDesc SortOption = "float-desc"
)

// TransactionKind defines the possible kinds of a ledger transaction.
type TransactionKind string

const (
	TransactionPurchase   TransactionKind = "purchase"
	TransactionSale       TransactionKind = "sale"
	TransactionDeposit    TransactionKind = "deposit"
	TransactionWithdrawal TransactionKind = "withdrawal"
)

// TransactionStatus defines the possible states of a ledger transaction.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Identity represents the authenticated account for the current session.
// Balance is the only field the storefront mutates locally.
type Identity struct {
	Id             string          `json:"id"`
	SteamId        string          `json:"steamId"`
	Username       string          `json:"username"`
	Avatar         string          `json:"avatar"`
	Balance        decimal.Decimal `json:"balance"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	JoinedAt       time.Time       `json:"createdAt"`
}

// Listing represents a skin offered on the marketplace. Listings are
// fetched, never mutated locally; identity is by Id.
type Listing struct {
	Id         string          `json:"id"`
	Name       string          `json:"name"`
	Weapon     string          `json:"weapon"`
	Category   WeaponCategory  `json:"category"`
	Rarity     Rarity          `json:"rarity"`
	Wear       Wear            `json:"wear"`
	Float      float64         `json:"float"`
	Price      decimal.Decimal `json:"price"`
	SellerId   string          `json:"sellerId"`
	SellerName string          `json:"sellerName"`
	StatTrak   bool            `json:"stattrak"`
	ListedAt   time.Time       `json:"listedAt"`
}

// ListingPage is one page of catalog results.
type ListingPage struct {
	Items []Listing `json:"items"`
	Total int       `json:"total"`
}

// NewListing is the payload for publishing an inventory item as a listing.
type NewListing struct {
	Name     string          `json:"name"`
	Weapon   string          `json:"weapon"`
	Category WeaponCategory  `json:"category"`
	Rarity   Rarity          `json:"rarity"`
	Wear     Wear            `json:"wear"`
	Float    float64         `json:"float"`
	StatTrak bool            `json:"stattrak"`
	Price    decimal.Decimal `json:"price"`
}

// CartLine is one listing held in the cart.
type CartLine struct {
	Listing Listing   `json:"listing"`
	AddedAt time.Time `json:"addedAt"`
}

// Transaction is a read-only ledger projection. Amount is signed: debits
// are negative, credits positive.
type Transaction struct {
	Id          string            `json:"id"`
	Kind        TransactionKind   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Status      TransactionStatus `json:"status"`
}

// InventoryItem is a skin in the caller's inventory, available for listing.
type InventoryItem struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	Weapon      string          `json:"weapon"`
	Category    WeaponCategory  `json:"category"`
	Rarity      Rarity          `json:"rarity"`
	Wear        Wear            `json:"wear"`
	Float       float64         `json:"float"`
	StatTrak    bool            `json:"stattrak"`
	Tradable    bool            `json:"tradable"`
	MarketPrice decimal.Decimal `json:"marketPrice"`
}
