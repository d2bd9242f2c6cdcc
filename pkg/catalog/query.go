// Package catalog turns marketplace filter selections into normalized
// catalog queries and keeps the resulting page of listings fresh.
package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skinbazaar/storefront/pkg/models"
)

// DefaultLimit is the page size requested when none is set.
const DefaultLimit = 50

// Filters is the marketplace filter set. Zero values mean "no filter" and
// are omitted from the outgoing query; prices are positive, so a zero
// bound is treated as unset.
type Filters struct {
	Search       string
	Categories   []models.WeaponCategory
	Rarities     []models.Rarity
	Wears        []models.Wear
	StatTrakOnly bool
	PriceMin     decimal.Decimal
	PriceMax     decimal.Decimal
	Sort         models.SortOption
	Limit        int
	Offset       int
}

// Params normalizes the filter set for the catalog collaborator. Sort,
// limit and offset are always present; everything else only when set.
func (f Filters) Params() map[string]string {
	params := make(map[string]string)

	sort := f.Sort
	if sort == "" {
		sort = models.SortNewest
	}
	params["sort"] = string(sort)

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	params["limit"] = strconv.Itoa(limit)

	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	params["offset"] = strconv.Itoa(offset)

	if f.Search != "" {
		params["search"] = f.Search
	}
	if len(f.Categories) > 0 {
		params["category"] = join(f.Categories)
	}
	if len(f.Rarities) > 0 {
		params["rarity"] = join(f.Rarities)
	}
	if len(f.Wears) > 0 {
		params["wear"] = join(f.Wears)
	}
	if f.StatTrakOnly {
		params["stattrak"] = "true"
	}
	if f.PriceMin.IsPositive() {
		params["priceMin"] = f.PriceMin.String()
	}
	if f.PriceMax.IsPositive() {
		params["priceMax"] = f.PriceMax.String()
	}
	return params
}

// join comma-separates a multi-select filter.
func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}
