package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skinbazaar/storefront/pkg/catalog"
	"github.com/skinbazaar/storefront/pkg/models"
)

func TestFiltersParams(t *testing.T) {
	tests := []struct {
		name    string
		filters catalog.Filters
		want    map[string]string
	}{
		{
			name:    "ZeroValueUsesDefaults",
			filters: catalog.Filters{},
			want: map[string]string{
				"sort":   "newest",
				"limit":  "50",
				"offset": "0",
			},
		},
		{
			name: "SearchAndSort",
			filters: catalog.Filters{
				Search: "redline",
				Sort:   models.SortPriceAsc,
			},
			want: map[string]string{
				"sort":   "price-asc",
				"limit":  "50",
				"offset": "0",
				"search": "redline",
			},
		},
		{
			name: "MultiSelectsAreCommaJoined",
			filters: catalog.Filters{
				Categories: []models.WeaponCategory{models.CategoryRifle, models.CategoryKnife},
				Rarities:   []models.Rarity{models.RarityCovert},
				Wears:      []models.Wear{models.WearFactoryNew, models.WearMinimalWear},
			},
			want: map[string]string{
				"sort":     "newest",
				"limit":    "50",
				"offset":   "0",
				"category": "Rifle,Knife",
				"rarity":   "covert",
				"wear":     "Factory New,Minimal Wear",
			},
		},
		{
			name: "PriceBoundsAndStatTrak",
			filters: catalog.Filters{
				StatTrakOnly: true,
				PriceMin:     decimal.RequireFromString("10.50"),
				PriceMax:     decimal.RequireFromString("200"),
			},
			want: map[string]string{
				"sort":     "newest",
				"limit":    "50",
				"offset":   "0",
				"stattrak": "true",
				"priceMin": "10.5",
				"priceMax": "200",
			},
		},
		{
			name: "NegativeOffsetAndLimitNormalized",
			filters: catalog.Filters{
				Limit:  -5,
				Offset: -1,
			},
			want: map[string]string{
				"sort":   "newest",
				"limit":  "50",
				"offset": "0",
			},
		},
		{
			name: "Pagination",
			filters: catalog.Filters{
				Limit:  20,
				Offset: 40,
			},
			want: map[string]string{
				"sort":   "newest",
				"limit":  "20",
				"offset": "40",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Params())
		})
	}
}
