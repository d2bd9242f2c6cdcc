package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/skinbazaar/storefront/pkg/app"
	"github.com/skinbazaar/storefront/pkg/catalog"
	"github.com/skinbazaar/storefront/pkg/models"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	search := flag.String("search", "", "free-text search")
	sortBy := flag.String("sort", string(models.SortNewest), "sort: newest|price-asc|price-desc|float-asc|float-desc")
	category := flag.String("category", "", "comma-separated weapon categories")
	stattrak := flag.Bool("stattrak", false, "StatTrak only")
	priceMax := flag.String("price-max", "", "maximum price")
	limit := flag.Int("limit", 20, "page size")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(new(logrus.TextFormatter))
	logger.SetLevel(logrus.WarnLevel)

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	storefront := app.New(baseURL, logger)
	storefront.Start(ctx)

	if identity := storefront.Session.Identity(); identity != nil {
		fmt.Printf("Signed in as %s, balance $%s, %d item(s) in cart\n\n",
			identity.Username, identity.Balance.StringFixed(2), storefront.Cart.Len())
	} else {
		fmt.Printf("Not signed in. Log in at %s\n\n", storefront.LoginURL())
	}

	filters := catalog.Filters{
		Search:       *search,
		Sort:         models.SortOption(*sortBy),
		StatTrakOnly: *stattrak,
		Limit:        *limit,
	}
	for _, c := range strings.Split(*category, ",") {
		if c = strings.TrimSpace(c); c != "" {
			filters.Categories = append(filters.Categories, models.WeaponCategory(c))
		}
	}
	if *priceMax != "" {
		bound, err := decimal.NewFromString(*priceMax)
		if err != nil {
			logger.Fatalf("invalid -price-max: %v", err)
		}
		filters.PriceMax = bound
	}

	storefront.Catalog.SetFilters(filters)
	storefront.Catalog.Flush()

	items, total := storefront.Catalog.Results()
	fmt.Printf("%d listing(s), showing %d\n", total, len(items))
	for _, listing := range items {
		tag := ""
		if listing.StatTrak {
			tag = " StatTrak"
		}
		fmt.Printf("  %-40s %-14s float %.4f%s  $%s  (%s)\n",
			listing.Weapon+" | "+listing.Name, listing.Wear, listing.Float,
			tag, listing.Price.StringFixed(2), listing.SellerName)
	}
}
