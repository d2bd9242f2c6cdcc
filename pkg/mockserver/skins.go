package mockserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skinbazaar/storefront/pkg/models"
)

// listSkins serves the filtered, sorted, paginated catalog.
func (s *Server) listSkins(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	s.mu.Lock()
	matched := make([]models.Listing, 0, len(s.listings))
	for _, listing := range s.listings {
		if matchesQuery(listing, query) {
			matched = append(matched, listing)
		}
	}
	s.mu.Unlock()

	sortListings(matched, models.SortOption(query.Get("sort")))

	total := len(matched)
	offset, _ := strconv.Atoi(query.Get("offset"))
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	end := offset + limit
	if end > total {
		end = total
	}

	s.writeJSON(w, http.StatusOK, models.ListingPage{
		Items: matched[offset:end],
		Total: total,
	})
}

// getSkin serves a single listing by id.
func (s *Server) getSkin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, listing := range s.listings {
		if listing.Id == id {
			s.writeJSON(w, http.StatusOK, listing)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "listing %s not found", id)
}

// createSkin publishes a listing owned by the session account.
func (s *Server) createSkin(w http.ResponseWriter, r *http.Request) {
	var newListing models.NewListing
	if err := json.NewDecoder(r.Body).Decode(&newListing); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	if !newListing.Price.IsPositive() {
		s.writeError(w, http.StatusBadRequest, "price must be positive")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requireSession(w) {
		return
	}

	listing := models.Listing{
		Id:         uuid.NewString(),
		Name:       newListing.Name,
		Weapon:     newListing.Weapon,
		Category:   newListing.Category,
		Rarity:     newListing.Rarity,
		Wear:       newListing.Wear,
		Float:      newListing.Float,
		Price:      newListing.Price,
		SellerId:   s.identity.Id,
		SellerName: s.identity.Username,
		StatTrak:   newListing.StatTrak,
		ListedAt:   time.Now(),
	}
	s.listings = append(s.listings, listing)

	s.writeJSON(w, http.StatusCreated, listing)
}

// matchesQuery applies the catalog filters to one listing.
func matchesQuery(listing models.Listing, query map[string][]string) bool {
	get := func(key string) string {
		if v, ok := query[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	if search := get("search"); search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(listing.Name), needle) &&
			!strings.Contains(strings.ToLower(listing.Weapon), needle) {
			return false
		}
	}
	if categories := get("category"); categories != "" {
		if !containsValue(categories, string(listing.Category)) {
			return false
		}
	}
	if rarities := get("rarity"); rarities != "" {
		if !containsValue(rarities, string(listing.Rarity)) {
			return false
		}
	}
	if wears := get("wear"); wears != "" {
		if !containsValue(wears, string(listing.Wear)) {
			return false
		}
	}
	if get("stattrak") == "true" && !listing.StatTrak {
		return false
	}
	if min := get("priceMin"); min != "" {
		if bound, err := decimal.NewFromString(min); err == nil && listing.Price.LessThan(bound) {
			return false
		}
	}
	if max := get("priceMax"); max != "" {
		if bound, err := decimal.NewFromString(max); err == nil && listing.Price.GreaterThan(bound) {
			return false
		}
	}
	return true
}

// containsValue checks a comma-separated filter for one value.
func containsValue(list, value string) bool {
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == value {
			return true
		}
	}
	return false
}

// sortListings orders the page in place.
func sortListings(listings []models.Listing, option models.SortOption) {
	switch option {
	case models.SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price.LessThan(listings[j].Price)
		})
	case models.SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price.GreaterThan(listings[j].Price)
		})
	case models.SortFloatAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Float < listings[j].Float
		})
	case models.SortFloatDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Float > listings[j].Float
		})
	default:
		// newest
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].ListedAt.After(listings[j].ListedAt)
		})
	}
}
