package app_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinbazaar/storefront/pkg/app"
	"github.com/skinbazaar/storefront/pkg/cart"
	"github.com/skinbazaar/storefront/pkg/checkout"
	"github.com/skinbazaar/storefront/pkg/mockserver"
	"github.com/skinbazaar/storefront/pkg/models"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newTestApp boots an application context against a seeded in-memory
// backend.
func newTestApp(t *testing.T) *app.App {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	now := time.Now()
	server := mockserver.New(logger).
		SeedIdentity(models.Identity{
			Id:       "acc-demo",
			SteamId:  "76561198000000001",
			Username: "demo_trader",
			Balance:  money("250.00"),
			JoinedAt: now.AddDate(-1, 0, 0),
		}).
		SeedListings(
			models.Listing{
				Id: "l-redline", Name: "Redline", Weapon: "AK-47",
				Category: models.CategoryRifle, Rarity: models.RarityClassified,
				Wear: models.WearFieldTested, Float: 0.23, Price: money("120.00"),
				SellerId: "acc-other", SellerName: "blazeit",
				ListedAt: now.Add(-6 * time.Hour),
			},
			models.Listing{
				Id: "l-asiimov", Name: "Asiimov", Weapon: "AWP",
				Category: models.CategorySniper, Rarity: models.RarityCovert,
				Wear: models.WearBattleScarred, Float: 0.61, Price: money("80.00"),
				SellerId: "acc-other", SellerName: "blazeit", StatTrak: true,
				ListedAt: now.Add(-3 * time.Hour),
			},
			models.Listing{
				Id: "l-doppler", Name: "Doppler", Weapon: "Karambit",
				Category: models.CategoryKnife, Rarity: models.RarityGold,
				Wear: models.WearFactoryNew, Float: 0.01, Price: money("980.00"),
				SellerId: "acc-other", SellerName: "knifework",
				ListedAt: now.Add(-30 * time.Minute),
			},
		)

	backend := httptest.NewServer(server.Handler())
	t.Cleanup(backend.Close)

	return app.New(backend.URL, logger)
}

// addListing fetches a listing from the backend and puts it in the cart.
func addListing(t *testing.T, a *app.App, ctx context.Context, id string) {
	t.Helper()
	listing, err := a.Gateway.Skins().Get(ctx, id)
	require.NoError(t, err)
	result := a.Cart.Add(ctx, *listing)
	require.Equal(t, cart.Applied, result.Status)
}

func TestPurchaseFlow(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	a.Start(ctx)
	require.True(t, a.Session.IsLoggedIn())
	require.True(t, a.Session.Balance().Equal(money("250.00")))
	require.Zero(t, a.Cart.Len())

	addListing(t, a, ctx, "l-redline")
	addListing(t, a, ctx, "l-asiimov")
	require.True(t, a.Cart.Total().Equal(money("200.00")))

	step, err := a.Checkout.Checkout()
	require.NoError(t, err)
	require.Equal(t, checkout.StepConfirm, step)
	require.True(t, a.Checkout.Quoted().Equal(money("200.00")))

	step, err = a.Checkout.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepSuccess, step)
	assert.True(t, a.Session.Balance().Equal(money("50.00")))
	assert.Zero(t, a.Cart.Len())

	// The backend settled the same purchase: a fresh identity read agrees
	// with the local balance.
	a.Session.Refresh(ctx)
	assert.True(t, a.Session.Balance().Equal(money("50.00")))

	transactions, err := a.Wallet.Transactions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, models.TransactionPurchase, transactions[0].Kind)
}

func TestInsufficientFundsFlow(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	a.Start(ctx)

	addListing(t, a, ctx, "l-doppler")

	step, err := a.Checkout.Checkout()
	require.NoError(t, err)
	require.Equal(t, checkout.StepInsufficient, step)
	assert.True(t, a.Checkout.Shortfall().Equal(money("730.00")), "980 listed against a 250 balance")

	// A deposit covers the gap and the guard passes on retry.
	require.NoError(t, a.Wallet.Deposit(money("800.00")))

	step, err = a.Checkout.Checkout()
	require.NoError(t, err)
	assert.Equal(t, checkout.StepConfirm, step)
}

func TestCartSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	a.Start(ctx)

	addListing(t, a, ctx, "l-redline")

	// A second boot against the same backend session rehydrates the cart.
	b := app.New(a.Gateway.BaseURL(), logrusDiscard())
	b.Start(ctx)

	// The second client carries no session cookie, but the single-session
	// backend still honors it; what matters here is the sync path.
	require.True(t, b.Session.IsLoggedIn())
	require.Equal(t, 1, b.Cart.Len())
	assert.True(t, b.Cart.Contains("l-redline"))
}

func TestLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	a.Start(ctx)

	addListing(t, a, ctx, "l-redline")
	require.Equal(t, 1, a.Cart.Len())

	a.Logout(ctx)

	assert.False(t, a.Session.IsLoggedIn())
	assert.Zero(t, a.Cart.Len())

	// Mutations are rejected until a new session starts.
	listing, err := a.Gateway.Skins().Get(ctx, "l-asiimov")
	require.NoError(t, err)
	result := a.Cart.Add(ctx, *listing)
	assert.Equal(t, cart.Unchanged, result.Status)
}

func TestLoginURL(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, a.Gateway.BaseURL()+"/auth/steam", a.LoginURL())
}

func logrusDiscard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
