// Package app assembles the storefront core into one explicitly
// constructed application context. No package-level state: everything is
// wired here and passed down.
package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/skinbazaar/storefront/pkg/api"
	"github.com/skinbazaar/storefront/pkg/cart"
	"github.com/skinbazaar/storefront/pkg/catalog"
	"github.com/skinbazaar/storefront/pkg/checkout"
	"github.com/skinbazaar/storefront/pkg/listings"
	"github.com/skinbazaar/storefront/pkg/session"
	"github.com/skinbazaar/storefront/pkg/wallet"
)

// App is the storefront's application context: the gateway, the stores and
// the workflows layered on them. Constructed at session start, reset on
// logout.
type App struct {
	Gateway  *api.Client
	Session  *session.Store
	Cart     *cart.Store
	Checkout *checkout.Workflow
	Catalog  *catalog.Searcher
	Wallet   *wallet.Service
	Listings *listings.Service

	log *logrus.Entry
}

// New wires an application context against the backend at baseURL.
func New(baseURL string, logger *logrus.Logger) *App {
	client := api.New(baseURL)

	sess := session.NewStore(client.Auth(), logger)
	crt := cart.NewStore(client.Cart(), sess, logger)

	return &App{
		Gateway:  client,
		Session:  sess,
		Cart:     crt,
		Checkout: checkout.New(sess, crt, client.Users(), logger),
		Catalog:  catalog.NewSearcher(client.Skins(), logger),
		Wallet:   wallet.NewService(sess, client.Users()),
		Listings: listings.NewService(client.Inventory(), client.Skins(), client.Users(), logger),
		log:      logger.WithField("component", "app"),
	}
}

// Start refreshes the session and then synchronizes the cart. The session
// always settles, to an identity or to absent, before the cart sync for
// that session begins; when no identity comes back the sync degenerates to
// clearing the cart.
func (a *App) Start(ctx context.Context) {
	a.Session.Refresh(ctx)
	a.Cart.SyncFromServer(ctx)

	if identity := a.Session.Identity(); identity != nil {
		a.log.WithField("user", identity.Username).Info("session started")
	} else {
		a.log.Info("no active session")
	}
}

// Logout ends the session and immediately, unconditionally clears the
// local cart.
func (a *App) Logout(ctx context.Context) {
	a.Session.Logout(ctx)
	a.Cart.Reset()
}

// LoginURL is the browser-level login entry point.
func (a *App) LoginURL() string {
	return a.Session.LoginURL()
}
