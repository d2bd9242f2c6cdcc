package api

import (
	"context"
	"net/http"

	"github.com/skinbazaar/storefront/pkg/models"
)

// AuthAPI groups the auth collaborator's endpoints.
type AuthAPI struct {
	c *Client
}

// Auth returns the auth endpoint group.
func (c *Client) Auth() AuthAPI {
	return AuthAPI{c: c}
}

// Me returns the identity bound to the ambient session credential, or nil
// when the backend reports no session.
func (a AuthAPI) Me(ctx context.Context) (*models.Identity, error) {
	var identity *models.Identity
	if err := a.c.Do(ctx, http.MethodGet, "/auth/me", nil, nil, &identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// LoginURL is the browser-level login entry point. The storefront only
// navigates to it; the round-trip is owned by the auth collaborator.
func (a AuthAPI) LoginURL() string {
	return a.c.baseURL + "/auth/steam"
}

// Logout ends the session server-side.
func (a AuthAPI) Logout(ctx context.Context) error {
	return a.c.Do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
