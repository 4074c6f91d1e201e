package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Kurniawan20/effiework-sub000/internal/client"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// Auth covers the session endpoints.
type Auth struct {
	c *client.Client
}

// Login exchanges credentials for a bearer token and stores it in the
// client's session.
func (a *Auth) Login(ctx context.Context, username, password string) (models.User, error) {
	req := client.NewRequest(http.MethodPost, "/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	}).Public()

	resp, err := client.Call[models.LoginResponse](ctx, a.c, req)
	if err != nil {
		return models.User{}, err
	}
	if err := a.c.Session().SetToken(resp.Token); err != nil {
		return models.User{}, fmt.Errorf("store token: %w", err)
	}
	return resp.User, nil
}

// Me returns the user the stored token belongs to.
func (a *Auth) Me(ctx context.Context) (models.User, error) {
	return client.Get[models.User](ctx, a.c, "/auth/me")
}

// Logout forgets the stored token. Requests already in flight are not cancelled.
func (a *Auth) Logout() error {
	return a.c.Session().ClearToken()
}
