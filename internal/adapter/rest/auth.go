package rest

import (
	"context"
	"net/http"

	"cmsadmin/internal/domain"
)

// Login exchanges credentials for a bearer token. This is the only call
// issued without an Authorization header.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	req, err := c.request(ctx, http.MethodPost, "/auth/login", nil, body, false)
	if err != nil {
		return "", err
	}

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.do(req, "login", &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// CurrentIdentity resolves the identity behind the stored token.
func (c *Client) CurrentIdentity(ctx context.Context) (*domain.User, error) {
	req, err := c.request(ctx, http.MethodGet, "/users/me", nil, nil, true)
	if err != nil {
		return nil, err
	}
	var out domain.User
	if err := c.do(req, "fetch current user", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
