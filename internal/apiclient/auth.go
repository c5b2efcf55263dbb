package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

const pathLogin = "/auth/login"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	var out domain.LoginResult
	err := c.doJSON(ctx, "auth.login", http.MethodPost, pathLogin, nil, loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, apiErr.UserMessage())
		}
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", domain.ErrUpstreamError)
	}
	return &out, nil
}

// Ping checks that the API answers at all. Any HTTP answer counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.doRequest(ctx, request{op: "ping", method: http.MethodHead, path: "/"})
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
