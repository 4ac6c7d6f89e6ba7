package kavita

import (
	"context"
	"fmt"
	"net/http"
)

// loginRequest is the body for /api/Account/login. The API-key login
// path ignores the password but requires the field to be present, so
// the literal "string" placeholder is sent.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	APIKey   string `json:"apiKey"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates against the Kavita account endpoint and stores
// the returned JWT on the client for subsequent requests.
//
// Returns ErrMissingToken if the server responds 2xx but without a
// token.
func (c *Client) Login(ctx context.Context) error {
	body := loginRequest{
		Username: c.username,
		Password: "string",
		APIKey:   c.apiKey,
	}

	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/Account/login", nil, body, false, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return ErrMissingToken
	}

	c.token = resp.Token
	return nil
}
