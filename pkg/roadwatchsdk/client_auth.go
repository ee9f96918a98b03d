package roadwatchsdk

import (
	"context"
	"net/http"
)

// Login authenticates with email and password. On success the returned
// client carries the session token.
func (c *Client) Login(ctx context.Context, email, password string) (*Client, SessionResponse, error) {
	var out SessionResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &out, http.StatusOK)
	if err != nil {
		return nil, out, err
	}
	return c.WithToken(out.Token), out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AccountInfo, error) {
	var out AccountInfo
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &out, http.StatusCreated)
	return out, err
}

// FederatedLogin exchanges an identity provider ID token for a session.
func (c *Client) FederatedLogin(ctx context.Context, idToken string) (*Client, SessionResponse, error) {
	var out SessionResponse
	err := c.do(ctx, http.MethodPost, "/auth/firebase-login", FirebaseRequest{Token: idToken}, &out, http.StatusOK)
	if err != nil {
		return nil, out, err
	}
	return c.WithToken(out.Token), out, nil
}

func (c *Client) FederatedRegister(ctx context.Context, idToken string) (AccountInfo, error) {
	var out AccountInfo
	err := c.do(ctx, http.MethodPost, "/auth/firebase-register", FirebaseRequest{Token: idToken}, &out, http.StatusCreated)
	return out, err
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, http.StatusNoContent)
}

// LogoutAll ends every session of the current account.
func (c *Client) LogoutAll(ctx context.Context) (int64, error) {
	var out LogoutAllResponse
	err := c.do(ctx, http.MethodPost, "/auth/logout-all", nil, &out, http.StatusOK)
	return out.Revoked, err
}

func (c *Client) Me(ctx context.Context) (MeResponse, error) {
	var out MeResponse
	err := c.get(ctx, "/auth/me", &out)
	return out, err
}
