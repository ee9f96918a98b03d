package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

// sessionAuthenticator resolves bearer tokens through the account guard.
type sessionAuthenticator struct {
	guard *service.Guard
}

func (a sessionAuthenticator) Authenticate(ctx context.Context, token string) (httpx.Principal, error) {
	c, err := a.guard.Authenticate(ctx, token)
	if errors.Is(err, service.ErrAccountLocked) {
		return httpx.Principal{}, &httpx.Rejection{
			Status:      http.StatusForbidden,
			Code:        roadwatchsdk.ErrorCodeAccountLocked,
			Description: "account is locked",
		}
	}
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{
		AccountID: c.Account.ID,
		Role:      c.Role,
		SessionID: c.Session.ID,
		Token:     c.Session.Token,
	}, nil
}

// principal returns the caller set by the session middleware.
func principal(r *http.Request) httpx.Principal {
	p, _ := httpx.PrincipalFrom(r.Context())
	return p
}
