package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/roadwatch/roadwatch/pkg/slogx"
)

// SessionAuthenticator resolves an opaque bearer token to its caller.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

// Rejection lets an authenticator pick the reply for a refused token, e.g. a
// 403 for a locked account. Other errors become 401 invalid_token.
type Rejection struct {
	Status      int
	Code        string
	Description string
}

func (r *Rejection) Error() string { return r.Code + ": " + r.Description }

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(h) < len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// RequireSession rejects requests without a valid session token and stores
// the resolved Principal in the request context.
func RequireSession(a SessionAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			p, err := a.Authenticate(r.Context(), token)
			if err != nil {
				slogx.FromContext(r.Context()).Debug("session rejected", "err", err)
				var rej *Rejection
				if errors.As(err, &rej) {
					WriteError(w, rej.Status, rej.Code, rej.Description)
					return
				}
				writeBearerError(w, "session is invalid or expired")
				return
			}

			ctx := WithPrincipal(r.Context(), p)
			ctx = slogx.With(ctx, "account_id", p.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAnyRole lets the request through when the caller holds one of roles.
// It must run after RequireSession.
func RequireAnyRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}
			for _, role := range roles {
				if strings.EqualFold(p.Role, role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			WriteError(w, http.StatusForbidden, "forbidden", "insufficient role")
		})
	}
}

func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}
