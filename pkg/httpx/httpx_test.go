package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(ok, mw("outer"), mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	t.Run("remote addr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		require.Equal(t, "192.168.1.1", httpx.ClientIP(req))
	})

	t.Run("forwarded for wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 10.0.0.1")
		req.Header.Set("X-Real-IP", "203.0.113.9")
		require.Equal(t, "203.0.113.1", httpx.ClientIP(req))
	})
}

func TestJSONFieldRestoresBody(t *testing.T) {
	t.Parallel()

	body := `{"email":"A@X.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))

	require.Equal(t, "a@x.com", httpx.JSONField("email")(req))

	rest, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.JSONEq(t, body, string(rest))

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("nope"))
	require.Empty(t, httpx.JSONField("email")(bad))
}

func TestRateLimitBy(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimit{Requests: 2, Window: time.Hour, Burst: 2}
	h := httpx.RateLimitBy(cfg, httpx.Keys(httpx.ClientIP, httpx.JSONField("email")))(ok)

	send := func(ip, email string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"`+email+`"}`))
		req.RemoteAddr = ip + ":1000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusNoContent, send("10.0.0.1", "a@x.com").Code)
	require.Equal(t, http.StatusNoContent, send("10.0.0.1", "a@x.com").Code)

	rec := send("10.0.0.1", "a@x.com")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "rate_limit_exceeded", body.Error)

	// Another email from the same address has its own bucket.
	require.Equal(t, http.StatusNoContent, send("10.0.0.1", "b@x.com").Code)
}

type fakeAuth map[string]httpx.Principal

func (f fakeAuth) Authenticate(_ context.Context, token string) (httpx.Principal, error) {
	if token == "locked" {
		return httpx.Principal{}, &httpx.Rejection{Status: http.StatusForbidden, Code: "account_locked", Description: "locked"}
	}
	p, found := f[token]
	if !found {
		return httpx.Principal{}, errors.New("unknown")
	}
	return p, nil
}

func TestRequireSessionAndRole(t *testing.T) {
	t.Parallel()

	auth := fakeAuth{
		"mgr":  {AccountID: "1", Role: "MANAGER"},
		"user": {AccountID: "2", Role: "UTILISATEUR"},
	}

	var seen httpx.Principal
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = httpx.PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := httpx.Chain(inner, httpx.RequireSession(auth), httpx.RequireAnyRole("MANAGER"))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"rejected with status", "Bearer locked", http.StatusForbidden},
		{"wrong role", "Bearer user", http.StatusForbidden},
		{"manager", "bearer mgr", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/roles", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tt.want, rec.Code)
		})
	}
	require.Equal(t, "1", seen.AccountID)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &dst))
	require.Equal(t, "x", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}{}`))
	require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &dst))
}
