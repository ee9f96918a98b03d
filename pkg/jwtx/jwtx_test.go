package jwtx_test

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/roadwatch/roadwatch/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	project = "roadwatch-test"
	issuer  = "https://securetoken.google.com/" + project
)

func sign(t *testing.T, key *rsa.PrivateKey, kid string, claims jwtx.Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = kid
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(now time.Time) jwtx.Claims {
	return jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "firebase-uid",
			Audience:  jwt.ClaimStrings{project},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: "a@x.com",
		Name:  "Alice",
	}
}

func TestRS256Verifier(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.Replace(jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewRSAJWK("k1", &key.PublicKey)}}))
	v := jwtx.NewRS256Verifier(keys, issuer, project)
	now := time.Now()

	t.Run("valid token", func(t *testing.T) {
		c, err := v.Verify(t.Context(), sign(t, key, "k1", validClaims(now)))
		require.NoError(t, err)
		require.Equal(t, "firebase-uid", c.Subject)
		require.Equal(t, "a@x.com", c.Email)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := validClaims(now)
		c.Audience = jwt.ClaimStrings{"someone-else"}
		_, err := v.Verify(t.Context(), sign(t, key, "k1", c))
		require.ErrorIs(t, err, jwtx.ErrInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		c := validClaims(now.Add(-3 * time.Hour))
		_, err := v.Verify(t.Context(), sign(t, key, "k1", c))
		require.ErrorIs(t, err, jwtx.ErrInvalid)
	})

	t.Run("foreign key", func(t *testing.T) {
		_, err := v.Verify(t.Context(), sign(t, other, "k1", validClaims(now)))
		require.ErrorIs(t, err, jwtx.ErrInvalid)
	})

	t.Run("unknown kid", func(t *testing.T) {
		_, err := v.Verify(t.Context(), sign(t, key, "k9", validClaims(now)))
		require.ErrorIs(t, err, jwtx.ErrInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify(t.Context(), "not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestRemoteKeySetHonoursMaxAge(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Cache-Control", "public, max-age=600, must-revalidate")
		_ = json.NewEncoder(w).Encode(jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewRSAJWK("k1", &key.PublicKey)}})
	}))
	t.Cleanup(srv.Close)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	remote := jwtx.NewRemoteKeySet(srv.URL)
	remote.Now = func() time.Time { return now }

	_, err = remote.Key(t.Context(), "k1")
	require.NoError(t, err)
	_, err = remote.Key(t.Context(), "k1")
	require.NoError(t, err)
	require.EqualValues(t, 1, hits.Load())

	// Unknown kid inside MinRefresh does not refetch.
	_, err = remote.Key(t.Context(), "k2")
	require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	require.EqualValues(t, 1, hits.Load())

	now = now.Add(11 * time.Minute)
	_, err = remote.Key(t.Context(), "k1")
	require.NoError(t, err)
	require.EqualValues(t, 2, hits.Load())
}
