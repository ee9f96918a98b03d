package identity

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/roadwatch/roadwatch/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, key *rsa.PrivateKey, project, email string) string {
	t.Helper()
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://securetoken.google.com/" + project,
			Subject:   "uid-1",
			Audience:  jwt.ClaimStrings{project},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: email,
		Name:  "Alice",
	})
	tok.Header["kid"] = "k1"
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestFirebaseVerify(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.Replace(jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewRSAJWK("k1", &key.PublicKey)}}))

	fb := NewFirebase("roadwatch", keys)

	id, err := fb.Verify(t.Context(), signed(t, key, "roadwatch", "Alice@X.com"))
	require.NoError(t, err)
	require.Equal(t, Identity{Subject: "uid-1", Email: "alice@x.com", Name: "Alice"}, id)

	_, err = fb.Verify(t.Context(), signed(t, key, "other-project", "a@x.com"))
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = fb.Verify(t.Context(), signed(t, key, "roadwatch", ""))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestUnverifiedEmail(t *testing.T) {
	t.Parallel()

	// Signed by a key nobody trusts; the payload is still readable.
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	email, ok := UnverifiedEmail(signed(t, key, "roadwatch", "A@x.com"))
	require.True(t, ok)
	require.Equal(t, "a@x.com", email)

	_, ok = UnverifiedEmail("garbage")
	require.False(t, ok)
}
