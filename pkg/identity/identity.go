// Package identity verifies bearer tokens issued by the federated identity
// provider (Firebase Authentication).
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/roadwatch/roadwatch/pkg/jwtx"
)

var ErrInvalidToken = errors.New("identity: invalid token")

// Identity is the verified caller behind a token.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// Firebase verifies Firebase ID tokens against Google's published keys.
type Firebase struct {
	verifier *jwtx.RS256Verifier
}

// NewFirebase returns a verifier for tokens minted for projectID. keys is
// normally a jwtx.RemoteKeySet on jwtx.GoogleSecureTokenJWKS.
func NewFirebase(projectID string, keys jwtx.KeyProvider) *Firebase {
	issuer := "https://securetoken.google.com/" + projectID
	return &Firebase{verifier: jwtx.NewRS256Verifier(keys, issuer, projectID)}
}

func (f *Firebase) Verify(ctx context.Context, token string) (Identity, error) {
	claims, err := f.verifier.Verify(ctx, strings.TrimSpace(token))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Email == "" {
		return Identity{}, fmt.Errorf("%w: token carries no email", ErrInvalidToken)
	}
	return Identity{
		Subject: claims.Subject,
		Email:   strings.ToLower(claims.Email),
		Name:    claims.Name,
	}, nil
}

// UnverifiedEmail reads the email claim of token without checking its
// signature. It only serves to attribute a failed attempt to an account and
// must never grant access.
func UnverifiedEmail(token string) (string, bool) {
	var claims jwtx.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(token), &claims); err != nil {
		return "", false
	}
	if claims.Email == "" {
		return "", false
	}
	return strings.ToLower(claims.Email), true
}

// Static is a Verifier backed by a fixed token table, for tests and local
// development without Firebase.
type Static map[string]Identity

func (s Static) Verify(_ context.Context, token string) (Identity, error) {
	id, ok := s[token]
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}
