package domain

import "time"

type Session struct {
	ID        string
	AccountID string
	// Token is the bearer handed to the client. It is never persisted and is
	// only set on sessions returned by the guard.
	Token     string
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
	Active    bool
}

// Expired reports whether the session expiry is before now. An expired session
// is invalid even while its active flag is still set.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
