package domain

import "time"

// Authentication sources recorded on an account.
const (
	AuthSourceLocal    = "local"
	AuthSourceFirebase = "firebase"
)

type Account struct {
	ID             string
	Username       string
	Email          string
	PasswordHash   string // argon2 encoded, empty for federated accounts
	AuthSource     string
	RoleID         string
	FailedAttempts int
	Locked         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsFederated reports whether the account authenticates through the external
// identity provider rather than a local password.
func (a Account) IsFederated() bool {
	return a.AuthSource == AuthSourceFirebase
}
