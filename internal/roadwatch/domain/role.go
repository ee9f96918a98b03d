package domain

import "time"

// Built-in role names seeded by the initial migration.
const (
	RoleUser    = "UTILISATEUR"
	RoleManager = "MANAGER"
)

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
