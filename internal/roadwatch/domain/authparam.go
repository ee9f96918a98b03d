package domain

import "time"

// Keys of the runtime-tunable authentication parameters.
const (
	ParamMaxAttempts     = "limite_tentatives"
	ParamSessionDuration = "duree_session_minutes"
)

type AuthParameter struct {
	Key         string
	Value       string
	Description string
	UpdatedAt   time.Time
}
