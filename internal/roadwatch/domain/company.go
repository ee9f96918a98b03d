package domain

import "time"

// Company is a contractor that can be assigned to work records.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
