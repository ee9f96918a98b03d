package domain

import "time"

type Place struct {
	ID          string
	Label       string
	City        string
	Description string
	CreatedAt   time.Time
}
