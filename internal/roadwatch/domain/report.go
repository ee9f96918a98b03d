package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Canonical report statuses. The values are the ones clients and the document
// store exchange, so they are kept verbatim.
const (
	StatusNew        = "nouveau"
	StatusInProgress = "en cours"
	StatusDone       = "terminé"
)

var ErrInvalidStatus = errors.New("domain: invalid report status")

// ParseStatus normalises s and returns the canonical status it names.
func ParseStatus(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StatusNew:
		return StatusNew, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusDone:
		return StatusDone, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Report is a citizen incident report (signalement).
type Report struct {
	ID          string
	Surface     decimal.NullDecimal
	Latitude    decimal.NullDecimal
	Longitude   decimal.NullDecimal
	ReportedAt  time.Time
	PlaceID     string // optional
	UserID      string // identifier of the reporter in the external user directory
	ProblemType string
	Status      string
	Description string
	ExternalID  string // document id in the external store, empty until synced
}

// StatusCount is one row of the per-status report statistics.
type StatusCount struct {
	Status string
	Count  int64
}

// Area is a latitude/longitude bounding box, bounds inclusive.
type Area struct {
	MinLat, MaxLat decimal.Decimal
	MinLng, MaxLng decimal.Decimal
}
