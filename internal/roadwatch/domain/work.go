package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Work is a repair job (travaux) attached to at most one report.
type Work struct {
	ID         string
	ReportID   string // optional
	CompanyID  string // optional
	Budget     decimal.NullDecimal
	StartDate  *time.Time // date only, local zone
	EndDate    *time.Time // date only, local zone
	Progress   decimal.NullDecimal
	ExternalID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkHistoryEntry records a work's progress and a note at a point in time.
// Entries are appended, never rewritten by the progress updater.
type WorkHistoryEntry struct {
	ID         string
	WorkID     string
	ChangedAt  time.Time
	Progress   decimal.NullDecimal
	Note       string
	ExternalID string
}

// DateOnly truncates t to midnight in the local zone.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
