package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/shopspring/decimal"
)

type statusProgress struct {
	progress decimal.Decimal
	note     string
}

var progressByStatus = map[string]statusProgress{
	domain.StatusNew:        {decimal.NewFromInt(0), "Travaux non commencés"},
	domain.StatusInProgress: {decimal.NewFromInt(50), "Travaux en cours"},
	domain.StatusDone:       {decimal.NewFromInt(100), "Travaux terminés"},
}

// ProgressFor returns the progress and note a canonical status maps to.
func ProgressFor(status string) (decimal.Decimal, string, bool) {
	sp, ok := progressByStatus[status]
	return sp.progress, sp.note, ok
}

// ProgressChange describes what ApplyStatus wrote. Changed is false when
// the report has no work or the work already had the target progress.
type ProgressChange struct {
	Changed bool
	Work    domain.Work
	Entry   domain.WorkHistoryEntry
}

// ApplyStatus moves the progress of the work linked to reportID to the value
// status maps to, appending one history entry when the value changes. s is
// normally a transaction.
func ApplyStatus(ctx context.Context, s store.Store, reportID, status string, now time.Time) (ProgressChange, error) {
	target, note, ok := ProgressFor(status)
	if !ok {
		return ProgressChange{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	w, err := s.Works().GetWorkByReportID(ctx, reportID)
	if errors.Is(err, store.ErrNotFound) {
		return ProgressChange{}, nil
	}
	if err != nil {
		return ProgressChange{}, err
	}

	if w.Progress.Valid && w.Progress.Decimal.Equal(target) {
		return ProgressChange{Work: w}, nil
	}

	now = now.UTC()
	if err := s.Works().UpdateWorkProgress(ctx, w.ID, target, now); err != nil {
		return ProgressChange{}, fmt.Errorf("update work progress: %w", err)
	}
	w.Progress = decimal.NewNullDecimal(target)
	w.UpdatedAt = now

	entry := domain.WorkHistoryEntry{
		ID:        idx.MustNew().String(),
		WorkID:    w.ID,
		ChangedAt: now,
		Progress:  decimal.NewNullDecimal(target),
		Note:      note,
	}
	if err := s.WorkHistory().CreateHistoryEntry(ctx, entry); err != nil {
		return ProgressChange{}, fmt.Errorf("append work history: %w", err)
	}

	return ProgressChange{Changed: true, Work: w, Entry: entry}, nil
}
