package service

import (
	"context"
	"strings"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/shopspring/decimal"
)

type HistoryService struct {
	Store store.Store
	Hooks Hooks
}

type HistoryInput struct {
	WorkID    string
	ChangedAt *time.Time
	Progress  *decimal.Decimal
	Note      *string
}

func (s *HistoryService) Get(ctx context.Context, id string) (domain.WorkHistoryEntry, error) {
	e, err := s.Store.WorkHistory().GetHistoryEntryByID(ctx, id)
	return e, storeErr(err, "history entry")
}

// List returns every entry, newest first.
func (s *HistoryService) List(ctx context.Context) ([]domain.WorkHistoryEntry, error) {
	return s.Store.WorkHistory().ListHistoryEntries(ctx)
}

// ListByWork returns a work's entries, oldest first.
func (s *HistoryService) ListByWork(ctx context.Context, workID string) ([]domain.WorkHistoryEntry, error) {
	if _, err := s.Store.Works().GetWorkByID(ctx, workID); err != nil {
		return nil, storeErr(err, "work")
	}
	return s.Store.WorkHistory().ListHistoryByWork(ctx, workID)
}

func applyHistory(e *domain.WorkHistoryEntry, in HistoryInput) error {
	if in.ChangedAt != nil {
		e.ChangedAt = in.ChangedAt.UTC()
	}
	if in.Progress != nil {
		if in.Progress.IsNegative() || in.Progress.GreaterThan(maxProgress) {
			return invalid("progress must be between 0 and 100")
		}
		e.Progress = decimal.NewNullDecimal(*in.Progress)
	}
	if in.Note != nil {
		e.Note = strings.TrimSpace(*in.Note)
	}
	return nil
}

// Append adds an entry to a work's history. It does not move the work's
// own progress.
func (s *HistoryService) Append(ctx context.Context, in HistoryInput) (domain.WorkHistoryEntry, error) {
	if in.WorkID == "" {
		return domain.WorkHistoryEntry{}, invalid("work id is required")
	}
	if _, err := s.Store.Works().GetWorkByID(ctx, in.WorkID); err != nil {
		return domain.WorkHistoryEntry{}, storeErr(err, "work")
	}

	e := domain.WorkHistoryEntry{
		ID:        idx.MustNew().String(),
		WorkID:    in.WorkID,
		ChangedAt: time.Now().UTC(),
	}
	if err := applyHistory(&e, in); err != nil {
		return domain.WorkHistoryEntry{}, err
	}

	if err := s.Store.WorkHistory().CreateHistoryEntry(ctx, e); err != nil {
		return domain.WorkHistoryEntry{}, storeErr(err, "history entry")
	}

	afterHistoryAppended(ctx, s.Hooks, e.ID)
	if fresh, err := s.Store.WorkHistory().GetHistoryEntryByID(ctx, e.ID); err == nil {
		e = fresh
	}
	return e, nil
}

// Correct rewrites an entry. It is an administrative action; nothing in the
// status flow calls it.
func (s *HistoryService) Correct(ctx context.Context, id string, in HistoryInput) (domain.WorkHistoryEntry, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return domain.WorkHistoryEntry{}, err
	}
	if err := applyHistory(&e, in); err != nil {
		return domain.WorkHistoryEntry{}, err
	}
	if err := s.Store.WorkHistory().UpdateHistoryEntry(ctx, e); err != nil {
		return domain.WorkHistoryEntry{}, storeErr(err, "history entry")
	}
	return e, nil
}

func (s *HistoryService) Delete(ctx context.Context, id string) error {
	return storeErr(s.Store.WorkHistory().DeleteHistoryEntry(ctx, id), "history entry")
}
