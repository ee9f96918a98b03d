package service

import (
	"context"
	"errors"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/roadwatch/roadwatch/pkg/slogx"
	"github.com/shopspring/decimal"
)

var maxProgress = decimal.NewFromInt(100)

// WorkService manages repair jobs. Saved works are handed to Hooks after
// commit so they can be pushed out.
type WorkService struct {
	Store store.Store
	Hooks Hooks
}

// WorkInput carries work fields. On update nil fields are left alone and an
// empty id string clears the reference.
type WorkInput struct {
	ReportID  *string
	CompanyID *string
	Budget    *decimal.Decimal
	Progress  *decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *WorkService) Get(ctx context.Context, id string) (domain.Work, error) {
	w, err := s.Store.Works().GetWorkByID(ctx, id)
	return w, storeErr(err, "work")
}

func (s *WorkService) List(ctx context.Context) ([]domain.Work, error) {
	return s.Store.Works().ListWorks(ctx)
}

func (s *WorkService) apply(ctx context.Context, w *domain.Work, in WorkInput) error {
	if in.ReportID != nil {
		if *in.ReportID != "" {
			if _, err := s.Store.Reports().GetReportByID(ctx, *in.ReportID); err != nil {
				return refErr(err, "report", *in.ReportID)
			}
		}
		w.ReportID = *in.ReportID
	}
	if in.CompanyID != nil {
		if *in.CompanyID != "" {
			if _, err := s.Store.Companies().GetCompanyByID(ctx, *in.CompanyID); err != nil {
				return refErr(err, "company", *in.CompanyID)
			}
		}
		w.CompanyID = *in.CompanyID
	}
	if in.Budget != nil {
		if in.Budget.IsNegative() {
			return invalid("budget must not be negative")
		}
		w.Budget = decimal.NewNullDecimal(*in.Budget)
	}
	if in.Progress != nil {
		if in.Progress.IsNegative() || in.Progress.GreaterThan(maxProgress) {
			return invalid("progress must be between 0 and 100")
		}
		w.Progress = decimal.NewNullDecimal(*in.Progress)
	}
	if in.StartDate != nil {
		d := domain.DateOnly(*in.StartDate)
		w.StartDate = &d
	}
	if in.EndDate != nil {
		d := domain.DateOnly(*in.EndDate)
		w.EndDate = &d
	}
	if w.StartDate != nil && w.EndDate != nil && w.EndDate.Before(*w.StartDate) {
		return invalid("end date is before start date")
	}
	return nil
}

func refErr(err error, what, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return invalid("%s %q does not exist", what, id)
	}
	return err
}

// Create stores a work. A report can carry at most one work.
func (s *WorkService) Create(ctx context.Context, in WorkInput) (domain.Work, error) {
	now := time.Now().UTC()
	w := domain.Work{ID: idx.MustNew().String(), CreatedAt: now, UpdatedAt: now}
	if err := s.apply(ctx, &w, in); err != nil {
		return domain.Work{}, err
	}

	if err := s.Store.Works().CreateWork(ctx, w); err != nil {
		return domain.Work{}, storeErr(err, "work")
	}
	slogx.FromContext(ctx).Info("work created", "work_id", w.ID, "report_id", w.ReportID)

	afterWorkSaved(ctx, s.Hooks, w.ID)
	return s.reload(ctx, w), nil
}

func (s *WorkService) Update(ctx context.Context, id string, in WorkInput) (domain.Work, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return domain.Work{}, err
	}
	if err := s.apply(ctx, &w, in); err != nil {
		return domain.Work{}, err
	}

	w.UpdatedAt = time.Now().UTC()
	if err := s.Store.Works().UpdateWork(ctx, w); err != nil {
		return domain.Work{}, storeErr(err, "work")
	}
	slogx.FromContext(ctx).Info("work updated", "work_id", w.ID)

	afterWorkSaved(ctx, s.Hooks, w.ID)
	return s.reload(ctx, w), nil
}

// reload picks up the external id a hook may have assigned.
func (s *WorkService) reload(ctx context.Context, w domain.Work) domain.Work {
	if fresh, err := s.Store.Works().GetWorkByID(ctx, w.ID); err == nil {
		return fresh
	}
	return w
}

// Delete removes the work and, per schema, its history.
func (s *WorkService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Works().DeleteWork(ctx, id); err != nil {
		return storeErr(err, "work")
	}
	slogx.FromContext(ctx).Info("work deleted", "work_id", id)
	return nil
}
