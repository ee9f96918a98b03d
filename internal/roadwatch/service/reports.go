package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/roadwatch/roadwatch/pkg/slogx"
	"github.com/shopspring/decimal"
)

// RecentWindow is how far back Recent looks.
const RecentWindow = 7 * 24 * time.Hour

// StatsTotalKey is the Stats entry holding the overall count.
const StatsTotalKey = "total"

var (
	minLatitude  = decimal.NewFromInt(-90)
	maxLatitude  = decimal.NewFromInt(90)
	minLongitude = decimal.NewFromInt(-180)
	maxLongitude = decimal.NewFromInt(180)
)

type ReportService struct {
	Store    store.Store
	Hooks    Hooks
	Notifier ReportNotifier

	// Now defaults to time.Now.
	Now func() time.Time
}

// ReportInput carries report fields. On update nil fields are left alone.
type ReportInput struct {
	Surface     *decimal.Decimal
	Latitude    *decimal.Decimal
	Longitude   *decimal.Decimal
	ReportedAt  *time.Time
	PlaceID     *string
	UserID      *string
	ProblemType *string
	Status      *string
	Description *string
}

func (s *ReportService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *ReportService) Get(ctx context.Context, id string) (domain.Report, error) {
	r, err := s.Store.Reports().GetReportByID(ctx, id)
	return r, storeErr(err, "report")
}

func (s *ReportService) List(ctx context.Context) ([]domain.Report, error) {
	return s.Store.Reports().ListReports(ctx)
}

func (s *ReportService) ListByUser(ctx context.Context, userID string) ([]domain.Report, error) {
	return s.Store.Reports().ListReportsByUser(ctx, userID)
}

func (s *ReportService) ListByPlace(ctx context.Context, placeID string) ([]domain.Report, error) {
	return s.Store.Reports().ListReportsByPlace(ctx, placeID)
}

func (s *ReportService) ListByStatus(ctx context.Context, status string) ([]domain.Report, error) {
	st, err := domain.ParseStatus(status)
	if err != nil {
		return nil, invalid("unknown status %q", status)
	}
	return s.Store.Reports().ListReportsByStatus(ctx, st)
}

func (s *ReportService) ListByType(ctx context.Context, problemType string) ([]domain.Report, error) {
	return s.Store.Reports().ListReportsByType(ctx, strings.TrimSpace(problemType))
}

func (s *ReportService) ListInArea(ctx context.Context, area domain.Area) ([]domain.Report, error) {
	if area.MinLat.GreaterThan(area.MaxLat) || area.MinLng.GreaterThan(area.MaxLng) {
		return nil, invalid("area bounds are inverted")
	}
	return s.Store.Reports().ListReportsInArea(ctx, area)
}

// Recent returns the reports of the last RecentWindow.
func (s *ReportService) Recent(ctx context.Context) ([]domain.Report, error) {
	return s.Store.Reports().ListReportsSince(ctx, s.now().Add(-RecentWindow))
}

// Search matches q case-insensitively inside descriptions.
func (s *ReportService) Search(ctx context.Context, q string) ([]domain.Report, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(ctx)
	}
	return s.Store.Reports().SearchReports(ctx, q)
}

// Stats counts reports per status plus an overall StatsTotalKey entry.
func (s *ReportService) Stats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.Store.Reports().CountReportsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := map[string]int64{
		domain.StatusNew:        0,
		domain.StatusInProgress: 0,
		domain.StatusDone:       0,
	}
	var total int64
	for _, c := range counts {
		stats[c.Status] += c.Count
		total += c.Count
	}
	stats[StatsTotalKey] = total
	return stats, nil
}

func (s *ReportService) apply(ctx context.Context, st store.Store, r *domain.Report, in ReportInput) error {
	if in.Latitude != nil {
		if in.Latitude.LessThan(minLatitude) || in.Latitude.GreaterThan(maxLatitude) {
			return invalid("latitude must be between -90 and 90")
		}
		r.Latitude = decimal.NewNullDecimal(*in.Latitude)
	}
	if in.Longitude != nil {
		if in.Longitude.LessThan(minLongitude) || in.Longitude.GreaterThan(maxLongitude) {
			return invalid("longitude must be between -180 and 180")
		}
		r.Longitude = decimal.NewNullDecimal(*in.Longitude)
	}
	if in.Surface != nil {
		if in.Surface.IsNegative() {
			return invalid("surface must not be negative")
		}
		r.Surface = decimal.NewNullDecimal(*in.Surface)
	}
	if in.ReportedAt != nil {
		r.ReportedAt = in.ReportedAt.UTC()
	}
	if in.PlaceID != nil {
		if *in.PlaceID != "" {
			if _, err := st.Places().GetPlaceByID(ctx, *in.PlaceID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return invalid("place %q does not exist", *in.PlaceID)
				}
				return err
			}
		}
		r.PlaceID = *in.PlaceID
	}
	if in.UserID != nil {
		r.UserID = strings.TrimSpace(*in.UserID)
	}
	if in.ProblemType != nil {
		r.ProblemType = strings.TrimSpace(*in.ProblemType)
	}
	if in.Status != nil {
		status, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return invalid("unknown status %q", *in.Status)
		}
		r.Status = status
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	return nil
}

// Create stores a new report. Status defaults to nouveau and the report
// date to now.
func (s *ReportService) Create(ctx context.Context, in ReportInput) (domain.Report, error) {
	r := domain.Report{
		ID:         idx.MustNew().String(),
		ReportedAt: s.now(),
		Status:     domain.StatusNew,
	}
	if err := s.apply(ctx, s.Store, &r, in); err != nil {
		return domain.Report{}, err
	}

	if err := s.Store.Reports().CreateReport(ctx, r); err != nil {
		return domain.Report{}, storeErr(err, "report")
	}

	slogx.FromContext(ctx).Info("report created", "report_id", r.ID, "status", r.Status)
	return r, nil
}

// Update applies the non-nil fields of in. A status change moves the linked
// work's progress the same way UpdateStatus does.
func (s *ReportService) Update(ctx context.Context, id string, in ReportInput) (domain.Report, error) {
	var (
		r         domain.Report
		oldStatus string
		change    ProgressChange
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if r, err = tx.Reports().GetReportByID(ctx, id); err != nil {
			return storeErr(err, "report")
		}
		oldStatus = r.Status

		if err := s.apply(ctx, tx, &r, in); err != nil {
			return err
		}
		if err := tx.Reports().UpdateReport(ctx, r); err != nil {
			return storeErr(err, "report")
		}

		if r.Status != oldStatus {
			change, err = ApplyStatus(ctx, tx, r.ID, r.Status, s.now())
		}
		return err
	})
	if err != nil {
		return domain.Report{}, err
	}

	s.afterStatusChange(ctx, r, oldStatus, change)
	return r, nil
}

// UpdateStatus sets a canonical status, moves the linked work's progress and,
// once committed, pushes the work and notifies the reporter.
func (s *ReportService) UpdateStatus(ctx context.Context, id, status string) (domain.Report, ProgressChange, error) {
	st, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Report{}, ProgressChange{}, invalid("status must be one of %q, %q, %q",
			domain.StatusNew, domain.StatusInProgress, domain.StatusDone)
	}

	var (
		r         domain.Report
		oldStatus string
		change    ProgressChange
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if r, err = tx.Reports().GetReportByID(ctx, id); err != nil {
			return storeErr(err, "report")
		}
		oldStatus = r.Status

		if err := tx.Reports().UpdateReportStatus(ctx, id, st); err != nil {
			return storeErr(err, "report")
		}
		r.Status = st

		change, err = ApplyStatus(ctx, tx, id, st, s.now())
		return err
	})
	if err != nil {
		return domain.Report{}, ProgressChange{}, err
	}

	slogx.FromContext(ctx).Info("report status updated",
		"report_id", id, "old_status", oldStatus, "new_status", st, "progress_changed", change.Changed)

	s.afterStatusChange(ctx, r, oldStatus, change)
	return r, change, nil
}

func (s *ReportService) afterStatusChange(ctx context.Context, r domain.Report, oldStatus string, change ProgressChange) {
	if change.Changed {
		afterWorkSaved(ctx, s.Hooks, change.Work.ID)
		afterHistoryAppended(ctx, s.Hooks, change.Entry.ID)
	}
	if s.Notifier != nil && r.Status != oldStatus {
		s.Notifier.NotifyStatusChange(ctx, r, oldStatus, r.Status)
	}
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Reports().DeleteReport(ctx, id); err != nil {
		return storeErr(err, "report")
	}
	slogx.FromContext(ctx).Info("report deleted", "report_id", id)
	return nil
}
