package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/shopspring/decimal"
)

type worksRepo struct {
	q dbtx
}

const workColumns = `id, report_id, company_id, budget, start_date, end_date, progress,
	external_id, created_at, updated_at`

func scanWork(s scanner) (domain.Work, error) {
	var (
		w                   domain.Work
		reportID, companyID sql.NullString
		startDate, endDate  sql.NullString
		externalID          sql.NullString
	)
	err := s.Scan(
		&w.ID,
		&reportID,
		&companyID,
		&w.Budget,
		&startDate,
		&endDate,
		&w.Progress,
		&externalID,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return domain.Work{}, err
	}

	w.ReportID = mapNullString(reportID)
	w.CompanyID = mapNullString(companyID)
	w.ExternalID = mapNullString(externalID)
	if w.StartDate, err = mapNullDate(startDate); err != nil {
		return domain.Work{}, err
	}
	if w.EndDate, err = mapNullDate(endDate); err != nil {
		return domain.Work{}, err
	}
	return w, nil
}

func (r *worksRepo) getOne(ctx context.Context, where string, arg any) (domain.Work, error) {
	w, err := scanWork(r.q.QueryRowContext(ctx, `SELECT `+workColumns+` FROM works WHERE `+where, arg))
	if err != nil {
		return domain.Work{}, mapNotFound(err)
	}
	return w, nil
}

func (r *worksRepo) GetWorkByID(ctx context.Context, id string) (domain.Work, error) {
	return r.getOne(ctx, `id = ?`, id)
}

func (r *worksRepo) GetWorkByReportID(ctx context.Context, reportID string) (domain.Work, error) {
	return r.getOne(ctx, `report_id = ?`, reportID)
}

func (r *worksRepo) GetWorkByExternalID(ctx context.Context, externalID string) (domain.Work, error) {
	return r.getOne(ctx, `external_id = ?`, externalID)
}

func (r *worksRepo) ListWorks(ctx context.Context) ([]domain.Work, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+workColumns+` FROM works ORDER BY created_at DESC, id DESC`)
	return collect(rows, err, scanWork)
}

func (r *worksRepo) CountWorks(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(1) FROM works`).Scan(&n)
	return n, err
}

func (r *worksRepo) CreateWork(ctx context.Context, w domain.Work) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO works (id, report_id, company_id, budget, start_date, end_date, progress,
			external_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		mapStringNull(w.ReportID),
		mapStringNull(w.CompanyID),
		w.Budget,
		mapDateNull(w.StartDate),
		mapDateNull(w.EndDate),
		w.Progress,
		mapStringNull(w.ExternalID),
		w.CreatedAt,
		w.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *worksRepo) UpdateWork(ctx context.Context, w domain.Work) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE works SET report_id = ?, company_id = ?, budget = ?, start_date = ?, end_date = ?,
			progress = ?, updated_at = ?
		WHERE id = ?`,
		mapStringNull(w.ReportID),
		mapStringNull(w.CompanyID),
		w.Budget,
		mapDateNull(w.StartDate),
		mapDateNull(w.EndDate),
		w.Progress,
		w.UpdatedAt,
		w.ID,
	))
}

func (r *worksRepo) UpdateWorkProgress(ctx context.Context, id string, progress decimal.Decimal, now time.Time) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE works SET progress = ?, updated_at = ? WHERE id = ?`, progress, now, id))
}

func (r *worksRepo) SetWorkExternalID(ctx context.Context, id, externalID string) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE works SET external_id = ? WHERE id = ?`, mapStringNull(externalID), id))
}

func (r *worksRepo) DeleteWork(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM works WHERE id = ?`, id))
}
