package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
)

type reportsRepo struct {
	q dbtx
}

const reportColumns = `id, surface, latitude, longitude, reported_at, place_id, user_id,
	problem_type, status, description, external_id`

func scanReport(s scanner) (domain.Report, error) {
	var (
		r          domain.Report
		placeID    sql.NullString
		externalID sql.NullString
	)
	err := s.Scan(
		&r.ID,
		&r.Surface,
		&r.Latitude,
		&r.Longitude,
		&r.ReportedAt,
		&placeID,
		&r.UserID,
		&r.ProblemType,
		&r.Status,
		&r.Description,
		&externalID,
	)
	r.PlaceID = mapNullString(placeID)
	r.ExternalID = mapNullString(externalID)
	return r, err
}

func (r *reportsRepo) getOne(ctx context.Context, where string, arg any) (domain.Report, error) {
	rep, err := scanReport(r.q.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM reports WHERE `+where, arg))
	if err != nil {
		return domain.Report{}, mapNotFound(err)
	}
	return rep, nil
}

func (r *reportsRepo) list(ctx context.Context, where string, args ...any) ([]domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY reported_at DESC, id DESC`
	rows, err := r.q.QueryContext(ctx, query, args...)
	return collect(rows, err, scanReport)
}

func (r *reportsRepo) GetReportByID(ctx context.Context, id string) (domain.Report, error) {
	return r.getOne(ctx, `id = ?`, id)
}

func (r *reportsRepo) GetReportByExternalID(ctx context.Context, externalID string) (domain.Report, error) {
	return r.getOne(ctx, `external_id = ?`, externalID)
}

func (r *reportsRepo) ListReports(ctx context.Context) ([]domain.Report, error) {
	return r.list(ctx, "")
}

func (r *reportsRepo) ListReportsByUser(ctx context.Context, userID string) ([]domain.Report, error) {
	return r.list(ctx, `user_id = ?`, userID)
}

func (r *reportsRepo) ListReportsByPlace(ctx context.Context, placeID string) ([]domain.Report, error) {
	return r.list(ctx, `place_id = ?`, placeID)
}

func (r *reportsRepo) ListReportsByStatus(ctx context.Context, status string) ([]domain.Report, error) {
	return r.list(ctx, `status = ?`, status)
}

func (r *reportsRepo) ListReportsByType(ctx context.Context, problemType string) ([]domain.Report, error) {
	return r.list(ctx, `lower(problem_type) = lower(?)`, problemType)
}

func (r *reportsRepo) ListReportsInArea(ctx context.Context, area domain.Area) ([]domain.Report, error) {
	return r.list(ctx, `
		latitude IS NOT NULL AND longitude IS NOT NULL
		AND CAST(latitude AS REAL) BETWEEN ? AND ?
		AND CAST(longitude AS REAL) BETWEEN ? AND ?`,
		area.MinLat.InexactFloat64(), area.MaxLat.InexactFloat64(),
		area.MinLng.InexactFloat64(), area.MaxLng.InexactFloat64(),
	)
}

func (r *reportsRepo) ListReportsSince(ctx context.Context, since time.Time) ([]domain.Report, error) {
	return r.list(ctx, `reported_at >= ?`, since)
}

func (r *reportsRepo) SearchReports(ctx context.Context, q string) ([]domain.Report, error) {
	return r.list(ctx, `lower(description) LIKE ? ESCAPE '\'`, likePattern(q))
}

func (r *reportsRepo) CountReportsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT status, COUNT(1) FROM reports GROUP BY status ORDER BY status`)
	return collect(rows, err, func(s scanner) (domain.StatusCount, error) {
		var c domain.StatusCount
		err := s.Scan(&c.Status, &c.Count)
		return c, err
	})
}

func (r *reportsRepo) CountReports(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(1) FROM reports`).Scan(&n)
	return n, err
}

func (r *reportsRepo) CreateReport(ctx context.Context, rep domain.Report) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO reports (id, surface, latitude, longitude, reported_at, place_id, user_id,
			problem_type, status, description, external_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ID,
		rep.Surface,
		rep.Latitude,
		rep.Longitude,
		rep.ReportedAt,
		mapStringNull(rep.PlaceID),
		rep.UserID,
		rep.ProblemType,
		rep.Status,
		rep.Description,
		mapStringNull(rep.ExternalID),
	)
	return mapWriteErr(err)
}

func (r *reportsRepo) UpdateReport(ctx context.Context, rep domain.Report) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE reports SET surface = ?, latitude = ?, longitude = ?, place_id = ?, user_id = ?,
			problem_type = ?, status = ?, description = ?
		WHERE id = ?`,
		rep.Surface,
		rep.Latitude,
		rep.Longitude,
		mapStringNull(rep.PlaceID),
		rep.UserID,
		rep.ProblemType,
		rep.Status,
		rep.Description,
		rep.ID,
	))
}

func (r *reportsRepo) UpdateReportStatus(ctx context.Context, id, status string) error {
	return requireAffected(r.q.ExecContext(ctx, `UPDATE reports SET status = ? WHERE id = ?`, status, id))
}

func (r *reportsRepo) SetReportExternalID(ctx context.Context, id, externalID string) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE reports SET external_id = ? WHERE id = ?`, mapStringNull(externalID), id))
}

func (r *reportsRepo) DeleteReport(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id))
}
