package sqlite

import (
	"context"
	"database/sql"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
)

type workHistoryRepo struct {
	q dbtx
}

const historyColumns = `id, work_id, changed_at, progress, note, external_id`

func scanHistoryEntry(s scanner) (domain.WorkHistoryEntry, error) {
	var (
		e          domain.WorkHistoryEntry
		externalID sql.NullString
	)
	err := s.Scan(&e.ID, &e.WorkID, &e.ChangedAt, &e.Progress, &e.Note, &externalID)
	e.ExternalID = mapNullString(externalID)
	return e, err
}

func (r *workHistoryRepo) GetHistoryEntryByID(ctx context.Context, id string) (domain.WorkHistoryEntry, error) {
	e, err := scanHistoryEntry(r.q.QueryRowContext(ctx,
		`SELECT `+historyColumns+` FROM work_history WHERE id = ?`, id))
	if err != nil {
		return domain.WorkHistoryEntry{}, mapNotFound(err)
	}
	return e, nil
}

func (r *workHistoryRepo) ListHistoryEntries(ctx context.Context) ([]domain.WorkHistoryEntry, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+historyColumns+` FROM work_history ORDER BY changed_at DESC, id DESC`)
	return collect(rows, err, scanHistoryEntry)
}

func (r *workHistoryRepo) ListHistoryByWork(ctx context.Context, workID string) ([]domain.WorkHistoryEntry, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+historyColumns+` FROM work_history WHERE work_id = ? ORDER BY changed_at, id`, workID)
	return collect(rows, err, scanHistoryEntry)
}

func (r *workHistoryRepo) CreateHistoryEntry(ctx context.Context, e domain.WorkHistoryEntry) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO work_history (id, work_id, changed_at, progress, note, external_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.WorkID, e.ChangedAt, e.Progress, e.Note, mapStringNull(e.ExternalID),
	)
	return mapWriteErr(err)
}

func (r *workHistoryRepo) UpdateHistoryEntry(ctx context.Context, e domain.WorkHistoryEntry) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE work_history SET changed_at = ?, progress = ?, note = ? WHERE id = ?`,
		e.ChangedAt, e.Progress, e.Note, e.ID,
	))
}

func (r *workHistoryRepo) SetHistoryExternalID(ctx context.Context, id, externalID string) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE work_history SET external_id = ? WHERE id = ?`, mapStringNull(externalID), id))
}

func (r *workHistoryRepo) DeleteHistoryEntry(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM work_history WHERE id = ?`, id))
}
