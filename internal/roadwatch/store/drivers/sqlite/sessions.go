package sqlite

import (
	"context"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
)

type sessionsRepo struct {
	q dbtx
}

const sessionColumns = `id, account_id, token_hash, created_at, expires_at, active`

func scanSession(s scanner) (domain.Session, error) {
	var v domain.Session
	err := s.Scan(&v.ID, &v.AccountID, &v.TokenHash, &v.CreatedAt, &v.ExpiresAt, &v.Active)
	return v, err
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO sessions (id, account_id, token_hash, created_at, expires_at, active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.AccountID, s.TokenHash, s.CreatedAt, s.ExpiresAt, s.Active,
	)
	return mapWriteErr(err)
}

func (r *sessionsRepo) GetActiveSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE token_hash = ? AND active = 1`, hash)
	s, err := scanSession(row)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) ListActiveSessions(ctx context.Context, accountID string) ([]domain.Session, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE account_id = ? AND active = 1
		ORDER BY created_at`, accountID)
	return collect(rows, err, scanSession)
}

func (r *sessionsRepo) DeactivateSession(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `UPDATE sessions SET active = 0 WHERE id = ?`, id))
}

func (r *sessionsRepo) DeactivateSessionByTokenHash(ctx context.Context, hash string) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE sessions SET active = 0 WHERE token_hash = ? AND active = 1`, hash))
}

func (r *sessionsRepo) DeactivateAccountSessions(ctx context.Context, accountID string) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET active = 0 WHERE account_id = ? AND active = 1`, accountID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *sessionsRepo) DeactivateExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET active = 0 WHERE active = 1 AND expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *sessionsRepo) DeleteInactiveSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM sessions WHERE active = 0 AND expires_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
