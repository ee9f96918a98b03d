package sqlite

import (
	"context"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
)

type accountsRepo struct {
	q dbtx
}

const accountColumns = `id, username, email, password_hash, auth_source, role_id,
	failed_attempts, locked, created_at, updated_at`

func scanAccount(s scanner) (domain.Account, error) {
	var a domain.Account
	err := s.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.AuthSource,
		&a.RoleID,
		&a.FailedAttempts,
		&a.Locked,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *accountsRepo) getOne(ctx context.Context, where string, arg any) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE `+where, arg)
	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	return r.getOne(ctx, `id = ?`, id)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.getOne(ctx, `email = ?`, email)
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	return r.getOne(ctx, `username = ?`, username)
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY created_at, id`)
	return collect(rows, err, scanAccount)
}

func (r *accountsRepo) SearchAccounts(ctx context.Context, q string) ([]domain.Account, error) {
	pattern := likePattern(q)
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE lower(username) LIKE ? ESCAPE '\' OR lower(email) LIKE ? ESCAPE '\'
		ORDER BY username`, pattern, pattern)
	return collect(rows, err, scanAccount)
}

func (r *accountsRepo) ListAccountsByLocked(ctx context.Context, locked bool) ([]domain.Account, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE locked = ? ORDER BY created_at, id`, locked)
	return collect(rows, err, scanAccount)
}

func (r *accountsRepo) ListAccountsByRole(ctx context.Context, roleID string) ([]domain.Account, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE role_id = ? ORDER BY created_at, id`, roleID)
	return collect(rows, err, scanAccount)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO accounts (id, username, email, password_hash, auth_source, role_id,
			failed_attempts, locked, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.Email, a.PasswordHash, a.AuthSource, a.RoleID,
		a.FailedAttempts, a.Locked, a.CreatedAt, a.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *accountsRepo) UpdateAccountProfile(ctx context.Context, a domain.Account) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE accounts SET username = ?, email = ?, role_id = ?, updated_at = ?
		WHERE id = ?`,
		a.Username, a.Email, a.RoleID, a.UpdatedAt, a.ID,
	))
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id, hash string, now time.Time) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE accounts SET password_hash = ?, updated_at = ? WHERE id = ?`, hash, now, id))
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id))
}

func (r *accountsRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(1) FROM accounts WHERE username = ?`, username).Scan(&n)
	return n > 0, err
}

func (r *accountsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(1) FROM accounts WHERE email = ?`, email).Scan(&n)
	return n > 0, err
}

const incrementFailedAttemptsQuery = `
	UPDATE accounts
	SET failed_attempts = failed_attempts + 1,
		locked = CASE WHEN failed_attempts + 1 >= ? THEN 1 ELSE locked END,
		updated_at = ?
	WHERE id = ?
	RETURNING ` + accountColumns

func (r *accountsRepo) IncrementFailedAttempts(
	ctx context.Context,
	id string,
	maxAttempts int,
	now time.Time,
) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx, incrementFailedAttemptsQuery, maxAttempts, now, id)
	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

const resetFailedAttemptsQuery = `
	UPDATE accounts
	SET failed_attempts = 0, locked = 0, updated_at = ?
	WHERE id = ?
	RETURNING ` + accountColumns

func (r *accountsRepo) ResetFailedAttempts(ctx context.Context, id string, now time.Time) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx, resetFailedAttemptsQuery, now, id)
	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}
