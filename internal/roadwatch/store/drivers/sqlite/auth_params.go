package sqlite

import (
	"context"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
)

type authParamsRepo struct {
	q dbtx
}

func scanAuthParam(s scanner) (domain.AuthParameter, error) {
	var p domain.AuthParameter
	err := s.Scan(&p.Key, &p.Value, &p.Description, &p.UpdatedAt)
	return p, err
}

func (r *authParamsRepo) GetAuthParam(ctx context.Context, key string) (domain.AuthParameter, error) {
	p, err := scanAuthParam(r.q.QueryRowContext(ctx,
		`SELECT key, value, description, updated_at FROM auth_parameters WHERE key = ?`, key))
	if err != nil {
		return domain.AuthParameter{}, mapNotFound(err)
	}
	return p, nil
}

func (r *authParamsRepo) ListAuthParams(ctx context.Context) ([]domain.AuthParameter, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT key, value, description, updated_at FROM auth_parameters ORDER BY key`)
	return collect(rows, err, scanAuthParam)
}

func (r *authParamsRepo) UpsertAuthParam(ctx context.Context, p domain.AuthParameter) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO auth_parameters (key, value, description, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			description = CASE WHEN excluded.description = '' THEN auth_parameters.description ELSE excluded.description END,
			updated_at = excluded.updated_at`,
		p.Key, p.Value, p.Description, p.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *authParamsRepo) CreateAuthParamIfAbsent(ctx context.Context, p domain.AuthParameter) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO auth_parameters (key, value, description, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key) DO NOTHING`,
		p.Key, p.Value, p.Description, p.UpdatedAt,
	)
	if err != nil {
		return false, mapWriteErr(err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
