package sqlite

import (
	"context"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
)

type rolesRepo struct {
	q dbtx
}

func scanRole(s scanner) (domain.Role, error) {
	var r domain.Role
	err := s.Scan(&r.ID, &r.Name, &r.CreatedAt)
	return r, err
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	role, err := scanRole(r.q.QueryRowContext(ctx, `SELECT id, name, created_at FROM roles WHERE id = ?`, id))
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	role, err := scanRole(r.q.QueryRowContext(ctx, `SELECT id, name, created_at FROM roles WHERE name = ?`, name))
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, created_at FROM roles ORDER BY name`)
	return collect(rows, err, scanRole)
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO roles (id, name, created_at) VALUES (?, ?, ?)`, role.ID, role.Name, role.CreatedAt)
	return mapWriteErr(err)
}

func (r *rolesRepo) RenameRole(ctx context.Context, id, name string) error {
	return requireAffected(r.q.ExecContext(ctx, `UPDATE roles SET name = ? WHERE id = ?`, name, id))
}

func (r *rolesRepo) DeleteRole(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, id))
}
