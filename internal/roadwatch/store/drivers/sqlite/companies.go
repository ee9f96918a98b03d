package sqlite

import (
	"context"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
)

type companiesRepo struct {
	q dbtx
}

func scanCompany(s scanner) (domain.Company, error) {
	var c domain.Company
	err := s.Scan(&c.ID, &c.Name, &c.CreatedAt)
	return c, err
}

func (r *companiesRepo) GetCompanyByID(ctx context.Context, id string) (domain.Company, error) {
	c, err := scanCompany(r.q.QueryRowContext(ctx, `SELECT id, name, created_at FROM companies WHERE id = ?`, id))
	if err != nil {
		return domain.Company{}, mapNotFound(err)
	}
	return c, nil
}

func (r *companiesRepo) GetCompanyByName(ctx context.Context, name string) (domain.Company, error) {
	c, err := scanCompany(r.q.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM companies WHERE name = ? ORDER BY created_at LIMIT 1`, name))
	if err != nil {
		return domain.Company{}, mapNotFound(err)
	}
	return c, nil
}

func (r *companiesRepo) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, created_at FROM companies ORDER BY name, id`)
	return collect(rows, err, scanCompany)
}

func (r *companiesRepo) CreateCompany(ctx context.Context, c domain.Company) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO companies (id, name, created_at) VALUES (?, ?, ?)`, c.ID, c.Name, c.CreatedAt)
	return mapWriteErr(err)
}

func (r *companiesRepo) UpdateCompany(ctx context.Context, c domain.Company) error {
	return requireAffected(r.q.ExecContext(ctx, `UPDATE companies SET name = ? WHERE id = ?`, c.Name, c.ID))
}

func (r *companiesRepo) DeleteCompany(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id))
}
