package sqlite

import (
	"context"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
)

type placesRepo struct {
	q dbtx
}

const placeColumns = `id, label, city, description, created_at`

func scanPlace(s scanner) (domain.Place, error) {
	var p domain.Place
	err := s.Scan(&p.ID, &p.Label, &p.City, &p.Description, &p.CreatedAt)
	return p, err
}

func (r *placesRepo) GetPlaceByID(ctx context.Context, id string) (domain.Place, error) {
	p, err := scanPlace(r.q.QueryRowContext(ctx, `SELECT `+placeColumns+` FROM places WHERE id = ?`, id))
	if err != nil {
		return domain.Place{}, mapNotFound(err)
	}
	return p, nil
}

func (r *placesRepo) GetPlaceByLabel(ctx context.Context, label string) (domain.Place, error) {
	p, err := scanPlace(r.q.QueryRowContext(ctx, `SELECT `+placeColumns+` FROM places WHERE label = ?`, label))
	if err != nil {
		return domain.Place{}, mapNotFound(err)
	}
	return p, nil
}

func (r *placesRepo) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+placeColumns+` FROM places ORDER BY label`)
	return collect(rows, err, scanPlace)
}

func (r *placesRepo) ListPlacesByCity(ctx context.Context, city string) ([]domain.Place, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+placeColumns+` FROM places WHERE lower(city) = lower(?) ORDER BY label`, city)
	return collect(rows, err, scanPlace)
}

func (r *placesRepo) CreatePlace(ctx context.Context, p domain.Place) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO places (id, label, city, description, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Label, p.City, p.Description, p.CreatedAt,
	)
	return mapWriteErr(err)
}

func (r *placesRepo) UpdatePlace(ctx context.Context, p domain.Place) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE places SET label = ?, city = ?, description = ? WHERE id = ?`,
		p.Label, p.City, p.Description, p.ID,
	))
}

func (r *placesRepo) DeletePlace(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM places WHERE id = ?`, id))
}
