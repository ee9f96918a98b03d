package service

import (
	"context"
	"strings"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/idx"
)

type PlaceService struct {
	Store store.Store
}

type PlaceInput struct {
	Label       string
	City        string
	Description string
}

func (in PlaceInput) normalize() (PlaceInput, error) {
	in.Label = strings.TrimSpace(in.Label)
	in.City = strings.TrimSpace(in.City)
	if in.Label == "" {
		return in, invalid("place label is required")
	}
	return in, nil
}

func (s *PlaceService) List(ctx context.Context) ([]domain.Place, error) {
	return s.Store.Places().ListPlaces(ctx)
}

func (s *PlaceService) ListByCity(ctx context.Context, city string) ([]domain.Place, error) {
	return s.Store.Places().ListPlacesByCity(ctx, strings.TrimSpace(city))
}

func (s *PlaceService) Get(ctx context.Context, id string) (domain.Place, error) {
	p, err := s.Store.Places().GetPlaceByID(ctx, id)
	return p, storeErr(err, "place")
}

func (s *PlaceService) Create(ctx context.Context, in PlaceInput) (domain.Place, error) {
	in, err := in.normalize()
	if err != nil {
		return domain.Place{}, err
	}

	p := domain.Place{
		ID:          idx.MustNew().String(),
		Label:       in.Label,
		City:        in.City,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Store.Places().CreatePlace(ctx, p); err != nil {
		return domain.Place{}, storeErr(err, "place")
	}
	return p, nil
}

func (s *PlaceService) Update(ctx context.Context, id string, in PlaceInput) (domain.Place, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return domain.Place{}, err
	}
	if in, err = in.normalize(); err != nil {
		return domain.Place{}, err
	}

	p.Label, p.City, p.Description = in.Label, in.City, in.Description
	if err := s.Store.Places().UpdatePlace(ctx, p); err != nil {
		return domain.Place{}, storeErr(err, "place")
	}
	return p, nil
}

func (s *PlaceService) Delete(ctx context.Context, id string) error {
	return storeErr(s.Store.Places().DeletePlace(ctx, id), "place")
}
