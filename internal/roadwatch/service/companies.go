package service

import (
	"context"
	"strings"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/idx"
)

type CompanyService struct {
	Store store.Store
}

func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.Store.Companies().ListCompanies(ctx)
}

func (s *CompanyService) Get(ctx context.Context, id string) (domain.Company, error) {
	c, err := s.Store.Companies().GetCompanyByID(ctx, id)
	return c, storeErr(err, "company")
}

func (s *CompanyService) Create(ctx context.Context, name string) (domain.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Company{}, invalid("company name is required")
	}

	c := domain.Company{ID: idx.MustNew().String(), Name: name, CreatedAt: time.Now().UTC()}
	if err := s.Store.Companies().CreateCompany(ctx, c); err != nil {
		return domain.Company{}, storeErr(err, "company")
	}
	return c, nil
}

func (s *CompanyService) Update(ctx context.Context, id, name string) (domain.Company, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return domain.Company{}, err
	}
	if name = strings.TrimSpace(name); name == "" {
		return domain.Company{}, invalid("company name is required")
	}

	c.Name = name
	if err := s.Store.Companies().UpdateCompany(ctx, c); err != nil {
		return domain.Company{}, storeErr(err, "company")
	}
	return c, nil
}

// Delete detaches the company from its works (per schema) and removes it.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return storeErr(s.Store.Companies().DeleteCompany(ctx, id), "company")
}
