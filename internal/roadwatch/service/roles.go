package service

import (
	"context"
	"strings"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/roadwatch/roadwatch/pkg/slogx"
)

type RoleService struct {
	Store store.Store
}

func normalizeRoleName(name string) (string, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return "", invalid("role name is required")
	}
	return name, nil
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListRoles(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (domain.Role, error) {
	r, err := s.Store.Roles().GetRoleByID(ctx, id)
	return r, storeErr(err, "role")
}

// GetByName matches case-insensitively since names are stored upper-case.
func (s *RoleService) GetByName(ctx context.Context, name string) (domain.Role, error) {
	name, err := normalizeRoleName(name)
	if err != nil {
		return domain.Role{}, err
	}
	r, err := s.Store.Roles().GetRoleByName(ctx, name)
	return r, storeErr(err, "role")
}

// Create adds a role. Names are stored upper-case.
func (s *RoleService) Create(ctx context.Context, name string) (domain.Role, error) {
	name, err := normalizeRoleName(name)
	if err != nil {
		return domain.Role{}, err
	}

	r := domain.Role{ID: idx.MustNew().String(), Name: name, CreatedAt: time.Now().UTC()}
	if err := s.Store.Roles().CreateRole(ctx, r); err != nil {
		return domain.Role{}, storeErr(err, "role")
	}

	slogx.FromContext(ctx).Info("role created", "role_id", r.ID, "name", r.Name)
	return r, nil
}

func (s *RoleService) Rename(ctx context.Context, id, name string) (domain.Role, error) {
	name, err := normalizeRoleName(name)
	if err != nil {
		return domain.Role{}, err
	}
	if err := s.Store.Roles().RenameRole(ctx, id, name); err != nil {
		return domain.Role{}, storeErr(err, "role")
	}
	return s.Get(ctx, id)
}

// Delete fails with ErrConflict while accounts still hold the role.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Roles().DeleteRole(ctx, id); err != nil {
		return storeErr(err, "role")
	}
	slogx.FromContext(ctx).Info("role deleted", "role_id", id)
	return nil
}
