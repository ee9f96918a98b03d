package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"gopkg.in/yaml.v3"
)

// Seed is the reference data a fresh installation starts with.
//
//	roles: [INSPECTEUR]
//	parametres:
//	  - cle: limite_tentatives
//	    valeur: "3"
//	entreprises: [Colas, Sogea]
//	lieux:
//	  - libelle: Analakely
//	    ville: Antananarivo
type Seed struct {
	Roles          []string        `yaml:"roles"`
	AuthParameters []SeedParameter `yaml:"parametres"`
	Companies      []string        `yaml:"entreprises"`
	Places         []SeedPlace     `yaml:"lieux"`
}

type SeedParameter struct {
	Key         string `yaml:"cle"`
	Value       string `yaml:"valeur"`
	Description string `yaml:"description"`
}

type SeedPlace struct {
	Label       string `yaml:"libelle"`
	City        string `yaml:"ville"`
	Description string `yaml:"description"`
}

// SeedResult counts the rows a seed actually inserted.
type SeedResult struct {
	Roles          int
	AuthParameters int
	Companies      int
	Places         int
}

func LoadSeed(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return seed, nil
}

// ApplySeed inserts every entry that is not already present, in a single
// transaction. Existing rows are never modified, so running it twice is a
// no-op.
func ApplySeed(ctx context.Context, s store.Store, seed Seed) (SeedResult, error) {
	var res SeedResult
	now := time.Now().UTC()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		for _, name := range seed.Roles {
			name = strings.ToUpper(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			created, err := ensure(ctx, func(ctx context.Context) error {
				_, err := tx.Roles().GetRoleByName(ctx, name)
				return err
			}, func(ctx context.Context) error {
				return tx.Roles().CreateRole(ctx, domain.Role{ID: idx.MustNew().String(), Name: name, CreatedAt: now})
			})
			if err != nil {
				return fmt.Errorf("role %s: %w", name, err)
			}
			res.Roles += created
		}

		for _, p := range seed.AuthParameters {
			if p.Key == "" {
				return errors.New("auth parameter without key")
			}
			ok, err := tx.AuthParams().CreateAuthParamIfAbsent(ctx, domain.AuthParameter{
				Key:         p.Key,
				Value:       p.Value,
				Description: p.Description,
				UpdatedAt:   now,
			})
			if err != nil {
				return fmt.Errorf("auth parameter %s: %w", p.Key, err)
			}
			if ok {
				res.AuthParameters++
			}
		}

		for _, name := range seed.Companies {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			created, err := ensure(ctx, func(ctx context.Context) error {
				_, err := tx.Companies().GetCompanyByName(ctx, name)
				return err
			}, func(ctx context.Context) error {
				return tx.Companies().CreateCompany(ctx, domain.Company{ID: idx.MustNew().String(), Name: name, CreatedAt: now})
			})
			if err != nil {
				return fmt.Errorf("company %s: %w", name, err)
			}
			res.Companies += created
		}

		for _, p := range seed.Places {
			label := strings.TrimSpace(p.Label)
			if label == "" {
				continue
			}
			created, err := ensure(ctx, func(ctx context.Context) error {
				_, err := tx.Places().GetPlaceByLabel(ctx, label)
				return err
			}, func(ctx context.Context) error {
				return tx.Places().CreatePlace(ctx, domain.Place{
					ID:          idx.MustNew().String(),
					Label:       label,
					City:        strings.TrimSpace(p.City),
					Description: p.Description,
					CreatedAt:   now,
				})
			})
			if err != nil {
				return fmt.Errorf("place %s: %w", label, err)
			}
			res.Places += created
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}

// ensure runs create when lookup reports store.ErrNotFound and returns 1 if
// it did.
func ensure(ctx context.Context, lookup, create func(context.Context) error) (int, error) {
	err := lookup(ctx)
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return 0, err
	}
	if err := create(ctx); err != nil {
		return 0, err
	}
	return 1, nil
}
