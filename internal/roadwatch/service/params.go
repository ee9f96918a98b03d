package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
)

// AuthParams are the tunables of the Account Guard.
type AuthParams struct {
	MaxAttempts     int
	SessionDuration time.Duration
}

var DefaultAuthParams = AuthParams{
	MaxAttempts:     3,
	SessionDuration: 60 * time.Minute,
}

// ParamsSource yields the current AuthParams.
type ParamsSource interface {
	Current(ctx context.Context) (AuthParams, error)
}

// StaticParams always returns itself.
type StaticParams AuthParams

func (p StaticParams) Current(context.Context) (AuthParams, error) { return AuthParams(p), nil }

// ParamsService reads AuthParams from the auth_parameters table and caches
// them for TTL or until Invalidate.
type ParamsService struct {
	Store  store.Store
	Logger *slog.Logger
	TTL    time.Duration

	mu       sync.Mutex
	cached   AuthParams
	loadedAt time.Time
	loaded   bool
}

func NewParamsService(s store.Store, logger *slog.Logger, ttl time.Duration) *ParamsService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ParamsService{Store: s, Logger: logger, TTL: ttl}
}

func (p *ParamsService) Current(ctx context.Context) (AuthParams, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded && time.Since(p.loadedAt) < p.TTL {
		return p.cached, nil
	}

	rows, err := p.Store.AuthParams().ListAuthParams(ctx)
	if err != nil {
		return AuthParams{}, err
	}

	params := DefaultAuthParams
	for _, row := range rows {
		switch row.Key {
		case domain.ParamMaxAttempts:
			if n, ok := p.positiveInt(row); ok {
				params.MaxAttempts = n
			}
		case domain.ParamSessionDuration:
			if n, ok := p.positiveInt(row); ok {
				params.SessionDuration = time.Duration(n) * time.Minute
			}
		}
	}

	p.cached, p.loadedAt, p.loaded = params, time.Now(), true
	return params, nil
}

func (p *ParamsService) positiveInt(row domain.AuthParameter) (int, bool) {
	n, err := strconv.Atoi(row.Value)
	if err != nil || n <= 0 {
		p.Logger.Warn("ignoring malformed auth parameter, using default",
			"key", row.Key, "value", row.Value)
		return 0, false
	}
	return n, true
}

// Invalidate drops the cached values.
func (p *ParamsService) Invalidate() {
	p.mu.Lock()
	p.loaded = false
	p.mu.Unlock()
}

func (p *ParamsService) List(ctx context.Context) ([]domain.AuthParameter, error) {
	return p.Store.AuthParams().ListAuthParams(ctx)
}

// Set writes a parameter. Known keys must hold a positive integer.
func (p *ParamsService) Set(ctx context.Context, key, value, description string) (domain.AuthParameter, error) {
	switch key {
	case domain.ParamMaxAttempts, domain.ParamSessionDuration:
		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return domain.AuthParameter{}, invalid("%s must be a positive integer", key)
		}
	case "":
		return domain.AuthParameter{}, invalid("key is required")
	}

	param := domain.AuthParameter{
		Key:         key,
		Value:       value,
		Description: description,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := p.Store.AuthParams().UpsertAuthParam(ctx, param); err != nil {
		return domain.AuthParameter{}, fmt.Errorf("upsert auth parameter: %w", err)
	}
	p.Invalidate()

	return p.Store.AuthParams().GetAuthParam(ctx, key)
}
