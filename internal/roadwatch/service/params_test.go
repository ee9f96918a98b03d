package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/stretchr/testify/require"
)

func TestParamsServiceDefaults(t *testing.T) {
	t.Parallel()
	p := NewParamsService(newTestStore(t), slog.New(slog.DiscardHandler), time.Hour)

	got, err := p.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultAuthParams, got)
}

func TestParamsServiceFallsBackOnMalformedValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	for key, value := range map[string]string{
		domain.ParamMaxAttempts:     "beaucoup",
		domain.ParamSessionDuration: "-5",
	} {
		require.NoError(t, s.AuthParams().UpsertAuthParam(ctx, domain.AuthParameter{
			Key: key, Value: value, UpdatedAt: time.Now().UTC(),
		}))
	}

	got, err := NewParamsService(s, slog.New(slog.DiscardHandler), time.Hour).Current(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultAuthParams, got)
}

func TestParamsServiceSetInvalidates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := NewParamsService(newTestStore(t), slog.New(slog.DiscardHandler), time.Hour)

	_, err := p.Current(ctx)
	require.NoError(t, err)

	_, err = p.Set(ctx, domain.ParamMaxAttempts, "5", "")
	require.NoError(t, err)
	_, err = p.Set(ctx, domain.ParamSessionDuration, "15", "minutes")
	require.NoError(t, err)

	got, err := p.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, AuthParams{MaxAttempts: 5, SessionDuration: 15 * time.Minute}, got)

	for _, bad := range []string{"0", "-1", "x", ""} {
		_, err := p.Set(ctx, domain.ParamMaxAttempts, bad, "")
		require.ErrorIs(t, err, ErrInvalidRequest, bad)
	}
	_, err = p.Set(ctx, "", "1", "")
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGuardUsesStoredThreshold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	params := NewParamsService(env.store, slog.New(slog.DiscardHandler), time.Hour)
	env.guard.Params = params

	_, err := params.Set(ctx, domain.ParamMaxAttempts, "2", "")
	require.NoError(t, err)

	acc := env.register(t, "two@x.com", "password123")
	_, err = env.guard.RecordFailedAttempt(ctx, acc.ID)
	require.NoError(t, err)
	got, err := env.guard.RecordFailedAttempt(ctx, acc.ID)
	require.NoError(t, err)
	require.True(t, got.Locked)
}
