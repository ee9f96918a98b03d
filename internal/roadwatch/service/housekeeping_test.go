package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/pkg/cryptox"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingCleanup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	acc := env.register(t, "hk@x.com", "password123")

	now := time.Now().UTC()
	mk := func(expires time.Time, active bool) domain.Session {
		token := idx.MustNew().String()
		s := domain.Session{
			ID:        idx.MustNew().String(),
			AccountID: acc.ID,
			Token:     token,
			TokenHash: cryptox.FingerprintToken(token),
			CreatedAt: expires.Add(-time.Hour),
			ExpiresAt: expires,
			Active:    active,
		}
		require.NoError(t, env.store.Sessions().CreateSession(ctx, s))
		return s
	}
	live := mk(now.Add(time.Hour), true)
	expired := mk(now.Add(-time.Minute), true)
	ancient := mk(now.Add(-90*24*time.Hour), false)

	hk := NewHousekeepingService(env.store, slog.New(slog.DiscardHandler), time.Hour, 30*24*time.Hour)
	hk.cleanup()

	active, err := env.store.Sessions().ListActiveSessions(ctx, acc.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, live.ID, active[0].ID)

	_, err = env.guard.ValidateSession(ctx, expired.Token)
	require.ErrorIs(t, err, ErrSessionInvalid)

	n, err := env.store.Sessions().DeleteInactiveSessions(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	require.Zero(t, n, "session %s should already be gone", ancient.ID)
}

func TestHousekeepingRunsPull(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var pulls atomic.Int32
	hk := NewHousekeepingService(env.store, slog.New(slog.DiscardHandler), time.Hour, 0)
	hk.Pull = func(context.Context) error {
		pulls.Add(1)
		return nil
	}
	hk.PullInterval = 10 * time.Millisecond

	hk.Start()
	require.Eventually(t, func() bool { return pulls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	hk.Stop()
}

func TestHousekeepingSweepsWhilePullIsStuck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	acc := env.register(t, "stuck@x.com", "password123")

	entered := make(chan struct{})
	pullErr := make(chan error, 1)
	hk := NewHousekeepingService(env.store, slog.New(slog.DiscardHandler), 10*time.Millisecond, 0)
	hk.PullInterval = 5 * time.Millisecond
	var once atomic.Bool
	hk.Pull = func(ctx context.Context) error {
		if once.CompareAndSwap(false, true) {
			close(entered)
			<-ctx.Done()
			pullErr <- ctx.Err()
		}
		return ctx.Err()
	}

	hk.Start()
	<-entered

	token := idx.MustNew().String()
	now := time.Now().UTC()
	require.NoError(t, env.store.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.MustNew().String(),
		AccountID: acc.ID,
		TokenHash: cryptox.FingerprintToken(token),
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
		Active:    true,
	}))

	require.Eventually(t, func() bool {
		active, err := env.store.Sessions().ListActiveSessions(ctx, acc.ID)
		return err == nil && len(active) == 0
	}, 2*time.Second, 5*time.Millisecond)

	hk.Stop()
	require.ErrorIs(t, <-pullErr, context.Canceled)
}
