package docsync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestLocalLockerExcludes(t *testing.T) {
	t.Parallel()
	l := NewLocalLocker()

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "k")
			if err != nil {
				t.Error(err)
				return
			}
			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, maxInside.Load())
	require.Empty(t, l.locks)
}

func TestLocalLockerKeysAreIndependent(t *testing.T) {
	t.Parallel()
	l := NewLocalLocker()

	unlockA, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer unlockA()

	unlockB, err := l.Lock(context.Background(), "b")
	require.NoError(t, err)
	unlockB()
	unlockB() // second call is a no-op
}

func TestLocalLockerHonoursContext(t *testing.T) {
	t.Parallel()
	l := NewLocalLocker()

	unlock, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "k")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	require.Empty(t, l.locks)
}

func TestRedisLocker(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := ConnectRedis(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	first := NewRedisLocker(client, slog.New(slog.DiscardHandler))
	second := NewRedisLocker(client, slog.New(slog.DiscardHandler))

	unlock, err := first.Lock(ctx, pullLockKey)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()
	_, err = second.Lock(waitCtx, pullLockKey)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()

	unlock2, err := second.Lock(ctx, pullLockKey)
	require.NoError(t, err)

	// a release carrying another owner's token must not free the lock
	n, err := releaseScript.Run(ctx, client, []string{second.Prefix + pullLockKey}, "someone-else").Int()
	require.NoError(t, err)
	require.Zero(t, n)
	exists, err := client.Exists(ctx, second.Prefix+pullLockKey).Result()
	require.NoError(t, err)
	require.EqualValues(t, 1, exists)

	unlock2()
	exists, err = client.Exists(ctx, second.Prefix+pullLockKey).Result()
	require.NoError(t, err)
	require.Zero(t, exists)

	// a holder outliving the TTL keeps the lock
	short := NewRedisLocker(client, slog.New(slog.DiscardHandler))
	short.TTL = 300 * time.Millisecond
	unlock3, err := short.Lock(ctx, pullLockKey)
	require.NoError(t, err)

	time.Sleep(4 * short.TTL)
	waitCtx2, cancel2 := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel2()
	_, err = second.Lock(waitCtx2, pullLockKey)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock3()
	exists, err = client.Exists(ctx, short.Prefix+pullLockKey).Result()
	require.NoError(t, err)
	require.Zero(t, exists)
}
