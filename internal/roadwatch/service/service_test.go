package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store/drivers/sqlite"
	"github.com/roadwatch/roadwatch/pkg/cryptox"
	"github.com/roadwatch/roadwatch/pkg/identity"
	"github.com/stretchr/testify/require"
)

var cheapArgon2 = cryptox.Argon2Params{Memory: 64, Iterations: 1, Parallelism: 1, KeyLength: 16, SaltLength: 8}

type testEnv struct {
	store    store.Store
	guard    *Guard
	auth     *AuthService
	accounts *AccountService
	ids      identity.Static
	clock    *testClock
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s := newTestStore(t)
	clock := &testClock{now: time.Now().UTC()}
	hasher := cryptox.NewPasswordHasher("test-pepper").WithParams(cheapArgon2)
	ids := identity.Static{}

	guard := &Guard{
		Store:  s,
		Params: StaticParams(DefaultAuthParams),
		Now:    clock.Now,
	}

	return &testEnv{
		store: s,
		guard: guard,
		auth: &AuthService{
			Store:    s,
			Guard:    guard,
			Hasher:   hasher,
			Identity: ids,
		},
		accounts: &AccountService{Store: s, Guard: guard, Hasher: hasher},
		ids:      ids,
		clock:    clock,
	}
}

func (e *testEnv) register(t *testing.T, email, password string) domain.Account {
	t.Helper()

	acc, err := e.auth.Register(context.Background(), RegisterInput{
		Username: email,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return acc
}

// recordingHooks captures post-commit calls.
type recordingHooks struct {
	mu      sync.Mutex
	works   []string
	entries []string
}

func (h *recordingHooks) AfterWorkSaved(_ context.Context, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.works = append(h.works, id)
}

func (h *recordingHooks) AfterHistoryAppended(_ context.Context, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, id)
}

type statusCall struct {
	report   domain.Report
	old, new string
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []statusCall
}

func (n *recordingNotifier) NotifyStatusChange(_ context.Context, r domain.Report, oldStatus, newStatus string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, statusCall{r, oldStatus, newStatus})
}
