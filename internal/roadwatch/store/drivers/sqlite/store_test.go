package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/cryptox"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const seededUserRoleID = "01HZZZZZZZZZZZZZZZZZROLEUS"

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func createAccount(t *testing.T, s store.Store, email string) domain.Account {
	t.Helper()

	now := time.Now().UTC()
	a := domain.Account{
		ID:         idx.MustNew().String(),
		Username:   email,
		Email:      email,
		AuthSource: domain.AuthSourceLocal,
		RoleID:     seededUserRoleID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, s.Accounts().CreateAccount(context.Background(), a))
	return a
}

func TestMigrationsSeedDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	roles, err := s.Roles().ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)

	p, err := s.AuthParams().GetAuthParam(ctx, domain.ParamMaxAttempts)
	require.NoError(t, err)
	require.Equal(t, "3", p.Value)

	// Re-applying is a no-op.
	require.NoError(t, s.ApplyMigrations())
}

func TestAccountsLockout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	a := createAccount(t, s, "a@x.com")

	t.Run("locks when counter reaches the threshold", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			got, err := s.Accounts().IncrementFailedAttempts(ctx, a.ID, 3, time.Now().UTC())
			require.NoError(t, err)
			require.Equal(t, i, got.FailedAttempts)
			require.Equal(t, i >= 3, got.Locked)
		}
	})

	t.Run("reset clears counter and lock", func(t *testing.T) {
		got, err := s.Accounts().ResetFailedAttempts(ctx, a.ID, time.Now().UTC())
		require.NoError(t, err)
		require.Zero(t, got.FailedAttempts)
		require.False(t, got.Locked)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := s.Accounts().IncrementFailedAttempts(ctx, "missing", 3, time.Now().UTC())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestAccountsUniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	a := createAccount(t, s, "dup@x.com")

	a.ID = idx.MustNew().String()
	err := s.Accounts().CreateAccount(ctx, a)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	ok, err := s.Accounts().ExistsByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	found, err := s.Accounts().SearchAccounts(ctx, "DUP")
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestRoleDeleteRestricted(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	createAccount(t, s, "r@x.com")

	err := s.Roles().DeleteRole(context.Background(), seededUserRoleID)
	require.ErrorIs(t, err, store.ErrConstraint)
}

func TestSessionsScopedToAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	a := createAccount(t, s, "s1@x.com")
	b := createAccount(t, s, "s2@x.com")

	now := time.Now().UTC()
	for _, acc := range []domain.Account{a, a, b} {
		require.NoError(t, s.Sessions().CreateSession(ctx, domain.Session{
			ID:        idx.MustNew().String(),
			AccountID: acc.ID,
			TokenHash: idx.MustNew().String(),
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
			Active:    true,
		}))
	}

	n, err := s.Sessions().DeactivateAccountSessions(ctx, a.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	active, err := s.Sessions().ListActiveSessions(ctx, a.ID)
	require.NoError(t, err)
	require.Empty(t, active)

	active, err = s.Sessions().ListActiveSessions(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)

	err = s.Sessions().DeactivateSessionByTokenHash(ctx, "unknown")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionsPersistFingerprintOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	a := createAccount(t, s, "fp@x.com")

	bearer, err := cryptox.NewSessionToken()
	require.NoError(t, err)
	now := time.Now().UTC()
	require.NoError(t, s.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.MustNew().String(),
		AccountID: a.ID,
		Token:     bearer,
		TokenHash: cryptox.FingerprintToken(bearer),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
		Active:    true,
	}))

	var stored string
	require.NoError(t, s.db.QueryRowContext(ctx,
		`SELECT token_hash FROM sessions WHERE account_id = ?`, a.ID).Scan(&stored))
	require.NotEqual(t, bearer, stored)
	require.Equal(t, cryptox.FingerprintToken(bearer), stored)

	var n int
	require.NoError(t, s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE token_hash = ?`, bearer).Scan(&n))
	require.Zero(t, n)
}

func TestSessionsExpirySweep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	a := createAccount(t, s, "exp@x.com")

	now := time.Now().UTC()
	expired := domain.Session{
		ID:        idx.MustNew().String(),
		AccountID: a.ID,
		TokenHash: "expired",
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
		Active:    true,
	}
	require.NoError(t, s.Sessions().CreateSession(ctx, expired))

	n, err := s.Sessions().DeactivateExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = s.Sessions().GetActiveSessionByTokenHash(ctx, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err = s.Sessions().DeleteInactiveSessions(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestReportsExternalID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	rep := domain.Report{
		ID:         idx.MustNew().String(),
		Latitude:   decimal.NewNullDecimal(decimal.RequireFromString("12.34")),
		ReportedAt: time.Now().UTC(),
		Status:     domain.StatusNew,
		ExternalID: "doc-1",
	}
	require.NoError(t, s.Reports().CreateReport(ctx, rep))

	got, err := s.Reports().GetReportByExternalID(ctx, "doc-1")
	require.NoError(t, err)
	require.Equal(t, rep.ID, got.ID)
	require.True(t, got.Latitude.Decimal.Equal(decimal.RequireFromString("12.34")))
	require.False(t, got.Surface.Valid)

	dup := rep
	dup.ID = idx.MustNew().String()
	require.ErrorIs(t, s.Reports().CreateReport(ctx, dup), store.ErrAlreadyExists)

	// Rows without an external id do not collide.
	for range 2 {
		r := rep
		r.ID = idx.MustNew().String()
		r.ExternalID = ""
		require.NoError(t, s.Reports().CreateReport(ctx, r))
	}

	count, err := s.Reports().CountReports(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

func TestWorksRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now().UTC()
	start := domain.DateOnly(now)
	w := domain.Work{
		ID:        idx.MustNew().String(),
		Budget:    decimal.NewNullDecimal(decimal.RequireFromString("1500.50")),
		StartDate: &start,
		Progress:  decimal.NewNullDecimal(decimal.Zero),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Works().CreateWork(ctx, w))

	got, err := s.Works().GetWorkByID(ctx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, got.StartDate)
	require.True(t, start.Equal(*got.StartDate))
	require.Nil(t, got.EndDate)
	require.Empty(t, got.ExternalID)

	require.NoError(t, s.Works().UpdateWorkProgress(ctx, w.ID, decimal.NewFromInt(50), now))
	require.NoError(t, s.Works().SetWorkExternalID(ctx, w.ID, w.ID))

	got, err = s.Works().GetWorkByExternalID(ctx, w.ID)
	require.NoError(t, err)
	require.True(t, got.Progress.Decimal.Equal(decimal.NewFromInt(50)))

	err = s.Works().UpdateWorkProgress(ctx, "missing", decimal.Zero, now)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now().UTC()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Companies().CreateCompany(ctx, domain.Company{
			ID: idx.MustNew().String(), Name: "Colas", CreatedAt: now,
		}); err != nil {
			return err
		}
		return store.ErrConstraint
	})
	require.ErrorIs(t, err, store.ErrConstraint)

	companies, err := s.Companies().ListCompanies(ctx)
	require.NoError(t, err)
	require.Empty(t, companies)
}
