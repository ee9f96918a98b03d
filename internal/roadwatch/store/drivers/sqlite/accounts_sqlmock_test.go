package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/stretchr/testify/require"
)

// The lockout counter moves in one UPDATE ... RETURNING, no prior SELECT.
func TestIncrementFailedAttemptsIsSingleStatement(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "username", "email", "password_hash", "auth_source", "role_id",
		"failed_attempts", "locked", "created_at", "updated_at",
	}).AddRow("acc-1", "alice", "a@x.com", "", "local", "role-1", 3, true, now, now)

	mock.ExpectQuery(incrementFailedAttemptsQuery).
		WithArgs(3, now, "acc-1").
		WillReturnRows(rows)

	repo := &accountsRepo{q: db}
	got, err := repo.IncrementFailedAttempts(context.Background(), "acc-1", 3, now)
	require.NoError(t, err)
	require.Equal(t, 3, got.FailedAttempts)
	require.True(t, got.Locked)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResetFailedAttemptsNotFound(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	mock.ExpectQuery(resetFailedAttemptsQuery).
		WithArgs(now, "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &accountsRepo{q: db}
	_, err = repo.ResetFailedAttempts(context.Background(), "missing", now)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
