package roadwatch_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	client := setupContainer(t, relaxedLimits)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)

	health, err = client.Readyz(t.Context())
	assertHealthy(t, health, err)
	require.Equal(t, "ok", health.Checks.Database)
}

// TestCitizenReportFlow registers a citizen, files a report and reads it
// back through the public endpoints.
func TestCitizenReportFlow(t *testing.T) {
	client := setupContainer(t, relaxedLimits)
	ctx := context.Background()

	citizen, login := registerAndLogin(t, client, "citoyen@mail.mg")

	me, err := citizen.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "UTILISATEUR", me.Role.Name)

	lat := decimal.RequireFromString("-18.8792")
	lng := decimal.RequireFromString("47.5079")
	report, err := citizen.CreateReport(ctx, roadwatchsdk.ReportRequest{
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)
	require.Equal(t, login.Account.ID, report.UserID)
	require.Equal(t, "nouveau", report.Status)

	got, err := client.GetReport(ctx, report.ID)
	require.NoError(t, err)
	require.True(t, got.Latitude.Decimal.Equal(lat))

	stats, err := client.ReportStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats["nouveau"])

	// Status changes are reserved to managers.
	_, err = citizen.UpdateReportStatus(ctx, report.ID, "terminé")
	require.ErrorIs(t, err, roadwatchsdk.ErrForbidden)

	require.NoError(t, citizen.Logout(ctx))
	_, err = citizen.Me(ctx)
	require.ErrorIs(t, err, roadwatchsdk.ErrInvalidToken)
}

func TestLockoutAfterFailedLogins(t *testing.T) {
	client := setupContainer(t, relaxedLimits)
	ctx := context.Background()

	registerAndLogin(t, client, "distrait@mail.mg")

	for i := range 3 {
		_, _, err := client.Login(ctx, "distrait@mail.mg", "wrong-password")
		require.ErrorIs(t, err, roadwatchsdk.ErrInvalidCredentials, "attempt %d", i+1)
	}

	_, _, err := client.Login(ctx, "distrait@mail.mg", testPassword)
	require.ErrorIs(t, err, roadwatchsdk.ErrAccountLocked)
}

// TestSyncUnavailableWithoutFirebase checks the sync endpoint degrades when
// no document store is configured.
func TestSyncUnavailableWithoutFirebase(t *testing.T) {
	client := setupContainer(t, relaxedLimits)

	_, err := client.Sync(t.Context())
	// Anonymous callers are refused before the handler runs.
	require.ErrorIs(t, err, roadwatchsdk.ErrInvalidToken)
	require.Equal(t, http.StatusUnauthorized, roadwatchsdk.StatusCode(err))
}

// TestRateLimitLogin runs with production limits: five quick attempts for
// the same email pass, the sixth is refused.
func TestRateLimitLogin(t *testing.T) {
	client := setupContainer(t, nil)
	ctx := context.Background()

	var lastErr error
	for i := range 6 {
		_, _, err := client.Login(ctx, "inconnu@mail.mg", "whatever")
		if i < 5 {
			require.ErrorIs(t, err, roadwatchsdk.ErrInvalidCredentials, "request %d", i+1)
			continue
		}
		lastErr = err
	}

	require.ErrorIs(t, lastErr, roadwatchsdk.ErrRateLimited)
}
