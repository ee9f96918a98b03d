package docsync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createWork(t *testing.T, e *Engine, w domain.Work) domain.Work {
	t.Helper()
	now := time.Now().UTC()
	w.ID = idx.MustNew().String()
	w.CreatedAt, w.UpdatedAt = now, now
	require.NoError(t, e.Store.Works().CreateWork(context.Background(), w))
	return w
}

func TestPushWorkAssignsAndReusesExternalID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, s, docs := newTestEngine(t)

	report := domain.Report{ID: idx.MustNew().String(), ReportedAt: time.Now().UTC(), Status: domain.StatusNew, ExternalID: "rep-ext"}
	require.NoError(t, s.Reports().CreateReport(ctx, report))

	start := domain.DateOnly(time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local))
	w := createWork(t, e, domain.Work{
		ReportID:  report.ID,
		Budget:    decimal.NewNullDecimal(decimal.RequireFromString("2500.75")),
		Progress:  decimal.NewNullDecimal(decimal.NewFromInt(50)),
		StartDate: &start,
	})

	require.NoError(t, e.pushWork(ctx, w.ID))

	got, err := s.Works().GetWorkByID(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, w.ID, got.ExternalID)

	require.NoError(t, e.pushWork(ctx, w.ID))

	sets := docs.Sets()
	require.Len(t, sets, 2)
	for _, call := range sets {
		require.Equal(t, WorksCollection, call.Collection)
		require.Equal(t, w.ID, call.ID)
	}
	fields := sets[0].Fields
	require.Equal(t, "rep-ext", fields["id_signalement"])
	require.Nil(t, fields["id_entreprise"])
	require.InDelta(t, 2500.75, fields["budget"], 1e-9)
	require.InDelta(t, 50.0, fields["avancement"], 1e-9)
	require.Equal(t, start, fields["date_debut_travaux"])
	require.Nil(t, fields["date_fin_travaux"])

	list, err := docs.List(ctx, WorksCollection)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestPushWorkKeepsExistingExternalID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, _, docs := newTestEngine(t)

	w := createWork(t, e, domain.Work{ExternalID: "remote-7"})
	require.NoError(t, e.pushWork(ctx, w.ID))

	sets := docs.Sets()
	require.Len(t, sets, 1)
	require.Equal(t, "remote-7", sets[0].ID)
}

func TestPushFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, s, docs := newTestEngine(t)

	w := createWork(t, e, domain.Work{})
	docs.FailOn(WorksCollection, errors.New("deadline exceeded"))

	require.Error(t, e.pushWork(ctx, w.ID))
	require.NotPanics(t, func() { e.PushWork(ctx, w.ID) })

	got, err := s.Works().GetWorkByID(ctx, w.ID)
	require.NoError(t, err)
	require.Empty(t, got.ExternalID, "id must only be recorded after a successful write")

	require.NotPanics(t, func() { e.PushWork(ctx, "missing") })
}

func TestPushHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, s, docs := newTestEngine(t)

	w := createWork(t, e, domain.Work{ExternalID: "work-ext"})
	entry := domain.WorkHistoryEntry{
		ID:        idx.MustNew().String(),
		WorkID:    w.ID,
		ChangedAt: time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC),
		Progress:  decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Note:      "Travaux terminés",
	}
	require.NoError(t, s.WorkHistory().CreateHistoryEntry(ctx, entry))

	e.AfterHistoryAppended(ctx, entry.ID)

	sets := docs.Sets()
	require.Len(t, sets, 1)
	require.Equal(t, HistoryCollection, sets[0].Collection)
	require.Equal(t, entry.ID, sets[0].ID)
	require.Equal(t, "work-ext", sets[0].Fields["id_travaux"])
	require.Equal(t, "Travaux terminés", sets[0].Fields["commentaire"])
	require.InDelta(t, 100.0, sets[0].Fields["avancement"], 1e-9)

	got, err := s.WorkHistory().GetHistoryEntryByID(ctx, entry.ID)
	require.NoError(t, err)
	require.Equal(t, entry.ID, got.ExternalID)
}

func TestPushTimeout(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	e.PushTimeout = 20 * time.Millisecond

	w := createWork(t, e, domain.Work{})

	// another push holds the record
	unlock, err := e.Locker.Lock(context.Background(), "sync:push:"+WorksCollection+":"+w.ID)
	require.NoError(t, err)
	defer unlock()

	err = e.pushWork(context.Background(), w.ID)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
