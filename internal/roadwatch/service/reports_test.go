package service

import (
	"context"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestStatusTransitionsAppendHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	hooks := &recordingHooks{}
	notifier := &recordingNotifier{}

	reports := &ReportService{Store: s, Hooks: hooks, Notifier: notifier}
	works := &WorkService{Store: s, Hooks: hooks}

	r, err := reports.Create(ctx, ReportInput{
		Latitude:    ptr(decimal.RequireFromString("-18.91")),
		Longitude:   ptr(decimal.RequireFromString("47.52")),
		UserID:      ptr("user-1"),
		ProblemType: ptr("nid de poule"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusNew, r.Status)

	w, err := works.Create(ctx, WorkInput{ReportID: &r.ID, Progress: ptr(decimal.Zero)})
	require.NoError(t, err)

	for _, st := range []string{domain.StatusInProgress, domain.StatusInProgress, "TERMINÉ"} {
		_, _, err := reports.UpdateStatus(ctx, r.ID, st)
		require.NoError(t, err)
	}

	history, err := s.WorkHistory().ListHistoryByWork(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.True(t, history[0].Progress.Decimal.Equal(decimal.NewFromInt(50)))
	require.Equal(t, "Travaux en cours", history[0].Note)
	require.True(t, history[1].Progress.Decimal.Equal(decimal.NewFromInt(100)))
	require.Equal(t, "Travaux terminés", history[1].Note)

	got, err := works.Get(ctx, w.ID)
	require.NoError(t, err)
	require.True(t, got.Progress.Decimal.Equal(decimal.NewFromInt(100)))

	// one push for the create, one per effective change
	require.Equal(t, []string{w.ID, w.ID, w.ID}, hooks.works)
	require.Equal(t, []string{history[0].ID, history[1].ID}, hooks.entries)

	require.Len(t, notifier.calls, 2)
	require.Equal(t, domain.StatusNew, notifier.calls[0].old)
	require.Equal(t, domain.StatusInProgress, notifier.calls[0].new)
	require.Equal(t, domain.StatusDone, notifier.calls[1].new)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reports := &ReportService{Store: newTestStore(t)}

	r, err := reports.Create(ctx, ReportInput{})
	require.NoError(t, err)

	_, _, err = reports.UpdateStatus(ctx, r.ID, "non traité")
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, _, err = reports.UpdateStatus(ctx, "missing", domain.StatusDone)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApplyStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("report without work is a no-op", func(t *testing.T) {
		s := newTestStore(t)
		r, err := (&ReportService{Store: s}).Create(ctx, ReportInput{})
		require.NoError(t, err)

		change, err := ApplyStatus(ctx, s, r.ID, domain.StatusDone, time.Now())
		require.NoError(t, err)
		require.False(t, change.Changed)
	})

	t.Run("null progress counts as a change", func(t *testing.T) {
		s := newTestStore(t)
		r, err := (&ReportService{Store: s}).Create(ctx, ReportInput{})
		require.NoError(t, err)
		w, err := (&WorkService{Store: s}).Create(ctx, WorkInput{ReportID: &r.ID})
		require.NoError(t, err)

		change, err := ApplyStatus(ctx, s, r.ID, domain.StatusNew, time.Now())
		require.NoError(t, err)
		require.True(t, change.Changed)
		require.Equal(t, w.ID, change.Entry.WorkID)
		require.True(t, change.Entry.Progress.Decimal.IsZero())
		require.Equal(t, "Travaux non commencés", change.Entry.Note)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := ApplyStatus(ctx, newTestStore(t), "x", "bogus", time.Now())
		require.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestReportUpdateIsPartial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reports := &ReportService{Store: newTestStore(t)}

	r, err := reports.Create(ctx, ReportInput{
		Surface:     ptr(decimal.NewFromInt(12)),
		Description: ptr("Route coupée"),
	})
	require.NoError(t, err)

	got, err := reports.Update(ctx, r.ID, ReportInput{ProblemType: ptr("inondation")})
	require.NoError(t, err)
	require.Equal(t, "inondation", got.ProblemType)
	require.Equal(t, "Route coupée", got.Description)
	require.True(t, got.Surface.Decimal.Equal(decimal.NewFromInt(12)))

	_, err = reports.Update(ctx, r.ID, ReportInput{Latitude: ptr(decimal.NewFromInt(91))})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = reports.Update(ctx, r.ID, ReportInput{PlaceID: ptr("nowhere")})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestReportQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := &testClock{now: time.Now().UTC()}
	reports := &ReportService{Store: newTestStore(t), Now: clock.Now}

	old, err := reports.Create(ctx, ReportInput{
		ReportedAt:  ptr(clock.Now().Add(-10 * 24 * time.Hour)),
		Description: ptr("Affaissement de la chaussée"),
		Status:      ptr(domain.StatusDone),
	})
	require.NoError(t, err)
	fresh, err := reports.Create(ctx, ReportInput{Description: ptr("Nid de poule profond")})
	require.NoError(t, err)

	recent, err := reports.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, fresh.ID, recent[0].ID)

	found, err := reports.Search(ctx, "CHAUSSÉE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, old.ID, found[0].ID)

	stats, err := reports.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats[StatsTotalKey])
	require.EqualValues(t, 1, stats[domain.StatusNew])
	require.EqualValues(t, 1, stats[domain.StatusDone])
	require.EqualValues(t, 0, stats[domain.StatusInProgress])

	_, err = reports.ListByStatus(ctx, "bogus")
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = reports.ListInArea(ctx, domain.Area{MinLat: decimal.NewFromInt(5), MaxLat: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestWorkValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	works := &WorkService{Store: s}

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, -1)

	tests := []struct {
		name string
		in   WorkInput
	}{
		{"unknown report", WorkInput{ReportID: ptr("missing")}},
		{"unknown company", WorkInput{CompanyID: ptr("missing")}},
		{"negative budget", WorkInput{Budget: ptr(decimal.NewFromInt(-1))}},
		{"progress above 100", WorkInput{Progress: ptr(decimal.NewFromInt(101))}},
		{"end before start", WorkInput{StartDate: &start, EndDate: &end}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := works.Create(ctx, tt.in)
			require.ErrorIs(t, err, ErrInvalidRequest)
		})
	}

	r, err := (&ReportService{Store: s}).Create(ctx, ReportInput{})
	require.NoError(t, err)
	_, err = works.Create(ctx, WorkInput{ReportID: &r.ID})
	require.NoError(t, err)
	_, err = works.Create(ctx, WorkInput{ReportID: &r.ID})
	require.ErrorIs(t, err, ErrConflict)
}

func TestHistoryAppend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	hooks := &recordingHooks{}
	history := &HistoryService{Store: s, Hooks: hooks}

	w, err := (&WorkService{Store: s}).Create(ctx, WorkInput{Progress: ptr(decimal.NewFromInt(10))})
	require.NoError(t, err)

	e, err := history.Append(ctx, HistoryInput{WorkID: w.ID, Progress: ptr(decimal.NewFromInt(30)), Note: ptr(" Enrobé posé ")})
	require.NoError(t, err)
	require.Equal(t, "Enrobé posé", e.Note)
	require.Equal(t, []string{e.ID}, hooks.entries)

	// appending does not move the work itself
	got, err := s.Works().GetWorkByID(ctx, w.ID)
	require.NoError(t, err)
	require.True(t, got.Progress.Decimal.Equal(decimal.NewFromInt(10)))

	_, err = history.Append(ctx, HistoryInput{WorkID: "missing"})
	require.ErrorIs(t, err, ErrNotFound)
}
