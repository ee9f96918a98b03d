package docsync

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store/drivers/sqlite"
	"github.com/roadwatch/roadwatch/pkg/docstore"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, store.Store, *docstore.Memory) {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	docs := docstore.NewMemory()
	return NewEngine(s, docs, nil, slog.New(slog.DiscardHandler)), s, docs
}

func countReports(t *testing.T, s store.Store) int64 {
	t.Helper()
	n, err := s.Reports().CountReports(context.Background())
	require.NoError(t, err)
	return n
}

func TestPullIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, s, docs := newTestEngine(t)

	docs.Put(ReportsCollection, "r1", map[string]any{"latitude": 1.5, "statut": "en cours"})
	docs.Put(ReportsCollection, "r2", map[string]any{"latitude": "2"})
	docs.Put(WorksCollection, "w1", map[string]any{"id_signalement": "r1", "avancement": 50})

	first, err := e.SyncIncoming(ctx)
	require.NoError(t, err)
	require.Equal(t, PullStats{Seen: 2, Inserted: 2}, first.Reports)
	require.Equal(t, PullStats{Seen: 1, Inserted: 1}, first.Works)

	second, err := e.SyncIncoming(ctx)
	require.NoError(t, err)
	require.Equal(t, PullStats{Seen: 2, Skipped: 2}, second.Reports)
	require.Equal(t, PullStats{Seen: 1, Skipped: 1}, second.Works)

	require.EqualValues(t, 2, countReports(t, s))
	n, err := s.Works().CountWorks(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestPullCoercesLooseTypes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, s, docs := newTestEngine(t)

	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.FixedZone("EAT", 3*3600))
	docs.Put(ReportsCollection, "doc-42", map[string]any{
		"latitude":      "12.34",
		"longitude":     56,
		"surface":       nil,
		"Id_User":       "uid-7",
		"type_probleme": "nid de poule",
		"statut":        "Terminé",
		"date_ajoute":   at,
	})

	res, err := e.SyncIncoming(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Reports.Inserted)

	r, err := s.Reports().GetReportByExternalID(ctx, "doc-42")
	require.NoError(t, err)
	require.Equal(t, "doc-42", r.ExternalID)
	require.True(t, r.Latitude.Valid)
	require.True(t, r.Latitude.Decimal.Equal(decimal.RequireFromString("12.34")))
	require.True(t, r.Longitude.Decimal.Equal(decimal.NewFromInt(56)))
	require.False(t, r.Surface.Valid)
	require.Equal(t, "uid-7", r.UserID)
	require.Equal(t, domain.StatusDone, r.Status)
	require.True(t, r.ReportedAt.Equal(at))
}

func TestPullSkipsBadDocumentsOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, s, docs := newTestEngine(t)

	docs.Put(ReportsCollection, "a-good", map[string]any{"latitude": 1})
	docs.Put(ReportsCollection, "b-bool", map[string]any{"latitude": true})
	docs.Put(ReportsCollection, "c-word", map[string]any{"surface": "grand"})
	docs.Put(ReportsCollection, "d-good", map[string]any{"statut": "inconnu"})

	res, err := e.SyncIncoming(ctx)
	require.NoError(t, err)
	require.Equal(t, PullStats{Seen: 4, Inserted: 2, Failed: 2}, res.Reports)
	require.EqualValues(t, 2, countReports(t, s))

	r, err := s.Reports().GetReportByExternalID(ctx, "d-good")
	require.NoError(t, err)
	require.Equal(t, domain.StatusNew, r.Status)
}

func TestPullResolvesWorkReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e, s, docs := newTestEngine(t)

	company := domain.Company{ID: idx.MustNew().String(), Name: "Colas", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Companies().CreateCompany(ctx, company))

	start := time.Date(2026, 4, 1, 23, 0, 0, 0, time.UTC)
	docs.Put(ReportsCollection, "rep", map[string]any{})
	docs.Put(WorksCollection, "linked", map[string]any{
		"id_signalement":     "rep",
		"id_entreprise":      company.ID,
		"budget":             "1500000.50",
		"date_debut_travaux": start,
	})
	docs.Put(WorksCollection, "orphan", map[string]any{
		"id_signalement": "never-synced",
		"id_entreprise":  "no-such-company",
	})

	res, err := e.SyncIncoming(ctx)
	require.NoError(t, err)
	require.Equal(t, PullStats{Seen: 2, Inserted: 2}, res.Works)

	rep, err := s.Reports().GetReportByExternalID(ctx, "rep")
	require.NoError(t, err)

	linked, err := s.Works().GetWorkByExternalID(ctx, "linked")
	require.NoError(t, err)
	require.Equal(t, rep.ID, linked.ReportID)
	require.Equal(t, company.ID, linked.CompanyID)
	require.True(t, linked.Budget.Decimal.Equal(decimal.RequireFromString("1500000.5")))
	require.NotNil(t, linked.StartDate)
	require.Equal(t, domain.DateOnly(start), *linked.StartDate)
	require.Nil(t, linked.EndDate)

	orphan, err := s.Works().GetWorkByExternalID(ctx, "orphan")
	require.NoError(t, err)
	require.Empty(t, orphan.ReportID)
	require.Empty(t, orphan.CompanyID)
}

func TestPullListFailure(t *testing.T) {
	t.Parallel()
	e, _, docs := newTestEngine(t)

	docs.FailOn(ReportsCollection, errors.New("unavailable"))
	docs.Put(WorksCollection, "w", map[string]any{})

	res, err := e.SyncIncoming(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, res.Works.Inserted)
}

func TestPullIsSerialised(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)

	unlock, err := e.Locker.Lock(context.Background(), pullLockKey)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = e.SyncIncoming(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFindOrCreateRace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	find := func(context.Context, string) (int, error) { return 0, store.ErrNotFound }
	created, err := findOrCreate(ctx, "x", find, func(context.Context) error { return store.ErrAlreadyExists })
	require.NoError(t, err)
	require.False(t, created)

	boom := errors.New("boom")
	_, err = findOrCreate(ctx, "x", func(context.Context, string) (int, error) { return 0, boom }, nil)
	require.ErrorIs(t, err, boom)
}

// stalledDocs never answers a List until the caller gives up.
type stalledDocs struct {
	*docstore.Memory
}

func (stalledDocs) List(ctx context.Context, _ string) ([]docstore.Document, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestPullGivesUpOnStalledStore(t *testing.T) {
	t.Parallel()
	e, s, docs := newTestEngine(t)
	docs.Put(ReportsCollection, "r1", map[string]any{"latitude": 1})

	e.Docs = stalledDocs{docstore.NewMemory()}
	e.PullTimeout = 50 * time.Millisecond

	start := time.Now()
	_, err := e.SyncIncoming(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 2*time.Second)

	// the lock was released, so the next pull runs
	e.Docs = docs
	res, err := e.SyncIncoming(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.Reports.Inserted)
	require.EqualValues(t, 1, countReports(t, s))
}
