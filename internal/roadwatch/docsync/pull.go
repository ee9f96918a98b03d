package docsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/docstore"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/roadwatch/roadwatch/pkg/metrics"
	"github.com/roadwatch/roadwatch/pkg/slogx"
)

// PullStats counts what happened to the documents of one collection.
type PullStats struct {
	Seen     int `json:"seen"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type PullResult struct {
	Reports PullStats `json:"signalements"`
	Works   PullStats `json:"travaux"`
}

// SyncIncoming copies documents not yet known locally from the document
// store. Documents already linked by external id are left untouched. Reports
// go first so works can resolve their report reference.
func (e *Engine) SyncIncoming(ctx context.Context) (PullResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.pullTimeout())
	defer cancel()

	unlock, err := e.Locker.Lock(ctx, pullLockKey)
	if err != nil {
		return PullResult{}, fmt.Errorf("acquire pull lock: %w", err)
	}
	defer unlock()

	l := e.log(ctx).With("component", "sync")
	ctx = slogx.WithContext(ctx, l)

	var res PullResult
	var errs []error

	res.Reports, err = e.pullCollection(ctx, ReportsCollection, e.pullReport)
	if err != nil {
		errs = append(errs, err)
	}
	res.Works, err = e.pullCollection(ctx, WorksCollection, e.pullWork)
	if err != nil {
		errs = append(errs, err)
	}

	l.Info("pull finished",
		slog.Group("signalements",
			"seen", res.Reports.Seen, "inserted", res.Reports.Inserted,
			"skipped", res.Reports.Skipped, "failed", res.Reports.Failed),
		slog.Group("travaux",
			"seen", res.Works.Seen, "inserted", res.Works.Inserted,
			"skipped", res.Works.Skipped, "failed", res.Works.Failed),
	)
	return res, errors.Join(errs...)
}

// pullCollection applies pull to every document of collection. A failing
// document is logged and counted, never fatal.
func (e *Engine) pullCollection(
	ctx context.Context,
	collection string,
	pull func(context.Context, docstore.Document) (bool, error),
) (PullStats, error) {
	l := e.log(ctx)

	docs, err := e.Docs.List(ctx, collection)
	if err != nil {
		return PullStats{}, fmt.Errorf("list %s: %w", collection, err)
	}

	stats := PullStats{Seen: len(docs)}
	for _, doc := range docs {
		inserted, err := pull(ctx, doc)
		switch {
		case err != nil:
			stats.Failed++
			l.Warn("skipping document", "collection", collection, "doc_id", doc.ID, "error", err)
		case inserted:
			stats.Inserted++
		default:
			stats.Skipped++
		}
	}

	metrics.SyncDocuments(collection, metrics.OutcomeInserted, stats.Inserted)
	metrics.SyncDocuments(collection, metrics.OutcomeSkipped, stats.Skipped)
	metrics.SyncDocuments(collection, metrics.OutcomeError, stats.Failed)
	return stats, nil
}

// findOrCreate inserts a row for externalID unless one exists. A concurrent
// insert that wins the unique index counts as found.
func findOrCreate[T any](
	ctx context.Context,
	externalID string,
	find func(context.Context, string) (T, error),
	create func(context.Context) error,
) (bool, error) {
	_, err := find(ctx, externalID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	err = create(ctx)
	if errors.Is(err, store.ErrAlreadyExists) {
		return false, nil
	}
	return err == nil, err
}

func (e *Engine) pullReport(ctx context.Context, doc docstore.Document) (bool, error) {
	return findOrCreate(ctx, doc.ID, e.Store.Reports().GetReportByExternalID, func(ctx context.Context) error {
		r, err := e.reportFromDocument(ctx, doc)
		if err != nil {
			return err
		}
		return e.Store.Reports().CreateReport(ctx, r)
	})
}

func (e *Engine) reportFromDocument(ctx context.Context, doc docstore.Document) (domain.Report, error) {
	r := domain.Report{ID: idx.MustNew().String(), ExternalID: doc.ID}
	var err error

	if r.Latitude, err = decimalField(doc.Fields, "latitude"); err != nil {
		return r, err
	}
	if r.Longitude, err = decimalField(doc.Fields, "longitude"); err != nil {
		return r, err
	}
	if r.Surface, err = decimalField(doc.Fields, "surface"); err != nil {
		return r, err
	}
	if r.UserID, err = stringField(doc.Fields, "Id_User"); err != nil {
		return r, err
	}
	if r.ProblemType, err = stringField(doc.Fields, "type_probleme"); err != nil {
		return r, err
	}
	if r.Description, err = stringField(doc.Fields, "description"); err != nil {
		return r, err
	}

	raw, err := stringField(doc.Fields, "statut")
	if err != nil {
		return r, err
	}
	r.Status = domain.StatusNew
	if raw != "" {
		if st, err := domain.ParseStatus(raw); err == nil {
			r.Status = st
		} else {
			e.log(ctx).Warn("unknown remote status, using default",
				"doc_id", doc.ID, "statut", raw, "default", domain.StatusNew)
		}
	}

	// full timestamps are kept in UTC
	at, ok, err := timeField(doc.Fields, "date_ajoute")
	if err != nil {
		return r, err
	}
	if !ok {
		at = e.now()
	}
	r.ReportedAt = at.UTC()

	return r, nil
}

func (e *Engine) pullWork(ctx context.Context, doc docstore.Document) (bool, error) {
	return findOrCreate(ctx, doc.ID, e.Store.Works().GetWorkByExternalID, func(ctx context.Context) error {
		w, err := e.workFromDocument(ctx, doc)
		if err != nil {
			return err
		}
		return e.Store.Works().CreateWork(ctx, w)
	})
}

func (e *Engine) workFromDocument(ctx context.Context, doc docstore.Document) (domain.Work, error) {
	l := e.log(ctx)
	now := e.now().UTC()
	w := domain.Work{ID: idx.MustNew().String(), ExternalID: doc.ID, CreatedAt: now, UpdatedAt: now}
	var err error

	if w.Budget, err = decimalField(doc.Fields, "budget"); err != nil {
		return w, err
	}
	if w.Progress, err = decimalField(doc.Fields, "avancement"); err != nil {
		return w, err
	}

	if w.StartDate, err = dateField(doc.Fields, "date_debut_travaux"); err != nil {
		return w, err
	}
	if w.EndDate, err = dateField(doc.Fields, "date_fin_travaux"); err != nil {
		return w, err
	}

	reportRef, err := stringField(doc.Fields, "id_signalement")
	if err != nil {
		return w, err
	}
	if reportRef != "" {
		w.ReportID, err = e.resolveReport(ctx, reportRef)
		if err != nil {
			return w, err
		}
		if w.ReportID == "" {
			l.Debug("report not synced yet, leaving reference unset", "doc_id", doc.ID, "id_signalement", reportRef)
		}
	}

	companyRef, err := stringField(doc.Fields, "id_entreprise")
	if err != nil {
		return w, err
	}
	if companyRef != "" {
		_, err := e.Store.Companies().GetCompanyByID(ctx, companyRef)
		switch {
		case err == nil:
			w.CompanyID = companyRef
		case errors.Is(err, store.ErrNotFound):
			l.Debug("unknown company, leaving reference unset", "doc_id", doc.ID, "id_entreprise", companyRef)
		default:
			return w, err
		}
	}

	return w, nil
}

// resolveReport maps a report's external id to its local id. It returns ""
// when the report is unknown or already carries a work.
func (e *Engine) resolveReport(ctx context.Context, externalID string) (string, error) {
	r, err := e.Store.Reports().GetReportByExternalID(ctx, externalID)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	_, err = e.Store.Works().GetWorkByReportID(ctx, r.ID)
	if err == nil {
		e.log(ctx).Warn("report already has a work, leaving reference unset", "report_id", r.ID)
		return "", nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}
	return r.ID, nil
}
