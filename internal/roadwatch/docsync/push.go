package docsync

import (
	"context"
	"fmt"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/pkg/metrics"
	"github.com/shopspring/decimal"
)

// PushWork writes the work to the document store. Failures are logged and
// dropped: the local write has already committed.
func (e *Engine) PushWork(ctx context.Context, workID string) {
	if err := e.pushWork(ctx, workID); err != nil {
		metrics.SyncPush(WorksCollection, metrics.OutcomeError)
		e.log(ctx).Warn("push failed", "collection", WorksCollection, "work_id", workID, "error", err)
	}
}

// PushHistory writes the history entry to the document store, best-effort.
func (e *Engine) PushHistory(ctx context.Context, entryID string) {
	if err := e.pushHistory(ctx, entryID); err != nil {
		metrics.SyncPush(HistoryCollection, metrics.OutcomeError)
		e.log(ctx).Warn("push failed", "collection", HistoryCollection, "entry_id", entryID, "error", err)
	}
}

// pushContext detaches from the caller's cancellation so a disconnecting
// client does not abandon a push, and bounds it by the push timeout.
func (e *Engine) pushContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), e.pushTimeout())
}

func (e *Engine) pushWork(ctx context.Context, workID string) error {
	ctx, cancel := e.pushContext(ctx)
	defer cancel()

	unlock, err := e.Locker.Lock(ctx, "sync:push:"+WorksCollection+":"+workID)
	if err != nil {
		return fmt.Errorf("acquire push lock: %w", err)
	}
	defer unlock()

	w, err := e.Store.Works().GetWorkByID(ctx, workID)
	if err != nil {
		return fmt.Errorf("load work: %w", err)
	}

	fields, err := e.workFields(ctx, w)
	if err != nil {
		return err
	}

	docID := w.ExternalID
	if docID == "" {
		docID = w.ID
	}
	if err := e.Docs.Set(ctx, WorksCollection, docID, fields); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	if w.ExternalID == "" {
		if err := e.Store.Works().SetWorkExternalID(ctx, w.ID, docID); err != nil {
			return fmt.Errorf("record external id: %w", err)
		}
	}

	metrics.SyncPush(WorksCollection, metrics.OutcomeSuccess)
	e.log(ctx).Debug("work pushed", "work_id", w.ID, "doc_id", docID)
	return nil
}

func (e *Engine) workFields(ctx context.Context, w domain.Work) (map[string]any, error) {
	fields := map[string]any{
		"id_signalement":     nil,
		"id_entreprise":      nil,
		"budget":             nullFloat(w.Budget),
		"avancement":         nullFloat(w.Progress),
		"date_debut_travaux": nullTime(w.StartDate),
		"date_fin_travaux":   nullTime(w.EndDate),
	}

	if w.ReportID != "" {
		r, err := e.Store.Reports().GetReportByID(ctx, w.ReportID)
		if err != nil {
			return nil, fmt.Errorf("load report %s: %w", w.ReportID, err)
		}
		fields["id_signalement"] = externalOrLocal(r.ExternalID, r.ID)
	}
	if w.CompanyID != "" {
		fields["id_entreprise"] = w.CompanyID
	}
	return fields, nil
}

func (e *Engine) pushHistory(ctx context.Context, entryID string) error {
	ctx, cancel := e.pushContext(ctx)
	defer cancel()

	unlock, err := e.Locker.Lock(ctx, "sync:push:"+HistoryCollection+":"+entryID)
	if err != nil {
		return fmt.Errorf("acquire push lock: %w", err)
	}
	defer unlock()

	h, err := e.Store.WorkHistory().GetHistoryEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("load history entry: %w", err)
	}
	w, err := e.Store.Works().GetWorkByID(ctx, h.WorkID)
	if err != nil {
		return fmt.Errorf("load work %s: %w", h.WorkID, err)
	}

	docID := externalOrLocal(h.ExternalID, h.ID)
	fields := map[string]any{
		"id_travaux":        externalOrLocal(w.ExternalID, w.ID),
		"date_modification": h.ChangedAt.UTC(),
		"avancement":        nullFloat(h.Progress),
		"commentaire":       h.Note,
	}
	if err := e.Docs.Set(ctx, HistoryCollection, docID, fields); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	if h.ExternalID == "" {
		if err := e.Store.WorkHistory().SetHistoryExternalID(ctx, h.ID, docID); err != nil {
			return fmt.Errorf("record external id: %w", err)
		}
	}

	metrics.SyncPush(HistoryCollection, metrics.OutcomeSuccess)
	e.log(ctx).Debug("history entry pushed", "entry_id", h.ID, "doc_id", docID)
	return nil
}

func externalOrLocal(externalID, id string) string {
	if externalID != "" {
		return externalID
	}
	return id
}

func nullFloat(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.InexactFloat64()
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
