// Package docsync reconciles the relational store with the external document
// store: an idempotent pull of reports and works, and a best-effort push of
// works and their history.
package docsync

import (
	"context"
	"log/slog"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/docstore"
	"github.com/roadwatch/roadwatch/pkg/slogx"
)

// Collection names in the document store.
const (
	ReportsCollection = "signalements"
	WorksCollection   = "travaux"
	HistoryCollection = "historiques_travaux"
)

const (
	pullLockKey        = "sync:pull"
	DefaultPushTimeout = 10 * time.Second
	DefaultPullTimeout = 2 * time.Minute
)

type Engine struct {
	Store       store.Store
	Docs        docstore.Store
	Locker Locker
	// Logger is used when the context carries no request logger.
	Logger *slog.Logger

	PushTimeout time.Duration
	// PullTimeout bounds a whole pull, lock wait included.
	PullTimeout time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func NewEngine(s store.Store, docs docstore.Store, locker Locker, logger *slog.Logger) *Engine {
	if locker == nil {
		locker = NewLocalLocker()
	}
	return &Engine{
		Store:       s,
		Docs:        docs,
		Locker:      locker,
		Logger:      logger,
		PushTimeout: DefaultPushTimeout,
		PullTimeout: DefaultPullTimeout,
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) log(ctx context.Context) *slog.Logger {
	return slogx.FromContextOr(ctx, e.Logger)
}

func (e *Engine) pushTimeout() time.Duration {
	if e.PushTimeout <= 0 {
		return DefaultPushTimeout
	}
	return e.PushTimeout
}

func (e *Engine) pullTimeout() time.Duration {
	if e.PullTimeout <= 0 {
		return DefaultPullTimeout
	}
	return e.PullTimeout
}

// AfterWorkSaved pushes the work once its write has committed.
func (e *Engine) AfterWorkSaved(ctx context.Context, workID string) {
	e.PushWork(ctx, workID)
}

// AfterHistoryAppended pushes the entry once its write has committed.
func (e *Engine) AfterHistoryAppended(ctx context.Context, entryID string) {
	e.PushHistory(ctx, entryID)
}
