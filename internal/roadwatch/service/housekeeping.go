package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
)

// HousekeepingService periodically closes expired sessions, purges old
// inactive ones and, when configured, pulls from the document store.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	// Pull runs every PullInterval when both are set, on its own goroutine so
	// a slow pull never delays the session sweep. Its context is cancelled by
	// Stop.
	Pull         func(ctx context.Context) error
	PullInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &HousekeepingService{
		Store:     store,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		ctx:       ctx,
		cancel:    cancel,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval, "retention", s.Retention, "pull_interval", s.pullInterval())
}

// Stop blocks until any in-progress run has finished.
func (s *HousekeepingService) Stop() {
	s.cancel()
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) pullInterval() time.Duration {
	if s.Pull == nil {
		return 0
	}
	return s.PullInterval
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	var wg sync.WaitGroup
	if d := s.pullInterval(); d > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.every(d, s.pull)
		}()
	}

	s.cleanup()
	s.every(s.Interval, s.cleanup)
	wg.Wait()
}

// every calls fn on each tick until Stop.
func (s *HousekeepingService) every(d time.Duration, fn func()) {
	ticker := time.NewTicker(d)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fn()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup runs each step independently; one failing does not stop the next.
func (s *HousekeepingService) cleanup() {
	ctx := s.ctx
	now := time.Now().UTC()

	if n, err := s.Store.Sessions().DeactivateExpiredSessions(ctx, now); err != nil {
		s.Logger.Error("failed to deactivate expired sessions", "error", err)
	} else {
		s.Logger.Debug("deactivated expired sessions", "count", n)
	}

	if n, err := s.Store.Sessions().DeleteInactiveSessions(ctx, now.Add(-s.Retention)); err != nil {
		s.Logger.Error("failed to delete old sessions", "error", err)
	} else {
		s.Logger.Debug("deleted old sessions", "count", n)
	}
}

func (s *HousekeepingService) pull() {
	if err := s.Pull(s.ctx); err != nil {
		s.Logger.Error("periodic pull failed", "error", err)
	}
}
