package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
)

// HousekeepingService periodically removes expired sessions and pending
// donations whose checkout was abandoned, so neither table grows without
// bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// How long a pending donation may sit before it is considered
	// abandoned. Checkout sessions at the collaborator expire well
	// before this.
	PendingTTL time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService wires the background cleaner. Interval defaults to
// one hour, PendingTTL to 24 hours.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	return &HousekeepingService{
		Store:      st,
		Logger:     logger,
		Interval:   interval,
		PendingTTL: 24 * time.Hour,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start launches the background worker. Non-blocking; call Stop to shut it
// down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping started", "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress sweep ends.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep runs each cleanup independently; one failing does not stop the rest.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.Store.Sessions().DeleteExpiredSessions(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
	}

	if err := s.Store.Donations().DeleteStalePending(ctx, now.Add(-s.PendingTTL)); err != nil {
		s.Logger.Error("failed to delete stale pending donations", "error", err)
	}

	s.Logger.Debug("housekeeping sweep completed")
}
