package service

import (
	"log/slog"
	"time"
)

// HousekeepingService periodically prunes the revocation list so it doesn't
// grow without bound. Entries it drops are for tokens that have expired on
// their own; the verifier would reject those before the list is consulted.
type HousekeepingService struct {
	Revocations *RevocationList
	Logger      *slog.Logger
	Interval    time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 minute.
func NewHousekeepingService(revocations *RevocationList, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Minute
	}

	return &HousekeepingService{
		Revocations: revocations,
		Logger:      logger,
		Interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut it
// down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the background worker. Blocks until any in-progress prune
// has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.prune()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) prune() {
	pruned := s.Revocations.PruneExpired(time.Now())
	if pruned > 0 {
		s.Logger.Debug("pruned expired revocations", "pruned", pruned, "remaining", s.Revocations.Len())
	}
}
