package scheduler

import (
	"context"
	"time"

	"github.com/dguzman/sigae-sync/internal/config"
	"github.com/dguzman/sigae-sync/internal/service"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the periodic sync loops: discovery of newly reported
// incidents and re-sync of incidents that are still open.
type Scheduler struct {
	syncService service.SyncService
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewScheduler creates a new Scheduler.
func NewScheduler(syncService service.SyncService, logger *logrus.Logger, cfg *config.Config) *Scheduler {
	return &Scheduler{
		syncService: syncService,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start launches both loops in their own goroutines; they exit when ctx is
// cancelled. Each tick runs to completion before the next is honoured, so a
// slow upstream stretches the effective interval instead of piling up runs.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting sync scheduler...")
	go s.run(ctx, "latest_incidents", s.cfg.LatestSyncInterval, s.syncService.SyncLatestIncidents)
	go s.run(ctx, "open_incidents", s.cfg.OpenSyncInterval, s.syncService.SyncOpenIncidents)
}

func (s *Scheduler) run(ctx context.Context, name string, interval time.Duration, task func(context.Context) error) {
	log := s.logger.WithFields(logrus.Fields{
		"scheduler": name,
		"interval":  interval.String(),
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run once at startup so a restart does not wait a full interval.
	if err := task(ctx); err != nil {
		log.WithError(err).Error("Scheduled sync failed")
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping sync scheduler.")
			return
		case <-ticker.C:
			if err := task(ctx); err != nil {
				log.WithError(err).Error("Scheduled sync failed")
			}
		}
	}
}
