package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SyncIncidents syncs many ids in fixed-size batches. All ids within a batch
// run concurrently and the next batch starts only when the whole batch has
// finished, capping concurrent upstream load. Per-id failures are collected,
// never raised, so one bad id cannot abort its siblings.
func (s *syncService) SyncIncidents(ctx context.Context, ids []int) *BatchResult {
	result := &BatchResult{RunID: uuid.New()}

	log := s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "SyncIncidents",
		"run_id":  result.RunID,
		"count":   len(ids),
	})
	log.Info("Starting batch sync")

	var mu sync.Mutex
	for start := 0; start < len(ids); start += syncBatchSize {
		end := start + syncBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		var wg sync.WaitGroup
		for _, id := range ids[start:end] {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				_, err := s.SyncIncident(ctx, id)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					result.Failed++
					result.Failures = append(result.Failures, BatchFailure{ID: id, Error: err.Error()})
					return
				}
				result.Synced++
			}(id)
		}
		wg.Wait()
	}

	log.WithFields(logrus.Fields{
		"synced": result.Synced,
		"failed": result.Failed,
	}).Info("Batch sync completed")

	return result
}

// SyncRange fetches the upstream incident list for a date range and syncs
// every id in it.
func (s *syncService) SyncRange(ctx context.Context, from, to time.Time) (*BatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "SyncRange",
		"from":    from,
		"to":      to,
	})
	log.Info("Fetching incident list for range")

	items, err := s.client.GetIncidentList(ctx, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to fetch incident list")
		return nil, err
	}

	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.IncidentID
	}

	return s.SyncIncidents(ctx, ids), nil
}

// SyncLatestIncidents discovers incidents reported upstream inside the
// configured window and syncs the ones not stored yet.
func (s *syncService) SyncLatestIncidents(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "SyncLatestIncidents",
	})

	to := time.Now()
	from := to.Add(-s.cfg.LatestSyncWindow)

	items, err := s.client.GetIncidentList(ctx, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to fetch latest incident list")
		return err
	}

	var missing []int
	for _, item := range items {
		exists, err := s.repo.IncidentExists(ctx, item.IncidentID)
		if err != nil {
			return err
		}
		if !exists {
			missing = append(missing, item.IncidentID)
		}
	}

	if len(missing) == 0 {
		log.Debug("No new incidents upstream")
		return nil
	}

	result := s.SyncIncidents(ctx, missing)
	log.WithFields(logrus.Fields{
		"new_incidents": result.Synced,
		"failed":        result.Failed,
	}).Info("Latest incidents synced")
	return nil
}

// SyncOpenIncidents re-syncs recent incidents that are still open or have no
// coordinates yet, then closes the ones old enough with no vehicle still in
// scene.
func (s *syncService) SyncOpenIncidents(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "SyncOpenIncidents",
	})

	ids, err := s.repo.ListStaleOpenIncidentIDs(ctx, time.Now().Add(-openIncidentWindow))
	if err != nil {
		log.WithError(err).Error("Failed to list open incidents")
		return err
	}
	log.WithField("count", len(ids)).Info("Re-syncing open incidents")

	result := s.SyncIncidents(ctx, ids)

	closed := 0
	for _, id := range ids {
		ok, err := s.maybeCloseIncident(ctx, id)
		if err != nil {
			log.WithError(err).WithField("incident_id", id).Warn("Failed to close incident")
			continue
		}
		if ok {
			closed++
		}
	}

	log.WithFields(logrus.Fields{
		"processed": len(ids),
		"failed":    result.Failed,
		"closed":    closed,
	}).Info("Open incidents sync completed")
	return nil
}

// maybeCloseIncident closes an incident that is older than closeAfter and
// has every dispatched vehicle back from the scene.
func (s *syncService) maybeCloseIncident(ctx context.Context, id int) (bool, error) {
	incident, err := s.repo.FindIncidentByID(ctx, id)
	if err != nil {
		return false, err
	}
	if incident == nil || !incident.IsOpen {
		return false, nil
	}

	if time.Since(incident.IncidentTimestamp) < closeAfter {
		return false, nil
	}

	inScene, err := s.repo.HasVehiclesInScene(ctx, id)
	if err != nil {
		return false, err
	}
	if inScene {
		return false, nil
	}

	if err := s.repo.CloseIncident(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
