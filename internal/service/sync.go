package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dguzman/sigae-sync/internal/config"
	"github.com/dguzman/sigae-sync/internal/models"
	"github.com/dguzman/sigae-sync/internal/sigae"
	"github.com/dguzman/sigae-sync/internal/similarity"
	"github.com/dguzman/sigae-sync/internal/transform"
	"github.com/dguzman/sigae-sync/internal/webhook"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// searchWindow is how many ids past a missing one are probed for a
	// renumbered incident. Upstream renumbering has only ever been observed
	// as a small forward shift; the bound of 15 comes from operational data
	// and is deliberately not configurable.
	searchWindow = 15

	// matchThreshold is the similarity score at which a stored candidate
	// address is accepted as the same incident.
	matchThreshold = 0.7

	// maxRelinkDepth bounds how many times one sync may chase a renumbered
	// id before giving up.
	maxRelinkDepth = 5

	// syncBatchSize caps how many incident syncs run concurrently against
	// the upstream.
	syncBatchSize = 5

	// openIncidentWindow is how far back the open-incidents re-sync looks.
	openIncidentWindow = 72 * time.Hour

	// closeAfter is the minimum incident age before it may be closed.
	closeAfter = 3 * 24 * time.Hour
)

// ErrNoSimilarIncident is returned when an incident is missing upstream and
// no candidate in the search window matched its address. The id stays
// unsyncable until upstream data changes.
var ErrNoSimilarIncident = errors.New("no similar incident found")

// ErrRelinkDepthExceeded is returned when chasing renumbered ids does not
// settle within maxRelinkDepth relinks.
var ErrRelinkDepthExceeded = errors.New("relink depth exceeded")

// The SyncService mock lives under the handler package: generating it here
// would make mocks import service and break the in-package engine tests.
//go:generate mockgen -source=sync.go -destination=mocks/mock_sync.go -package=mocks -exclude_interfaces=SyncService
//go:generate mockgen -destination=../handler/http/v1/mocks/mock_service.go -package=mocks github.com/dguzman/sigae-sync/internal/service SyncService

// SyncRepository is the storage contract of the sync engine.
type SyncRepository interface {
	FindIncidentByID(ctx context.Context, id int) (*models.Incident, error)
	UpsertIncidentTree(ctx context.Context, incident *models.Incident, stations []models.DispatchedStation, vehicles []models.DispatchedVehicle) error
	DeleteIncidentTree(ctx context.Context, id int) error
	LookupIncidentCode(ctx context.Context, code string) (*string, error)
	IncidentExists(ctx context.Context, id int) (bool, error)
	ListStaleOpenIncidentIDs(ctx context.Context, since time.Time) ([]int, error)
	HasVehiclesInScene(ctx context.Context, id int) (bool, error)
	CloseIncident(ctx context.Context, id int) error
}

// DispatchClient is the upstream contract of the sync engine.
type DispatchClient interface {
	GetIncidentDetails(ctx context.Context, id int) (*sigae.IncidentDetails, error)
	GetIncidentReport(ctx context.Context, id int) (*sigae.IncidentReport, error)
	GetStationsAttendingIncident(ctx context.Context, id int) ([]sigae.StationAttending, error)
	GetVehiclesDispatchedToIncident(ctx context.Context, id int) ([]sigae.VehicleDispatched, error)
	GetIncidentList(ctx context.Context, from, to time.Time) ([]sigae.IncidentListItem, error)
}

// BatchFailure is one failed id inside a batch sync.
type BatchFailure struct {
	ID    int    `json:"id"`
	Error string `json:"error"`
}

// BatchResult aggregates the outcome of a batch sync. Individual failures
// never abort sibling ids.
type BatchResult struct {
	RunID    uuid.UUID      `json:"run_id"`
	Synced   int            `json:"synced"`
	Failed   int            `json:"failed"`
	Failures []BatchFailure `json:"failures,omitempty"`
}

// SyncService is the caller-facing contract of the reconciliation engine.
type SyncService interface {
	SyncIncident(ctx context.Context, id int) (*models.Incident, error)
	SyncIncidents(ctx context.Context, ids []int) *BatchResult
	SyncRange(ctx context.Context, from, to time.Time) (*BatchResult, error)
	SyncLatestIncidents(ctx context.Context) error
	SyncOpenIncidents(ctx context.Context) error
}

type syncService struct {
	repo      SyncRepository
	client    DispatchClient
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.Publisher
}

// NewSyncService wires the reconciliation engine. The upstream client handle
// is created once by the caller and shared; the engine never retries
// transport failures on its own.
func NewSyncService(repo SyncRepository, client DispatchClient, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) SyncService {
	return &syncService{
		repo:      repo,
		client:    client,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// SyncIncident runs a full sync for one incident id. When upstream reports
// the id missing, it searches the forward window for the renumbered
// incident, deletes the stale rows and re-syncs under the accepted id.
// Callers must not run two syncs for the same id concurrently; the
// delete-then-recreate sequence during a relink is not protected against a
// duplicate in-flight sync.
func (s *syncService) SyncIncident(ctx context.Context, id int) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "sync",
		"method":      "SyncIncident",
		"incident_id": id,
	})

	relinked := false
	for depth := 0; depth <= maxRelinkDepth; depth++ {
		details, err := s.client.GetIncidentDetails(ctx, id)

		var notFound *sigae.NotFoundError
		if errors.As(err, &notFound) {
			replacement, searchErr := s.findSimilarIncident(ctx, id, notFound.Address)
			if searchErr != nil {
				log.WithError(searchErr).Warn("Incident missing upstream and no replacement id found")
				return nil, searchErr
			}

			log.WithField("replacement_id", replacement).Warnf("Relinking incident %d to %d", id, replacement)

			// The old id is unreachable upstream; drop its rows before the
			// replacement is written so both never coexist.
			if err := s.repo.DeleteIncidentTree(ctx, id); err != nil {
				return nil, fmt.Errorf("delete stale incident %d: %w", id, err)
			}

			id = replacement
			relinked = true
			continue
		}
		if err != nil {
			log.WithError(err).Error("Failed to fetch incident details")
			return nil, err
		}

		return s.syncResolved(ctx, id, details, relinked)
	}

	return nil, fmt.Errorf("%w for incident %d", ErrRelinkDepthExceeded, id)
}

// findSimilarIncident scans ids id+1..id+searchWindow for the renumbered
// incident, stopping at the first accepted candidate. A stored candidate is
// accepted on address similarity; a fresh upstream candidate only on exact
// address equality.
func (s *syncService) findSimilarIncident(ctx context.Context, id int, address string) (int, error) {
	for candidate := id + 1; candidate <= id+searchWindow; candidate++ {
		stored, err := s.repo.FindIncidentByID(ctx, candidate)
		if err != nil {
			return 0, fmt.Errorf("lookup candidate %d: %w", candidate, err)
		}
		if stored != nil && similarity.CompareTwoStrings(stored.Address, address) >= matchThreshold {
			return candidate, nil
		}

		details, err := s.client.GetIncidentDetails(ctx, candidate)
		if sigae.IsNotFound(err) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if details.Address == address {
			return candidate, nil
		}
	}

	return 0, fmt.Errorf("%w for incident %d (%s)", ErrNoSimilarIncident, id, address)
}

// syncResolved fetches the remaining payloads for a settled id, transforms
// them and writes the incident tree. The three fetches are independent reads
// and run concurrently; a failure in any one aborts the attempt before
// anything is written.
func (s *syncService) syncResolved(ctx context.Context, id int, details *sigae.IncidentDetails, relinked bool) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "sync",
		"method":      "SyncIncident",
		"incident_id": id,
	})

	var (
		stations []sigae.StationAttending
		vehicles []sigae.VehicleDispatched
		report   *sigae.IncidentReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stations, err = s.client.GetStationsAttendingIncident(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		vehicles, err = s.client.GetVehiclesDispatchedToIncident(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		report, err = s.client.GetIncidentReport(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to fetch incident payloads")
		return nil, err
	}

	incident, err := transform.ToIncident(ctx, s.repo, id, responsibleStationID(stations), report, details)
	if err != nil {
		log.WithError(err).Error("Failed to transform incident")
		return nil, err
	}

	stationRows := transform.ToDispatchedStations(id, stations)
	vehicleRows, err := transform.ToDispatchedVehicles(id, vehicles)
	if err != nil {
		log.WithError(err).Error("Failed to transform dispatched vehicles")
		return nil, err
	}

	if err := s.repo.UpsertIncidentTree(ctx, incident, stationRows, vehicleRows); err != nil {
		log.WithError(err).Error("Failed to upsert incident tree")
		return nil, fmt.Errorf("upsert incident %d: %w", id, err)
	}

	s.publishSynced(ctx, incident, relinked)

	log.WithField("is_open", incident.IsOpen).Info("Incident synced")
	return incident, nil
}

// responsibleStationID picks the station flagged RESPONSABLE, falling back
// to the last attending station, then to 0 when none attended.
func responsibleStationID(stations []sigae.StationAttending) int {
	for _, station := range stations {
		if station.ServiceType == "RESPONSABLE" {
			return station.StationID
		}
	}
	if len(stations) > 0 {
		return stations[len(stations)-1].StationID
	}
	return 0
}

func (s *syncService) publishSynced(ctx context.Context, incident *models.Incident, relinked bool) {
	if s.publisher == nil {
		return
	}

	eventType := webhook.EventIncidentSynced
	if relinked {
		eventType = webhook.EventIncidentRelinked
	}

	event := webhook.Event{
		Type:       eventType,
		IncidentID: incident.ID,
		Address:    incident.Address,
		IsOpen:     incident.IsOpen,
		Timestamp:  time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Delivery is best effort; a queue hiccup must not fail the sync.
		s.logger.WithError(err).WithField("incident_id", incident.ID).Warn("Failed to publish sync event")
	}
}
