package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dguzman/sigae-sync/internal/config"
	"github.com/dguzman/sigae-sync/internal/models"
	"github.com/dguzman/sigae-sync/internal/service/mocks"
	"github.com/dguzman/sigae-sync/internal/sigae"
	"github.com/dguzman/sigae-sync/internal/webhook"
	webhook_mocks "github.com/dguzman/sigae-sync/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSyncService builds a sync engine instance over mocked collaborators.
func newTestSyncService(t *testing.T) (*syncService, *mocks.MockSyncRepository, *mocks.MockDispatchClient, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSyncRepository(ctrl)
	clientMock := mocks.NewMockDispatchClient(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		LatestSyncWindow: 24 * time.Hour,
	}

	svc := NewSyncService(repoMock, clientMock, logger, cfg, publisherMock)
	return svc.(*syncService), repoMock, clientMock, publisherMock
}

func detailsFor(address string) *sigae.IncidentDetails {
	return &sigae.IncidentDetails{
		Descripcion: "Proceso realizado satisfactoriamente",
		Address:     address,
		Latitude:    9.93,
		Longitude:   -84.08,
	}
}

func reportFor(address string) *sigae.IncidentReport {
	return &sigae.IncidentReport{
		Consecutive: "EE-2024-001",
		Address:     address,
		Directions:  "FRENTE AL PARQUE",
		OpenState:   "true",
		Date:        "2024-05-01T00:00:00",
		NoticeTime:  "1900-01-01T14:35:12",
	}
}

func attendingStations() []sigae.StationAttending {
	return []sigae.StationAttending{
		{AttendanceID: 10, StationID: 5, ServiceType: "RESPONSABLE", ServiceTypeID: 1},
		{AttendanceID: 11, StationID: 7, ServiceType: "APOYO", ServiceTypeID: 2},
	}
}

func dispatchedVehicles() []sigae.VehicleDispatched {
	return []sigae.VehicleDispatched{
		{
			DispatchID:     20,
			VehicleCode:    77,
			StationCode:    5,
			Unit:           "M-12",
			DispatchedTime: "2024-05-01T14:40:00",
			ArrivalTime:    "2024-05-01T14:52:00",
			DepartureTime:  "0001-01-01T00:00:00",
			BaseReturnTime: "0001-01-01T00:00:00",
		},
	}
}

// expectResolvedSync wires the three concurrent payload fetches for a
// settled id.
func expectResolvedSync(clientMock *mocks.MockDispatchClient, id int, address string) {
	clientMock.EXPECT().
		GetStationsAttendingIncident(gomock.Any(), id).
		Return(attendingStations(), nil).
		Times(1)
	clientMock.EXPECT().
		GetVehiclesDispatchedToIncident(gomock.Any(), id).
		Return(dispatchedVehicles(), nil).
		Times(1)
	clientMock.EXPECT().
		GetIncidentReport(gomock.Any(), id).
		Return(reportFor(address), nil).
		Times(1)
}

func TestSyncIncident_Success(t *testing.T) {
	svc, repoMock, clientMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	const id = 1000

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), id).
		Return(detailsFor("SAN JOSE CENTRAL"), nil).
		Times(1)
	expectResolvedSync(clientMock, id, "SAN JOSE CENTRAL")

	var upserted *models.Incident
	repoMock.EXPECT().
		UpsertIncidentTree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, incident *models.Incident, stations []models.DispatchedStation, vehicles []models.DispatchedVehicle) {
			upserted = incident
			assert.Len(t, stations, 2)
			assert.Len(t, vehicles, 1)
		}).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event webhook.Event) {
			assert.Equal(t, webhook.EventIncidentSynced, event.Type)
			assert.Equal(t, id, event.IncidentID)
		}).
		Return(nil).
		Times(1)

	incident, err := svc.SyncIncident(ctx, id)

	require.NoError(t, err)
	require.NotNil(t, incident)
	assert.Equal(t, id, incident.ID)
	assert.Equal(t, incident, upserted)
	// RESPONSABLE flagged station wins.
	assert.Equal(t, 5, incident.ResponsibleStation)
	// Date half of Fecha, time half of Hora_Aviso.
	assert.Equal(t, time.Date(2024, 5, 1, 14, 35, 12, 0, time.UTC), incident.IncidentTimestamp)
}

func TestSyncIncident_TransportErrorDoesNotTriggerSearch(t *testing.T) {
	svc, _, clientMock, _ := newTestSyncService(t)
	ctx := context.Background()

	transportErr := &sigae.TransportError{Op: "ObtenerDetalleEmergencias", Err: errors.New("timeout")}
	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), 1000).
		Return(nil, transportErr).
		Times(1)

	incident, err := svc.SyncIncident(ctx, 1000)

	require.Error(t, err)
	assert.Nil(t, incident)
	var te *sigae.TransportError
	assert.ErrorAs(t, err, &te)
}

func TestSyncIncident_NoPartialWriteWhenOneFetchFails(t *testing.T) {
	svc, _, clientMock, _ := newTestSyncService(t)
	ctx := context.Background()
	const id = 1000

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), id).
		Return(detailsFor("SAN JOSE CENTRAL"), nil).
		Times(1)
	clientMock.EXPECT().
		GetStationsAttendingIncident(gomock.Any(), id).
		Return(attendingStations(), nil).
		MaxTimes(1)
	clientMock.EXPECT().
		GetIncidentReport(gomock.Any(), id).
		Return(reportFor("SAN JOSE CENTRAL"), nil).
		MaxTimes(1)
	clientMock.EXPECT().
		GetVehiclesDispatchedToIncident(gomock.Any(), id).
		Return(nil, &sigae.TransportError{Op: "ObtenerUnidadesDespachadasIncidente", Err: errors.New("boom")}).
		Times(1)

	// No UpsertIncidentTree, DeleteIncidentTree or Publish expectations: any
	// write would fail the test.
	incident, err := svc.SyncIncident(ctx, id)

	require.Error(t, err)
	assert.Nil(t, incident)
}

func TestSyncIncident_RelinksViaExactUpstreamAddressMatch(t *testing.T) {
	svc, repoMock, clientMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	const (
		oldID = 1000
		newID = 1002
	)
	const address = "SAN JOSE CENTRAL AVENIDA 2"

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), oldID).
		Return(nil, &sigae.NotFoundError{IncidentID: oldID, Address: address}).
		Times(1)

	// Candidate 1001: nothing stored, upstream empty too.
	repoMock.EXPECT().FindIncidentByID(gomock.Any(), 1001).Return(nil, nil).Times(1)
	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), 1001).
		Return(nil, &sigae.NotFoundError{IncidentID: 1001}).
		Times(1)

	// Candidate 1002: fresh upstream fetch with the exact same address.
	repoMock.EXPECT().FindIncidentByID(gomock.Any(), newID).Return(nil, nil).Times(1)
	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), newID).
		Return(detailsFor(address), nil).
		Times(2) // once during the search, once when the sync restarts

	// Old rows go away before the replacement id is synced.
	repoMock.EXPECT().DeleteIncidentTree(gomock.Any(), oldID).Return(nil).Times(1)

	expectResolvedSync(clientMock, newID, address)
	repoMock.EXPECT().
		UpsertIncidentTree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event webhook.Event) {
			assert.Equal(t, webhook.EventIncidentRelinked, event.Type)
			assert.Equal(t, newID, event.IncidentID)
		}).
		Return(nil).
		Times(1)

	incident, err := svc.SyncIncident(ctx, oldID)

	require.NoError(t, err)
	assert.Equal(t, newID, incident.ID)
}

func TestSyncIncident_RelinksViaStoredRowSimilarity(t *testing.T) {
	svc, repoMock, clientMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	const (
		oldID = 1000
		newID = 1001
	)

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), oldID).
		Return(nil, &sigae.NotFoundError{IncidentID: oldID, Address: "SAN JOSE CENTRAL AVENIDA 2"}).
		Times(1)

	// A stored row under the next id with a near-identical address is
	// accepted without a speculative upstream fetch for it during the search.
	repoMock.EXPECT().
		FindIncidentByID(gomock.Any(), newID).
		Return(&models.Incident{ID: newID, Address: "SAN JOSE CENTRAL AVENIDA 3"}, nil).
		Times(1)

	repoMock.EXPECT().DeleteIncidentTree(gomock.Any(), oldID).Return(nil).Times(1)

	// The accepted id is fully re-synced, not just relabelled.
	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), newID).
		Return(detailsFor("SAN JOSE CENTRAL AVENIDA 3"), nil).
		Times(1)
	expectResolvedSync(clientMock, newID, "SAN JOSE CENTRAL AVENIDA 3")
	repoMock.EXPECT().
		UpsertIncidentTree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	incident, err := svc.SyncIncident(ctx, oldID)

	require.NoError(t, err)
	assert.Equal(t, newID, incident.ID)
}

func TestSyncIncident_SearchStopsAtWindowBoundary(t *testing.T) {
	svc, repoMock, clientMock, _ := newTestSyncService(t)
	ctx := context.Background()
	const id = 1000

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), id).
		Return(nil, &sigae.NotFoundError{IncidentID: id, Address: "SAN JOSE CENTRAL"}).
		Times(1)

	// Every candidate in 1001..1015 is empty; 1016 must never be probed.
	for candidate := id + 1; candidate <= id+15; candidate++ {
		repoMock.EXPECT().FindIncidentByID(gomock.Any(), candidate).Return(nil, nil).Times(1)
		clientMock.EXPECT().
			GetIncidentDetails(gomock.Any(), candidate).
			Return(nil, &sigae.NotFoundError{IncidentID: candidate}).
			Times(1)
	}

	incident, err := svc.SyncIncident(ctx, id)

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrNoSimilarIncident)
}

func TestSyncIncident_DissimilarCandidatesAreRejected(t *testing.T) {
	svc, repoMock, clientMock, _ := newTestSyncService(t)
	ctx := context.Background()
	const id = 1000

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), id).
		Return(nil, &sigae.NotFoundError{IncidentID: id, Address: "SAN JOSE CENTRAL"}).
		Times(1)

	for candidate := id + 1; candidate <= id+15; candidate++ {
		// Stored rows exist but none is similar enough.
		repoMock.EXPECT().
			FindIncidentByID(gomock.Any(), candidate).
			Return(&models.Incident{ID: candidate, Address: "LIMON PUERTO"}, nil).
			Times(1)
		// Upstream has a record, but the address differs byte-for-byte.
		clientMock.EXPECT().
			GetIncidentDetails(gomock.Any(), candidate).
			Return(detailsFor("SAN JOSE CENTRAL "), nil).
			Times(1)
	}

	_, err := svc.SyncIncident(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSimilarIncident)
}

func TestSyncIncident_ResponsibleStationFallsBackToLastItem(t *testing.T) {
	svc, repoMock, clientMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	const id = 1000

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), id).
		Return(detailsFor("SAN JOSE CENTRAL"), nil).
		Times(1)
	clientMock.EXPECT().
		GetStationsAttendingIncident(gomock.Any(), id).
		Return([]sigae.StationAttending{
			{AttendanceID: 10, StationID: 5, ServiceType: "APOYO", ServiceTypeID: 2},
			{AttendanceID: 11, StationID: 7, ServiceType: "APOYO", ServiceTypeID: 2},
		}, nil).
		Times(1)
	clientMock.EXPECT().
		GetVehiclesDispatchedToIncident(gomock.Any(), id).
		Return(nil, nil).
		Times(1)
	clientMock.EXPECT().
		GetIncidentReport(gomock.Any(), id).
		Return(reportFor("SAN JOSE CENTRAL"), nil).
		Times(1)

	var upserted *models.Incident
	repoMock.EXPECT().
		UpsertIncidentTree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, incident *models.Incident, _ []models.DispatchedStation, vehicles []models.DispatchedVehicle) {
			upserted = incident
			// No vehicles dispatched: the empty set is passed through as-is.
			assert.Empty(t, vehicles)
		}).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.SyncIncident(ctx, id)

	require.NoError(t, err)
	// No RESPONSABLE item: the last attending station wins, not the first.
	assert.Equal(t, 7, upserted.ResponsibleStation)
}

func TestResponsibleStationID_EmptyListFallsBackToZero(t *testing.T) {
	assert.Equal(t, 0, responsibleStationID(nil))
}

func TestSyncIncident_DoubleSyncIsIdempotent(t *testing.T) {
	svc, repoMock, clientMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	const id = 1000

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), id).
		Return(detailsFor("SAN JOSE CENTRAL"), nil).
		Times(2)
	clientMock.EXPECT().
		GetStationsAttendingIncident(gomock.Any(), id).
		Return(attendingStations(), nil).
		Times(2)
	clientMock.EXPECT().
		GetVehiclesDispatchedToIncident(gomock.Any(), id).
		Return(dispatchedVehicles(), nil).
		Times(2)
	clientMock.EXPECT().
		GetIncidentReport(gomock.Any(), id).
		Return(reportFor("SAN JOSE CENTRAL"), nil).
		Times(2)

	var trees []*models.Incident
	var stationSets [][]models.DispatchedStation
	var vehicleSets [][]models.DispatchedVehicle
	repoMock.EXPECT().
		UpsertIncidentTree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, incident *models.Incident, stations []models.DispatchedStation, vehicles []models.DispatchedVehicle) {
			trees = append(trees, incident)
			stationSets = append(stationSets, stations)
			vehicleSets = append(vehicleSets, vehicles)
		}).
		Return(nil).
		Times(2)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := svc.SyncIncident(ctx, id)
	require.NoError(t, err)
	_, err = svc.SyncIncident(ctx, id)
	require.NoError(t, err)

	require.Len(t, trees, 2)
	// Same upstream data, same rows; only the modification stamp moves.
	first, second := *trees[0], *trees[1]
	first.ModifiedAt, second.ModifiedAt = time.Time{}, time.Time{}
	assert.Equal(t, first, second)
	assert.Equal(t, stationSets[0], stationSets[1])
	assert.Equal(t, vehicleSets[0], vehicleSets[1])
}

func TestSyncIncidents_CollectsFailuresWithoutAborting(t *testing.T) {
	svc, repoMock, clientMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()

	// 1000 syncs cleanly.
	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), 1000).
		Return(detailsFor("SAN JOSE CENTRAL"), nil).
		Times(1)
	expectResolvedSync(clientMock, 1000, "SAN JOSE CENTRAL")
	repoMock.EXPECT().
		UpsertIncidentTree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// 2000 fails with a transport error.
	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), 2000).
		Return(nil, &sigae.TransportError{Op: "ObtenerDetalleEmergencias", Err: errors.New("boom")}).
		Times(1)

	result := svc.SyncIncidents(ctx, []int{1000, 2000})

	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, 2000, result.Failures[0].ID)
	assert.NotEmpty(t, result.Failures[0].Error)
}

func TestSyncLatestIncidents_SyncsOnlyMissingIDs(t *testing.T) {
	svc, repoMock, clientMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()

	clientMock.EXPECT().
		GetIncidentList(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]sigae.IncidentListItem{
			{IncidentID: 3000},
			{IncidentID: 3001},
		}, nil).
		Times(1)

	repoMock.EXPECT().IncidentExists(gomock.Any(), 3000).Return(true, nil).Times(1)
	repoMock.EXPECT().IncidentExists(gomock.Any(), 3001).Return(false, nil).Times(1)

	// Only 3001 is synced.
	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), 3001).
		Return(detailsFor("SAN JOSE CENTRAL"), nil).
		Times(1)
	expectResolvedSync(clientMock, 3001, "SAN JOSE CENTRAL")
	repoMock.EXPECT().
		UpsertIncidentTree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	err := svc.SyncLatestIncidents(ctx)

	require.NoError(t, err)
}

func TestSyncOpenIncidents_ClosesQuietOldIncidents(t *testing.T) {
	svc, repoMock, clientMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	const id = 4000

	repoMock.EXPECT().
		ListStaleOpenIncidentIDs(gomock.Any(), gomock.Any()).
		Return([]int{id}, nil).
		Times(1)

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), id).
		Return(detailsFor("SAN JOSE CENTRAL"), nil).
		Times(1)
	expectResolvedSync(clientMock, id, "SAN JOSE CENTRAL")
	repoMock.EXPECT().
		UpsertIncidentTree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// The re-synced incident is old enough and every vehicle has departed.
	repoMock.EXPECT().
		FindIncidentByID(gomock.Any(), id).
		Return(&models.Incident{
			ID:                id,
			IsOpen:            true,
			IncidentTimestamp: time.Now().Add(-96 * time.Hour),
		}, nil).
		Times(1)
	repoMock.EXPECT().HasVehiclesInScene(gomock.Any(), id).Return(false, nil).Times(1)
	repoMock.EXPECT().CloseIncident(gomock.Any(), id).Return(nil).Times(1)

	err := svc.SyncOpenIncidents(ctx)

	require.NoError(t, err)
}

func TestSyncOpenIncidents_KeepsIncidentOpenWhileVehiclesInScene(t *testing.T) {
	svc, repoMock, clientMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	const id = 4000

	repoMock.EXPECT().
		ListStaleOpenIncidentIDs(gomock.Any(), gomock.Any()).
		Return([]int{id}, nil).
		Times(1)

	clientMock.EXPECT().
		GetIncidentDetails(gomock.Any(), id).
		Return(detailsFor("SAN JOSE CENTRAL"), nil).
		Times(1)
	expectResolvedSync(clientMock, id, "SAN JOSE CENTRAL")
	repoMock.EXPECT().
		UpsertIncidentTree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	repoMock.EXPECT().
		FindIncidentByID(gomock.Any(), id).
		Return(&models.Incident{
			ID:                id,
			IsOpen:            true,
			IncidentTimestamp: time.Now().Add(-96 * time.Hour),
		}, nil).
		Times(1)
	repoMock.EXPECT().HasVehiclesInScene(gomock.Any(), id).Return(true, nil).Times(1)
	// No CloseIncident expectation: closing here would fail the test.

	err := svc.SyncOpenIncidents(ctx)

	require.NoError(t, err)
}
