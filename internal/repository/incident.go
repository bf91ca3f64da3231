package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dguzman/sigae-sync/internal/models"
	"github.com/dguzman/sigae-sync/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// incidentTypeCacheTTL bounds how long a resolved incident-type code is
// served from Redis before hitting PostgreSQL again.
const incidentTypeCacheTTL = time.Hour

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.SyncRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// FindIncidentByID returns the stored incident or nil when none exists.
func (r *IncidentRepository) FindIncidentByID(ctx context.Context, id int) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `
		SELECT
			id,
			incident_code,
			specific_incident_code,
			dispatch_incident_code,
			specific_dispatch_incident_code,
			ee_consecutive,
			address,
			responsible_station,
			incident_timestamp,
			important_details,
			latitude,
			longitude,
			province_id,
			canton_id,
			district_id,
			is_open,
			modified_at
		FROM incidents
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.IncidentCode,
		&incident.SpecificIncidentCode,
		&incident.DispatchIncidentCode,
		&incident.SpecificDispatchIncidentCode,
		&incident.EEConsecutive,
		&incident.Address,
		&incident.ResponsibleStation,
		&incident.IncidentTimestamp,
		&incident.ImportantDetails,
		&incident.Latitude,
		&incident.Longitude,
		&incident.ProvinceID,
		&incident.CantonID,
		&incident.DistrictID,
		&incident.IsOpen,
		&incident.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// IncidentExists reports whether an incident row is already stored.
func (r *IncidentRepository) IncidentExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM incidents WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check incident existence: %w", err)
	}
	return exists, nil
}

// UpsertIncidentTree writes the incident and its child rows in one
// transaction. Every row is insert-or-overwrite keyed by its own
// upstream-assigned id; re-running a sync with unchanged upstream data leaves
// the stored rows identical. Empty child sets are skipped, not inserted.
func (r *IncidentRepository) UpsertIncidentTree(ctx context.Context, incident *models.Incident, stations []models.DispatchedStation, vehicles []models.DispatchedVehicle) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	incidentQuery := `
		INSERT INTO incidents (
			id, incident_code, specific_incident_code, dispatch_incident_code,
			specific_dispatch_incident_code, ee_consecutive, address,
			responsible_station, incident_timestamp, important_details,
			latitude, longitude, province_id, canton_id, district_id,
			is_open, modified_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			incident_code = EXCLUDED.incident_code,
			specific_incident_code = EXCLUDED.specific_incident_code,
			dispatch_incident_code = EXCLUDED.dispatch_incident_code,
			specific_dispatch_incident_code = EXCLUDED.specific_dispatch_incident_code,
			ee_consecutive = EXCLUDED.ee_consecutive,
			address = EXCLUDED.address,
			responsible_station = EXCLUDED.responsible_station,
			incident_timestamp = EXCLUDED.incident_timestamp,
			important_details = EXCLUDED.important_details,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			province_id = EXCLUDED.province_id,
			canton_id = EXCLUDED.canton_id,
			district_id = EXCLUDED.district_id,
			is_open = EXCLUDED.is_open,
			modified_at = EXCLUDED.modified_at;
	`
	_, err = tx.Exec(ctx, incidentQuery,
		incident.ID,
		incident.IncidentCode,
		incident.SpecificIncidentCode,
		incident.DispatchIncidentCode,
		incident.SpecificDispatchIncidentCode,
		incident.EEConsecutive,
		incident.Address,
		incident.ResponsibleStation,
		incident.IncidentTimestamp,
		incident.ImportantDetails,
		incident.Latitude,
		incident.Longitude,
		incident.ProvinceID,
		incident.CantonID,
		incident.DistrictID,
		incident.IsOpen,
		incident.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert incident: %w", err)
	}

	if len(stations) > 0 {
		batch := &pgx.Batch{}
		stationQuery := `
			INSERT INTO dispatched_stations (id, station_id, incident_id, service_type_id, attention_on_foot)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				station_id = EXCLUDED.station_id,
				incident_id = EXCLUDED.incident_id,
				service_type_id = EXCLUDED.service_type_id,
				attention_on_foot = EXCLUDED.attention_on_foot;
		`
		for _, station := range stations {
			batch.Queue(stationQuery,
				station.ID,
				station.StationID,
				station.IncidentID,
				station.ServiceTypeID,
				station.AttentionOnFoot,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to upsert dispatched stations: %w", err)
		}
	}

	if len(vehicles) > 0 {
		batch := &pgx.Batch{}
		vehicleQuery := `
			INSERT INTO dispatched_vehicles (
				id, vehicle_id, incident_id, station_id, vehicle_internal_number,
				dispatched_time, arrival_time, departure_time, base_return_time,
				attention_on_foot
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				vehicle_id = EXCLUDED.vehicle_id,
				incident_id = EXCLUDED.incident_id,
				station_id = EXCLUDED.station_id,
				vehicle_internal_number = EXCLUDED.vehicle_internal_number,
				dispatched_time = EXCLUDED.dispatched_time,
				arrival_time = EXCLUDED.arrival_time,
				departure_time = EXCLUDED.departure_time,
				base_return_time = EXCLUDED.base_return_time,
				attention_on_foot = EXCLUDED.attention_on_foot;
		`
		for _, vehicle := range vehicles {
			batch.Queue(vehicleQuery,
				vehicle.ID,
				vehicle.VehicleID,
				vehicle.IncidentID,
				vehicle.StationID,
				vehicle.VehicleInternalNumber,
				vehicle.DispatchedTime,
				vehicle.ArrivalTime,
				vehicle.DepartureTime,
				vehicle.BaseReturnTime,
				vehicle.AttentionOnFoot,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to upsert dispatched vehicles: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident tree: %w", err)
	}
	return nil
}

// DeleteIncidentTree removes the incident and every child row for it, in one
// transaction, children first. Used when the incident was renumbered
// upstream and its rows must be recreated under the new id.
func (r *IncidentRepository) DeleteIncidentTree(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM dispatched_stations WHERE incident_id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete dispatched stations: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM dispatched_vehicles WHERE incident_id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete dispatched vehicles: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident tree delete: %w", err)
	}
	return nil
}

// LookupIncidentCode resolves an incident-type code against the taxonomy,
// returning nil when no such type exists. Hits are cached in Redis; the
// taxonomy changes rarely.
func (r *IncidentRepository) LookupIncidentCode(ctx context.Context, code string) (*string, error) {
	cacheKey := fmt.Sprintf("incident_type:%s", code)
	if cached, err := r.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		return &cached, nil
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get incident type from cache: %w", err)
	}

	var resolved string
	err := r.db.QueryRow(ctx, `SELECT incident_code FROM incident_types WHERE incident_code = $1;`, code).Scan(&resolved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up incident type: %w", err)
	}

	if err := r.redisClient.Set(ctx, cacheKey, resolved, incidentTypeCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache incident type: %w", err)
	}
	return &resolved, nil
}

// ListStaleOpenIncidentIDs returns ids of incidents since the given time
// that are still open or stored with the "0"/"0" coordinate sentinel. The
// sentinel is the exact pair; a single zero coordinate is a real value.
func (r *IncidentRepository) ListStaleOpenIncidentIDs(ctx context.Context, since time.Time) ([]int, error) {
	query := `
		SELECT id
		FROM incidents
		WHERE (is_open = TRUE OR (latitude = '0' AND longitude = '0'))
		  AND incident_timestamp BETWEEN $1 AND NOW()
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list open incidents: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan incident id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating open incidents: %w", err)
	}
	return ids, nil
}

// HasVehiclesInScene reports whether any dispatched vehicle for the incident
// has not departed yet (departure_time still at the year-1 sentinel).
func (r *IncidentRepository) HasVehiclesInScene(ctx context.Context, id int) (bool, error) {
	var inScene bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM dispatched_vehicles
			WHERE incident_id = $1 AND departure_time = '0001-01-01 00:00:00'
		);
	`
	if err := r.db.QueryRow(ctx, query, id).Scan(&inScene); err != nil {
		return false, fmt.Errorf("failed to check vehicles in scene: %w", err)
	}
	return inScene, nil
}

// CloseIncident marks an incident as no longer open.
func (r *IncidentRepository) CloseIncident(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE incidents SET is_open = FALSE, modified_at = NOW() WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to close incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %d not found for close", id)
	}
	return nil
}
