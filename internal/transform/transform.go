// Package transform maps raw SIGAE payloads into normalized rows ready for
// storage.
package transform

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dguzman/sigae-sync/internal/models"
	"github.com/dguzman/sigae-sync/internal/sigae"
)

// sigaeTimeLayout is the timestamp layout SIGAE uses in every date field.
const sigaeTimeLayout = "2006-01-02T15:04:05"

// onFootUnit is the unit label SIGAE assigns to dispatches with no vehicle.
const onFootUnit = "ATENCION A PIE"

// Error marks a payload that could not be transformed. It is fatal for the
// sync attempt: a silently wrong timestamp is worse than a visible failure.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transform: %s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeResolver validates an incident-type code against the stored taxonomy.
// It returns nil when no matching type exists.
type CodeResolver interface {
	LookupIncidentCode(ctx context.Context, code string) (*string, error)
}

// ToDispatchedStations maps station-attendance items to rows for an incident.
func ToDispatchedStations(incidentID int, items []sigae.StationAttending) []models.DispatchedStation {
	rows := make([]models.DispatchedStation, len(items))
	for i, station := range items {
		rows[i] = models.DispatchedStation{
			ID:              station.AttendanceID,
			StationID:       station.StationID,
			IncidentID:      incidentID,
			ServiceTypeID:   station.ServiceTypeID,
			AttentionOnFoot: station.AttentionOnFoot,
		}
	}
	return rows
}

// ToDispatchedVehicles maps vehicle-dispatch items to rows for an incident.
// A dispatch whose unit is "ATENCION A PIE" is an on-foot attendance and is
// stored with a nil vehicle reference, not dropped.
func ToDispatchedVehicles(incidentID int, items []sigae.VehicleDispatched) ([]models.DispatchedVehicle, error) {
	rows := make([]models.DispatchedVehicle, len(items))
	for i, vehicle := range items {
		dispatched, err := parseTime("HoraDespacho", vehicle.DispatchedTime)
		if err != nil {
			return nil, err
		}
		arrival, err := parseTime("HoraLLegada", vehicle.ArrivalTime)
		if err != nil {
			return nil, err
		}
		departure, err := parseTime("HoraRetiro", vehicle.DepartureTime)
		if err != nil {
			return nil, err
		}
		baseReturn, err := parseTime("HoraBase", vehicle.BaseReturnTime)
		if err != nil {
			return nil, err
		}

		onFoot := vehicle.Unit == onFootUnit
		var vehicleID *int
		if !onFoot {
			code := vehicle.VehicleCode
			vehicleID = &code
		}

		rows[i] = models.DispatchedVehicle{
			ID:                    vehicle.DispatchID,
			VehicleID:             vehicleID,
			IncidentID:            incidentID,
			StationID:             vehicle.StationCode,
			VehicleInternalNumber: vehicle.InternalNumber,
			DispatchedTime:        dispatched,
			ArrivalTime:           arrival,
			DepartureTime:         departure,
			BaseReturnTime:        baseReturn,
			AttentionOnFoot:       onFoot,
		}
	}
	return rows, nil
}

// ToIncident merges an incident report and an incident detail payload into
// one row. The incident timestamp is rebuilt from the date half of the
// report's Fecha and the time half of its Hora_Aviso; both are full
// timestamps upstream but only one half of each is reliable.
func ToIncident(ctx context.Context, resolver CodeResolver, incidentID, responsibleStationID int, report *sigae.IncidentReport, details *sigae.IncidentDetails) (*models.Incident, error) {
	timestamp, err := combineDateAndTime(report.Date, report.NoticeTime)
	if err != nil {
		return nil, err
	}

	dispatchCode, err := lookupCode(ctx, resolver, details.DispatchIncidentCode)
	if err != nil {
		return nil, err
	}
	specificDispatchCode, err := lookupCode(ctx, resolver, details.SpecificDispatchIncidentCode)
	if err != nil {
		return nil, err
	}
	incidentCode, err := lookupCode(ctx, resolver, details.IncidentCode)
	if err != nil {
		return nil, err
	}
	specificIncidentCode, err := lookupCode(ctx, resolver, details.SpecificIncidentCode)
	if err != nil {
		return nil, err
	}

	return &models.Incident{
		ID:                           incidentID,
		IncidentCode:                 incidentCode,
		SpecificIncidentCode:         specificIncidentCode,
		DispatchIncidentCode:         dispatchCode,
		SpecificDispatchIncidentCode: specificDispatchCode,
		EEConsecutive:                report.Consecutive,
		Address:                      report.Address,
		ResponsibleStation:           responsibleStationID,
		IncidentTimestamp:            timestamp,
		ImportantDetails:             report.Directions,
		Latitude:                     coordinate(details.Latitude),
		Longitude:                    coordinate(details.Longitude),
		ProvinceID:                   nullableID(report.ProvinceID),
		CantonID:                     nullableID(report.CantonID),
		DistrictID:                   nullableID(report.DistrictID),
		IsOpen:                       report.OpenState == "true",
		ModifiedAt:                   time.Now(),
	}, nil
}

// SanitizeIncidentCode strips a single trailing period from an incident-type
// code; SIGAE appends one inconsistently.
func SanitizeIncidentCode(code string) string {
	if !strings.HasSuffix(code, ".") {
		return code
	}
	return code[:len(code)-1]
}

func lookupCode(ctx context.Context, resolver CodeResolver, code string) (*string, error) {
	if code == "" {
		return nil, nil
	}
	resolved, err := resolver.LookupIncidentCode(ctx, SanitizeIncidentCode(code))
	if err != nil {
		return nil, fmt.Errorf("resolve incident code %q: %w", code, err)
	}
	return resolved, nil
}

// combineDateAndTime joins the date portion of dateField with the time
// portion of timeField and parses the result.
func combineDateAndTime(dateField, timeField string) (time.Time, error) {
	datePart, _, ok := strings.Cut(dateField, "T")
	if !ok {
		return time.Time{}, &Error{Field: "Fecha", Err: fmt.Errorf("missing time separator in %q", dateField)}
	}
	_, timePart, ok := strings.Cut(timeField, "T")
	if !ok {
		return time.Time{}, &Error{Field: "Hora_Aviso", Err: fmt.Errorf("missing time separator in %q", timeField)}
	}

	timestamp, err := time.Parse(sigaeTimeLayout, datePart+"T"+timePart)
	if err != nil {
		return time.Time{}, &Error{Field: "Fecha/Hora_Aviso", Err: err}
	}
	return timestamp, nil
}

func parseTime(field, value string) (time.Time, error) {
	parsed, err := time.Parse(sigaeTimeLayout, value)
	if err != nil {
		return time.Time{}, &Error{Field: field, Err: err}
	}
	return parsed, nil
}

// coordinate renders an upstream coordinate, defaulting to the "0" sentinel
// when it is absent.
func coordinate(value float64) string {
	if value == 0 {
		return "0"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// nullableID maps SIGAE's 0 ("unknown") to nil.
func nullableID(id int) *int {
	if id == 0 {
		return nil
	}
	return &id
}
