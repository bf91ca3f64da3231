package models

import (
	"time"
)

// DispatchedStation records one station's participation in an incident,
// keyed by the upstream-assigned attendance id.
type DispatchedStation struct {
	ID              int  `json:"id"`
	StationID       int  `json:"station_id"`
	IncidentID      int  `json:"incident_id"`
	ServiceTypeID   int  `json:"service_type_id"`
	AttentionOnFoot bool `json:"attention_on_foot"`
}

// DispatchedVehicle records one vehicle's timeline for an incident, keyed by
// the upstream-assigned dispatch id. VehicleID is nil for on-foot attendance.
// A zero time.Time (year 1) means "not yet occurred", not an error.
type DispatchedVehicle struct {
	ID                    int       `json:"id"`
	VehicleID             *int      `json:"vehicle_id"`
	IncidentID            int       `json:"incident_id"`
	StationID             int       `json:"station_id"`
	VehicleInternalNumber *string   `json:"vehicle_internal_number"`
	DispatchedTime        time.Time `json:"dispatched_time"`
	ArrivalTime           time.Time `json:"arrival_time"`
	DepartureTime         time.Time `json:"departure_time"`
	BaseReturnTime        time.Time `json:"base_return_time"`
	AttentionOnFoot       bool      `json:"attention_on_foot"`
}
