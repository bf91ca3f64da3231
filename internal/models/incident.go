package models

import (
	"time"
)

// Incident is one row in the incidents table, keyed by the upstream-assigned id.
// Latitude/longitude are stored as strings; the pair "0"/"0" means "unknown
// location", never a real coordinate.
type Incident struct {
	ID                           int       `json:"id"`
	IncidentCode                 *string   `json:"incident_code"`
	SpecificIncidentCode         *string   `json:"specific_incident_code"`
	DispatchIncidentCode         *string   `json:"dispatch_incident_code"`
	SpecificDispatchIncidentCode *string   `json:"specific_dispatch_incident_code"`
	EEConsecutive                string    `json:"ee_consecutive"`
	Address                      string    `json:"address"`
	ResponsibleStation           int       `json:"responsible_station"`
	IncidentTimestamp            time.Time `json:"incident_timestamp"`
	ImportantDetails             string    `json:"important_details"`
	Latitude                     string    `json:"latitude"`
	Longitude                    string    `json:"longitude"`
	ProvinceID                   *int      `json:"province_id"`
	CantonID                     *int      `json:"canton_id"`
	DistrictID                   *int      `json:"district_id"`
	IsOpen                       bool      `json:"is_open"`
	ModifiedAt                   time.Time `json:"modified_at"`
}

// IncidentType is a node of the hierarchical incident taxonomy. Read-only
// for the sync engine; used to validate type codes during transformation.
type IncidentType struct {
	ID           int    `json:"id"`
	IncidentCode string `json:"incident_code"`
	Name         string `json:"name"`
	ParentID     *int   `json:"parent_id"`
}
