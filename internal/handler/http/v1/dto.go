package v1

import (
	"time"

	"github.com/google/uuid"
)

// SyncBatchRequest asks for an explicit list of incident ids to sync.
type SyncBatchRequest struct {
	IDs []int `json:"ids" validate:"required,min=1,max=500,dive,gt=0"`
}

// SyncRangeRequest asks for a backfill of every incident reported upstream
// between From and To.
type SyncRangeRequest struct {
	From time.Time `json:"from" validate:"required"`
	To   time.Time `json:"to" validate:"required"`
}

// IncidentResponse is the stored incident as returned by the sync endpoints.
type IncidentResponse struct {
	ID                           int       `json:"id"`
	IncidentCode                 *string   `json:"incident_code,omitempty"`
	SpecificIncidentCode         *string   `json:"specific_incident_code,omitempty"`
	DispatchIncidentCode         *string   `json:"dispatch_incident_code,omitempty"`
	SpecificDispatchIncidentCode *string   `json:"specific_dispatch_incident_code,omitempty"`
	EEConsecutive                string    `json:"ee_consecutive"`
	Address                      string    `json:"address"`
	ResponsibleStation           int       `json:"responsible_station"`
	IncidentTimestamp            time.Time `json:"incident_timestamp"`
	ImportantDetails             string    `json:"important_details"`
	Latitude                     string    `json:"latitude"`
	Longitude                    string    `json:"longitude"`
	ProvinceID                   *int      `json:"province_id,omitempty"`
	CantonID                     *int      `json:"canton_id,omitempty"`
	DistrictID                   *int      `json:"district_id,omitempty"`
	IsOpen                       bool      `json:"is_open"`
	ModifiedAt                   time.Time `json:"modified_at"`
}

// BatchFailureResponse is one failed id inside a batch sync response.
type BatchFailureResponse struct {
	ID    int    `json:"id"`
	Error string `json:"error"`
}

// BatchResultResponse summarises a batch sync run.
type BatchResultResponse struct {
	RunID    uuid.UUID              `json:"run_id"`
	Synced   int                    `json:"synced"`
	Failed   int                    `json:"failed"`
	Failures []BatchFailureResponse `json:"failures,omitempty"`
}
