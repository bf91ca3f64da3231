package v1

import (
	"github.com/dguzman/sigae-sync/internal/models"
	"github.com/dguzman/sigae-sync/internal/service"
)

// ModelToIncidentResponse maps a stored incident to its response DTO.
func ModelToIncidentResponse(incident *models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:                           incident.ID,
		IncidentCode:                 incident.IncidentCode,
		SpecificIncidentCode:         incident.SpecificIncidentCode,
		DispatchIncidentCode:         incident.DispatchIncidentCode,
		SpecificDispatchIncidentCode: incident.SpecificDispatchIncidentCode,
		EEConsecutive:                incident.EEConsecutive,
		Address:                      incident.Address,
		ResponsibleStation:           incident.ResponsibleStation,
		IncidentTimestamp:            incident.IncidentTimestamp,
		ImportantDetails:             incident.ImportantDetails,
		Latitude:                     incident.Latitude,
		Longitude:                    incident.Longitude,
		ProvinceID:                   incident.ProvinceID,
		CantonID:                     incident.CantonID,
		DistrictID:                   incident.DistrictID,
		IsOpen:                       incident.IsOpen,
		ModifiedAt:                   incident.ModifiedAt,
	}
}

// BatchResultToResponse maps a batch sync outcome to its response DTO.
func BatchResultToResponse(result *service.BatchResult) BatchResultResponse {
	resp := BatchResultResponse{
		RunID:  result.RunID,
		Synced: result.Synced,
		Failed: result.Failed,
	}
	for _, failure := range result.Failures {
		resp.Failures = append(resp.Failures, BatchFailureResponse{
			ID:    failure.ID,
			Error: failure.Error,
		})
	}
	return resp
}
