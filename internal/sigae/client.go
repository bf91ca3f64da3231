package sigae

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const timeLayout = "2006-01-02T15:04:05"

// Credentials are the fixed fields SIGAE expects in every request body.
type Credentials struct {
	IP         string `json:"IP"`
	Password   string `json:"Password"`
	User       string `json:"Usuario"`
	SystemCode string `json:"codSistema"`
}

// Client is a stateless HTTP client for the SIGAE dispatch API. Every
// operation is a POST whose JSON body merges the shared credentials with
// operation-specific parameters. Construct it once and inject it; it is safe
// for concurrent use.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
}

// NewClient creates a new SIGAE API client.
func NewClient(baseURL string, creds Credentials, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetIncidentDetails fetches ObtenerDetalleEmergencias for an incident.
// When SIGAE reports "no records found" for the id, the returned error is a
// *NotFoundError carrying the address field of the response; this is a domain
// signal, not a transport failure.
func (c *Client) GetIncidentDetails(ctx context.Context, id int) (*IncidentDetails, error) {
	var details IncidentDetails
	if err := c.post(ctx, "ObtenerDetalleEmergencias", map[string]any{
		"id_boleta_incidente": id,
	}, &details); err != nil {
		return nil, err
	}

	if details.Descripcion == noRecordsDescription {
		return nil, &NotFoundError{IncidentID: id, Address: details.Address}
	}

	return &details, nil
}

// GetIncidentReport fetches ObtenerBoletaIncidente for an incident.
func (c *Client) GetIncidentReport(ctx context.Context, id int) (*IncidentReport, error) {
	var report IncidentReport
	if err := c.post(ctx, "ObtenerBoletaIncidente", map[string]any{
		"Id_Boleta_Incidente": id,
	}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetStationsAttendingIncident fetches ObtenerEstacionesAtiendeIncidente.
func (c *Client) GetStationsAttendingIncident(ctx context.Context, id int) ([]StationAttending, error) {
	var resp stationsResponse
	if err := c.post(ctx, "ObtenerEstacionesAtiendeIncidente", map[string]any{
		"Id_Boleta_Incidente": id,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetVehiclesDispatchedToIncident fetches ObtenerUnidadesDespachadasIncidente.
func (c *Client) GetVehiclesDispatchedToIncident(ctx context.Context, id int) ([]VehicleDispatched, error) {
	var resp vehiclesResponse
	if err := c.post(ctx, "ObtenerUnidadesDespachadasIncidente", map[string]any{
		"Id_Boleta_Incidente": id,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetIncidentList fetches ObtenerListaEmergenciasApp for a date range.
func (c *Client) GetIncidentList(ctx context.Context, from, to time.Time) ([]IncidentListItem, error) {
	var resp incidentListResponse
	if err := c.post(ctx, "ObtenerListaEmergenciasApp", map[string]any{
		"FechaDesde": from.Format(timeLayout),
		"FechaHasta": to.Format(timeLayout),
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// post issues one SIGAE operation and decodes the response into out.
func (c *Client) post(ctx context.Context, operation string, params map[string]any, out any) error {
	body := map[string]any{
		"IP":         c.creds.IP,
		"Password":   c.creds.Password,
		"Usuario":    c.creds.User,
		"codSistema": c.creds.SystemCode,
	}
	for k, v := range params {
		body[k] = v
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Op: operation, Err: fmt.Errorf("marshal request: %w", err)}
	}

	endpoint, err := url.JoinPath(c.baseURL, operation)
	if err != nil {
		return &TransportError{Op: operation, Err: fmt.Errorf("build url: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Op: operation, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: operation, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Op: operation, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: operation, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
