package sigae

// Payload types for the SIGAE dispatch API. Field tags follow the upstream
// wire names exactly; the API is Spanish-language and mixes naming styles
// between operations.

// IncidentDetails is the response of ObtenerDetalleEmergencias.
type IncidentDetails struct {
	Codigo                       string  `json:"Codigo"`
	Descripcion                  string  `json:"Descripcion"`
	ImportantDetails             string  `json:"DetallesImportantes"`
	IncidentCode                 string  `json:"codigo_tipo_incidente"`
	DispatchIncidentCode         string  `json:"codigo_tipo_incidente_despacho"`
	SpecificDispatchIncidentCode string  `json:"codigo_tipo_incidente_despacho_esp"`
	SpecificIncidentCode         string  `json:"codigo_tipo_incidente_esp"`
	EEConsecutive                string  `json:"consecutivo_EE"`
	Address                      string  `json:"direccion"`
	Date                         string  `json:"fecha"`
	IncidentTime                 string  `json:"hora_incidente"`
	Latitude                     float64 `json:"latitud"`
	Longitude                    float64 `json:"longitud"`
}

// IncidentReport is the response of ObtenerBoletaIncidente. The full report
// carries dozens of fields; only those the sync engine consumes are decoded.
type IncidentReport struct {
	Codigo       string `json:"Codigo"`
	Descripcion  string `json:"Descripcion"`
	Consecutive  string `json:"Consecutivo"`
	Address      string `json:"DesUbicacion"`
	Directions   string `json:"Direccion"`
	OpenState    string `json:"Estado_Abierto"`
	Date         string `json:"Fecha"`
	NoticeTime   string `json:"Hora_Aviso"`
	IncidentID   int    `json:"Id_Boleta_Incidente"`
	CantonID     int    `json:"Id_Canton"`
	DistrictID   int    `json:"Id_Distrito"`
	ProvinceID   int    `json:"Id_Provincia"`
	IncidentName string `json:"Nombre_Incidente"`
	Observations string `json:"Observaciones"`
}

// StationAttending is one item of ObtenerEstacionesAtiendeIncidente.
type StationAttending struct {
	AttentionOnFoot bool   `json:"AtencionAPie"`
	StationKey      string `json:"ClaveEstacion"`
	ServiceType     string `json:"DestipoServicio"`
	AttendanceID    int    `json:"IdBoletaEstacionAtiende"`
	StationID       int    `json:"IdEstacion"`
	ServiceTypeID   int    `json:"IdTipoServicio"`
	StationName     string `json:"NombreEstacion"`
}

// VehicleDispatched is one item of ObtenerUnidadesDespachadasIncidente.
// All Hora* fields are full timestamps; "0001-01-01T00:00:00" marks an event
// that has not happened yet.
type VehicleDispatched struct {
	StationCode    int     `json:"CodigoEstacion"`
	VehicleCode    int     `json:"CodigoUnidad"`
	BaseReturnTime string  `json:"HoraBase"`
	DispatchedTime string  `json:"HoraDespacho"`
	ArrivalTime    string  `json:"HoraLLegada"`
	DepartureTime  string  `json:"HoraRetiro"`
	DispatchID     int     `json:"IdBoletaUnidadDespachada"`
	VehicleID      int     `json:"IdVehiculo"`
	InternalNumber *string `json:"NumeroInterno"`
	Unit           string  `json:"Unidad"`
	FullUnit       string  `json:"UnidadCompleta"`
}

// IncidentListItem is one item of ObtenerListaEmergenciasApp.
type IncidentListItem struct {
	IncidentCode       string `json:"codigoTipoIncidente"`
	EEConsecutive      string `json:"consecutivoEE"`
	Address            string `json:"direccion"`
	ResponsibleStation string `json:"estacionResponsable"`
	Date               string `json:"fecha"`
	IncidentTime       string `json:"horaIncidente"`
	IncidentID         int    `json:"idBoletaIncidente"`
	IncidentType       string `json:"tipoIncidente"`
}

// envelope is the common Codigo/Descripcion response wrapper for list operations.
type stationsResponse struct {
	Codigo      string             `json:"Codigo"`
	Descripcion string             `json:"Descripcion"`
	Items       []StationAttending `json:"Items"`
}

type vehiclesResponse struct {
	Codigo      string              `json:"Codigo"`
	Descripcion string              `json:"Descripcion"`
	Items       []VehicleDispatched `json:"Items"`
}

type incidentListResponse struct {
	Codigo      string             `json:"Codigo"`
	Descripcion string             `json:"Descripcion"`
	Items       []IncidentListItem `json:"items"`
}
