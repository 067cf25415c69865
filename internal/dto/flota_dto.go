package dto

// AddVehiculoRequest registers a vehicle. The plate is normalized (uppercase,
// no spaces) before any lookup.
type AddVehiculoRequest struct {
	Matricula string `json:"matricula" validate:"required"`
	Tipo      string `json:"tipo" validate:"required"`
}

type VehiculoDTO struct {
	ID        uint   `json:"id"`
	Matricula string `json:"matricula"`
	Tipo      string `json:"tipo"`
}

type FlotaListResponse struct {
	Hub      string        `json:"hub"`
	Vehicles []VehiculoDTO `json:"vehicles"`
}

// AddIncidenciaRequest logs a vehicle incident. Fecha accepts DD/MM/YYYY or
// YYYY-MM-DD.
type AddIncidenciaRequest struct {
	Titulo      string      `json:"titulo" validate:"required"`
	Descripcion string      `json:"descripcion"`
	Coste       FlexDecimal `json:"coste"`
	Km          FlexInt     `json:"km"`
	Fecha       string      `json:"fecha" validate:"required"`
}

// UpdateIncidenciaRequest patches an incident; only present fields change.
type UpdateIncidenciaRequest struct {
	Titulo      *string      `json:"titulo"`
	Descripcion *string      `json:"descripcion"`
	Coste       *FlexDecimal `json:"coste"`
	Km          *FlexInt     `json:"km"`
	Fecha       *string      `json:"fecha"`
}

type IncidenciaDTO struct {
	ID          uint    `json:"id"`
	VehiculoID  uint    `json:"vehiculo_id"`
	Titulo      string  `json:"titulo"`
	Descripcion string  `json:"descripcion"`
	Coste       float64 `json:"coste"`
	Km          int     `json:"km"`
	Fecha       string  `json:"fecha"` // DD/MM/YYYY
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type IncidenciasResponse struct {
	Vehiculo VehiculoDTO     `json:"vehiculo"`
	Items    []IncidenciaDTO `json:"items"`
}
