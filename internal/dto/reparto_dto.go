package dto

// AddRepartoClienteRequest creates a delivery client on one of the hub's
// settlement routes. Lat/Lng are optional; when absent (or 0,0) the address
// is geocoded.
type AddRepartoClienteRequest struct {
	RouteID       FlexInt    `json:"route_id"`
	Nombre        string     `json:"nombre" validate:"required"`
	Direccion     string     `json:"direccion" validate:"required"`
	Lat           *FlexFloat `json:"lat"`
	Lng           *FlexFloat `json:"lng"`
	Estado        string     `json:"estado"`
	ClienteCodigo string     `json:"cliente_codigo"`
}

// UpdateRepartoClienteRequest patches a delivery client; only present fields
// change.
type UpdateRepartoClienteRequest struct {
	Estado        *string    `json:"estado"`
	Nombre        *string    `json:"nombre"`
	Direccion     *string    `json:"direccion"`
	Lat           *FlexFloat `json:"lat"`
	Lng           *FlexFloat `json:"lng"`
	ClienteCodigo *string    `json:"cliente_codigo"`
	RouteID       *FlexInt   `json:"route_id"`
	Activo        *bool      `json:"activo"`
}

type RepartoClienteDTO struct {
	ID            uint    `json:"id"`
	HubID         uint    `json:"hub_id"`
	RouteID       uint    `json:"route_id"`
	ClienteCodigo string  `json:"cliente_codigo"`
	Nombre        string  `json:"nombre"`
	Direccion     string  `json:"direccion"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Estado        string  `json:"estado"`
	Activo        bool    `json:"activo"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type RepartoClientesResponse struct {
	Items []RepartoClienteDTO `json:"items"`
}
