package dto

// CreateRouteRequest registers a settlement route code in a hub.
type CreateRouteRequest struct {
	Code string `json:"code" validate:"required"`
}

type RouteDTO struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
}

type RoutesResponse struct {
	Hub    string     `json:"hub"`
	Routes []RouteDTO `json:"routes"`
}

// LiquidacionRow is one day line of the settlement sheet. Metalico and
// Ingreso stay raw strings ("1.268,05"); the difference is computed client
// side.
type LiquidacionRow struct {
	Day        string `json:"day"`
	Repartidor string `json:"repartidor"`
	Metalico   string `json:"metalico"`
	Ingreso    string `json:"ingreso"`
	Comment    string `json:"comment"`
}

type LiquidacionesMonthResponse struct {
	Hub         string           `json:"hub"`
	Year        int              `json:"year"`
	Month       int              `json:"month"`
	DaysInMonth int              `json:"days_in_month"`
	Route       RouteDTO         `json:"route"`
	Rows        []LiquidacionRow `json:"rows"`
}

// SaveMonthRequest bulk-saves a settlement sheet. Rows with every field empty
// delete the stored entry for that day.
type SaveMonthRequest struct {
	Year      int              `json:"year" validate:"required"`
	Month     int              `json:"month" validate:"required"`
	RouteID   uint             `json:"route_id"`
	RouteCode string           `json:"route_code"`
	Rows      []LiquidacionRow `json:"rows"`
}

// SetCommentRequest stores a single day comment without resending the sheet.
type SetCommentRequest struct {
	Day       string `json:"day" validate:"required"`
	Comment   string `json:"comment"`
	RouteID   uint   `json:"route_id"`
	RouteCode string `json:"route_code"`
}
