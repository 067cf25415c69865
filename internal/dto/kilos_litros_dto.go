package dto

// AddKilosLitrosRequest records one route's daily delivery metrics.
type AddKilosLitrosRequest struct {
	Day        string    `json:"day" validate:"required"`
	RutaNumero FlexInt   `json:"ruta_numero"`
	Nombre     string    `json:"nombre" validate:"required"`
	Clientes   FlexInt   `json:"clientes"`
	Kilos      FlexFloat `json:"kilos"`
	Litros     FlexFloat `json:"litros"`
}

// UpdateKilosLitrosRequest replaces every mutable field of a record; the day
// itself never changes.
type UpdateKilosLitrosRequest struct {
	RutaNumero FlexInt   `json:"ruta_numero"`
	Nombre     string    `json:"nombre"`
	Clientes   FlexInt   `json:"clientes"`
	Kilos      FlexFloat `json:"kilos"`
	Litros     FlexFloat `json:"litros"`
}

type KilosLitrosDTO struct {
	ID         uint    `json:"id"`
	Day        string  `json:"day"`
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	RutaNumero int     `json:"ruta_numero"`
	Nombre     string  `json:"nombre"`
	Clientes   int     `json:"clientes"`
	Kilos      float64 `json:"kilos"`
	Litros     float64 `json:"litros"`
}

type KilosLitrosTotals struct {
	Clientes int     `json:"clientes"`
	Kilos    float64 `json:"kilos"`
	Litros   float64 `json:"litros"`
}

type KilosLitrosListResponse struct {
	Hub    string            `json:"hub"`
	Year   *int              `json:"year"`
	Month  *int              `json:"month"`
	Totals KilosLitrosTotals `json:"totals"`
	Items  []KilosLitrosDTO  `json:"items"`
}
