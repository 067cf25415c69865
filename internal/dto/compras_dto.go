package dto

// AddCompraRequest adds a purchase line item. Descripcion is the legacy name
// of Especificaciones; either key is accepted.
type AddCompraRequest struct {
	Item             string       `json:"item" validate:"required"`
	Especificaciones string       `json:"especificaciones"`
	Descripcion      string       `json:"descripcion"`
	Donde            string       `json:"donde"`
	Precio           *FlexDecimal `json:"precio"`
	Cantidad         *FlexInt     `json:"cantidad"`
}

// UpdateCompraRequest patches a line item; only present fields change.
type UpdateCompraRequest struct {
	Item             *string      `json:"item"`
	Especificaciones *string      `json:"especificaciones"`
	Descripcion      *string      `json:"descripcion"`
	Donde            *string      `json:"donde"`
	Precio           *FlexDecimal `json:"precio"`
	Cantidad         *FlexInt     `json:"cantidad"`
	Comprado         *bool        `json:"comprado"`
}

// CompraDTO carries especificaciones under both its current and legacy key so
// older frontend builds keep working.
type CompraDTO struct {
	ID               uint    `json:"id"`
	Item             string  `json:"item"`
	Especificaciones string  `json:"especificaciones"`
	Descripcion      string  `json:"descripcion"`
	Donde            string  `json:"donde"`
	Precio           float64 `json:"precio"`
	Cantidad         int     `json:"cantidad"`
	Total            float64 `json:"total"`
	Comprado         bool    `json:"comprado"`
	Active           bool    `json:"active"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ComprasListResponse struct {
	Hub   string      `json:"hub"`
	Items []CompraDTO `json:"items"`
}
