package model

import "time"

// Delivery-client status values.
const (
	EstadoPendiente   = "pendiente"
	EstadoEntregado   = "entregado"
	EstadoAnulado     = "anulado"
	EstadoCambiadoDia = "cambiado_dia"
)

// EstadoValido reports whether s is one of the accepted delivery statuses.
func EstadoValido(s string) bool {
	switch s {
	case EstadoPendiente, EstadoEntregado, EstadoAnulado, EstadoCambiadoDia:
		return true
	}
	return false
}

// RepartoCliente is a delivery client of a hub, attached to a settlement
// route. Coordinates are always populated at creation, supplied by the
// caller or geocoded from Direccion; (0,0) means "missing" and is rejected.
// ClienteCodigo is auto-generated as MANUAL-<id> when not supplied.
type RepartoCliente struct {
	ID            uint    `gorm:"primaryKey"`
	HubID         uint    `gorm:"not null;uniqueIndex:uq_reparto_hub_route_cliente"`
	RouteID       uint    `gorm:"not null;uniqueIndex:uq_reparto_hub_route_cliente"`
	ClienteCodigo string  `gorm:"size:80;not null;default:'';uniqueIndex:uq_reparto_hub_route_cliente"`
	Nombre        string  `gorm:"size:220;not null;default:''"`
	Direccion     string  `gorm:"size:400;not null;default:''"`
	Lat           float64 `gorm:"not null;default:0"`
	Lng           float64 `gorm:"not null;default:0"`
	Estado        string  `gorm:"size:20;not null;default:pendiente"`
	Activo        bool    `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Hub   Hub             `gorm:"foreignKey:HubID"`
	Route LiquidacionRuta `gorm:"foreignKey:RouteID"`
}

func (RepartoCliente) TableName() string { return "reparto_clientes" }
