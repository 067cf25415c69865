package model

import "time"

// LiquidacionRuta is a settlement route of a hub ("103", "RUTA 310", …).
// Route codes are unique among active rows of a hub.
type LiquidacionRuta struct {
	ID        uint   `gorm:"primaryKey"`
	HubID     uint   `gorm:"not null;uniqueIndex:uq_hub_route_code"`
	Code      string `gorm:"size:50;not null;uniqueIndex:uq_hub_route_code"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time

	Hub Hub `gorm:"foreignKey:HubID"`
}

func (LiquidacionRuta) TableName() string { return "liquidacion_rutas" }

// LiquidacionEntry is one settlement row per (route, day). Metalico and
// Ingreso keep the raw Spanish numeric strings ("1.268,05"); the difference
// is computed by the frontend. A fully empty row is deleted, not stored.
type LiquidacionEntry struct {
	ID         uint   `gorm:"primaryKey"`
	RouteID    uint   `gorm:"not null;uniqueIndex:uq_route_day"`
	Day        string `gorm:"size:10;not null;uniqueIndex:uq_route_day"` // YYYY-MM-DD
	Repartidor string `gorm:"size:200;not null;default:''"`
	Metalico   string `gorm:"size:50;not null;default:''"`
	Ingreso    string `gorm:"size:50;not null;default:''"`
	Comment    string `gorm:"size:500;not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Route LiquidacionRuta `gorm:"foreignKey:RouteID"`
}

func (LiquidacionEntry) TableName() string { return "liquidacion_entries" }
