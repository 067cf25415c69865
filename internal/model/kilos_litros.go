package model

import "time"

// KilosLitros is a daily per-route delivery metric of a hub. Year and Month
// are denormalized from Day so the list endpoint can filter cheaply.
// One active row per (hub, day, route number); deletion is physical so the
// unique index never collides with tombstones.
type KilosLitros struct {
	ID         uint    `gorm:"primaryKey"`
	HubID      uint    `gorm:"not null;uniqueIndex:uq_hub_day_ruta_kilos"`
	Day        string  `gorm:"size:10;not null;uniqueIndex:uq_hub_day_ruta_kilos"` // YYYY-MM-DD
	Year       int     `gorm:"not null"`
	Month      int     `gorm:"not null"`
	RutaNumero int     `gorm:"not null;uniqueIndex:uq_hub_day_ruta_kilos"`
	Nombre     string  `gorm:"size:120;not null;default:''"`
	Clientes   int     `gorm:"not null;default:0"`
	Kilos      float64 `gorm:"not null;default:0"`
	Litros     float64 `gorm:"not null;default:0"`
	Active     bool    `gorm:"not null;default:true;uniqueIndex:uq_hub_day_ruta_kilos"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Hub Hub `gorm:"foreignKey:HubID"`
}

func (KilosLitros) TableName() string { return "kilos_litros" }
