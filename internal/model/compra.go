package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HubCompra is a purchase request line item of a hub.
// Especificaciones was historically named "descripcion"; the input adapter in
// the DTO layer still accepts both. Deletion is physical.
type HubCompra struct {
	ID               uint            `gorm:"primaryKey"`
	HubID            uint            `gorm:"not null"`
	Item             string          `gorm:"size:200;not null;default:''"`
	Especificaciones string          `gorm:"size:500;not null;default:''"`
	Donde            string          `gorm:"size:200;not null;default:''"`
	Precio           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Cantidad         int             `gorm:"not null;default:1"`
	Comprado         bool            `gorm:"not null;default:false"`
	Active           bool            `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Hub Hub `gorm:"foreignKey:HubID"`
}

func (HubCompra) TableName() string { return "hub_compras" }
