package model

import "time"

// Contacto is a site contact of a hub. Phone numbers are stored normalized
// (+ and digits only) and are unique among active rows of a hub; re-adding a
// soft-deleted phone reactivates the original row.
type Contacto struct {
	ID        uint   `gorm:"primaryKey"`
	HubID     uint   `gorm:"not null;uniqueIndex:uq_hub_telefono_contacto"`
	Nombre    string `gorm:"size:200;not null;default:''"`
	Cargo     string `gorm:"size:120;not null;default:''"`
	Telefono  string `gorm:"size:40;not null;uniqueIndex:uq_hub_telefono_contacto"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Hub Hub `gorm:"foreignKey:HubID"`
}

func (Contacto) TableName() string { return "hub_contactos" }
