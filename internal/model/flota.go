package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlotaVehiculo is a fleet vehicle of a hub. Plates are stored normalized
// (uppercase, no spaces) and are unique per hub; re-adding a soft-deleted
// plate reactivates the original row.
type FlotaVehiculo struct {
	ID        uint   `gorm:"primaryKey"`
	HubID     uint   `gorm:"not null;uniqueIndex:uq_hub_matricula"`
	Matricula string `gorm:"size:30;not null;uniqueIndex:uq_hub_matricula"`
	Tipo      string `gorm:"size:30;not null"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Hub Hub `gorm:"foreignKey:HubID"`
}

func (FlotaVehiculo) TableName() string { return "flota_vehiculos" }

// FlotaIncidencia is an incident log entry of a vehicle. No soft delete:
// incidents are removed for real (no history value once corrected).
type FlotaIncidencia struct {
	ID          uint            `gorm:"primaryKey"`
	HubID       uint            `gorm:"not null"`
	VehiculoID  uint            `gorm:"not null"`
	Titulo      string          `gorm:"size:200;not null;default:''"`
	Descripcion string          `gorm:"size:1000;not null;default:''"`
	Coste       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Km          int             `gorm:"not null;default:0"`
	Fecha       time.Time       `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Hub      Hub           `gorm:"foreignKey:HubID"`
	Vehiculo FlotaVehiculo `gorm:"foreignKey:VehiculoID"`
}

func (FlotaIncidencia) TableName() string { return "flota_incidencias" }
