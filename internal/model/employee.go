package model

import "time"

// Employee belongs to exactly one Hub. Deletion is logical (Active=false);
// re-creating the same name reactivates the original row so attendance
// history keeps pointing at the same id.
type Employee struct {
	ID        uint   `gorm:"primaryKey"`
	HubID     uint   `gorm:"not null;uniqueIndex:uq_employee_hub_name"`
	Name      string `gorm:"size:200;not null;uniqueIndex:uq_employee_hub_name"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time

	Hub Hub `gorm:"foreignKey:HubID"`
}

func (Employee) TableName() string { return "employees" }
