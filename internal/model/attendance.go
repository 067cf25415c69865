package model

import "time"

// Attendance is one row per (employee, day). Absence of a row means "no data
// for that day", never a zero value; clearing a cell deletes the row.
// code: "" 1 F D V E L O M C
type Attendance struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"not null;uniqueIndex:uq_employee_day"`
	Day        string `gorm:"size:10;not null;uniqueIndex:uq_employee_day"` // YYYY-MM-DD
	Code       string `gorm:"size:5;not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee Employee `gorm:"foreignKey:EmployeeID"`
}

func (Attendance) TableName() string { return "attendance" }

// ExtraHours stores overtime per (employee, day). Hours is kept as the raw
// string so the Spanish comma decimal ("0,5") round-trips untouched.
type ExtraHours struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"not null;uniqueIndex:uq_employee_day_he"`
	Day        string `gorm:"size:10;not null;uniqueIndex:uq_employee_day_he"`
	Hours      string `gorm:"size:20;not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee Employee `gorm:"foreignKey:EmployeeID"`
}

func (ExtraHours) TableName() string { return "extra_hours" }

// AsistenciasComment holds the free-text start/end comments of a hub's
// attendance sheet, one row per (hub, "YYYY-MM").
type AsistenciasComment struct {
	ID           uint   `gorm:"primaryKey"`
	HubID        uint   `gorm:"not null;uniqueIndex:uq_hub_month_comment"`
	MonthKey     string `gorm:"size:7;not null;uniqueIndex:uq_hub_month_comment"` // YYYY-MM
	CommentStart string `gorm:"type:text;not null;default:''"`
	CommentEnd   string `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Hub Hub `gorm:"foreignKey:HubID"`
}

func (AsistenciasComment) TableName() string { return "asistencias_comments" }
