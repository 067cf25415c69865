package model

import "time"

// User is an API account. Login identity is the email itself (primary key),
// matching how the operations team provisions accounts.
type User struct {
	Email        string `gorm:"primaryKey;size:200"`
	Name         string `gorm:"size:200;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:user"` // user | admin
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

func (User) TableName() string { return "users" }
