package model

import "time"

// Hub is a physical site (plaza) that scopes every operational resource.
// Exactly one row per logical site: names that differ only by case or by a
// leading "Hub " prefix resolve to the same row (see service.HubService).
// The canonical stored name never carries the prefix.
type Hub struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null;uniqueIndex"`
	CreatedAt time.Time
}

func (Hub) TableName() string { return "hubs" }
