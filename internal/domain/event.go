package domain

import "gorm.io/gorm"

// Event is a planner entry owned by the user who created it.
// Tags are stored as a JSON column so the whole record lives in one table.
type Event struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Image       string
	Description string
	Tags        []string `gorm:"serializer:json"`
	Location    string
	CreatorID   uint `gorm:"index"`
}
