package domain

import "gorm.io/gorm"

// Todo is a single to-do list entry.
type Todo struct {
	gorm.Model
	Item string `gorm:"not null"`
}
