package domain

import "gorm.io/gorm"

// User is a registered account. Only the bcrypt hash of the password is
// persisted; the plaintext never leaves the service layer.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
