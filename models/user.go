// user.go - Defines the User model for the database

package models

import "time"

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"` // Must be unique across all users
	// Stored verbatim as submitted, matching the original site's behavior.
	Password   string    `gorm:"size:30;not null" json:"-"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	DateJoined time.Time `json:"date_joined"`
}
