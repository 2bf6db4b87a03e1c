// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Rows are immutable after
// registration except through account deletion, which cascades to the
// user's posts and profile.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
