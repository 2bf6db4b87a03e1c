package models

import (
	"time"
)

// Post is a feed entry. Name and Avatar are a denormalized snapshot of the
// author at creation time; later profile edits do not touch them.
type Post struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}
