package models

import (
	"time"
)

// Comment is a reply on a post. Name and Avatar snapshot the author at
// comment time, matching the post snapshot rule.
type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	PostID uint   `gorm:"not null;index" json:"post_id"`
	UserID uint   `gorm:"not null" json:"user_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
}
