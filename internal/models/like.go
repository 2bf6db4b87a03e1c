package models

import (
	"time"
)

// Like records a user liking a post. The composite unique index is the
// concurrency guard for the like toggle: a duplicate insert is rejected by
// the store, never by a check-then-act read.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
