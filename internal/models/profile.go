package models

import (
	"time"
)

// Social holds the profile's social links, each normalized to a canonical
// HTTPS URL before storage. Persisted as a single JSON column.
type Social struct {
	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
	Facebook  string `json:"facebook"`
}

// Profile is the zero-or-one per user developer profile. The unique index
// on UserID both enforces the one-profile invariant and makes the upsert a
// single atomic statement.
type Profile struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	Status         string `gorm:"not null" json:"status"`
	Skills         string `gorm:"not null" json:"skills"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Website        string `json:"website"`
	Social         Social `gorm:"serializer:json" json:"social"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
