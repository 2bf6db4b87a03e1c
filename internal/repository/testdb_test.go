package repository

import (
	"testing"

	"devconnect/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the real schema, so
// the unique indexes that back the like toggle and the profile upsert are
// enforced for real rather than mocked.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: "hashed",
		Avatar:   "https://www.gravatar.com/avatar/x?d=mm&r=pg&s=200",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func seedPost(t *testing.T, db *gorm.DB, user *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID: user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to seed post: %v", err)
	}
	return post
}
