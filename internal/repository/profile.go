package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.Profile) error
	GetByUser(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert inserts the profile or, when one already exists for the user,
// replaces its mutable fields wholesale. The conflict target is the unique
// index on user_id, so the check-then-write race of a naive exists/insert
// sequence cannot occur.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "skills", "company", "location", "bio",
			"github_username", "website", "social", "updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	key := cache.ProfileKey(userID)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewProfileMissingError()
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile

	err := cache.Aside(ctx, cache.ProfilesListKey, &profiles, cache.ProfilesListTTL, func() error {
		if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
