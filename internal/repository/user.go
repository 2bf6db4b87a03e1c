package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteCascade(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. The unique index on email is the authority on
// duplicates; a constraint violation is translated, never pre-checked.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateEmailError()
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByEmail matches the stored email exactly (case-sensitive). A missing
// user returns (nil, nil) so the caller controls the failure message.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// DeleteCascade removes the user's posts (with their likes and comments),
// then the profile, then the user record, in one transaction. Likes and
// comments the user left on other users' posts are preserved.
func (r *userRepository) DeleteCascade(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User not found")
			}
			return models.NewInternalError(err)
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return models.NewInternalError(err)
		}

		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
				return models.NewInternalError(err)
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cache.InvalidateProfile(ctx, id)
	return nil
}
