package repository

import (
	"context"
	"errors"

	"devconnect/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines persistence operations for posts, likes and the
// post-scoped parts of comments.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, postID, userID uint) error
	Unlike(ctx context.Context, postID, userID uint) error
	LikesByPost(ctx context.Context, postID uint) ([]models.Like, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID loads the post with its likes and comments.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns all posts, newest first.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Delete removes the post together with its likes and comments in one
// transaction.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post not found")
		}
		return nil
	})
}

// Like records that the user likes the post. The composite unique index on
// (post_id, user_id) is the single source of truth: a conflicting insert is
// dropped and surfaces as an already-liked error, so two concurrent likes
// can never both succeed.
func (r *postRepository) Like(ctx context.Context, postID, userID uint) error {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&models.Like{PostID: postID, UserID: userID})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewAlreadyLikedError()
	}
	return nil
}

// Unlike removes the user's like. The delete's row count decides the
// outcome, so concurrent unlikes resolve to exactly one winner.
func (r *postRepository) Unlike(ctx context.Context, postID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotLikedError()
	}
	return nil
}

func (r *postRepository) LikesByPost(ctx context.Context, postID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}
