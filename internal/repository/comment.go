package repository

import (
	"context"
	"errors"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostAndID(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	Delete(ctx context.Context, commentID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByPostAndID resolves a comment within a given post. A comment id that
// exists under a different post is treated as missing.
func (r *commentRepository) GetByPostAndID(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment does not exist")
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, commentID)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Comment does not exist")
	}
	return nil
}
