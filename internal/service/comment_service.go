package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment attaches a comment to the post, stamped with the commenter's
// current name and avatar, and returns it.
func (s *CommentService) AddComment(ctx context.Context, userID, postID uint, text string) (*models.Comment, error) {
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: author.ID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	observability.CommentsCreatedTotal.Inc()
	return comment, nil
}

// DeleteComment removes a comment the caller owns. The comment must belong
// to the named post; a comment id under a different post reads as missing.
func (s *CommentService) DeleteComment(ctx context.Context, userID, postID, commentID uint) error {
	comment, err := s.commentRepo.GetByPostAndID(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return models.NewForbiddenError()
	}
	return s.commentRepo.Delete(ctx, commentID)
}
