package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost publishes a post under the author's current name and avatar.
// The snapshot is intentional: posts keep displaying the identity their
// author had at publish time.
func (s *PostService) CreatePost(ctx context.Context, userID uint, text string) (*models.Post, error) {
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: author.ID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.PostsCreatedTotal.Inc()
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// DeletePost removes a post the caller owns. Non-owners get the same
// response an unauthenticated caller would; ownership is never leaked.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError()
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like adds the caller's like and returns the post's updated like set.
func (s *PostService) Like(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Like(ctx, postID, userID); err != nil {
		observability.LikeTogglesTotal.WithLabelValues("like", "conflict").Inc()
		return nil, err
	}
	observability.LikeTogglesTotal.WithLabelValues("like", "ok").Inc()
	return s.postRepo.LikesByPost(ctx, postID)
}

// Unlike removes the caller's like and returns the post's updated like set.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Unlike(ctx, postID, userID); err != nil {
		observability.LikeTogglesTotal.WithLabelValues("unlike", "conflict").Inc()
		return nil, err
	}
	observability.LikeTogglesTotal.WithLabelValues("unlike", "ok").Inc()
	return s.postRepo.LikesByPost(ctx, postID)
}
