package service

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_RequiresText(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())

	_, err := svc.CreatePost(context.Background(), 1, "")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Equal(t, []string{"Text is required"}, appErr.Msgs)
}

func TestPostService_CreatePost_SnapshotsAuthor(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "Jane Doe", Avatar: "https://www.gravatar.com/avatar/abc"}, nil
	}
	svc := NewPostService(noopPostRepo(), userRepo)

	post, err := svc.CreatePost(context.Background(), 4, "hello world")
	require.NoError(t, err)

	assert.Equal(t, uint(4), post.UserID)
	assert.Equal(t, "Jane Doe", post.Name)
	assert.Equal(t, "https://www.gravatar.com/avatar/abc", post.Avatar)
}

func TestPostService_CreatePost_AuthorRowMissing(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User not found")
	}
	svc := NewPostService(noopPostRepo(), userRepo)

	// A valid token for a deleted account cannot publish.
	_, err := svc.CreatePost(context.Background(), 4, "hello")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestPostService_DeletePost_OwnerOnly(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1}, nil
	}
	deleted := false
	postRepo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewPostService(postRepo, noopUserRepo())
	ctx := context.Background()

	err := svc.DeletePost(ctx, 2, 10)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
	assert.Equal(t, "User not authorized", appErr.Message)
	assert.False(t, deleted)

	require.NoError(t, svc.DeletePost(ctx, 1, 10))
	assert.True(t, deleted)
}

func TestPostService_Like_ReturnsLikeSet(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.likesByPostFn = func(_ context.Context, postID uint) ([]models.Like, error) {
		return []models.Like{{ID: 1, PostID: postID, UserID: 2}}, nil
	}
	svc := NewPostService(postRepo, noopUserRepo())

	likes, err := svc.Like(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, uint(2), likes[0].UserID)
}

func TestPostService_Like_Conflicts(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.likeFn = func(_ context.Context, _, _ uint) error {
		return models.NewAlreadyLikedError()
	}
	postRepo.unlikeFn = func(_ context.Context, _, _ uint) error {
		return models.NewNotLikedError()
	}
	svc := NewPostService(postRepo, noopUserRepo())
	ctx := context.Background()

	_, err := svc.Like(ctx, 2, 10)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeAlreadyLiked, appErr.Code)

	_, err = svc.Unlike(ctx, 2, 10)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotLiked, appErr.Code)
}

func TestPostService_Like_MissingPost(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post not found")
	}
	svc := NewPostService(postRepo, noopUserRepo())

	_, err := svc.Like(context.Background(), 2, 404)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
