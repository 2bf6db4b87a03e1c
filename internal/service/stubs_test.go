package service

import (
	"context"

	"devconnect/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	deleteCascadeFn func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Jane Doe", Email: "jane@example.com", Avatar: "https://www.gravatar.com/avatar/x"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		deleteCascadeFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	upsertFn    func(context.Context, *models.Profile) error
	getByUserFn func(context.Context, uint) (*models.Profile, error)
	listFn      func(context.Context) ([]models.Profile, error)
}

func (s *profileRepoStub) Upsert(ctx context.Context, profile *models.Profile) error {
	return s.upsertFn(ctx, profile)
}
func (s *profileRepoStub) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint) (*models.Post, error)
	listFn        func(context.Context) ([]models.Post, error)
	deleteFn      func(context.Context, uint) error
	likeFn        func(context.Context, uint, uint) error
	unlikeFn      func(context.Context, uint, uint) error
	likesByPostFn func(context.Context, uint) ([]models.Like, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, postID, userID uint) error {
	return s.likeFn(ctx, postID, userID)
}
func (s *postRepoStub) Unlike(ctx context.Context, postID, userID uint) error {
	return s.unlikeFn(ctx, postID, userID)
}
func (s *postRepoStub) LikesByPost(ctx context.Context, postID uint) ([]models.Like, error) {
	return s.likesByPostFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1, Text: "hello"}, nil
		},
		listFn:        func(_ context.Context) ([]models.Post, error) { return nil, nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
		likeFn:        func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:      func(_ context.Context, _, _ uint) error { return nil },
		likesByPostFn: func(_ context.Context, _ uint) ([]models.Like, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn         func(context.Context, *models.Comment) error
	getByPostAndIDFn func(context.Context, uint, uint) (*models.Comment, error)
	deleteFn         func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByPostAndID(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	return s.getByPostAndIDFn(ctx, postID, commentID)
}
func (s *commentRepoStub) Delete(ctx context.Context, commentID uint) error {
	return s.deleteFn(ctx, commentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		getByPostAndIDFn: func(_ context.Context, postID, commentID uint) (*models.Comment, error) {
			return &models.Comment{ID: commentID, PostID: postID, UserID: 1}, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}
