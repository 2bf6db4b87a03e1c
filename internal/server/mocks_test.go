package server

import (
	"context"

	"devconnect/internal/auth"
	"devconnect/internal/config"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository is a mock of the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) Like(ctx context.Context, postID, userID uint) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) Unlike(ctx context.Context, postID, userID uint) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) LikesByPost(ctx context.Context, postID uint) ([]models.Like, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Like), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByPostAndID(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	args := m.Called(ctx, postID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type testRepos struct {
	users    *MockUserRepository
	profiles *MockProfileRepository
	posts    *MockPostRepository
	comments *MockCommentRepository
}

// newTestServer wires a Server around mock repositories and registers the
// full route table, auth middleware included.
func newTestServer() (*Server, *fiber.App, *testRepos) {
	repos := &testRepos{
		users:    new(MockUserRepository),
		profiles: new(MockProfileRepository),
		posts:    new(MockPostRepository),
		comments: new(MockCommentRepository),
	}

	cfg := &config.Config{JWTSecret: "test_secret", Port: "5000"}
	s := &Server{
		config:      cfg,
		tokens:      auth.NewTokenManager(cfg.JWTSecret),
		userRepo:    repos.users,
		profileRepo: repos.profiles,
		postRepo:    repos.posts,
		commentRepo: repos.comments,
	}
	s.userService = service.NewUserService(repos.users, s.tokens)
	s.profileService = service.NewProfileService(repos.profiles)
	s.postService = service.NewPostService(repos.posts, repos.users)
	s.commentService = service.NewCommentService(repos.comments, repos.posts, repos.users)
	s.githubService = service.NewGithubService("")

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, repos
}

var _ repository.UserRepository = (*MockUserRepository)(nil)
var _ repository.ProfileRepository = (*MockProfileRepository)(nil)
var _ repository.PostRepository = (*MockPostRepository)(nil)
var _ repository.CommentRepository = (*MockCommentRepository)(nil)
