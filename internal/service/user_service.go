// Package service contains the application's business logic.
package service

import (
	"context"

	"devconnect/internal/auth"
	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// Register creates an account and returns a signed token. All field
// failures are collected and reported together, not one at a time.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	var msgs []string
	if err := validation.ValidateName(in.Name); err != nil {
		msgs = append(msgs, err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		msgs = append(msgs, err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		msgs = append(msgs, err.Error())
	}
	if len(msgs) > 0 {
		return "", models.NewValidationError(msgs...)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Avatar:   auth.GravatarURL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	observability.RegistrationsTotal.Inc()

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// Login exchanges credentials for a token. An unknown email and a wrong
// password produce byte-identical failures so the response never reveals
// whether an account exists.
func (s *UserService) Login(ctx context.Context, in LoginInput) (string, error) {
	var msgs []string
	if err := validation.ValidateEmail(in.Email); err != nil {
		msgs = append(msgs, err.Error())
	}
	if in.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	if len(msgs) > 0 {
		return "", models.NewValidationError(msgs...)
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if user == nil || !auth.CheckPassword(in.Password, user.Password) {
		return "", models.NewValidationError("Invalid Credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// GetMe returns the authenticated caller's account record. The password
// hash never serializes; the model hides it from JSON.
func (s *UserService) GetMe(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// DeleteAccount removes the caller's account, profile and posts.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.DeleteCascade(ctx, userID)
}
