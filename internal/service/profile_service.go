package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// UpsertProfileInput carries every mutable profile field. A submission is a
// full replacement: fields left empty here end up empty in the stored row.
type UpsertProfileInput struct {
	UserID         uint
	Status         string
	Skills         []string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Instagram      string
	Linkedin       string
	Facebook       string
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Upsert creates or wholesale-replaces the caller's profile. Skills collapse
// to a trimmed CSV string and every URL field is normalized to https.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	var msgs []string
	if in.Status == "" {
		msgs = append(msgs, "Status is required")
	}
	skills := validation.NormalizeSkills(in.Skills)
	if skills == "" {
		msgs = append(msgs, "Skills is required")
	}
	if len(msgs) > 0 {
		return nil, models.NewValidationError(msgs...)
	}

	profile := &models.Profile{
		UserID:         in.UserID,
		Status:         in.Status,
		Skills:         skills,
		Company:        in.Company,
		Website:        validation.NormalizeURL(in.Website),
		Location:       in.Location,
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Social: models.Social{
			Youtube:   validation.NormalizeURL(in.Youtube),
			Twitter:   validation.NormalizeURL(in.Twitter),
			Instagram: validation.NormalizeURL(in.Instagram),
			Linkedin:  validation.NormalizeURL(in.Linkedin),
			Facebook:  validation.NormalizeURL(in.Facebook),
		},
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUser(ctx, in.UserID)
}

func (s *ProfileService) GetMine(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUser(ctx, userID)
}

func (s *ProfileService) ListAll(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}
