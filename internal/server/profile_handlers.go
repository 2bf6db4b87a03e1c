package server

import (
	"encoding/json"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// skillsField accepts skills as either a comma-separated string or a JSON
// list of strings; clients have historically sent both.
type skillsField []string

func (s *skillsField) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = strings.Split(single, ",")
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}

type upsertProfileRequest struct {
	Status         string      `json:"status"`
	Skills         skillsField `json:"skills"`
	Company        string      `json:"company"`
	Website        string      `json:"website"`
	Location       string      `json:"location"`
	Bio            string      `json:"bio"`
	GithubUsername string      `json:"githubusername"`
	Youtube        string      `json:"youtube"`
	Twitter        string      `json:"twitter"`
	Instagram      string      `json:"instagram"`
	Linkedin       string      `json:"linkedin"`
	Facebook       string      `json:"facebook"`
}

// UpsertProfile handles POST /api/profile
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req upsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Upsert(c.UserContext(), service.UpsertProfileInput{
		UserID:         currentUserID(c),
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
		Facebook:       req.Facebook,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetMyProfile handles GET /api/profile/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetMine(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetProfiles handles GET /api/profile
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListAll(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profiles)
}

// DeleteAccount handles DELETE /api/profile. It removes the caller's
// profile, posts, and user record in one transaction.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.UserContext(), currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "User deleted"})
}

// GetGithubRepos handles GET /api/profile/github/:username
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	username := c.Params("username")
	repos, err := s.githubService.GetRepos(c.UserContext(), username)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(repos)
}
