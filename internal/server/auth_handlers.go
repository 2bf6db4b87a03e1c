package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users. A successful registration responds with
// the signed token only; the client exchanges it via GET /api/auth.
func (s *Server) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	token, err := s.userService.Register(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// Login handles POST /api/auth
func (s *Server) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	token, err := s.userService.Login(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// GetMe handles GET /api/auth and returns the caller's account record.
func (s *Server) GetMe(c *fiber.Ctx) error {
	user, err := s.userService.GetMe(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
