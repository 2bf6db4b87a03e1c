package server

import (
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/comment/:id
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(c.UserContext(), currentUserID(c), postID, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id. The
// comment id is resolved within the post; a mismatch reads as missing.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "comment_id", "comment ID")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.UserContext(), currentUserID(c), postID, commentID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Comment removed"})
}
