package server

import (
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), currentUserID(c), req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// GetPosts handles GET /api/posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id and returns the updated like set.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	likes, err := s.postService.Like(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id and returns the updated like set.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	likes, err := s.postService.Unlike(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}
