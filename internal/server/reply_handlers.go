// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/soremkrs/Twex/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetReplies handles GET /api/posts/:id/replies. The thread is returned
// whole, oldest first.
func (s *Server) GetReplies(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.replyService.RepliesForPost(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(replies)
}

// CreateReply handles POST /api/replies
func (s *Server) CreateReply(c *fiber.Ctx) error {
	var req struct {
		PostID   uint   `json:"post_id"`
		Content  string `json:"content"`
		ImageURL string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}

	reply, err := s.replyService.CreateReply(c.Context(), currentUserID(c), req.PostID, req.Content, req.ImageURL)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

// DeleteReply handles DELETE /api/reply/:id
func (s *Server) DeleteReply(c *fiber.Ctx) error {
	replyID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.replyService.DeleteReply(c.Context(), currentUserID(c), replyID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Reply deleted"})
}

// GetUserReplies handles GET /api/users/:id/replies. Each reply carries its
// parent post for rendering context.
func (s *Server) GetUserReplies(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePage(c)

	replies, err := s.replyService.RepliesByAuthor(c.Context(), authorID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(replies)
}
