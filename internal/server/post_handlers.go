// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/posts?type={all|following}&page=N
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := currentUserID(c)
	scope := repository.ParseFeedScope(c.Query("type"))
	page := parsePage(c)

	posts, err := s.postService.Feed(c.Context(), scope, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/post/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), postID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/create/post
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content  string `json:"content"`
		ImageURL string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), currentUserID(c), req.Content, req.ImageURL)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/edit/post/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content     string `json:"content"`
		ImageURL    string `json:"image_url"`
		RemoveImage bool   `json:"remove_image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), currentUserID(c), postID,
		req.Content, req.ImageURL, req.RemoveImage)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/delete/post/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), currentUserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// GetUserPosts handles GET /api/users/:id/posts. Like/bookmark flags are
// computed for the requester, not the profile owner.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePage(c)

	posts, err := s.postService.PostsByAuthor(c.Context(), authorID, page.Limit, page.Offset, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetUserLikes handles GET /api/users/:id/likes
func (s *Server) GetUserLikes(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePage(c)

	posts, err := s.postService.LikedPosts(c.Context(), userID, page.Limit, page.Offset, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}
