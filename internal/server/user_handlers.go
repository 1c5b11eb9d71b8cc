// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/:username/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid username"))
	}

	profile, err := s.userService.GetProfileByUsername(c.Context(), username)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile handles PUT /api/edit/profile/:id
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.ProfileUpdate
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), currentUserID(c), targetID, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// SearchUsers handles GET /api/search/users?q=. An empty query returns an
// empty array, not an error.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	users, err := s.userService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// GetSuggestions handles GET /api/users/suggestions
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	users, err := s.userService.Suggestions(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}
