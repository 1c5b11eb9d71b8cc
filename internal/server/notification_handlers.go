// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// CheckNotifications handles GET /api/notifications/check. The answer is
// advisory; a concurrent mark-seen may flip it between two polls.
func (s *Server) CheckNotifications(c *fiber.Ctx) error {
	hasNew, err := s.notificationService.HasNew(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"has_new": hasNew})
}

// MarkNotificationsSeen handles POST /api/notifications/mark-seen
func (s *Server) MarkNotificationsSeen(c *fiber.Ctx) error {
	if err := s.notificationService.MarkSeen(c.Context(), currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notifications marked as seen"})
}
