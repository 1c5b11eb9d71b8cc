// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// BookmarkPost handles POST /api/bookmark/:id
func (s *Server) BookmarkPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.BookmarkPost(c.Context(), currentUserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"bookmarked": true})
}

// UnbookmarkPost handles DELETE /api/unbookmark/:id
func (s *Server) UnbookmarkPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.UnbookmarkPost(c.Context(), currentUserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"bookmarked": false})
}

// GetBookmarks handles GET /api/bookmarks?page=N. Every row in this scope
// is bookmarked by definition.
func (s *Server) GetBookmarks(c *fiber.Ctx) error {
	page := parsePage(c)

	posts, err := s.postService.BookmarkedPosts(c.Context(), currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}
