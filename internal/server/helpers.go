// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"errors"

	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// pageSize is the fixed number of rows per feed page. Clients detect the
// end of a list by receiving fewer than pageSize rows, so every paginated
// endpoint must use the same size.
const pageSize = 10

// Pagination holds the limit/offset derived from a 1-based page parameter.
type Pagination struct {
	Limit  int
	Offset int
}

// parsePage reads the ?page= query parameter (1-based, clamped to 1).
func parsePage(c *fiber.Ctx) Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return Pagination{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUserID reads the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// respondServiceError maps a service-layer error onto the HTTP status its
// code implies and writes the JSON error envelope.
func respondServiceError(c *fiber.Ctx, err error) error {
	observability.RecordErrorInContext(c.UserContext(), err)
	return models.RespondWithError(c, models.StatusForError(err), err)
}
