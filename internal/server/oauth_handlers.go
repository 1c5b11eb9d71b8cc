// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"github.com/soremkrs/Twex/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const oauthStateCookie = "twex_oauth_state"

// GoogleRedirect handles GET /api/auth/google. It issues a random state
// nonce, pins it in a short-lived cookie and sends the browser to Google.
func (s *Server) GoogleRedirect(c *fiber.Ctx) error {
	if s.google == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("OAuth provider", "google"))
	}

	state := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   s.config.Env == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.Redirect(s.google.AuthURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback handles GET /api/auth/google/callback. The state param
// must match the cookie set by GoogleRedirect; a mismatch means the flow
// was not initiated by us and is rejected outright.
func (s *Server) GoogleCallback(c *fiber.Ctx) error {
	if s.google == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("OAuth provider", "google"))
	}

	state := c.Query("state")
	expected := c.Cookies(oauthStateCookie)
	if state == "" || expected == "" || state != expected {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid OAuth state"))
	}
	// State is single-use.
	c.Cookie(&fiber.Cookie{
		Name:    oauthStateCookie,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	code := c.Query("code")
	if code == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing authorization code"))
	}

	googleUser, err := s.google.Exchange(c.Context(), code)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Google authentication failed"))
	}

	user, err := s.authService.FindOrCreateGoogleUser(c.Context(), googleUser)
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setAuthCookie(c, token)

	return c.Redirect(s.config.FrontendURL+"/home", fiber.StatusTemporaryRedirect)
}
