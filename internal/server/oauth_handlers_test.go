package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	internalauth "github.com/soremkrs/Twex/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oauthServer() *Server {
	s := newTestServer()
	s.google = internalauth.NewGoogleProvider("client-id", "client-secret",
		"http://localhost:8080/api/auth/google/callback")
	return s
}

func TestGoogleRedirect_NotConfigured(t *testing.T) {
	s := newTestServer()

	app := fiber.New()
	app.Get("/auth/google", s.GoogleRedirect)

	resp := doRequest(t, app, http.MethodGet, "/auth/google")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGoogleRedirect_SetsStateAndRedirects(t *testing.T) {
	s := oauthServer()

	app := fiber.New()
	app.Get("/auth/google", s.GoogleRedirect)

	resp := doRequest(t, app, http.MethodGet, "/auth/google")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)

	var state *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == oauthStateCookie {
			state = c
		}
	}
	require.NotNil(t, state, "state cookie not set")
	assert.NotEmpty(t, state.Value)
	assert.True(t, state.HttpOnly)

	location := resp.Header.Get("Location")
	assert.Contains(t, location, "accounts.google.com")
	assert.Contains(t, location, "state="+state.Value)
}

func TestGoogleCallback_StateMismatch(t *testing.T) {
	s := oauthServer()

	app := fiber.New()
	app.Get("/auth/google/callback", s.GoogleCallback)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=attacker&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "expected"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGoogleCallback_MissingState(t *testing.T) {
	s := oauthServer()

	app := fiber.New()
	app.Get("/auth/google/callback", s.GoogleCallback)

	resp := doRequest(t, app, http.MethodGet, "/auth/google/callback?code=abc")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGoogleCallback_MissingCode(t *testing.T) {
	s := oauthServer()

	app := fiber.New()
	app.Get("/auth/google/callback", s.GoogleCallback)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=nonce", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "nonce"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
