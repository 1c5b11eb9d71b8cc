package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetFeed_ScopeAndPage(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedScope  repository.FeedScope
		expectedOffset int
	}{
		{"default scope first page", "/posts", repository.FeedScopeAll, 0},
		{"following scope", "/posts?type=following", repository.FeedScopeFollowing, 0},
		{"unknown scope falls back to all", "/posts?type=trending", repository.FeedScopeAll, 0},
		{"third page", "/posts?page=3", repository.FeedScopeAll, 2 * pageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPosts := new(MockPostService)
			mockPosts.On("Feed", mock.Anything, tt.expectedScope, uint(5), pageSize, tt.expectedOffset).
				Return([]*models.Post{}, nil)

			s := newTestServer()
			s.postService = mockPosts

			app := fiber.New()
			app.Get("/posts", asUser(5), s.GetFeed)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			mockPosts.AssertExpectations(t)
		})
	}
}

func TestGetPost(t *testing.T) {
	mockPosts := new(MockPostService)
	mockPosts.On("GetPost", mock.Anything, uint(2), uint(5)).
		Return(&models.Post{ID: 2, Content: "hello", TotalLikes: 3, Liked: true}, nil)

	s := newTestServer()
	s.postService = mockPosts

	app := fiber.New()
	app.Get("/post/:id", asUser(5), s.GetPost)

	req := httptest.NewRequest(http.MethodGet, "/post/2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, uint(2), body.ID)
	assert.Equal(t, 3, body.TotalLikes)
	assert.True(t, body.Liked)
}

func TestGetPost_NotFound(t *testing.T) {
	mockPosts := new(MockPostService)
	mockPosts.On("GetPost", mock.Anything, uint(999), uint(5)).
		Return(nil, models.NewNotFoundError("Post", uint(999)))

	s := newTestServer()
	s.postService = mockPosts

	app := fiber.New()
	app.Get("/post/:id", asUser(5), s.GetPost)

	req := httptest.NewRequest(http.MethodGet, "/post/999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreatePost(t *testing.T) {
	mockPosts := new(MockPostService)
	mockPosts.On("CreatePost", mock.Anything, uint(5), "hello world", "").
		Return(&models.Post{ID: 10, Content: "hello world", UserID: 5}, nil)

	s := newTestServer()
	s.postService = mockPosts

	app := fiber.New()
	app.Post("/create/post", asUser(5), s.CreatePost)

	resp := postJSON(t, app, "/create/post", map[string]string{"content": "hello world"})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreatePost_ValidationError(t *testing.T) {
	mockPosts := new(MockPostService)
	mockPosts.On("CreatePost", mock.Anything, uint(5), "", "").
		Return(nil, models.NewValidationError("content is required"))

	s := newTestServer()
	s.postService = mockPosts

	app := fiber.New()
	app.Post("/create/post", asUser(5), s.CreatePost)

	resp := postJSON(t, app, "/create/post", map[string]string{})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePost(t *testing.T) {
	mockPosts := new(MockPostService)
	mockPosts.On("UpdatePost", mock.Anything, uint(5), uint(2), "edited", "", true).
		Return(&models.Post{ID: 2, Content: "edited"}, nil)

	s := newTestServer()
	s.postService = mockPosts

	app := fiber.New()
	app.Put("/edit/post/:id", asUser(5), s.UpdatePost)

	body, _ := json.Marshal(map[string]any{"content": "edited", "remove_image": true})
	req := httptest.NewRequest(http.MethodPut, "/edit/post/2", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockPosts.AssertExpectations(t)
}

func TestUpdatePost_NotOwner(t *testing.T) {
	mockPosts := new(MockPostService)
	mockPosts.On("UpdatePost", mock.Anything, uint(5), uint(2), "edited", "", false).
		Return(nil, models.NewForbiddenError("you can only edit your own posts"))

	s := newTestServer()
	s.postService = mockPosts

	app := fiber.New()
	app.Put("/edit/post/:id", asUser(5), s.UpdatePost)

	body, _ := json.Marshal(map[string]string{"content": "edited"})
	req := httptest.NewRequest(http.MethodPut, "/edit/post/2", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeletePost(t *testing.T) {
	mockPosts := new(MockPostService)
	mockPosts.On("DeletePost", mock.Anything, uint(5), uint(2)).Return(nil)

	s := newTestServer()
	s.postService = mockPosts

	app := fiber.New()
	app.Delete("/delete/post/:id", asUser(5), s.DeletePost)

	req := httptest.NewRequest(http.MethodDelete, "/delete/post/2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Post deleted", body["message"])
}

func TestGetFeed_InternalError(t *testing.T) {
	mockPosts := new(MockPostService)
	mockPosts.On("Feed", mock.Anything, repository.FeedScopeAll, uint(5), pageSize, 0).
		Return(nil, models.NewInternalError(errors.New("connection refused")))

	s := newTestServer()
	s.postService = mockPosts

	app := fiber.New()
	app.Get("/posts", asUser(5), s.GetFeed)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// Driver detail must not leak into the response body.
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotContains(t, body["error"], "connection refused")
}
