// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"strings"

	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/observability"
	"github.com/soremkrs/Twex/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// MaxContentLength caps post and reply bodies, measured in runes.
const MaxContentLength = 280

// PostService defines the interface for post business logic
type PostService interface {
	CreatePost(ctx context.Context, userID uint, content, imageURL string) (*models.Post, error)
	GetPost(ctx context.Context, id, currentUserID uint) (*models.Post, error)
	Feed(ctx context.Context, scope repository.FeedScope, currentUserID uint, limit, offset int) ([]*models.Post, error)
	PostsByAuthor(ctx context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	LikedPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	BookmarkedPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	UpdatePost(ctx context.Context, userID, postID uint, content, imageURL string, removeImage bool) (*models.Post, error)
	DeletePost(ctx context.Context, userID, postID uint) error
	LikePost(ctx context.Context, userID, postID uint) error
	UnlikePost(ctx context.Context, userID, postID uint) error
	BookmarkPost(ctx context.Context, userID, postID uint) error
	UnbookmarkPost(ctx context.Context, userID, postID uint) error
}

type postService struct {
	posts repository.PostRepository
}

// NewPostService creates a new post service
func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("content is required")
	}
	if len([]rune(content)) > MaxContentLength {
		return models.NewValidationError("content must be at most 280 characters")
	}
	return nil
}

func (s *postService) CreatePost(ctx context.Context, userID uint, content, imageURL string) (*models.Post, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	post := &models.Post{
		Content:  content,
		ImageURL: imageURL,
		UserID:   userID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	// Re-read through the detail query so the response carries counts and
	// flags in the same shape as every list endpoint.
	return s.posts.GetByID(ctx, post.ID, userID)
}

func (s *postService) GetPost(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id, currentUserID)
}

func (s *postService) Feed(ctx context.Context, scope repository.FeedScope, currentUserID uint, limit, offset int) ([]*models.Post, error) {
	observability.AddTraceAttributesToContext(ctx, attribute.String("feed.scope", string(scope)))
	return s.posts.ListFeed(ctx, scope, currentUserID, limit, offset)
}

func (s *postService) PostsByAuthor(ctx context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID, limit, offset, currentUserID)
}

func (s *postService) LikedPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.posts.ListLikedBy(ctx, userID, limit, offset, currentUserID)
}

func (s *postService) BookmarkedPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.posts.ListBookmarked(ctx, userID, limit, offset)
}

// UpdatePost edits a post's content and image. An empty imageURL leaves the
// existing image alone; removeImage clears it regardless.
func (s *postService) UpdatePost(ctx context.Context, userID, postID uint, content, imageURL string, removeImage bool) (*models.Post, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewForbiddenError("you can only edit your own posts")
	}

	post.Content = content
	switch {
	case removeImage:
		post.ImageURL = ""
	case imageURL != "":
		post.ImageURL = imageURL
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, postID, userID)
}

func (s *postService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.posts.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("you can only delete your own posts")
	}
	return s.posts.Delete(ctx, postID)
}

// requirePost turns a toggle against a missing post into a not-found error
// instead of silently inserting a dangling relation.
func (s *postService) requirePost(ctx context.Context, postID uint) error {
	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("Post", postID)
	}
	return nil
}

func (s *postService) LikePost(ctx context.Context, userID, postID uint) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}
	return s.posts.Like(ctx, userID, postID)
}

func (s *postService) UnlikePost(ctx context.Context, userID, postID uint) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}
	return s.posts.Unlike(ctx, userID, postID)
}

func (s *postService) BookmarkPost(ctx context.Context, userID, postID uint) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}
	return s.posts.Bookmark(ctx, userID, postID)
}

func (s *postService) UnbookmarkPost(ctx context.Context, userID, postID uint) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}
	return s.posts.Unbookmark(ctx, userID, postID)
}
