package server

import (
	"context"
	"net/http"

	"github.com/soremkrs/Twex/internal/auth"
	"github.com/soremkrs/Twex/internal/config"
	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/repository"
	"github.com/soremkrs/Twex/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// newTestServer builds a Server with a test config and nil infrastructure.
// Individual tests attach the mocks they need.
func newTestServer() *Server {
	return &Server{
		config: &config.Config{
			JWTSecret:   "test_secret",
			Env:         "test",
			FrontendURL: "http://localhost:3000",
		},
	}
}

// authedRequest attaches a freshly signed Bearer token for the given user.
func authedRequest(s *Server, req *http.Request, userID uint, username string) *http.Request {
	token, err := s.generateToken(userID, username)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// asUser simulates AuthRequired having run for handler-level tests.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

// MockAuthService is a mock of the service.AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Signin(ctx context.Context, identifier, password string) (*models.User, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) FindOrCreateGoogleUser(ctx context.Context, gu *auth.GoogleUser) (*models.User, error) {
	args := m.Called(ctx, gu)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockPostService is a mock of the service.PostService interface
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, userID uint, content, imageURL string) (*models.Post, error) {
	args := m.Called(ctx, userID, content, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Feed(ctx context.Context, scope repository.FeedScope, currentUserID uint, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, scope, currentUserID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostService) PostsByAuthor(ctx context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, authorID, limit, offset, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostService) LikedPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, userID, limit, offset, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostService) BookmarkedPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, userID, postID uint, content, imageURL string, removeImage bool) (*models.Post, error) {
	args := m.Called(ctx, userID, postID, content, imageURL, removeImage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostService) LikePost(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostService) UnlikePost(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostService) BookmarkPost(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostService) UnbookmarkPost(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

// MockReplyService is a mock of the service.ReplyService interface
type MockReplyService struct {
	mock.Mock
}

func (m *MockReplyService) CreateReply(ctx context.Context, userID, postID uint, content, imageURL string) (*models.Reply, error) {
	args := m.Called(ctx, userID, postID, content, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reply), args.Error(1)
}

func (m *MockReplyService) RepliesForPost(ctx context.Context, postID uint) ([]*models.Reply, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Reply), args.Error(1)
}

func (m *MockReplyService) RepliesByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Reply, error) {
	args := m.Called(ctx, authorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Reply), args.Error(1)
}

func (m *MockReplyService) DeleteReply(ctx context.Context, userID, replyID uint) error {
	args := m.Called(ctx, userID, replyID)
	return args.Error(0)
}

// MockUserService is a mock of the service.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, currentUserID, targetID uint, update service.ProfileUpdate) (*models.User, error) {
	args := m.Called(ctx, currentUserID, targetID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Search(ctx context.Context, query string) ([]*models.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserService) Suggestions(ctx context.Context, forUserID uint) ([]*models.User, error) {
	args := m.Called(ctx, forUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserService) Follow(ctx context.Context, followerID, followingID uint) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockUserService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockUserService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) Following(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserService) Followers(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

// MockNotificationService is a mock of the service.NotificationService interface
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) HasNew(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationService) MarkSeen(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// userByIDRepo overrides GetByID on an otherwise unimplemented repository.
type userByIDRepo struct {
	repository.UserRepository
	user *models.User
	err  error
}

func (r userByIDRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.user, r.err
}

// likedStatusRepo overrides IsLiked on an otherwise unimplemented repository.
type likedStatusRepo struct {
	repository.PostRepository
	liked bool
	err   error
}

func (r likedStatusRepo) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return r.liked, r.err
}
