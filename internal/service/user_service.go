package service

import (
	"context"
	"strings"
	"time"

	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/repository"
)

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	RealName    string     `json:"real_name"`
	Bio         string     `json:"bio"`
	AvatarURL   string     `json:"avatar_url"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// UserService defines the interface for user business logic
type UserService interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetProfileByUsername(ctx context.Context, username string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, currentUserID, targetID uint, update ProfileUpdate) (*models.User, error)
	Search(ctx context.Context, query string) ([]*models.User, error)
	Suggestions(ctx context.Context, forUserID uint) ([]*models.User, error)
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	Following(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error)
	Followers(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error)
}

const (
	searchLimit      = 20
	suggestionsLimit = 5
)

type userService struct {
	users   repository.UserRepository
	posts   repository.PostRepository
	follows repository.FollowRepository
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepository, posts repository.PostRepository, follows repository.FollowRepository) UserService {
	return &userService{users: users, posts: posts, follows: follows}
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetProfileByUsername resolves a user plus their tweet and follow counts.
// Counts come from live queries; only the user row itself is cached.
func (s *userService) GetProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	followers, err := s.follows.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	tweets, err := s.posts.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		User:           *user,
		TweetCount:     tweets,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, currentUserID, targetID uint, update ProfileUpdate) (*models.User, error) {
	if currentUserID != targetID {
		return nil, models.NewForbiddenError("you can only edit your own profile")
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.RealName = update.RealName
	user.Bio = update.Bio
	user.AvatarURL = update.AvatarURL
	user.DateOfBirth = update.DateOfBirth
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, targetID)
}

func (s *userService) Search(ctx context.Context, query string) ([]*models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*models.User{}, nil
	}
	return s.users.Search(ctx, query, searchLimit)
}

func (s *userService) Suggestions(ctx context.Context, forUserID uint) ([]*models.User, error) {
	return s.users.Suggestions(ctx, forUserID, suggestionsLimit)
}

func (s *userService) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return models.NewValidationError("you cannot follow yourself")
	}
	exists, err := s.follows.UserExists(ctx, followingID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("User", followingID)
	}
	return s.follows.Follow(ctx, followerID, followingID)
}

func (s *userService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	exists, err := s.follows.UserExists(ctx, followingID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("User", followingID)
	}
	return s.follows.Unfollow(ctx, followerID, followingID)
}

func (s *userService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.follows.IsFollowing(ctx, followerID, followingID)
}

func (s *userService) Following(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	return s.follows.Following(ctx, userID, limit, offset)
}

func (s *userService) Followers(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	return s.follows.Followers(ctx, userID, limit, offset)
}
