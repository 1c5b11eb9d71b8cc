package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/soremkrs/Twex/internal/auth"
	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/repository"
	"github.com/soremkrs/Twex/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for credential and account logic
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
	Signin(ctx context.Context, identifier, password string) (*models.User, error)
	FindOrCreateGoogleUser(ctx context.Context, gu *auth.GoogleUser) (*models.User, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.users.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("username is already taken")
	}
	if existing, err := s.users.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Signin accepts either a username or an email as the identifier. Both
// failure modes return the same message so the response does not reveal
// which accounts exist.
func (s *authService) Signin(ctx context.Context, identifier, password string) (*models.User, error) {
	var user *models.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.users.GetByEmail(ctx, identifier)
	} else {
		user, err = s.users.GetByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("invalid credentials")
	}

	// OAuth-only accounts have no password hash and cannot sign in locally.
	if user.Password == "" {
		return nil, models.NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("invalid credentials")
	}
	return user, nil
}

// FindOrCreateGoogleUser matches by email. A new account gets a username
// derived from the email local part, suffixed on collision.
func (s *authService) FindOrCreateGoogleUser(ctx context.Context, gu *auth.GoogleUser) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, gu.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	username, err := s.availableUsername(ctx, gu.Email)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Username:  username,
		Email:     gu.Email,
		RealName:  gu.Name,
		AvatarURL: gu.Picture,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) availableUsername(ctx context.Context, email string) (string, error) {
	base := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.':
			return r
		default:
			return -1
		}
	}, base)
	if len(base) < 3 {
		base = "user" + base
	}

	candidate := base
	for i := 1; ; i++ {
		existing, err := s.users.GetByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}
