package service

import (
	"collaband/CollaBand/internal/api/models"
	"collaband/CollaBand/internal/api/repository"
	"collaband/CollaBand/internal/token"
	"collaband/CollaBand/internal/validator"
	"context"

	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for registration and login logic.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   token.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens token.Store) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Register validates the request and creates a new user.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := validator.GetValidator().Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves the supplied value first as a username and, failing that,
// as an email address whose owner's username is retried. On success the
// user's token is fetched or created; a second login returns the same
// token.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.authenticate(ctx, req.EmailOrUsername, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		byEmail, err := s.userRepo.GetUserByEmail(ctx, req.EmailOrUsername)
		if err != nil {
			return nil, err
		}
		if byEmail == nil {
			return nil, ErrInvalidCredentials
		}
		user, err = s.authenticate(ctx, byEmail.Username, req.Password)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: tok,
		User:  user.Info(),
	}, nil
}

// GetUser loads a user by id; (nil, nil) when absent.
func (s *authService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, id)
}

// authenticate checks username+password, returning nil (no error) when the
// pair does not match any user.
func (s *authService) authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}
