package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/averyhsu/planner-backend/internal/auth"
	"github.com/averyhsu/planner-backend/internal/domain"
	"github.com/averyhsu/planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignUpRequest holds the data needed to register a new user.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignInRequest holds the credentials presented at sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public representation of a user. It never carries the
// password hash.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// TokenResponse is returned on successful sign-in.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserService defines registration and authentication operations.
type UserService interface {
	SignUp(ctx context.Context, req SignUpRequest) (*UserResponse, error)
	SignIn(ctx context.Context, req SignInRequest) (*TokenResponse, error)
}

type userService struct {
	repo     repository.UserRepository
	tokens   *auth.TokenManager
	validate *validator.Validate
}

// NewUserService creates a new instance of the user service.
func NewUserService(repo repository.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{
		repo:     repo,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) SignUp(ctx context.Context, req SignUpRequest) (*UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	email := normalizeEmail(req.Email)
	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error checking for existing user %q: %v", email, err)
		return nil, errors.New("failed to create user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for %q: %v", email, err)
		return nil, errors.New("failed to create user")
	}

	user := &domain.User{Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(user); err != nil {
		// The unique index is the backstop for two concurrent sign-ups.
		log.Printf("Error creating user %q in repository: %v", email, err)
		return nil, ErrUserExists
	}

	return &UserResponse{ID: user.ID, Email: user.Email}, nil
}

func (s *userService) SignIn(ctx context.Context, req SignInRequest) (*TokenResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	email := normalizeEmail(req.Email)
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("Error fetching user %q from repository: %v", email, err)
		return nil, errors.New("failed to sign in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("Error issuing token for user %q: %v", email, err)
		return nil, errors.New("failed to sign in")
	}

	return &TokenResponse{AccessToken: token, TokenType: "Bearer"}, nil
}
