package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
	"github.com/Kurniawan20/effiework-sub000/internal/repository"
)

// UserRepository defines the persistence operations required by AuthService.
type UserRepository interface {
	UserExists(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, u models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, p models.ListParams) ([]models.User, int64, error)
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

// AuthService authenticates users and manages the user directory.
type AuthService struct {
	repo   UserRepository
	tokens TokenIssuer
	log    *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(repo UserRepository, tokens TokenIssuer, log *zap.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Login checks the password against the stored bcrypt hash and returns a
// fresh token with the user record.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Info("login for unknown user", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		s.log.Info("login with wrong password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, User: *u}, nil
}

// Me returns the user behind an authenticated request.
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// ListUsers returns one page of the user directory.
func (s *AuthService) ListUsers(ctx context.Context, p models.ListParams) (models.Page[models.User], error) {
	users, total, err := s.repo.ListUsers(ctx, p)
	if err != nil {
		return models.Page[models.User]{}, err
	}
	return models.Page[models.User]{Content: users, TotalElements: total}, nil
}

// EnsureAdmin creates an ADMIN user with the given credentials unless the
// username is already taken.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	exists, err := s.repo.UserExists(ctx, username)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	id, err := s.repo.CreateUser(ctx, models.User{
		Username:     username,
		FullName:     "Administrator",
		Role:         "ADMIN",
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	s.log.Info("admin user created", zap.String("username", username), zap.Int64("id", id))
	return nil
}
