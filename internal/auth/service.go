// Package auth implements registration and credential verification on top of
// the user repository. Session establishment is the caller's concern.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/models"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/security"
)

// UserRepository is the slice of the store the service needs.
type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Register creates a user with a salted password hash. Returns
// models.ErrDuplicateUsername if the username is already taken.
func (s *Service) Register(ctx context.Context, username, password string) error {
	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.CreateUser(ctx, username, hash); err != nil {
		return err
	}
	return nil
}

// Authenticate verifies username/password. An unknown username and a wrong
// password both return models.ErrInvalidCredentials; callers cannot tell
// which it was.
func (s *Service) Authenticate(ctx context.Context, username, password string) error {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrInvalidCredentials
		}
		return err
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		return models.ErrInvalidCredentials
	}
	return nil
}
