package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"xpdev/internal/models"
	"xpdev/internal/repository"
)

const minPasswordLen = 6

// Domain errors for auth flows. ErrUserNotFound and ErrInvalidPassword stay
// distinct here; the handler renders them identically.
var (
	ErrPasswordTooShort = errors.New("password too short")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
)

// AuthService handles user registration and login.
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

// Register validates the password, hashes it and creates the account.
// The plaintext never reaches the repository. A duplicate username (or any
// other write failure) comes back as a wrapped persistence error.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password for %q: %w", username, err)
	}

	id, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Username: username, Email: email}, nil
}

// Login resolves the account by email, then verifies the password against
// the stored hash. The lookup always completes before verification begins.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidPassword
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash (constant-time via bcrypt)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
