package service

import (
	"context"
	"errors"

	"xpdev/internal/models"
	"xpdev/internal/repository"
)

// ErrNotFound is the single not-found signal for resource lookups. Ownership
// mismatches on publish map to it as well, so callers cannot tell "no such
// account" from "not your account".
var ErrNotFound = errors.New("not found")

// Authorization covers registration and credential verification.
type Authorization interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// Publishing creates posts on behalf of an authenticated identity,
// enforcing that users only publish as themselves.
type Publishing interface {
	Publish(ctx context.Context, authorEmail, username, title, content string) (*models.Post, error)
}

// Browsing exposes the read-only pages: feed, user page, post page.
type Browsing interface {
	Feed(ctx context.Context) ([]models.Post, error)
	UserPage(ctx context.Context, username string) (*models.User, []models.Post, error)
	PostPage(ctx context.Context, username, slug string) (*models.Post, error)
}

// Service aggregates all sub-services behind one wiring point.
type Service struct {
	Authorization
	Publishing
	Browsing
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Publishing:    NewPublishService(repos.Users, repos.Posts),
		Browsing:      NewBrowseService(repos.Users, repos.Posts),
	}
}
