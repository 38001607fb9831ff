package repository

import (
	"context"
	"database/sql"

	"xpdev/internal/models"
)

// Users persists account records. Lookups are exact-match and return
// (nil, nil) when no row exists.
type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Posts persists published entries, keyed by (username, slugified title).
type Posts interface {
	Create(ctx context.Context, p models.Post) (int, error)
	All(ctx context.Context) ([]models.Post, error)
	ByUsername(ctx context.Context, username string) ([]models.Post, error)
	ByUsernameAndSlug(ctx context.Context, username, slug string) (*models.Post, error)
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
	}
}
