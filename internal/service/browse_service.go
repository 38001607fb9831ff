package service

import (
	"context"

	"xpdev/internal/models"
	"xpdev/internal/repository"
)

// BrowseService serves the read-only pages.
type BrowseService struct {
	users repository.Users
	posts repository.Posts
}

func NewBrowseService(users repository.Users, posts repository.Posts) *BrowseService {
	return &BrowseService{users: users, posts: posts}
}

// Feed returns every post in insertion order (most-recent-last).
func (s *BrowseService) Feed(ctx context.Context) ([]models.Post, error) {
	return s.posts.All(ctx)
}

// UserPage resolves an author and their posts. Unknown usernames are ErrNotFound.
func (s *BrowseService) UserPage(ctx context.Context, username string) (*models.User, []models.Post, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		return nil, nil, ErrNotFound
	}

	posts, err := s.posts.ByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	return u, posts, nil
}

// PostPage resolves a single post by its address. The author must exist and
// the slug must match a stored title exactly.
func (s *BrowseService) PostPage(ctx context.Context, username, slug string) (*models.Post, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	p, err := s.posts.ByUsernameAndSlug(ctx, username, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}
