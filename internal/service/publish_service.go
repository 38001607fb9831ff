package service

import (
	"context"
	"time"

	"xpdev/internal/models"
	"xpdev/internal/repository"
	"xpdev/internal/slug"
)

// PublishService creates posts. The ownership rule lives here, not in the
// store: the authenticated email must match the target account's email.
type PublishService struct {
	users repository.Users
	posts repository.Posts
	now   func() time.Time
}

func NewPublishService(users repository.Users, posts repository.Posts) *PublishService {
	return &PublishService{users: users, posts: posts, now: time.Now}
}

// Publish slugifies the title, stamps the creation time and stores the post.
// An unknown username and an ownership mismatch both return ErrNotFound, so
// the response never confirms whether the account exists. An anonymous
// caller (empty authorEmail) can never match and falls through the same way.
func (s *PublishService) Publish(ctx context.Context, authorEmail, username, title, content string) (*models.Post, error) {
	target, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target == nil || target.Email != authorEmail {
		return nil, ErrNotFound
	}

	p := models.Post{
		Username: username,
		Title:    slug.Encode(title),
		Content:  content,
		Date:     s.now().UTC(),
	}
	id, err := s.posts.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}
