package service

import (
	"context"

	"xpdev/internal/models"
)

// mockUsersRepo is a lightweight in-test mock for repository.Users.
type mockUsersRepo struct {
	CreateFn        func(username, email, hash string) (int, error)
	GetByEmailFn    func(email string) (*models.User, error)
	GetByUsernameFn func(username string) (*models.User, error)

	createCalls []struct {
		username string
		email    string
		hash     string
	}
	emailCalls    []string
	usernameCalls []string
}

func (m *mockUsersRepo) Create(_ context.Context, username, email, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		email    string
		hash     string
	}{username: username, email: email, hash: hash})
	return m.CreateFn(username, email, hash)
}

func (m *mockUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.emailCalls = append(m.emailCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockUsersRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.usernameCalls = append(m.usernameCalls, username)
	return m.GetByUsernameFn(username)
}

// mockPostsRepo is a lightweight in-test mock for repository.Posts.
type mockPostsRepo struct {
	CreateFn            func(p models.Post) (int, error)
	AllFn               func() ([]models.Post, error)
	ByUsernameFn        func(username string) ([]models.Post, error)
	ByUsernameAndSlugFn func(username, slug string) (*models.Post, error)

	createCalls []models.Post
}

func (m *mockPostsRepo) Create(_ context.Context, p models.Post) (int, error) {
	m.createCalls = append(m.createCalls, p)
	return m.CreateFn(p)
}

func (m *mockPostsRepo) All(_ context.Context) ([]models.Post, error) {
	return m.AllFn()
}

func (m *mockPostsRepo) ByUsername(_ context.Context, username string) ([]models.Post, error) {
	return m.ByUsernameFn(username)
}

func (m *mockPostsRepo) ByUsernameAndSlug(_ context.Context, username, slug string) (*models.Post, error) {
	return m.ByUsernameAndSlugFn(username, slug)
}
