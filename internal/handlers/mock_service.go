package handlers

import (
	"context"

	"xpdev/internal/models"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginUser    *models.User
	loginErr     error

	registerCalls int
	loginCalls    int

	lastRegisterUsername string
	lastRegisterEmail    string
	lastRegisterPassword string
	lastLoginEmail       string
	lastLoginPassword    string
}

func (m *mockAuth) Register(_ context.Context, username, email, password string) (*models.User, error) {
	m.registerCalls++
	m.lastRegisterUsername = username
	m.lastRegisterEmail = email
	m.lastRegisterPassword = password
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (*models.User, error) {
	m.loginCalls++
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginUser, m.loginErr
}

type mockPublishing struct {
	post *models.Post
	err  error

	publishCalls    int
	lastAuthorEmail string
	lastUsername    string
	lastTitle       string
	lastContent     string
}

func (m *mockPublishing) Publish(_ context.Context, authorEmail, username, title, content string) (*models.Post, error) {
	m.publishCalls++
	m.lastAuthorEmail = authorEmail
	m.lastUsername = username
	m.lastTitle = title
	m.lastContent = content
	return m.post, m.err
}

type mockBrowsing struct {
	feed    []models.Post
	feedErr error
	user    *models.User
	posts   []models.Post
	userErr error
	post    *models.Post
	postErr error
}

func (m *mockBrowsing) Feed(_ context.Context) ([]models.Post, error) {
	return m.feed, m.feedErr
}

func (m *mockBrowsing) UserPage(_ context.Context, username string) (*models.User, []models.Post, error) {
	return m.user, m.posts, m.userErr
}

func (m *mockBrowsing) PostPage(_ context.Context, username, slug string) (*models.Post, error) {
	return m.post, m.postErr
}
