package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"xpdev/internal/models"
)

// --- Register tests ---

func TestAuthService_Register_SuccessHashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(username, email, hash string) (int, error) {
			return 42, nil
		},
	}
	svc := NewAuthService(mock)

	u, err := svc.Register(context.Background(), "alice", "alice@xp.dev", "s3cr3t")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.ID != 42 || u.Username != "alice" || u.Email != "alice@xp.dev" {
		t.Fatalf("unexpected user: %+v", u)
	}

	// Ensure Create called exactly once with a hashed password (not the raw one, valid bcrypt).
	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	stored := mock.createCalls[0].hash
	if stored == "s3cr3t" {
		t.Fatalf("plaintext password reached the repository")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte("s3cr3t")); err != nil {
		t.Fatalf("stored hash does not verify against the original password: %v", err)
	}
}

func TestAuthService_Register_ShortPasswordNeverHitsRepo(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(username, email, hash string) (int, error) {
			t.Fatal("Create must not be called for a short password")
			return 0, nil
		},
	}
	svc := NewAuthService(mock)

	_, err := svc.Register(context.Background(), "alice", "alice@xp.dev", "12345")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_Register_PropagatesRepoError(t *testing.T) {
	repoErr := errors.New("insert user: UNIQUE constraint failed")
	mock := &mockUsersRepo{
		CreateFn: func(username, email, hash string) (int, error) {
			return 0, repoErr
		},
	}
	svc := NewAuthService(mock)

	_, err := svc.Register(context.Background(), "alice", "alice@xp.dev", "s3cr3t")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}

// --- Login tests ---

// registeredUser returns a stored user whose hash was produced from password,
// mirroring what Register persists.
func registeredUser(t *testing.T, username, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &models.User{ID: 7, Username: username, Email: email, PasswordHash: string(hash)}
}

func TestAuthService_Login_RoundTripKeepsDisplayName(t *testing.T) {
	stored := registeredUser(t, "alice", "alice@xp.dev", "s3cr3t")
	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return stored, nil
		},
	}
	svc := NewAuthService(mock)

	u, err := svc.Login(context.Background(), "alice@xp.dev", "s3cr3t")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("expected display name %q, got %q", "alice", u.Username)
	}
	if len(mock.emailCalls) != 1 || mock.emailCalls[0] != "alice@xp.dev" {
		t.Fatalf("unexpected GetByEmail calls: %v", mock.emailCalls)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(mock)

	_, err := svc.Login(context.Background(), "ghost@xp.dev", "whatever")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	stored := registeredUser(t, "alice", "alice@xp.dev", "s3cr3t")
	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return stored, nil
		},
	}
	svc := NewAuthService(mock)

	for _, wrong := range []string{"S3cr3t", "s3cr3t ", "", stored.PasswordHash} {
		if _, err := svc.Login(context.Background(), "alice@xp.dev", wrong); !errors.Is(err, ErrInvalidPassword) {
			t.Fatalf("password %q: expected ErrInvalidPassword, got %v", wrong, err)
		}
	}
}

func TestAuthService_Login_RepoErrorPropagates(t *testing.T) {
	repoErr := errors.New("select user: db down")
	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return nil, repoErr
		},
	}
	svc := NewAuthService(mock)

	if _, err := svc.Login(context.Background(), "alice@xp.dev", "s3cr3t"); !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}
