// Package session correlates requests with an authenticated identity via a
// cookie-backed session. The identity token is the account email; the
// username rides along so pages can show it without a store lookup.
package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// Value-bag keys. "user" holds the email, "name" the cached username.
const (
	keyUser = "user"
	keyName = "name"
)

const sessionMaxAge = 7 * 24 * 60 * 60 // 7 days

// Identity is an authenticated caller.
type Identity struct {
	Email    string
	Username string
}

// Manager wraps a cookie store under a fixed cookie name. The signing secret
// is supplied at construction; a fresh secret per process start invalidates
// every outstanding session on restart.
type Manager struct {
	store *sessions.CookieStore
	name  string
}

func NewManager(secret, cookieName string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: cookieName}
}

// Current reads the identity from the request's cookie. This is a pure
// cookie read, with no re-validation against the user table.
func (m *Manager) Current(r *http.Request) (Identity, bool) {
	s, err := m.store.Get(r, m.name)
	if err != nil {
		// Undecodable cookie (e.g. signed under a previous process secret)
		// is treated as anonymous.
		return Identity{}, false
	}
	email, ok := s.Values[keyUser].(string)
	if !ok || email == "" {
		return Identity{}, false
	}
	username, _ := s.Values[keyName].(string)
	return Identity{Email: email, Username: username}, true
}

// SignIn attaches the identity to the caller's session.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, id Identity) error {
	s, _ := m.store.Get(r, m.name)
	s.Values[keyUser] = id.Email
	s.Values[keyName] = id.Username
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear destroys all session state for the caller.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, m.name)
	for k := range s.Values {
		delete(s.Values, k)
	}
	s.Options.MaxAge = -1
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
