package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"xpdev/internal/service"
	"xpdev/internal/session"
)

// newTestRouter builds the full router around mocked services, with templates
// loaded from the repository tree.
func newTestRouter(t *testing.T, s *service.Service) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager("test-secret", "xpdev_session")
	h := NewHandler(s, sessions, nil)
	r := h.InitRoutes(Config{TemplateGlob: "../../templates/*.html"})
	return r, sessions
}

// signedInCookies mints session cookies for the given identity.
func signedInCookies(t *testing.T, m *session.Manager, id session.Identity) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.SignIn(w, req, id); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	return w.Result().Cookies()
}

// formRequest builds a POST with an urlencoded body.
func formRequest(target string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}
