package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"xpdev/internal/models"
	"xpdev/internal/service"
)

func TestHome_RendersFeedWithDecodedTitlesAndAges(t *testing.T) {
	browse := &mockBrowsing{
		feed: []models.Post{
			{ID: 1, Username: "alice", Title: "meu-primeiro-post", Content: "olá", Date: time.Now().Add(-2 * time.Hour)},
		},
	}
	r, _ := newTestRouter(t, &service.Service{Browsing: browse})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "meu primeiro post") {
		t.Fatalf("expected decoded title in body:\n%s", body)
	}
	if !strings.Contains(body, `/alice/meu-primeiro-post`) {
		t.Fatalf("expected slug link in body:\n%s", body)
	}
	if !strings.Contains(body, "2 horas atrás") {
		t.Fatalf("expected relative age in body:\n%s", body)
	}
}

func TestUserPage_UnknownUsernameIs404(t *testing.T) {
	browse := &mockBrowsing{userErr: service.ErrNotFound}
	r, _ := newTestRouter(t, &service.Service{Browsing: browse})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ghost", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUserPage_ListsAuthorPosts(t *testing.T) {
	browse := &mockBrowsing{
		user: &models.User{ID: 1, Username: "alice", Email: "alice@xp.dev"},
		posts: []models.Post{
			{ID: 1, Username: "alice", Title: "a-b", Content: "x", Date: time.Now().Add(-90 * time.Second)},
		},
	}
	r, _ := newTestRouter(t, &service.Service{Browsing: browse})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/alice", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "@alice") {
		t.Fatalf("expected username heading in body:\n%s", body)
	}
	if !strings.Contains(body, "1 minuto atrás") {
		t.Fatalf("expected singular minute age in body:\n%s", body)
	}
}

func TestPostPage_RendersDecodedTitleAndContent(t *testing.T) {
	browse := &mockBrowsing{
		post: &models.Post{ID: 1, Username: "alice", Title: "a-b", Content: "first wins", Date: time.Now().Add(-time.Hour)},
	}
	r, _ := newTestRouter(t, &service.Service{Browsing: browse})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/alice/a-b", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "a b") {
		t.Fatalf("expected decoded title in body:\n%s", body)
	}
	if !strings.Contains(body, "first wins") {
		t.Fatalf("expected content in body:\n%s", body)
	}
}

func TestPostPage_MissingPostIs404(t *testing.T) {
	browse := &mockBrowsing{postErr: service.ErrNotFound}
	r, _ := newTestRouter(t, &service.Service{Browsing: browse})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/alice/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
