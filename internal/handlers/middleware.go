package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xpdev/internal/session"
)

const identityKey = "identity"

// identityMiddleware resolves the caller's session identity once per request
// and stashes it in the Gin context. Anonymous requests pass through; pages
// decide for themselves whether an identity is required.
func (h *Handler) identityMiddleware(c *gin.Context) {
	if id, ok := h.sessions.Current(c.Request); ok {
		c.Set(identityKey, id)
	}
	c.Next()
}

// identityFrom returns the authenticated identity attached by the middleware.
func identityFrom(c *gin.Context) (session.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return session.Identity{}, false
	}
	id, ok := v.(session.Identity)
	return id, ok
}

// redirectHomeIfAuthenticated guards the login/registration flows: an
// authenticated caller is sent home before any side effect happens.
// Reports whether the request was handled.
func (h *Handler) redirectHomeIfAuthenticated(c *gin.Context) bool {
	if _, ok := identityFrom(c); ok {
		c.Redirect(http.StatusFound, "/")
		return true
	}
	return false
}
