package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"xpdev/internal/service"
)

type publishForm struct {
	Username string `form:"username" binding:"required"`
	Title    string `form:"title" binding:"required"`
	Content  string `form:"content" binding:"required"`
}

// publishPage renders the publish form for an authenticated caller;
// anonymous visitors go home.
func (h *Handler) publishPage(c *gin.Context) {
	id, ok := identityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "publicar.html", gin.H{
		"title":          "xp.dev - Publicar",
		"logged":         true,
		"usernameLogged": id.Username,
	})
}

// publish creates a post. The target username comes from the form body; the
// service rejects it with ErrNotFound unless it is the caller's own account.
// Anonymous callers carry an empty identity and fail the same check, so the
// response is a 404 either way.
func (h *Handler) publish(c *gin.Context) {
	id, _ := identityFrom(c)

	var input publishForm
	if err := c.ShouldBind(&input); err != nil {
		h.renderPublishError(c, id.Username, "All fields are required")
		return
	}

	_, err := h.services.Publish(c.Request.Context(), id.Email, input.Username, input.Title, input.Content)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.logError("publish_failed", err, "username", input.Username)
		h.renderPublishError(c, id.Username, "Error Publishing Post")
		return
	}

	c.Redirect(http.StatusFound, "/"+input.Username)
}

func (h *Handler) renderPublishError(c *gin.Context, usernameLogged, msg string) {
	c.HTML(http.StatusOK, "publicar.html", gin.H{
		"title":          "xp.dev - Publicar",
		"logged":         usernameLogged != "",
		"usernameLogged": usernameLogged,
		"error":          msg,
	})
}
