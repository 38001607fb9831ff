package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"xpdev/internal/models"
	"xpdev/internal/service"
	"xpdev/internal/slug"
	"xpdev/internal/timeago"
)

// postView is a post prepared for rendering: decoded title for display,
// raw slug for the link, relative age instead of the absolute date.
type postView struct {
	Author  string
	Title   string
	Slug    string
	Age     string
	Content string
}

func postViews(posts []models.Post) []postView {
	now := time.Now()
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, postView{
			Author:  p.Username,
			Title:   slug.Decode(p.Title),
			Slug:    p.Title,
			Age:     timeago.PortugueseBR.Format(p.Date, now),
			Content: p.Content,
		})
	}
	return views
}

// navData carries the fields every page's shared nav needs.
func navData(c *gin.Context) gin.H {
	id, logged := identityFrom(c)
	return gin.H{"logged": logged, "usernameLogged": id.Username}
}

func pageData(c *gin.Context, title string, extra gin.H) gin.H {
	data := navData(c)
	data["title"] = title
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// home renders the chronological feed.
func (h *Handler) home(c *gin.Context) {
	posts, err := h.services.Feed(c.Request.Context())
	if err != nil {
		h.logError("feed_failed", err)
		c.String(http.StatusInternalServerError, "Error")
		return
	}
	c.HTML(http.StatusOK, "index.html", pageData(c, "xp.dev - Home", gin.H{
		"posts": postViews(posts),
	}))
}

// userPage renders one author's posts. Unknown usernames are a bare 404.
func (h *Handler) userPage(c *gin.Context) {
	username := c.Param("username")

	user, posts, err := h.services.UserPage(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.logError("user_page_failed", err, "username", username)
		c.String(http.StatusInternalServerError, "Error")
		return
	}

	c.HTML(http.StatusOK, "user.html", pageData(c, "xp.dev - "+user.Username, gin.H{
		"username": user.Username,
		"posts":    postViews(posts),
	}))
}

// postPage renders a single post addressed by /:username/:post.
func (h *Handler) postPage(c *gin.Context) {
	username := c.Param("username")
	postSlug := c.Param("post")

	post, err := h.services.PostPage(c.Request.Context(), username, postSlug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.logError("post_page_failed", err, "username", username, "post", postSlug)
		c.String(http.StatusInternalServerError, "Error")
		return
	}

	c.HTML(http.StatusOK, "post.html", pageData(c, "xp.dev - "+post.Username, gin.H{
		"postTitle": slug.Decode(post.Title),
		"content":   post.Content,
		"author":    post.Username,
		"date":      timeago.Since(post.Date),
	}))
}
