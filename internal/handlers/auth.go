package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"xpdev/internal/service"
	"xpdev/internal/session"
)

// Inline form messages. Unknown email and wrong password render the same
// string so the login form never confirms whether an account exists.
const (
	errMsgBadCredentials = "Invalid email or password"
	errMsgLoginFailed    = "Error Authenticating User"
	errMsgShortPassword  = "Password Must be More Than 6 Characters"
	errMsgRegisterFailed = "Error Registering User"
)

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) loginPage(c *gin.Context) {
	if h.redirectHomeIfAuthenticated(c) {
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "xp.dev - Login"})
}

func (h *Handler) registerPage(c *gin.Context) {
	if h.redirectHomeIfAuthenticated(c) {
		return
	}
	c.HTML(http.StatusOK, "cadastro.html", gin.H{"title": "xp.dev - Cadastro"})
}

func (h *Handler) login(c *gin.Context) {
	if h.redirectHomeIfAuthenticated(c) {
		return
	}

	var input loginForm
	if err := c.ShouldBind(&input); err != nil {
		h.renderLoginError(c, errMsgBadCredentials)
		return
	}

	u, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
			// Internally distinct, rendered identically.
			h.renderLoginError(c, errMsgBadCredentials)
		default:
			h.logError("login_failed", err, "email", input.Email)
			h.renderLoginError(c, errMsgLoginFailed)
		}
		return
	}

	h.signInAndGoHome(c, session.Identity{Email: u.Email, Username: u.Username}, errMsgLoginFailed, "login.html")
}

func (h *Handler) register(c *gin.Context) {
	if h.redirectHomeIfAuthenticated(c) {
		return
	}

	var input registerForm
	if err := c.ShouldBind(&input); err != nil {
		h.renderRegisterError(c, errMsgRegisterFailed)
		return
	}

	u, err := h.services.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			h.renderRegisterError(c, errMsgShortPassword)
		default:
			// Duplicate usernames land here too, undistinguished.
			h.logError("register_failed", err, "username", input.Username)
			h.renderRegisterError(c, errMsgRegisterFailed)
		}
		return
	}

	// Registration doubles as login: attach the new identity to the session.
	h.signInAndGoHome(c, session.Identity{Email: u.Email, Username: u.Username}, errMsgRegisterFailed, "cadastro.html")
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.logError("logout_failed", err)
		c.String(http.StatusInternalServerError, "Error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// signInAndGoHome attaches the identity to the session and redirects home.
// A session write failure re-renders the originating form.
func (h *Handler) signInAndGoHome(c *gin.Context, id session.Identity, errMsg, template string) {
	if err := h.sessions.SignIn(c.Writer, c.Request, id); err != nil {
		h.logError("session_sign_in_failed", err, "email", id.Email)
		c.HTML(http.StatusInternalServerError, template, gin.H{"error": errMsg})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) renderLoginError(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "xp.dev - Login", "error": msg})
}

func (h *Handler) renderRegisterError(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, "cadastro.html", gin.H{"title": "xp.dev - Cadastro", "error": msg})
}

func (h *Handler) logError(key string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(key, fields...)
	}
}
