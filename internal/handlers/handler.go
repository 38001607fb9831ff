package handlers

import (
	"github.com/gin-gonic/gin"

	"xpdev/internal/logger"
	"xpdev/internal/service"
	"xpdev/internal/session"
)

// Handler wires HTTP layer to services, sessions and logging.
type Handler struct {
	services *service.Service
	sessions *session.Manager
	log      *logger.Logger
}

// Config points the router at on-disk view assets, so tests can run the
// router from their own working directory.
type Config struct {
	TemplateGlob string
	StaticDir    string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sessions *session.Manager, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Static pages and forms are registered before the /:username wildcard;
// gin resolves static segments with priority, so /login never falls through
// to the user page.
func (h *Handler) InitRoutes(cfg Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.identityMiddleware)

	router.LoadHTMLGlob(cfg.TemplateGlob)
	if cfg.StaticDir != "" {
		router.Static("/static", cfg.StaticDir)
	}

	router.GET("/", h.home)

	h.registerAuthRoutes(router)
	h.registerPublishRoutes(router)

	// Profile pages, registered last: any other first segment is a username.
	router.GET("/:username", h.userPage)
	router.GET("/:username/:post", h.postPage)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/cadastro", h.registerPage)
	r.POST("/cadastro", h.register)
	r.GET("/deslogar", h.logout)
}

func (h *Handler) registerPublishRoutes(r *gin.Engine) {
	r.GET("/publicar", h.publishPage)
	r.POST("/publicar", h.publish)
}
