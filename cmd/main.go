package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xpdev/internal/handlers"
	"xpdev/internal/logger"
	"xpdev/internal/repository"
	"xpdev/internal/repository/db"
	"xpdev/internal/server"
	"xpdev/internal/service"
	"xpdev/internal/session"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const (
	defaultDBPath      = "xpdev.db"
	defaultPort        = "8080"
	defaultSessionName = "xpdev_session"
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos)

	// The session secret is generated per process start, so a restart
	// invalidates every outstanding session.
	sessions := session.NewManager(uuid.NewString(), sessionCookieName())

	apiHandler := handlers.NewHandler(services, sessions, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", defaultDBPath)
		dbPath = defaultDBPath
	}
	return db.InitDB(dbPath)
}

func sessionCookieName() string {
	if name := viper.GetString("session.cookie_name"); name != "" {
		return name
	}
	return defaultSessionName
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	router := handler.InitRoutes(handlers.Config{
		TemplateGlob: "templates/*.html",
		StaticDir:    "public",
	})
	go func() {
		if port == "" {
			port = defaultPort
		}
		if err := srv.Run(port, router); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
