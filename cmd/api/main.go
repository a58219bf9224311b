// Package main is the entry point for the photo catalog API server. It loads
// configuration, connects to Postgres, wires repositories, services, and
// controllers together, and starts the HTTP server.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"photocatalog/config"
	"photocatalog/internal/adapters/email"
	"photocatalog/internal/adapters/unsplash"
	delivery "photocatalog/internal/delivery/http"
	"photocatalog/internal/delivery/http/controllers"
	"photocatalog/internal/delivery/http/middleware"
	"photocatalog/internal/repository/postgres"
	"photocatalog/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title PhotoCatalog API
// @version 1.0
// @description Save photos from an external image provider, tag them, and search your catalog.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting photocatalog", "env", cfg.Environment, "port", cfg.Port)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to Postgres")

	// Repositories
	photoRepo := postgres.NewPhotoRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	historyRepo := postgres.NewSearchHistoryRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Adapters
	searcher := unsplash.NewClient(&http.Client{Timeout: serviceTimeout}, cfg.UnsplashAccessKey)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to configure mailer", "err", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	photoService := services.NewPhotoService(photoRepo, tagRepo, serviceTimeout)
	searchService := services.NewSearchService(photoRepo, tagRepo, historyRepo, searcher, logger, serviceTimeout)
	userService := services.NewUserService(userRepo, emailService, logger, serviceTimeout)

	// Controllers and router
	photoController := controllers.NewPhotoController(logger, photoService, searchService)
	userController := controllers.NewUserController(logger, userService)
	mux := delivery.NewRouter(photoController, userController)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown: drain in-flight requests on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("server forced shutdown", "err", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
