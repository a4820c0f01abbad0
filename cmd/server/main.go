package main

import (
	"Portfolio/internal/config"
	"Portfolio/internal/handlers"
	"Portfolio/internal/middleware"
	"Portfolio/internal/model"
	"Portfolio/internal/repo"
	"Portfolio/internal/service"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	matcher, err := service.MatcherForScheme(cfg.PasswordScheme)
	if err != nil {
		sugar.Fatalw("invalid password scheme", "error", err)
	}

	authService := service.NewAuthService(
		repo.NewAdminRepository(gormDB),
		repo.NewTokenRepository(gormDB),
		matcher,
		sugar,
	)
	if cfg.AdminEmail != "" {
		admin := model.Admin{UUID: cfg.AdminUUID, Email: cfg.AdminEmail, Password: cfg.AdminPassword}
		if err := authService.SeedAdmin(ctx, admin); err != nil {
			sugar.Fatalw("failed to seed admin", "error", err)
		}
	}

	blogService := service.NewBlogService(repo.NewBlogRepository(gormDB), authService, sugar)
	projectService := service.NewProjectService(repo.NewProjectRepository(gormDB), authService, sugar)

	h := handlers.NewHandler(authService, blogService, projectService, sugar, cfg)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"UploadMaxMB", cfg.UploadMaxMB,
		"PasswordScheme", cfg.PasswordScheme,
		"CORSOrigin", cfg.CORSOrigin,
	)

	srv := &http.Server{Addr: cfg.BaseURL, Handler: h.Router}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = srv.Shutdown(shutdownCtx)
	}()

	sugar.Infow("Portfolio Server is running", "addr", cfg.BaseURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
}
