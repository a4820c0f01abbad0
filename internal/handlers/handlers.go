package handlers

import (
	"Portfolio/internal/config"
	"Portfolio/internal/middleware"
	"Portfolio/internal/model"
	"Portfolio/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LivenessText — ответ на GET /.
const LivenessText = "Portfolio Server is running"

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	authService *service.AuthService,
	blogService *service.ResourceService[model.Blog],
	projectService *service.ResourceService[model.Project],
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithCORS(config.CORSOrigin))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithIdentity)

	authHandler := NewAuthHandler(authService, logger)
	blogHandler := newResourceHandler(blogService, blogMessages, logger, config)
	projectHandler := newResourceHandler(projectService, projectMessages, logger, config)

	r.Get("/", Liveness)
	r.Post("/auth", authHandler.Login)

	r.Route("/blog", blogHandler.Mount)
	r.Route("/projects", projectHandler.Mount)

	return &Handler{Router: r}
}

// Liveness отвечает простой строкой, пока процесс жив.
func Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(LivenessText))
}
