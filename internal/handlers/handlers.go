package handlers

import (
	"PassKeeper/internal/config"
	"PassKeeper/internal/middleware"
	"PassKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	credentialService service.CredentialService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	h := NewCredentialHandler(credentialService, logger, config)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/passwords", h.List)
		r.Post("/passwords", h.Create)
		r.Get("/passwords/{id}", h.Get)
		r.Put("/passwords/{id}", h.Update)
		r.Delete("/passwords/{id}", h.Delete)
		r.Get("/passwords/{id}/share", h.Share)

		r.Post("/generate", h.Generate)
	})

	return &Handler{Router: r}
}
