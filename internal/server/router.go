package server

import (
	"net/http"

	"github.com/lexihq/lexi/internal/api"
	"github.com/lexihq/lexi/internal/api/handlers"
	"github.com/lexihq/lexi/internal/api/middleware"
	"github.com/go-chi/chi/v5"
)

type RouterConfig struct {
	APIToken     string
	QueryHandler *handlers.QueryHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		api.JSON(w, http.StatusOK, api.MessageResponse{Message: "Welcome to the Lexi API!"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		if cfg.APIToken != "" {
			r.Use(middleware.BearerAuth(cfg.APIToken))
		}

		r.Post("/query", cfg.QueryHandler.Query)
	})

	return r
}
