package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"trialbalance-service/internal/config"
	"trialbalance-service/internal/middleware"
	tbHnd "trialbalance-service/internal/trialbalance/handler"
	"trialbalance-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// trial-balance import and derived statements
	r.Post("/import", tbHnd.Import(cfg, logger))
	r.Post("/statements", tbHnd.Statements(cfg, logger))

	return r
}
