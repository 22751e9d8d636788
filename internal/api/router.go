package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/guessr/internal/api/apierr"
	"github.com/mcoot/guessr/internal/api/handler"
	"github.com/mcoot/guessr/internal/api/middleware"
	"github.com/mcoot/guessr/internal/api/response"
	"github.com/mcoot/guessr/internal/services/game"
	"github.com/mcoot/guessr/internal/services/player"
	"github.com/mcoot/guessr/internal/services/scoring"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	PlayerService  *player.Service
	ScoringService *scoring.Service
	GameController *game.Controller
}

// NewRouter creates the read-only API router
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService, cfg.GameController)
	scoreboardHandler := handler.NewScoreboardHandler(cfg.ScoringService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/scoreboard", scoreboardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/games", playerHandler.Games).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
