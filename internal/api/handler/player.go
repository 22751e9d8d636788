package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/guessr/internal/api/apierr"
	"github.com/mcoot/guessr/internal/api/response"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/services/game"
	"github.com/mcoot/guessr/internal/services/player"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	playerService  *player.Service
	gameController *game.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service, gameController *game.Controller) *PlayerHandler {
	return &PlayerHandler{
		playerService:  playerService,
		gameController: gameController,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerListFromModel(players))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	p, err := h.playerService.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Games handles GET /api/v1/players/{id}/games
func (h *PlayerHandler) Games(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	ctx := r.Context()
	p, err := h.playerService.Get(ctx, id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	numberGames, err := h.gameController.ListNumberGames(ctx, id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	hangmen, err := h.gameController.ListHangmen(ctx, id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerGamesFromModel(p, numberGames, hangmen))
}

func playerID(r *http.Request) (model.PlayerID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierr.NewInvalidRequestError("player id must be a positive integer")
	}
	return model.PlayerID(id), nil
}
