package handler

import (
	"net/http"

	"github.com/mcoot/guessr/internal/api/apierr"
	"github.com/mcoot/guessr/internal/api/response"
	"github.com/mcoot/guessr/internal/services/scoring"
)

// ScoreboardHandler serves the scoreboard
type ScoreboardHandler struct {
	scoringService *scoring.Service
}

// NewScoreboardHandler creates a new scoreboard handler
func NewScoreboardHandler(scoringService *scoring.Service) *ScoreboardHandler {
	return &ScoreboardHandler{scoringService: scoringService}
}

// Get handles GET /api/v1/scoreboard
func (h *ScoreboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scoringService.Scoreboard(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreboardFromModel(entries))
}
