package controllers

import (
	"net/http"

	"divebuddy_server/helpers"
	"divebuddy_server/services"

	"go.uber.org/zap"
)

// MatchController handles HTTP requests for matches
type MatchController struct {
	MatchService *services.MatchService
	Logger       *zap.SugaredLogger
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService, logger *zap.SugaredLogger) *MatchController {
	return &MatchController{MatchService: matchService, Logger: logger}
}

// HandleGetMatches lists every match the given diver is part of
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "userId is required")
		return
	}

	matches, err := mc.MatchService.GetMatchesForUser(r.Context(), userID)
	if err != nil {
		mc.Logger.Errorw("failed to fetch matches", "userId", userID, "error", err)
		helpers.WriteJSONError(w, statusForError(err), "Failed to fetch matches")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, matches)
}
