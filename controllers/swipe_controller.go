package controllers

import (
	"encoding/json"
	"net/http"

	"divebuddy_server/helpers"
	"divebuddy_server/services"

	"go.uber.org/zap"
)

// SwipeController handles HTTP requests for swipes
type SwipeController struct {
	SwipeService *services.SwipeService
	Logger       *zap.SugaredLogger
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipeService *services.SwipeService, logger *zap.SugaredLogger) *SwipeController {
	return &SwipeController{SwipeService: swipeService, Logger: logger}
}

// HandleRecordSwipe persists a swipe and reports whether it formed a match
func (sc *SwipeController) HandleRecordSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SwiperID  string `json:"swiperId" validate:"required"`
		TargetID  string `json:"targetId" validate:"required"`
		Direction string `json:"direction" validate:"required,oneof=left right"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := sc.SwipeService.RecordSwipe(r.Context(), request.SwiperID, request.TargetID, request.Direction)
	if err != nil {
		sc.Logger.Errorw("failed to record swipe", "swiperId", request.SwiperID, "error", err)
		helpers.WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, result)
}
