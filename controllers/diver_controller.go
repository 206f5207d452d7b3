package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"divebuddy_server/helpers"
	"divebuddy_server/models"
	"divebuddy_server/services"

	"go.uber.org/zap"
)

// DiverController handles HTTP requests for diver profiles
type DiverController struct {
	DiverService *services.DiverService
	Logger       *zap.SugaredLogger
}

// NewDiverController creates a new DiverController instance
func NewDiverController(diverService *services.DiverService, logger *zap.SugaredLogger) *DiverController {
	return &DiverController{DiverService: diverService, Logger: logger}
}

// HandleAddDiver creates a new diver profile
func (dc *DiverController) HandleAddDiver(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name         string   `json:"name" validate:"required"`
		Location     string   `json:"location" validate:"required"`
		Level        string   `json:"level" validate:"required"`
		Experience   int      `json:"experience" validate:"gte=0"`
		Bio          string   `json:"bio"`
		Image        string   `json:"image" validate:"omitempty,url"`
		Interests    []string `json:"interests"`
		Availability string   `json:"availability"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	diver := models.Diver{
		Name:         request.Name,
		Location:     request.Location,
		Level:        request.Level,
		Experience:   request.Experience,
		Bio:          request.Bio,
		Image:        request.Image,
		Interests:    request.Interests,
		Availability: request.Availability,
	}

	id, err := dc.DiverService.AddDiver(r.Context(), diver)
	if err != nil {
		dc.Logger.Errorw("failed to create diver profile", "error", err)
		helpers.WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"id": id})
}

// HandleGetDivers lists diver profiles with optional location/level filters
func (dc *DiverController) HandleGetDivers(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	level := r.URL.Query().Get("level")

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = services.DefaultDiverLimit
	}

	divers, err := dc.DiverService.GetDivers(r.Context(), location, level, limit)
	if err != nil {
		dc.Logger.Errorw("failed to fetch diver profiles", "error", err)
		helpers.WriteJSONError(w, statusForError(err), "Failed to fetch divers")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, divers)
}
