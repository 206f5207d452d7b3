package controllers

import (
	"errors"
	"net/http"

	"divebuddy_server/helpers"
	"divebuddy_server/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// statusForError maps service errors onto HTTP statuses: validation failures
// are client errors, a missing match is 404, anything else is a store failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidDirection),
		errors.Is(err, services.ErrSelfSwipe),
		errors.Is(err, services.ErrInvalidLevel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to the DiveBuddy API"})
}
