package routes

import (
	"divebuddy_server/controllers"
	"divebuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterMatchRoutes sets up routes for match listings under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, logger *zap.SugaredLogger) {
	controller := controllers.NewMatchController(matchService, logger)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("", controller.HandleGetMatches).Methods("GET")
}
