package routes

import (
	"divebuddy_server/controllers"
	"divebuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterDiverRoutes sets up routes for diver profiles under /api/divers
func RegisterDiverRoutes(r *mux.Router, diverService *services.DiverService, logger *zap.SugaredLogger) {
	controller := controllers.NewDiverController(diverService, logger)

	diverRouter := r.PathPrefix("/api/divers").Subrouter()
	diverRouter.HandleFunc("", controller.HandleAddDiver).Methods("POST")
	diverRouter.HandleFunc("", controller.HandleGetDivers).Methods("GET")
}
