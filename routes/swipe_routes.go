package routes

import (
	"divebuddy_server/controllers"
	"divebuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterSwipeRoutes sets up routes for swipe operations under /api/swipes
func RegisterSwipeRoutes(r *mux.Router, swipeService *services.SwipeService, logger *zap.SugaredLogger) {
	controller := controllers.NewSwipeController(swipeService, logger)

	swipeRouter := r.PathPrefix("/api/swipes").Subrouter()
	swipeRouter.HandleFunc("", controller.HandleRecordSwipe).Methods("POST")
}
