package routes

import (
	"divebuddy_server/controllers"
	"divebuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterRoutes sets up the root, health and diagnostic routes
func RegisterRoutes(r *mux.Router, store services.RecordStore, logger *zap.SugaredLogger) {
	diagnostic := controllers.NewDiagnosticController(store, logger)

	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/api/test", diagnostic.HandleStoreCheck).Methods("GET")
}
