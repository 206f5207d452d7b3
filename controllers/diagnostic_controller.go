package controllers

import (
	"net/http"

	"divebuddy_server/helpers"
	"divebuddy_server/services"

	"go.uber.org/zap"
)

// DiagnosticController reports store connectivity. Probe failures are mapped
// into a degraded-status body rather than propagated, so the endpoint itself
// always answers 200.
type DiagnosticController struct {
	Store  services.RecordStore
	Logger *zap.SugaredLogger
}

// NewDiagnosticController creates a new DiagnosticController instance
func NewDiagnosticController(store services.RecordStore, logger *zap.SugaredLogger) *DiagnosticController {
	return &DiagnosticController{Store: store, Logger: logger}
}

// HandleStoreCheck probes the record store and reports its status
func (dc *DiagnosticController) HandleStoreCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"backend":          "running",
		"store":            "unavailable",
		"connectionStatus": "not connected",
	}

	if err := dc.Store.Ping(r.Context()); err != nil {
		dc.Logger.Warnw("store probe failed", "error", err)
		response["error"] = err.Error()
	} else {
		response["store"] = "available"
		response["connectionStatus"] = "connected"
	}

	helpers.WriteJSONResponse(w, http.StatusOK, response)
}
