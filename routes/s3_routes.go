package routes

import (
	"divebuddy_server/controllers"
	"divebuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterS3Routes sets up routes for profile photo uploads
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service, logger *zap.SugaredLogger) {
	controller := controllers.NewS3Controller(s3Service, logger)

	r.HandleFunc("/generate-presigned-url", controller.HandleGeneratePresignedURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controller.HandleGetPresignedReadURL).Methods("POST")
}
