package controllers

import (
	"encoding/json"
	"net/http"

	"divebuddy_server/helpers"
	"divebuddy_server/services"

	"go.uber.org/zap"
)

// S3Controller handles presigned-URL requests for profile photos
type S3Controller struct {
	S3Service *services.S3Service
	Logger    *zap.SugaredLogger
}

// NewS3Controller creates a new S3Controller instance
func NewS3Controller(s3Service *services.S3Service, logger *zap.SugaredLogger) *S3Controller {
	return &S3Controller{S3Service: s3Service, Logger: logger}
}

// HandleGeneratePresignedURL generates a presigned URL for photo uploads
func (sc *S3Controller) HandleGeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName" validate:"required"`
		FileType string `json:"fileType" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(payload); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, key, err := sc.S3Service.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		sc.Logger.Errorw("failed to generate upload URL", "fileName", payload.FileName, "error", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to generate pre-signed URL")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url, "fileName": key})
}

// HandleGetPresignedReadURL generates a presigned URL for reading photos
func (sc *S3Controller) HandleGetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(payload); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := sc.S3Service.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		sc.Logger.Errorw("failed to generate read URL", "key", payload.Key, "error", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to generate read pre-signed URL")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
