package handler

import (
	"encoding/json"
	"net/http"

	apperrors "school-activities/pkg/errors"
	"school-activities/pkg/logger"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// respondError renders err as {"detail": ...}. Errors that are not
// *AppError become a 500 and are logged.
func respondError(w http.ResponseWriter, err error, log *logger.Logger) {
	appErr := apperrors.As(err)
	if appErr.Type == apperrors.ErrorTypeInternal {
		log.WithError(err).Error("Request failed")
	}
	respondJSON(w, appErr.StatusCode, apperrors.DetailResponse{Detail: appErr.Message})
}
