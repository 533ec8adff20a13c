package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func writeJSONError(logger *zap.Logger, w http.ResponseWriter, status int, message string) {
	writeJSON(logger, w, status, errorResponse{Error: true, Message: message})
}

func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error writing JSON response", zap.Error(err))
	}
}
