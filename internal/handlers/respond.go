package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, logger *zap.Logger, op string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.String("op", op), zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, op string, status int, msg string) {
	writeJSON(w, logger, op, status, map[string]string{"error": msg})
}
