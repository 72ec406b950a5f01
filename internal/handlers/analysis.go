package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mindflow/internal/relay"
)

// Sender forwards analysis text somewhere outside the service.
type Sender interface {
	Send(ctx context.Context, analysis string) error
}

type AnalysisHandler struct {
	analyzer Analyzer
	sender   Sender
	logger   *zap.Logger
}

func NewAnalysisHandler(analyzer Analyzer, sender Sender, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, sender: sender, logger: logger}
}

// HandleAnalyze relays a prompt to the model and returns its text, or the
// local fallback tagged as such.
func (ah *AnalysisHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleAnalyze"

	var input struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		ah.logger.Info("decode error", zap.String("op", op), zap.Error(err))
		writeError(w, ah.logger, op, http.StatusBadRequest, "Bad request")
		return
	}
	if strings.TrimSpace(input.Prompt) == "" {
		writeError(w, ah.logger, op, http.StatusBadRequest, "prompt is required")
		return
	}

	writeJSON(w, ah.logger, op, http.StatusOK, ah.analyzer.AnalyzePrompt(r.Context(), input.Prompt))
}

func (ah *AnalysisHandler) HandleSendAnalysis(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleSendAnalysis"

	var input struct {
		Analysis string `json:"analysis"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		ah.logger.Info("decode error", zap.String("op", op), zap.Error(err))
		writeError(w, ah.logger, op, http.StatusBadRequest, "Bad request")
		return
	}

	err := ah.sender.Send(r.Context(), input.Analysis)
	switch {
	case errors.Is(err, relay.ErrDisabled):
		writeJSON(w, ah.logger, op, http.StatusServiceUnavailable, map[string]any{"success": false, "error": "relay disabled"})
	case err != nil:
		ah.logger.Error("relay failed", zap.String("op", op), zap.Error(err))
		writeJSON(w, ah.logger, op, http.StatusBadGateway, map[string]any{"success": false})
	default:
		writeJSON(w, ah.logger, op, http.StatusOK, map[string]any{"success": true})
	}
}
