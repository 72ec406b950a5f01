package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"mindflow/internal/models"
	"mindflow/internal/mood"
	"mindflow/internal/storage"
	"mindflow/internal/usecases"
)

// Analyzer produces feedback for an entry or a raw prompt.
type Analyzer interface {
	AnalyzeEntry(ctx context.Context, e models.Entry) usecases.Analysis
	AnalyzePrompt(ctx context.Context, prompt string) usecases.Analysis
}

type EntryHandler struct {
	store    storage.Store
	analyzer Analyzer
	logger   *zap.Logger
}

func NewEntryHandler(store storage.Store, analyzer Analyzer, logger *zap.Logger) *EntryHandler {
	return &EntryHandler{store: store, analyzer: analyzer, logger: logger}
}

const maxSleepHours = 12

type createEntryRequest struct {
	EntryDate   models.Date `json:"entry_date"`
	Mood        *mood.Mood  `json:"mood"`
	Slider      *int        `json:"slider"`
	StressLevel int         `json:"stress_level"`
	SleepHours  float64     `json:"sleep_hours"`
	JournalText string      `json:"journal_text"`
}

func (req createEntryRequest) entry(userID string) (models.Entry, error) {
	e := models.Entry{
		UserID:      userID,
		EntryDate:   req.EntryDate,
		StressLevel: req.StressLevel,
		SleepHours:  req.SleepHours,
		JournalText: req.JournalText,
	}

	switch {
	case req.Mood != nil:
		e.Mood = *req.Mood
	case req.Slider != nil:
		e.Mood = mood.FromLabel(string(mood.FromSlider(*req.Slider)))
	default:
		return e, errors.New("mood or slider is required")
	}

	if !e.Mood.InRange() {
		return e, fmt.Errorf("mood must be between %d and %d", mood.MinScore, mood.MaxScore)
	}
	if e.StressLevel < 0 || e.StressLevel > 100 {
		return e, errors.New("stress_level must be between 0 and 100")
	}
	if e.SleepHours < 0 || e.SleepHours > maxSleepHours {
		return e, fmt.Errorf("sleep_hours must be between 0 and %d", maxSleepHours)
	}
	return e, nil
}

// HandleCreateEntry stores the check-in, then asks for feedback on it. The
// entry is kept even when the model is down; the response says which kind of
// feedback was produced.
func (eh *EntryHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleCreateEntry"

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		eh.logger.Info("decode error", zap.String("op", op), zap.Error(err))
		writeError(w, eh.logger, op, http.StatusBadRequest, "Couldnt decode json. Wrong request.")
		return
	}

	entry, err := req.entry(UserID(r.Context()))
	if err != nil {
		writeError(w, eh.logger, op, http.StatusBadRequest, err.Error())
		return
	}

	if err := eh.store.CreateEntry(r.Context(), &entry); err != nil {
		eh.logger.Error("create entry failed", zap.String("op", op), zap.Error(err))
		writeError(w, eh.logger, op, http.StatusInternalServerError, "Couldnt create entry")
		return
	}

	analysis := eh.analyzer.AnalyzeEntry(r.Context(), entry)

	writeJSON(w, eh.logger, op, http.StatusCreated, map[string]any{
		"status":   "created",
		"entry":    entry,
		"analysis": analysis,
	})
}

func (eh *EntryHandler) HandleGetEntries(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleGetEntries"

	entries, err := eh.store.ListEntries(r.Context(), UserID(r.Context()))
	if err != nil {
		eh.logger.Error("list entries failed", zap.String("op", op), zap.Error(err))
		writeError(w, eh.logger, op, http.StatusInternalServerError, "Couldnt get entries.")
		return
	}

	writeJSON(w, eh.logger, op, http.StatusOK, map[string]any{
		"status": "success",
		"data":   entries,
	})
}

func (eh *EntryHandler) HandleGetEntry(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleGetEntry"

	entry, err := eh.store.GetEntry(r.Context(), UserID(r.Context()), r.PathValue("id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, eh.logger, op, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		eh.logger.Error("get entry failed", zap.String("op", op), zap.Error(err))
		writeError(w, eh.logger, op, http.StatusInternalServerError, "Couldnt get entry.")
		return
	}

	writeJSON(w, eh.logger, op, http.StatusOK, entry)
}
