package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindflow/internal/dashboard"
	"mindflow/internal/storage"
)

type DashboardHandler struct {
	store  storage.Store
	logger *zap.Logger
}

func NewDashboardHandler(store storage.Store, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{store: store, logger: logger}
}

// HandleDashboard recomputes the whole view from the user's entries on every
// request. A store failure is reported as 503 so the client keeps whatever it
// last rendered.
func (dh *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleDashboard"

	entries, err := dh.store.ListEntries(r.Context(), UserID(r.Context()))
	if err != nil {
		dh.logger.Error("load entries failed", zap.String("op", op), zap.Error(err))
		writeError(w, dh.logger, op, http.StatusServiceUnavailable, "Couldnt load entries")
		return
	}

	writeJSON(w, dh.logger, op, http.StatusOK, dashboard.Build(entries))
}
