package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"mindflow/internal/models"
	"mindflow/internal/storage"
)

type UserHandler struct {
	store  storage.Store
	logger *zap.Logger
}

func NewUserHandler(store storage.Store, logger *zap.Logger) *UserHandler {
	return &UserHandler{store: store, logger: logger}
}

// HandleSync records the signed-in user so entries have an owner row.
func (uh *UserHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleSync"

	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		uh.logger.Info("decode error", zap.String("op", op), zap.Error(err))
		writeError(w, uh.logger, op, http.StatusBadRequest, "Bad request")
		return
	}

	user := models.User{ID: UserID(r.Context()), Email: input.Email}
	if err := uh.store.UpsertUser(r.Context(), &user); err != nil {
		uh.logger.Error("upsert user failed", zap.String("op", op), zap.String("user", user.ID), zap.Error(err))
		writeError(w, uh.logger, op, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, uh.logger, op, http.StatusOK, map[string]string{
		"status": "synced",
		"user":   user.ID,
	})
}
