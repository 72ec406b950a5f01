package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mindflow/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrNoUser   = errors.New("missing user id")
)

// Store is the persistence both backends provide. Every read is scoped to a
// single user.
type Store interface {
	CreateEntry(ctx context.Context, entry *models.Entry) error
	GetEntry(ctx context.Context, userID, id string) (models.Entry, error)
	// ListEntries returns the user's entries oldest first.
	ListEntries(ctx context.Context, userID string) ([]models.Entry, error)
	UpsertUser(ctx context.Context, user *models.User) error
	Migrate(ctx context.Context) error
	Close()
}

// prepareEntry fills the fields the store owns.
func prepareEntry(entry *models.Entry, now time.Time) error {
	if entry.UserID == "" {
		return ErrNoUser
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = now.UTC()
	if entry.EntryDate.IsZero() {
		entry.EntryDate = models.NewDate(now)
	}
	return nil
}

var (
	_ Store = (*PostgresStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)
