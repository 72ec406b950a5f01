package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mindflow/internal/models"
)

// timestampLayout has a fixed width so created_at sorts as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	clerk_user_id TEXT PRIMARY KEY,
	email TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	mood TEXT NOT NULL,
	stress_level INTEGER NOT NULL DEFAULT 0,
	sleep_hours REAL NOT NULL DEFAULT 0,
	journal_text TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS entries_user_date_idx ON entries (user_id, entry_date);
`

// SQLiteStore keeps the same tables in a local file for development and tests.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	op := "internal/storage/sqlite.go NewSQLiteStore"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: open %s: %w", op, path, err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: ping %s: %w", op, path, err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	op := "internal/storage/sqlite.go Migrate"

	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *SQLiteStore) Close() {
	_ = s.db.Close()
}

func (s *SQLiteStore) CreateEntry(ctx context.Context, entry *models.Entry) error {
	op := "internal/storage/sqlite.go CreateEntry"

	if err := prepareEntry(entry, time.Now()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.db.ExecContext(ctx, `
	INSERT INTO entries
	(id, user_id, entry_date, mood, stress_level, sleep_hours, journal_text, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`,
		entry.ID,
		entry.UserID,
		entry.EntryDate.String(),
		entry.Mood.Encode(),
		entry.StressLevel,
		entry.SleepHours,
		entry.JournalText,
		entry.CreatedAt.Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("Failure to create entry in %s: %w", op, err)
	}

	return nil
}

func (s *SQLiteStore) GetEntry(ctx context.Context, userID, id string) (models.Entry, error) {
	op := "internal/storage/sqlite.go GetEntry"

	row := s.db.QueryRowContext(ctx, `
	SELECT id, user_id, entry_date, mood, stress_level, sleep_hours, journal_text, created_at
	FROM entries
	WHERE user_id = ? AND id = ?;
	`, userID, id)

	entry, err := scanSQLiteEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrNotFound
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("Failure to get entry in %s: %w", op, err)
	}
	return entry, nil
}

func (s *SQLiteStore) ListEntries(ctx context.Context, userID string) ([]models.Entry, error) {
	op := "internal/storage/sqlite.go ListEntries"

	rows, err := s.db.QueryContext(ctx, `
	SELECT id, user_id, entry_date, mood, stress_level, sleep_hours, journal_text, created_at
	FROM entries
	WHERE user_id = ?
	ORDER BY entry_date ASC, created_at ASC, rowid ASC;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("Failure to get entries in %s: %w", op, err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		entry, err := scanSQLiteEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("Failure to Scan entries in %s: %w", op, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failure to read entries in %s: %w", op, err)
	}

	return entries, nil
}

func (s *SQLiteStore) UpsertUser(ctx context.Context, user *models.User) error {
	op := "internal/storage/sqlite.go UpsertUser"

	if user.ID == "" {
		return fmt.Errorf("%s: %w", op, ErrNoUser)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
	INSERT INTO users (clerk_user_id, email, created_at) VALUES (?, ?, ?)
	ON CONFLICT (clerk_user_id) DO UPDATE SET
	email = excluded.email
	`, user.ID, user.Email, user.CreatedAt.Format(timestampLayout))
	if err != nil {
		return fmt.Errorf("%s: failed to save user: %w", op, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteEntry(row rowScanner) (models.Entry, error) {
	var (
		entry     models.Entry
		entryDate string
		createdAt string
	)

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entryDate,
		&entry.Mood,
		&entry.StressLevel,
		&entry.SleepHours,
		&entry.JournalText,
		&createdAt,
	)
	if err != nil {
		return models.Entry{}, err
	}

	if entry.EntryDate, err = models.ParseDate(entryDate); err != nil {
		return models.Entry{}, err
	}
	if entry.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}
