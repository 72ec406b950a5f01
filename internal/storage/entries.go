package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"mindflow/internal/models"
)

func (s *PostgresStore) CreateEntry(ctx context.Context, entry *models.Entry) error {
	op := "internal/storage/entries.go CreateEntry"

	if err := prepareEntry(entry, time.Now()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	sql_query := `
	INSERT INTO entries
	(id, user_id, entry_date, mood, stress_level, sleep_hours, journal_text, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := s.pool.Exec(
		ctx,
		sql_query,
		entry.ID,
		entry.UserID,
		entry.EntryDate.Time,
		entry.Mood.Encode(),
		entry.StressLevel,
		entry.SleepHours,
		entry.JournalText,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("Failure to create entry in %s: %w", op, err)
	}

	return nil
}

func (s *PostgresStore) GetEntry(ctx context.Context, userID, id string) (models.Entry, error) {
	op := "internal/storage/entries.go GetEntry"

	sql_query := `
	SELECT id, user_id, entry_date, mood, stress_level, sleep_hours, journal_text, created_at
	FROM entries
	WHERE user_id = $1 AND id = $2;
	`

	entry, err := scanEntry(s.pool.QueryRow(ctx, sql_query, userID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Entry{}, ErrNotFound
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("Failure to get entry in %s: %w", op, err)
	}

	return entry, nil
}

func (s *PostgresStore) ListEntries(ctx context.Context, userID string) ([]models.Entry, error) {
	op := "internal/storage/entries.go ListEntries"

	sql_query := `
	SELECT id, user_id, entry_date, mood, stress_level, sleep_hours, journal_text, created_at
	FROM entries
	WHERE user_id = $1
	ORDER BY entry_date ASC, created_at ASC;
	`

	rows, err := s.pool.Query(ctx, sql_query, userID)

	if err != nil {
		return nil, fmt.Errorf("Failure to get entries in %s: %w", op, err)
	}
	defer rows.Close()
	entries := []models.Entry{}

	for rows.Next() {
		entry, err := scanEntry(rows)
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

func scanEntry(row pgx.Row) (models.Entry, error) {
	var (
		entry     models.Entry
		entryDate time.Time
		moodText  string
	)

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entryDate,
		&moodText,
		&entry.StressLevel,
		&entry.SleepHours,
		&entry.JournalText,
		&entry.CreatedAt,
	)
	if err != nil {
		return models.Entry{}, err
	}

	entry.EntryDate = models.NewDate(entryDate)
	if err := entry.Mood.Scan(moodText); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}
