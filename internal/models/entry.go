package models

import (
	"time"

	"mindflow/internal/mood"
)

// Entry is one day's check-in. Entries belong to a single user and are not
// edited after they are written.
type Entry struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	EntryDate   Date      `json:"entry_date" db:"entry_date"`
	Mood        mood.Mood `json:"mood" db:"mood"`
	StressLevel int       `json:"stress_level" db:"stress_level"`
	SleepHours  float64   `json:"sleep_hours" db:"sleep_hours"`
	JournalText string    `json:"journal_text" db:"journal_text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
