package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindflow/internal/models"
	"mindflow/internal/mood"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	ctx := context.Background()
	s, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "mindflow.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.Migrate(ctx))
	// migrations are idempotent
	require.NoError(t, s.Migrate(ctx))
	return s
}

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestSQLiteStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	second := &models.Entry{UserID: "u1", EntryDate: date(t, "2025-01-23"), Mood: mood.FromLabel("Down"), StressLevel: 6, SleepHours: 6}
	first := &models.Entry{UserID: "u1", EntryDate: date(t, "2025-01-22"), Mood: mood.FromLabel("Happy"), StressLevel: 4, SleepHours: 7.5, JournalText: "productive day"}
	numeric := &models.Entry{UserID: "u1", EntryDate: date(t, "2025-01-23"), Mood: mood.FromNumber(7), StressLevel: 30, SleepHours: 8}
	other := &models.Entry{UserID: "u2", EntryDate: date(t, "2025-01-20"), Mood: mood.FromLabel("Excited")}

	for _, e := range []*models.Entry{second, first, numeric, other} {
		require.NoError(t, s.CreateEntry(ctx, e))
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.CreatedAt.IsZero())
	}

	got, err := s.ListEntries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, "productive day", got[0].JournalText)
	assert.Equal(t, 7.5, got[0].SleepHours)
	assert.Equal(t, "2025-01-22", got[0].EntryDate.String())

	// same day: insertion order
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, numeric.ID, got[2].ID)
	assert.True(t, got[2].Mood.IsNumeric())
	assert.Equal(t, 7, mood.ToNumber(got[2].Mood))

	none, err := s.ListEntries(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteStore_MoodKindSurvivesStorage(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	digits := &models.Entry{UserID: "u1", EntryDate: date(t, "2025-01-22"), Mood: mood.FromLabel("10")}
	number := &models.Entry{UserID: "u1", EntryDate: date(t, "2025-01-23"), Mood: mood.FromNumber(10)}
	require.NoError(t, s.CreateEntry(ctx, digits))
	require.NoError(t, s.CreateEntry(ctx, number))

	got, err := s.GetEntry(ctx, "u1", digits.ID)
	require.NoError(t, err)
	assert.False(t, got.Mood.IsNumeric())
	assert.Equal(t, mood.DefaultScore, mood.ToNumber(got.Mood))

	got, err = s.GetEntry(ctx, "u1", number.ID)
	require.NoError(t, err)
	assert.True(t, got.Mood.IsNumeric())
	assert.Equal(t, 10, mood.ToNumber(got.Mood))
}

func TestSQLiteStore_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	e := &models.Entry{UserID: "u1", Mood: mood.FromLabel("Peaceful")}
	require.NoError(t, s.CreateEntry(ctx, e))
	assert.Equal(t, models.NewDate(time.Now()).String(), e.EntryDate.String())

	assert.ErrorIs(t, s.CreateEntry(ctx, &models.Entry{}), ErrNoUser)
}

func TestSQLiteStore_GetEntry(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	e := &models.Entry{UserID: "u1", Mood: mood.FromLabel("Content"), StressLevel: 2}
	require.NoError(t, s.CreateEntry(ctx, e))

	got, err := s.GetEntry(ctx, "u1", e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, 2, got.StressLevel)
	assert.True(t, e.CreatedAt.Equal(got.CreatedAt))

	_, err = s.GetEntry(ctx, "u2", e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_UpsertUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.UpsertUser(ctx, &models.User{ID: "u1", Email: "old@example.com"}))
	require.NoError(t, s.UpsertUser(ctx, &models.User{ID: "u1", Email: "new@example.com"}))

	var email string
	var count int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT email, COUNT(*) FROM users WHERE clerk_user_id = ?`, "u1").Scan(&email, &count))
	assert.Equal(t, "new@example.com", email)
	assert.Equal(t, 1, count)

	assert.ErrorIs(t, s.UpsertUser(ctx, &models.User{}), ErrNoUser)
}
