package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var e Entry
	require.NoError(t, json.Unmarshal([]byte(`{"entry_date":"2025-01-22T18:30:00Z","mood":"Happy"}`), &e))
	assert.Equal(t, "2025-01-22", e.EntryDate.String())

	out, err := json.Marshal(NewDate(time.Date(2025, 1, 28, 23, 59, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-28"`, string(out))

	_, err = ParseDate("28/01/2025")
	assert.Error(t, err)

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())
}
