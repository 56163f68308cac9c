package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubNow(t *testing.T, instant time.Time) {
	t.Helper()
	original := timeNow
	timeNow = func() time.Time { return instant }
	t.Cleanup(func() { timeNow = original })
}

func TestNewEntry(t *testing.T) {
	now := time.Date(2025, 3, 9, 23, 45, 0, 0, time.UTC)
	stubNow(t, now)

	entry := NewEntry(EntryFields{
		Date:    "2025-03-09",
		TimeIn:  "23:37",
		TimeOut: "23:40",
		Notes:   "IV cannual issues hence check out late",
	})

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "2025-03-09", entry.Date)
	assert.Equal(t, 3, entry.Duration)
	assert.Equal(t, now, entry.CreatedAt)
	assert.Equal(t, now, entry.UpdatedAt)
	assert.False(t, entry.IsRunning())
}

func TestNewTimerEntry(t *testing.T) {
	now := time.Date(2025, 3, 12, 8, 15, 0, 0, time.UTC)
	stubNow(t, now)

	entry := NewTimerEntry()

	assert.Equal(t, "2025-03-12", entry.Date)
	assert.Equal(t, "08:15", entry.TimeIn)
	assert.Empty(t, entry.TimeOut)
	assert.Zero(t, entry.Duration)
	assert.True(t, entry.IsRunning())
}

func TestApply(t *testing.T) {
	base := TimeEntry{
		ID:       "entry-1",
		Date:     "2025-03-09",
		TimeIn:   "09:00",
		TimeOut:  "17:00",
		Duration: 480,
		Notes:    "original",
	}

	strPtr := func(s string) *string { return &s }

	t.Run("notes-only edit keeps duration", func(t *testing.T) {
		updated := base.Apply(EntryPatch{Notes: strPtr("amended")})

		assert.Equal(t, "amended", updated.Notes)
		assert.Equal(t, 480, updated.Duration)
		assert.Equal(t, "original", base.Notes) // receiver untouched
	})

	t.Run("time edit recomputes duration", func(t *testing.T) {
		updated := base.Apply(EntryPatch{TimeOut: strPtr("17:30")})

		assert.Equal(t, "17:30", updated.TimeOut)
		assert.Equal(t, 510, updated.Duration)
	})

	t.Run("date edit recomputes duration", func(t *testing.T) {
		updated := base.Apply(EntryPatch{Date: strPtr("2025-03-10")})

		assert.Equal(t, "2025-03-10", updated.Date)
		assert.Equal(t, 480, updated.Duration)
	})

	t.Run("updated timestamp refreshed", func(t *testing.T) {
		now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
		stubNow(t, now)

		updated := base.Apply(EntryPatch{Notes: strPtr("x")})
		assert.Equal(t, now, updated.UpdatedAt)
	})
}

func TestStop(t *testing.T) {
	running := TimeEntry{
		ID:     "entry-1",
		Date:   "2025-03-12",
		TimeIn: "08:00",
	}

	now := time.Date(2025, 3, 12, 16, 30, 0, 0, time.UTC)
	stubNow(t, now)

	t.Run("finalizes time out and duration", func(t *testing.T) {
		stopped := running.Stop(nil)

		require.Equal(t, "16:30", stopped.TimeOut)
		assert.Equal(t, 510, stopped.Duration)
		assert.False(t, stopped.IsRunning())
	})

	t.Run("notes replaced only when provided", func(t *testing.T) {
		notes := "handover ran late"
		stopped := running.Stop(&notes)
		assert.Equal(t, notes, stopped.Notes)

		empty := ""
		withExisting := running
		withExisting.Notes = "keep me"
		stopped = withExisting.Stop(&empty)
		assert.Equal(t, "keep me", stopped.Notes)

		stopped = withExisting.Stop(nil)
		assert.Equal(t, "keep me", stopped.Notes)
	})
}
