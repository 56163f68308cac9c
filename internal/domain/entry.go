package domain

import (
	"time"

	"github.com/google/uuid"

	"medtime/internal/clock"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// TimeEntry represents one recorded or in-progress work shift.
// Field names match the persisted JSON layout.
type TimeEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`    // "YYYY-MM-DD", the day the shift starts on
	TimeIn    string    `json:"timeIn"`  // 24-hour "HH:MM"
	TimeOut   string    `json:"timeOut"` // empty while the shift is still running
	Duration  int       `json:"duration"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntryFields holds the caller-supplied fields for a manual entry.
type EntryFields struct {
	Date    string
	TimeIn  string
	TimeOut string
	Notes   string
}

// EntryPatch is a partial update; nil fields are left untouched.
type EntryPatch struct {
	Date    *string
	TimeIn  *string
	TimeOut *string
	Notes   *string
}

// NewEntry constructs a complete entry from manual input: generated ID,
// derived duration, both timestamps set to the current instant. The caller
// is responsible for inserting it into the ledger.
func NewEntry(fields EntryFields) TimeEntry {
	now := timeNow()
	return TimeEntry{
		ID:        uuid.NewString(),
		Date:      fields.Date,
		TimeIn:    fields.TimeIn,
		TimeOut:   fields.TimeOut,
		Duration:  clock.Minutes(fields.TimeIn, fields.TimeOut),
		Notes:     fields.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTimerEntry constructs the clock-in specialization: today's date, the
// current wall-clock time in, no time out, zero duration.
func NewTimerEntry() TimeEntry {
	now := timeNow()
	return TimeEntry{
		ID:        uuid.NewString(),
		Date:      now.Format(clock.DateLayout),
		TimeIn:    now.Format(clock.TimeLayout),
		TimeOut:   "",
		Duration:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsRunning returns true if the entry has not been clocked out.
func (e TimeEntry) IsRunning() bool {
	return e.TimeOut == ""
}

// Apply returns a copy of the entry with the patch merged in. Duration is
// recomputed only when the patch touches a time field or the date; the
// UpdatedAt timestamp is always refreshed. The receiver is not mutated.
func (e TimeEntry) Apply(patch EntryPatch) TimeEntry {
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.TimeIn != nil {
		e.TimeIn = *patch.TimeIn
	}
	if patch.TimeOut != nil {
		e.TimeOut = *patch.TimeOut
	}
	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}
	if patch.TimeIn != nil || patch.TimeOut != nil || patch.Date != nil {
		e.Duration = clock.Minutes(e.TimeIn, e.TimeOut)
	}
	e.UpdatedAt = timeNow()
	return e
}

// Stop returns a copy of the entry clocked out at the current wall-clock
// time, with the duration finalized. Notes replace the existing ones only
// when provided.
func (e TimeEntry) Stop(notes *string) TimeEntry {
	now := timeNow()
	e.TimeOut = now.Format(clock.TimeLayout)
	e.Duration = clock.Minutes(e.TimeIn, e.TimeOut)
	if notes != nil && *notes != "" {
		e.Notes = *notes
	}
	e.UpdatedAt = now
	return e
}
