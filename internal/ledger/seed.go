package ledger

import (
	"time"

	"medtime/internal/domain"
)

// seedEntries returns the demo collection used when no state has ever been
// persisted. Kept tiny on purpose so a fresh install shows a worked example
// without drowning real data.
func seedEntries() []domain.TimeEntry {
	stamp := time.Date(2025, time.March, 9, 23, 40, 0, 0, time.UTC)
	return []domain.TimeEntry{
		{
			ID:        "mock-entry-1",
			Date:      "2025-03-09",
			TimeIn:    "23:37",
			TimeOut:   "23:40",
			Duration:  3,
			Notes:     "IV cannual issues hence check out late",
			CreatedAt: stamp,
			UpdatedAt: stamp,
		},
	}
}
