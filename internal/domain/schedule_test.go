package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWorkSchedule(t *testing.T) {
	schedule := DefaultWorkSchedule()

	assert.Equal(t, float64(39), schedule.RegularHoursPerWeek)
	assert.Equal(t, "07:00", schedule.DefaultStartTime)
	assert.Equal(t, "17:00", schedule.DefaultEndTime)
}

func TestMerge(t *testing.T) {
	base := DefaultWorkSchedule()

	hours := 37.5
	merged := base.Merge(SchedulePatch{RegularHoursPerWeek: &hours})

	assert.Equal(t, 37.5, merged.RegularHoursPerWeek)
	assert.Equal(t, "07:00", merged.DefaultStartTime)
	assert.Equal(t, float64(39), base.RegularHoursPerWeek) // receiver untouched

	start := "08:30"
	end := "16:30"
	merged = merged.Merge(SchedulePatch{DefaultStartTime: &start, DefaultEndTime: &end})

	assert.Equal(t, "08:30", merged.DefaultStartTime)
	assert.Equal(t, "16:30", merged.DefaultEndTime)
	assert.Equal(t, 37.5, merged.RegularHoursPerWeek)
}
