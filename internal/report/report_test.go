package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtime/internal/domain"
	"medtime/internal/errors"
)

var testEntries = []domain.TimeEntry{
	{
		ID:       "e1",
		Date:     "2025-03-09",
		TimeIn:   "23:37",
		TimeOut:  "23:40",
		Duration: 3,
		Notes:    "IV cannual issues hence check out late",
	},
	{
		ID:       "e2",
		Date:     "2025-01-15",
		TimeIn:   "09:00",
		TimeOut:  "17:00",
		Duration: 480,
	},
	{
		ID:     "e3",
		Date:   "2025-03-12",
		TimeIn: "08:00", // still running
	},
	{
		ID:       "e4",
		Date:     "2024-06-01",
		TimeIn:   "09:00",
		TimeOut:  "10:00",
		Duration: 60,
	},
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "MedTime-Report-2025.html", Filename("2025"))
	assert.Equal(t, "MedTime-Report-2025-03.html", Filename("2025-03"))
}

func TestValidPeriod(t *testing.T) {
	assert.True(t, ValidPeriod("2025"))
	assert.True(t, ValidPeriod("2025-03"))
	assert.False(t, ValidPeriod("2025-13"))
	assert.False(t, ValidPeriod("March"))
	assert.False(t, ValidPeriod(""))
}

func TestBuildRejectsInvalidPeriod(t *testing.T) {
	_, err := Build(testEntries, "bogus")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestBuildMonthReport(t *testing.T) {
	html, err := Build(testEntries, "2025-03")
	require.NoError(t, err)

	// only March 2025 entries appear
	assert.Contains(t, html, "Sun, Mar 9, 2025")
	assert.Contains(t, html, "Wed, Mar 12, 2025")
	assert.NotContains(t, html, "Jan 15")
	assert.NotContains(t, html, "2024")

	// 3 minutes total
	assert.Contains(t, html, "0.1")

	// entry detail formatting
	assert.Contains(t, html, "11:37 PM")
	assert.Contains(t, html, "In progress")
	assert.Contains(t, html, "0h 3m")
	assert.Contains(t, html, "IV cannual issues hence check out late")

	// month reports carry no monthly overview
	assert.NotContains(t, html, "Monthly Overview")
	assert.Contains(t, html, "March 2025-03")
}

func TestBuildYearReport(t *testing.T) {
	html, err := Build(testEntries, "2025")
	require.NoError(t, err)

	assert.Contains(t, html, "Monthly Overview")
	assert.Contains(t, html, "January")
	assert.Contains(t, html, "March")
	assert.NotContains(t, html, "June") // 2024 entry excluded

	// 483 minutes = 8.1 hours total; all counted as regular
	assert.Contains(t, html, "8.1")
	assert.Contains(t, html, "0.0")
}

func TestBuildEmptyPeriod(t *testing.T) {
	html, err := Build(testEntries, "2023")
	require.NoError(t, err)

	assert.Contains(t, html, "0.0")
	assert.False(t, strings.Contains(html, "Mar 9"))
}
