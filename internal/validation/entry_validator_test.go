package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtime/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestValidateFields(t *testing.T) {
	validator := NewEntryValidator()

	tests := []struct {
		name        string
		fields      domain.EntryFields
		expectError bool
	}{
		{
			name: "valid entry",
			fields: domain.EntryFields{
				Date:    "2025-03-09",
				TimeIn:  "23:37",
				TimeOut: "23:40",
				Notes:   "IV cannual issues hence check out late",
			},
			expectError: false,
		},
		{
			name:        "all fields missing",
			fields:      domain.EntryFields{},
			expectError: true,
		},
		{
			name: "bad date format",
			fields: domain.EntryFields{
				Date:    "09/03/2025",
				TimeIn:  "09:00",
				TimeOut: "17:00",
			},
			expectError: true,
		},
		{
			name: "bad time format",
			fields: domain.EntryFields{
				Date:    "2025-03-09",
				TimeIn:  "9am",
				TimeOut: "17:00",
			},
			expectError: true,
		},
		{
			name: "empty time out is reserved for the timer path",
			fields: domain.EntryFields{
				Date:   "2025-03-09",
				TimeIn: "09:00",
			},
			expectError: true,
		},
		{
			name: "notes too long",
			fields: domain.EntryFields{
				Date:    "2025-03-09",
				TimeIn:  "09:00",
				TimeOut: "17:00",
				Notes:   strings.Repeat("x", NotesMaxLength+1),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateFields(tt.fields)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFieldsAccumulates(t *testing.T) {
	validator := NewEntryValidator()

	err := validator.ValidateFields(domain.EntryFields{})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, ve.Errors, 3) // date, timeIn, timeOut all required
}

func TestValidatePatch(t *testing.T) {
	validator := NewEntryValidator()

	tests := []struct {
		name        string
		patch       domain.EntryPatch
		expectError bool
	}{
		{
			name:        "empty patch",
			patch:       domain.EntryPatch{},
			expectError: false,
		},
		{
			name:        "valid partial update",
			patch:       domain.EntryPatch{TimeOut: strPtr("17:30")},
			expectError: false,
		},
		{
			name:        "notes only",
			patch:       domain.EntryPatch{Notes: strPtr("amended")},
			expectError: false,
		},
		{
			name:        "bad time",
			patch:       domain.EntryPatch{TimeIn: strPtr("25:00")},
			expectError: true,
		},
		{
			name:        "bad date",
			patch:       domain.EntryPatch{Date: strPtr("tomorrow")},
			expectError: true,
		},
		{
			name:        "present-but-empty time out re-opens the entry",
			patch:       domain.EntryPatch{TimeOut: strPtr("")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePatch(tt.patch)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleValidatePatch(t *testing.T) {
	validator := NewScheduleValidator()
	hours := 37.5
	zero := 0.0
	negative := -5.0

	assert.NoError(t, validator.ValidatePatch(domain.SchedulePatch{}))
	assert.NoError(t, validator.ValidatePatch(domain.SchedulePatch{
		RegularHoursPerWeek: &hours,
		DefaultStartTime:    strPtr("08:00"),
		DefaultEndTime:      strPtr("16:00"),
	}))

	assert.Error(t, validator.ValidatePatch(domain.SchedulePatch{RegularHoursPerWeek: &zero}))
	assert.Error(t, validator.ValidatePatch(domain.SchedulePatch{RegularHoursPerWeek: &negative}))
	assert.Error(t, validator.ValidatePatch(domain.SchedulePatch{DefaultStartTime: strPtr("8am")}))
	assert.Error(t, validator.ValidatePatch(domain.SchedulePatch{DefaultEndTime: strPtr("24:00")}))
}
