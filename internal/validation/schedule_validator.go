package validation

import (
	"medtime/internal/clock"
	"medtime/internal/domain"
)

// ScheduleValidator provides validation for work-schedule updates.
type ScheduleValidator struct{}

// NewScheduleValidator creates a new schedule validator
func NewScheduleValidator() *ScheduleValidator {
	return &ScheduleValidator{}
}

// ValidatePatch validates a partial work-schedule update.
func (sv *ScheduleValidator) ValidatePatch(patch domain.SchedulePatch) error {
	validationError := NewValidationError()

	if patch.RegularHoursPerWeek != nil && *patch.RegularHoursPerWeek <= 0 {
		validationError.AddInvalidValueError("regularHoursPerWeek", *patch.RegularHoursPerWeek, "must be positive")
	}
	if patch.DefaultStartTime != nil && !clock.IsTimeOfDay(*patch.DefaultStartTime) {
		validationError.AddInvalidFormatError("defaultStartTime", *patch.DefaultStartTime, "HH:MM (24-hour)")
	}
	if patch.DefaultEndTime != nil && !clock.IsTimeOfDay(*patch.DefaultEndTime) {
		validationError.AddInvalidFormatError("defaultEndTime", *patch.DefaultEndTime, "HH:MM (24-hour)")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
