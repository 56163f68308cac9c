package validation

import (
	"strings"

	"medtime/internal/clock"
	"medtime/internal/domain"
)

// NotesMaxLength bounds free-text notes on an entry.
const NotesMaxLength = 500

// EntryValidator provides validation for time-entry operations.
type EntryValidator struct{}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{}
}

// ValidateFields validates the caller-supplied fields of a manual entry.
// An empty timeOut is reserved for the timer path and rejected here.
func (ev *EntryValidator) ValidateFields(fields domain.EntryFields) error {
	validationError := NewValidationError()

	if strings.TrimSpace(fields.Date) == "" {
		validationError.AddRequiredError("date")
	} else if !clock.IsDate(fields.Date) {
		validationError.AddInvalidFormatError("date", fields.Date, "YYYY-MM-DD")
	}

	if strings.TrimSpace(fields.TimeIn) == "" {
		validationError.AddRequiredError("timeIn")
	} else if !clock.IsTimeOfDay(fields.TimeIn) {
		validationError.AddInvalidFormatError("timeIn", fields.TimeIn, "HH:MM (24-hour)")
	}

	if strings.TrimSpace(fields.TimeOut) == "" {
		validationError.AddRequiredError("timeOut")
	} else if !clock.IsTimeOfDay(fields.TimeOut) {
		validationError.AddInvalidFormatError("timeOut", fields.TimeOut, "HH:MM (24-hour)")
	}

	if len(fields.Notes) > NotesMaxLength {
		validationError.AddInvalidLengthError("notes", fields.Notes, NotesMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidatePatch validates a partial entry update. A present-but-empty
// timeOut is rejected: re-opening a stopped entry would bypass the
// single-timer bookkeeping.
func (ev *EntryValidator) ValidatePatch(patch domain.EntryPatch) error {
	validationError := NewValidationError()

	if patch.Date != nil && !clock.IsDate(*patch.Date) {
		validationError.AddInvalidFormatError("date", *patch.Date, "YYYY-MM-DD")
	}
	if patch.TimeIn != nil && !clock.IsTimeOfDay(*patch.TimeIn) {
		validationError.AddInvalidFormatError("timeIn", *patch.TimeIn, "HH:MM (24-hour)")
	}
	if patch.TimeOut != nil && !clock.IsTimeOfDay(*patch.TimeOut) {
		validationError.AddInvalidFormatError("timeOut", *patch.TimeOut, "HH:MM (24-hour)")
	}
	if patch.Notes != nil && len(*patch.Notes) > NotesMaxLength {
		validationError.AddInvalidLengthError("notes", *patch.Notes, NotesMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
