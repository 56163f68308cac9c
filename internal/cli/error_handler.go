package cli

import (
	"fmt"

	"medtime/internal/errors"
	"medtime/internal/validation"
)

// ErrorHandler converts application errors into messages suitable for
// terminal output.
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle wraps err with the failed operation and a user-facing message.
func (h *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s: %s", operation, ve.GetUserFriendlyMessage())
	}
	return fmt.Errorf("%s: %s", operation, errors.GetUserMessage(err))
}
