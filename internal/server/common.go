package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "medtime/internal/errors"
	"medtime/internal/validation"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// SuccessResponse is the JSON envelope for successful calls.
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is the JSON envelope for failed calls.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewSuccessResponse wraps data in the success envelope.
func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{Data: data}
}

// NewErrorResponse wraps a message in the error envelope.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// FormatBindingError turns a gin binding failure into a readable message.
func FormatBindingError(err error) string {
	if err == nil {
		return ""
	}

	if err == io.EOF {
		return "Request body is empty"
	}

	if syntaxErr, ok := err.(*json.SyntaxError); ok {
		return fmt.Sprintf("Invalid JSON at byte offset %d", syntaxErr.Offset)
	}

	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("Field '%s' should be of type %s", typeErr.Field, typeErr.Type.String())
	}

	if ve, ok := err.(validator.ValidationErrors); ok {
		var out []string
		for _, fe := range ve {
			out = append(out, formatFieldError(fe))
		}
		return strings.Join(out, ", ")
	}

	return err.Error()
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", fe.Field())
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("Field '%s' failed validation for '%s'", fe.Field(), fe.Tag())
}

// statusForError maps an application error to its HTTP status.
func statusForError(err error) int {
	if validation.IsValidationError(err) {
		return http.StatusBadRequest
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			return http.StatusBadRequest
		case apperrors.ErrorTypeNotFound:
			return http.StatusNotFound
		case apperrors.ErrorTypeUnauthorized:
			return http.StatusUnauthorized
		case apperrors.ErrorTypeConflict:
			return http.StatusConflict
		case apperrors.ErrorTypePermission:
			return http.StatusForbidden
		case apperrors.ErrorTypeDatabase:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
