package scheduling

import (
	"errors"
	"fmt"
)

// Error codes for the scheduling pipeline.
const (
	CodeMissingRequiredField = "missingRequiredField"
	CodeInvalidDateFormat    = "invalidDateFormat"
	CodeProviderError        = "providerError"
)

// SchedulingError carries a machine-usable code alongside the message so the
// handler layer can map validation mistakes and provider failures to
// different HTTP statuses.
type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMissingFieldError(field string) error {
	return &SchedulingError{
		Code:    CodeMissingRequiredField,
		Message: fmt.Sprintf("missing required field: %s", field),
	}
}

func NewInvalidDateError(input string) error {
	return &SchedulingError{
		Code:    CodeInvalidDateFormat,
		Message: fmt.Sprintf("unable to parse date: %q", input),
	}
}

func NewProviderError(err error) error {
	return &SchedulingError{
		Code:    CodeProviderError,
		Message: err.Error(),
	}
}

// ErrorMessage strips the code prefix so responses carry only the
// human-readable part.
func ErrorMessage(err error) string {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

// IsValidationError reports whether err represents a caller mistake (missing
// field or unparseable date) rather than a provider failure.
func IsValidationError(err error) bool {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Code == CodeMissingRequiredField || se.Code == CodeInvalidDateFormat
	}
	return false
}
