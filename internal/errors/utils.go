package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context, creating an AppError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *AppError {
	if err == nil {
		return nil
	}

	var ae *AppError
	if errors.As(err, &ae) {
		return &AppError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       ae,
			Context:     ae.Context,
			Component:   ae.Component,
			Recoverable: ae.Recoverable,
		}
	}

	return &AppError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation || errType == ErrorTypeNetwork,
	}
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) *AppError {
	return Wrap(err, ErrorTypeIO, code, message)
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *AppError {
	return Wrap(err, ErrorTypeConfig, code, message)
}

// WrapNetwork wraps an error as a network error
func WrapNetwork(err error, code, message string) *AppError {
	return Wrap(err, ErrorTypeNetwork, code, message)
}

// FormatError formats an error for user display
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Error()
	}

	return err.Error()
}

// FormatErrorWithSuggestions formats an error with the suggestions carried
// by an EnhancedError or a ValidationError in its chain.
func FormatErrorWithSuggestions(err error) string {
	if err == nil {
		return ""
	}

	var ee *EnhancedError
	if errors.As(err, &ee) {
		title := ee.Title
		if ee.OriginalError != nil {
			title += ": " + FormatError(ee.OriginalError)
		}
		return FormatSuggestions(title, ee.Suggestions)
	}

	var ve ValidationError
	if errors.As(err, &ve) {
		result := ve.Error()
		suggestions := ve.Suggestions()
		if len(suggestions) > 0 {
			result += "\n\nSuggestions:"
			for _, suggestion := range suggestions {
				result += fmt.Sprintf("\n  • %s", suggestion)
			}
		}
		return result
	}

	return FormatError(err)
}

// HasCode reports whether err, or an AppError it wraps, carries code.
func HasCode(err error, code string) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Code == code
}

// CombineErrors combines multiple errors into a single error with context
func CombineErrors(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	if len(nonNil) == 1 {
		return nonNil[0]
	}

	var messages []string
	for _, err := range nonNil {
		messages = append(messages, err.Error())
	}

	return &AppError{
		Type:    ErrorTypeInternal,
		Code:    "ERR_MULTIPLE_ERRORS",
		Message: fmt.Sprintf("multiple errors occurred: %d errors", len(nonNil)),
		Context: map[string]interface{}{
			"error_count": len(nonNil),
			"errors":      messages,
		},
		Recoverable: false,
	}
}
