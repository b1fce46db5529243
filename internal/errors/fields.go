package errors

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrorKind classifies a field-scoped validation failure.
type FieldErrorKind string

const (
	// KindMissingField is reported when a required value is empty after trimming.
	KindMissingField FieldErrorKind = "missing_field"
	// KindInvalidFormat is reported when a value is present but malformed.
	KindInvalidFormat FieldErrorKind = "invalid_format"
)

// ValidationError interface for field-specific validation errors.
type ValidationError interface {
	error
	Field() string
	Kind() FieldErrorKind
	Value() interface{}
	Suggestions() []string
}

// FieldValidationError implements ValidationError for specific field errors.
// ErrorMessage is the user-facing copy shown next to the field.
type FieldValidationError struct {
	FieldName    string
	FieldKind    FieldErrorKind
	FieldValue   interface{}
	ErrorMessage string
	HelpText     []string
}

// Error implements the error interface.
func (fve *FieldValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", fve.FieldName, fve.ErrorMessage)
}

// Field returns the field name that failed validation.
func (fve *FieldValidationError) Field() string {
	return fve.FieldName
}

// Kind returns the failure class.
func (fve *FieldValidationError) Kind() FieldErrorKind {
	return fve.FieldKind
}

// Value returns the invalid value.
func (fve *FieldValidationError) Value() interface{} {
	return fve.FieldValue
}

// Suggestions returns helpful suggestions for fixing the error.
func (fve *FieldValidationError) Suggestions() []string {
	return fve.HelpText
}

// ToAppError converts the field validation error to an AppError.
func (fve *FieldValidationError) ToAppError() *AppError {
	return NewValidationError(
		"ERR_FIELD_"+strings.ToUpper(fve.FieldName),
		fve.ErrorMessage,
	).WithContext("field", fve.FieldName).WithContext("kind", string(fve.FieldKind))
}

// NewFieldValidationError creates a new field validation error.
func NewFieldValidationError(
	field string,
	kind FieldErrorKind,
	value interface{},
	message string,
	suggestions ...string,
) *FieldValidationError {
	return &FieldValidationError{
		FieldName:    field,
		FieldKind:    kind,
		FieldValue:   value,
		ErrorMessage: message,
		HelpText:     suggestions,
	}
}

// MissingField creates a KindMissingField error for field.
func MissingField(field, message string) *FieldValidationError {
	return NewFieldValidationError(field, KindMissingField, "", message)
}

// InvalidFormat creates a KindInvalidFormat error for field.
func InvalidFormat(field string, value interface{}, message string) *FieldValidationError {
	return NewFieldValidationError(field, KindInvalidFormat, value, message)
}

// ValidationErrorCollection represents a collection of validation errors.
type ValidationErrorCollection struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (vec *ValidationErrorCollection) Error() string {
	if len(vec.Errors) == 0 {
		return "no validation errors"
	}
	if len(vec.Errors) == 1 {
		return vec.Errors[0].Error()
	}

	return fmt.Sprintf("validation failed with %d errors", len(vec.Errors))
}

// Add adds a validation error to the collection.
func (vec *ValidationErrorCollection) Add(err ValidationError) {
	vec.Errors = append(vec.Errors, err)
}

// HasErrors returns true if there are any validation errors.
func (vec *ValidationErrorCollection) HasErrors() bool {
	return len(vec.Errors) > 0
}

// Fields returns the sorted names of all failing fields.
func (vec *ValidationErrorCollection) Fields() []string {
	fields := make([]string, 0, len(vec.Errors))
	for _, err := range vec.Errors {
		fields = append(fields, err.Field())
	}
	sort.Strings(fields)
	return fields
}

// ToAppError converts the validation collection to an AppError.
func (vec *ValidationErrorCollection) ToAppError() *AppError {
	if !vec.HasErrors() {
		return nil
	}

	var messages []string
	context := make(map[string]interface{})

	for _, err := range vec.Errors {
		messages = append(messages, err.Error())
		context[err.Field()] = map[string]interface{}{
			"kind":        string(err.Kind()),
			"suggestions": err.Suggestions(),
		}
	}

	return &AppError{
		Type:        ErrorTypeValidation,
		Code:        ErrCodeValidationFailed,
		Message:     strings.Join(messages, "; "),
		Context:     context,
		Recoverable: true,
	}
}
