package contact

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/conneroisu/bizconsult/internal/errors"
)

// whitespace is the browser's notion of \s, which is wider than RE2's ASCII class.
const whitespace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	emailPattern = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`)

	// Any arrangement of the permitted characters is accepted, "----------" included.
	phonePattern = regexp.MustCompile(`^[0-9` + whitespace + `+()\-]{` + strconv.Itoa(MinPhoneLength) + `,}$`)
)

// MinPhoneLength is the shortest phone value the validator accepts.
const MinPhoneLength = 10

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// Trim strips leading and trailing whitespace the way the form does
// before checking for emptiness.
func Trim(value string) string {
	return strings.TrimFunc(value, isSpace)
}

// Validate checks every field of s independently and returns the failures.
// It holds no state: the result depends only on s.
func Validate(s Submission) Result {
	result := make(Result)

	if Trim(s.Name) == "" {
		result.add(FieldName, errors.KindMissingField, s.Name)
	}

	switch {
	case Trim(s.Email) == "":
		result.add(FieldEmail, errors.KindMissingField, s.Email)
	case !emailPattern.MatchString(s.Email):
		result.add(FieldEmail, errors.KindInvalidFormat, s.Email)
	}

	phone := Trim(s.Phone)
	switch {
	case phone == "":
		result.add(FieldPhone, errors.KindMissingField, s.Phone)
	case !phonePattern.MatchString(phone):
		result.add(FieldPhone, errors.KindInvalidFormat, s.Phone)
	}

	if Trim(s.Message) == "" {
		result.add(FieldMessage, errors.KindMissingField, s.Message)
	}

	return result
}

// ValidateField checks a single field of s. It returns nil when the field is valid.
func ValidateField(s Submission, field Field) *errors.FieldValidationError {
	return Validate(s)[field]
}
