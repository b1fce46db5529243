//go:build property

package contact

import (
	"strings"
	"testing"

	"github.com/conneroisu/bizconsult/internal/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestValidatorProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: whitespace-only values fail only their own field
	properties.Property("blank field is isolated", prop.ForAll(
		func(index int, blank string) bool {
			field := Fields()[index]
			result := Validate(validSubmission().With(field, blank))
			return len(result) == 1 && result.Kind(field) == errors.KindMissingField
		},
		gen.IntRange(0, 3),
		gen.RegexMatch(`^[ \t\n\r]{0,8}$`),
	))

	// Property: validation depends only on the snapshot
	properties.Property("validation is stateless", prop.ForAll(
		func(name, email, phone, message string) bool {
			s := Submission{Name: name, Email: email, Phone: phone, Message: message}
			first := Validate(s).Messages()
			Validate(validSubmission())
			Validate(Submission{})
			second := Validate(s).Messages()
			if len(first) != len(second) {
				return false
			}
			for k, v := range first {
				if second[k] != v {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	// Property: digit strings of at least ten characters are valid phones
	properties.Property("long digit phones accepted", prop.ForAll(
		func(phone string) bool {
			return Validate(validSubmission().With(FieldPhone, phone)).OK()
		},
		gen.RegexMatch(`^[0-9]{10,20}$`),
	))

	// Property: any letter in a phone value is rejected
	properties.Property("letters in phone rejected", prop.ForAll(
		func(digits, letters string) bool {
			phone := digits + letters
			return Validate(validSubmission().With(FieldPhone, phone)).Kind(FieldPhone) == errors.KindInvalidFormat
		},
		gen.RegexMatch(`^[0-9]{10}$`),
		gen.RegexMatch(`^[a-zA-Z]{1,5}$`),
	))

	// Property: well-formed addresses are accepted
	properties.Property("simple addresses accepted", prop.ForAll(
		func(local, domain, tld string) bool {
			email := local + "@" + domain + "." + tld
			return Validate(validSubmission().With(FieldEmail, email)).OK()
		},
		gen.RegexMatch(`^[a-z0-9]{1,10}$`),
		gen.RegexMatch(`^[a-z0-9]{1,10}$`),
		gen.RegexMatch(`^[a-z]{1,5}$`),
	))

	// Property: an accepted submit always leaves an empty form
	properties.Property("accepted submit resets", prop.ForAll(
		func(name string) bool {
			if strings.TrimSpace(name) == "" {
				return true
			}
			form := NewFormFrom(validSubmission().With(FieldName, name))
			outcome := form.Submit()
			return outcome.Accepted && form.Values().IsZero() && len(form.Errors()) == 0
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
