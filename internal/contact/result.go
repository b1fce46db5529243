package contact

import "github.com/conneroisu/bizconsult/internal/errors"

// Result maps each invalid field to its error. A field without an entry is valid.
type Result map[Field]*errors.FieldValidationError

func (r Result) add(field Field, kind errors.FieldErrorKind, value string) {
	var fe *errors.FieldValidationError
	switch kind {
	case errors.KindMissingField:
		fe = errors.MissingField(string(field), Message(field, kind))
	default:
		fe = errors.InvalidFormat(string(field), value, Message(field, kind))
	}
	r[field] = fe
}

// OK reports whether the submission was accepted.
func (r Result) OK() bool {
	return len(r) == 0
}

// Has reports whether field failed validation.
func (r Result) Has(field Field) bool {
	_, ok := r[field]
	return ok
}

// Message returns the inline message for field, or "" when it is valid.
func (r Result) Message(field Field) string {
	if fe, ok := r[field]; ok {
		return fe.ErrorMessage
	}
	return ""
}

// Kind returns the failure kind for field, or "" when it is valid.
func (r Result) Kind(field Field) errors.FieldErrorKind {
	if fe, ok := r[field]; ok {
		return fe.Kind()
	}
	return ""
}

// Messages flattens the result to field name -> inline message.
func (r Result) Messages() map[string]string {
	out := make(map[string]string, len(r))
	for field, fe := range r {
		out[string(field)] = fe.ErrorMessage
	}
	return out
}

// Err returns the failures as a single error in field display order, or
// nil when the result is empty.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	vec := &errors.ValidationErrorCollection{}
	for _, field := range Fields() {
		if fe, ok := r[field]; ok {
			vec.Add(fe)
		}
	}
	return vec
}

func (r Result) clone() Result {
	out := make(Result, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
