// Package contact implements the landing page contact form: the four-field
// submission snapshot, its validator and the per-session form record that
// applies the submit flow (keep values on failure, reset on success).
//
// Nothing in this package retains, queues or transmits a submission. A
// Form lives exactly as long as the interaction that owns it.
package contact

// Field names a contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// Fields returns every form field in display order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone, FieldMessage}
}

// ParseField resolves a field by its wire name.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields() {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// String returns the wire name of the field.
func (f Field) String() string {
	return string(f)
}

// Submission is an immutable snapshot of the form's current values.
type Submission struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
	Message string `json:"message" yaml:"message"`
}

// Get returns the current value of field. Unknown fields read as "".
func (s Submission) Get(field Field) string {
	switch field {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldMessage:
		return s.Message
	default:
		return ""
	}
}

// With returns a copy of s with field replaced by value.
func (s Submission) With(field Field, value string) Submission {
	switch field {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldMessage:
		s.Message = value
	}
	return s
}

// IsZero reports whether every field is empty.
func (s Submission) IsZero() bool {
	return s == Submission{}
}
