package contact

import "github.com/conneroisu/bizconsult/internal/errors"

// Inline error copy, keyed by field and failure kind.
var fieldMessages = map[Field]map[errors.FieldErrorKind]string{
	FieldName: {
		errors.KindMissingField: "Введите имя",
	},
	FieldEmail: {
		errors.KindMissingField:  "Введите email",
		errors.KindInvalidFormat: "Некорректный email",
	},
	FieldPhone: {
		errors.KindMissingField:  "Введите телефон",
		errors.KindInvalidFormat: "Некорректный номер",
	},
	FieldMessage: {
		errors.KindMissingField: "Введите сообщение",
	},
}

// Message returns the user-facing copy for a failure of kind on field.
func Message(field Field, kind errors.FieldErrorKind) string {
	return fieldMessages[field][kind]
}

// Notification is the transient acknowledgment shown after an accepted
// submission.
type Notification struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// SuccessNotification returns the fixed confirmation copy.
func SuccessNotification() Notification {
	return Notification{
		Title:       "Заявка отправлена!",
		Description: "Мы свяжемся с вами в ближайшее время.",
	}
}
