package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(f *Form, s Submission) {
	for _, field := range Fields() {
		f.Set(field, s.Get(field))
	}
}

func TestForm_SubmitAccepted(t *testing.T) {
	form := NewForm()
	fill(form, validSubmission())

	outcome := form.Submit()

	assert.True(t, outcome.Accepted)
	assert.Empty(t, outcome.Errors)
	require.NotNil(t, outcome.Notification)
	assert.Equal(t, "Заявка отправлена!", outcome.Notification.Title)
	assert.Equal(t, "Мы свяжемся с вами в ближайшее время.", outcome.Notification.Description)

	assert.True(t, form.Values().IsZero())
	assert.Empty(t, form.Errors())
}

func TestForm_SubmitRejectedKeepsValues(t *testing.T) {
	form := NewForm()
	input := validSubmission().With(FieldName, "")
	fill(form, input)

	outcome := form.Submit()

	assert.False(t, outcome.Accepted)
	assert.Nil(t, outcome.Notification)
	assert.Equal(t, map[string]string{"name": "Введите имя"}, outcome.Errors.Messages())
	assert.Equal(t, input, form.Values())
	assert.True(t, form.Errors().Has(FieldName))
}

func TestForm_ResubmitAfterCorrection(t *testing.T) {
	form := NewFormFrom(validSubmission().With(FieldPhone, "12345"))

	first := form.Submit()
	require.False(t, first.Accepted)
	assert.True(t, first.Errors.Has(FieldPhone))

	form.Set(FieldPhone, "1234567890")
	// The stale error set stays until the next submit.
	assert.True(t, form.Errors().Has(FieldPhone))

	second := form.Submit()
	assert.True(t, second.Accepted)
	assert.NotNil(t, second.Notification)
	assert.Empty(t, form.Errors())
}

func TestForm_NotificationOncePerSubmit(t *testing.T) {
	form := NewFormFrom(validSubmission())

	first := form.Submit()
	require.True(t, first.Accepted)

	// The form was reset, so a second submit is rejected and does not notify.
	second := form.Submit()
	assert.False(t, second.Accepted)
	assert.Nil(t, second.Notification)
	assert.Len(t, second.Errors, 4)
}

func TestForm_ErrorsReturnsCopy(t *testing.T) {
	form := NewForm()
	form.Submit()

	errs := form.Errors()
	delete(errs, FieldName)

	assert.True(t, form.Errors().Has(FieldName))
}
