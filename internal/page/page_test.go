package page

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/conneroisu/bizconsult/internal/contact"
	"github.com/conneroisu/bizconsult/internal/content"
)

func render(t *testing.T, p Props) (string, *Outline) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Landing(p).Render(context.Background(), &buf))
	body := buf.String()
	outline, err := Inspect(strings.NewReader(body))
	require.NoError(t, err)
	return body, outline
}

func anchorIDs() []string {
	var ids []string
	for _, a := range content.Anchors() {
		ids = append(ids, string(a))
	}
	return ids
}

func TestLanding_Structure(t *testing.T) {
	body, outline := render(t, Props{})

	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Equal(t, "ru", outline.Lang)
	assert.Equal(t, content.Brand, outline.Title)
	assert.Empty(t, outline.Missing(anchorIDs()...))
	assert.Equal(t, []string{"name", "email", "phone", "message"}, outline.Controls)
	assert.Empty(t, outline.Invalid)
	assert.Empty(t, outline.FieldErrors)
	assert.False(t, outline.HasToast)

	assert.Contains(t, body, `action="/contact#contact"`)
	assert.Contains(t, body, "novalidate")
	assert.Contains(t, body, `type="email"`)
	assert.Contains(t, body, `type="tel"`)
	assert.Contains(t, body, `<textarea rows="4"`)
	assert.NotContains(t, body, ReloadScriptPath)
}

func TestLanding_Content(t *testing.T) {
	body, _ := render(t, Props{})

	for _, s := range content.Services() {
		assert.Contains(t, body, s.Title)
	}
	for _, m := range content.Team() {
		assert.Contains(t, body, m.Name)
	}
	for _, s := range content.Stats() {
		assert.Contains(t, body, s.Value)
	}
	for _, item := range content.NavItems() {
		assert.Contains(t, body, `href="`+item.Anchor.Href()+`"`)
	}
	assert.Contains(t, body, "Пн-Пт: 9:00 - 18:00")
	assert.Contains(t, body, content.FooterCopy().Copyright)
}

func TestLanding_Lang(t *testing.T) {
	_, outline := render(t, Props{Lang: language.MustParse("ru-RU")})
	assert.Equal(t, "ru-RU", outline.Lang)
}

func TestLanding_RejectedSubmission(t *testing.T) {
	form := contact.NewFormFrom(contact.Submission{Name: "Иван", Email: "bad", Phone: "123"})
	outcome := form.Submit()
	require.False(t, outcome.Accepted)

	body, outline := render(t, FromOutcome(form, outcome))

	assert.Equal(t, []string{"email", "phone", "message"}, outline.Invalid)
	assert.Equal(t, "Некорректный email", outline.FieldErrors["email-error"])
	assert.Equal(t, "Некорректный номер", outline.FieldErrors["phone-error"])
	assert.Equal(t, "Введите сообщение", outline.FieldErrors["message-error"])
	assert.NotContains(t, outline.FieldErrors, "name-error")
	assert.False(t, outline.HasToast)

	assert.Contains(t, body, `value="Иван"`)
	assert.Contains(t, body, `value="bad"`)
	assert.Contains(t, body, `class="border-destructive" aria-invalid="true"`)
}

func TestLanding_AcceptedSubmission(t *testing.T) {
	form := contact.NewFormFrom(contact.Submission{
		Name:    "Иван",
		Email:   "ivan@example.com",
		Phone:   "+7 (999) 123-45-67",
		Message: "Нужна консультация",
	})
	outcome := form.Submit()
	require.True(t, outcome.Accepted)

	body, outline := render(t, FromOutcome(form, outcome))

	assert.True(t, outline.HasToast)
	assert.Empty(t, outline.Invalid)
	assert.Contains(t, body, "Заявка отправлена!")
	assert.Contains(t, body, "Мы свяжемся с вами в ближайшее время.")
	assert.NotContains(t, body, "ivan@example.com")
	assert.NotContains(t, body, "Нужна консультация")
}

func TestLanding_EscapesValues(t *testing.T) {
	values := contact.Submission{
		Name:    `"><script>alert(1)</script>`,
		Message: `</textarea><script>alert(2)</script>`,
	}
	body, outline := render(t, Props{Values: values})

	assert.NotContains(t, body, "<script>alert")
	assert.Contains(t, body, "&lt;script&gt;alert(1)")
	assert.Contains(t, body, "&lt;/textarea&gt;")
	assert.Equal(t, []string{"name", "email", "phone", "message"}, outline.Controls)
}

func TestLanding_MessageKeepsLeadingNewline(t *testing.T) {
	for _, message := range []string{"\nline two", "\n\nindented", "plain"} {
		body, _ := render(t, Props{Values: contact.Submission{Message: message}})

		doc, err := html.Parse(strings.NewReader(body))
		require.NoError(t, err)
		assert.Equal(t, message, textareaValue(doc, "message"), "message %q", message)
	}
}

// textareaValue returns the text a browser would show in the named textarea.
func textareaValue(n *html.Node, name string) string {
	if n.Type == html.ElementNode && n.Data == "textarea" {
		for _, a := range n.Attr {
			if a.Key == "name" && a.Val == name {
				var sb strings.Builder
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					sb.WriteString(c.Data)
				}
				return sb.String()
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v := textareaValue(c, name); v != "" {
			return v
		}
	}
	return ""
}

func TestLanding_HotReload(t *testing.T) {
	body, _ := render(t, Props{HotReload: true})
	assert.Contains(t, body, `<script defer src="/reload.js"></script>`)
	assert.Contains(t, ReloadScript, "'reload'")
}

func TestToast(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Toast(contact.SuccessNotification()).Render(context.Background(), &buf))

	outline, err := Inspect(&buf)
	require.NoError(t, err)
	assert.True(t, outline.HasToast)
}

func TestIcon(t *testing.T) {
	for _, s := range content.Services() {
		assert.Contains(t, iconPaths, s.Icon)
	}
	for _, c := range content.ContactCards() {
		assert.Contains(t, iconPaths, c.Icon)
	}
	for _, s := range content.Socials() {
		assert.Contains(t, iconPaths, s.Icon)
	}
	assert.Contains(t, icon("Unknown", 12), `width="12"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestLanding_WriteError(t *testing.T) {
	err := Landing(Props{}).Render(context.Background(), failingWriter{})
	assert.EqualError(t, err, "closed")
}
