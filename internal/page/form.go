package page

import (
	"context"

	"github.com/a-h/templ"

	"github.com/conneroisu/bizconsult/internal/contact"
	"github.com/conneroisu/bizconsult/internal/content"
)

// FormAction is where the contact form posts back to. The fragment brings
// the browser back to the form after the round trip.
const FormAction = "/contact#contact"

type control struct {
	field contact.Field
	label string
	kind  string // input type; "" renders a textarea
}

func controls(fc content.FormCopy) []control {
	return []control{
		{field: contact.FieldName, label: fc.NameLabel, kind: "text"},
		{field: contact.FieldEmail, label: fc.EmailLabel, kind: "email"},
		{field: contact.FieldPhone, label: fc.PhoneLabel, kind: "tel"},
		{field: contact.FieldMessage, label: fc.MessageLabel},
	}
}

func contactSection(values contact.Submission, errs contact.Result) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<section")
		w.attr("id", string(content.AnchorContact))
		w.raw(" class=\"tinted\">\n<div class=\"container medium\">\n")
		sectionHeading(w, content.Sections()[content.AnchorContact])
		w.raw("<div class=\"grid-2\">\n<div class=\"card fade-in\">\n")
		w.render(ctx, ContactForm(values, errs))
		w.raw("</div>\n<div class=\"cards fade-in\" style=\"animation-delay: 0.2s\">\n")
		for _, card := range content.ContactCards() {
			w.raw("<div class=\"card info\">\n<h3 class=\"card-title\">")
			w.raw(icon(card.Icon, 24))
			w.text(card.Title)
			w.raw("</h3>\n")
			for _, line := range card.Lines {
				w.element("p", "muted", line)
			}
			w.raw("</div>\n")
		}
		w.raw("</div>\n</div>\n</div>\n</section>\n")
	})
}

// ContactForm renders the four-field form with the given values. Fields
// present in errs are marked invalid and followed by their inline message.
func ContactForm(values contact.Submission, errs contact.Result) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		fc := content.ContactForm()
		w.element("h3", "card-title", fc.Title)
		w.raw("<form method=\"post\" class=\"contact-form\" novalidate")
		w.attr("action", FormAction)
		w.raw(">\n")
		for _, c := range controls(fc) {
			name := c.field.String()
			invalid := errs.Has(c.field)

			w.raw("<div class=\"field\">\n<label")
			w.attr("for", name)
			w.raw(">")
			w.text(c.label)
			w.raw("</label>\n")

			if c.kind == "" {
				w.raw("<textarea rows=\"4\"")
			} else {
				w.raw("<input")
				w.attr("type", c.kind)
			}
			w.attr("id", name)
			w.attr("name", name)
			if invalid {
				w.raw(" class=\"border-destructive\" aria-invalid=\"true\"")
				w.attr("aria-describedby", name+"-error")
			}
			if c.kind == "" {
				// The parser drops one newline after the start tag.
				w.raw(">\n")
				w.text(values.Get(c.field))
				w.raw("</textarea>\n")
			} else {
				w.attr("value", values.Get(c.field))
				w.raw(">\n")
			}

			if invalid {
				w.raw("<p class=\"field-error\"")
				w.attr("id", name+"-error")
				w.raw(">")
				w.text(errs.Message(c.field))
				w.raw("</p>\n")
			}
			w.raw("</div>\n")
		}
		w.raw("<button type=\"submit\" class=\"btn btn-primary btn-lg btn-block\">")
		w.text(fc.Submit)
		w.raw(icon("Send", 18))
		w.raw("</button>\n</form>\n")
	})
}

// Toast renders the transient confirmation. It hides itself through a CSS
// animation, so it needs no script.
func Toast(n contact.Notification) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<div role=\"status\" aria-live=\"polite\" class=\"toast\">\n")
		w.element("p", "toast-title", n.Title)
		w.element("p", "toast-description", n.Description)
		w.raw("</div>\n")
	})
}
