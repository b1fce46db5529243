// Package page renders the BizConsult landing page as templ components.
//
// The components are written against templ's runtime API directly: each
// one is a templ.ComponentFunc that streams markup and escapes every piece
// of dynamic text. Landing composes them into the full document.
package page

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/conneroisu/bizconsult/internal/contact"
)

// Props is everything that varies between two renders of the page.
type Props struct {
	// Lang is written to <html lang>. The zero tag renders as Russian.
	Lang language.Tag

	// Values and Errors are the contact form state to render.
	Values contact.Submission
	Errors contact.Result

	// Notification, when set, renders the confirmation toast.
	Notification *contact.Notification

	// HotReload injects the development live-reload client.
	HotReload bool
}

func (p Props) lang() string {
	if p.Lang == language.Und {
		return language.Russian.String()
	}
	return p.Lang.String()
}

// FromOutcome builds props for the page shown after a submit attempt.
func FromOutcome(form *contact.Form, outcome contact.Outcome) Props {
	return Props{
		Values:       form.Values(),
		Errors:       outcome.Errors,
		Notification: outcome.Notification,
	}
}

// Landing renders the whole HTML document.
func Landing(p Props) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<!DOCTYPE html>\n<html")
		w.attr("lang", p.lang())
		w.raw(">\n")
		w.render(ctx, head(p))
		w.raw("<body>\n")
		w.render(ctx, header())
		w.raw("<main>\n")
		w.render(ctx, hero())
		w.render(ctx, stats())
		w.render(ctx, about())
		w.render(ctx, services())
		w.render(ctx, team())
		w.render(ctx, contactSection(p.Values, p.Errors))
		w.raw("</main>\n")
		w.render(ctx, footer())
		if p.Notification != nil {
			w.render(ctx, Toast(*p.Notification))
		}
		if p.HotReload {
			w.raw("<script defer")
			w.attr("src", ReloadScriptPath)
			w.raw("></script>\n")
		}
		w.raw("</body>\n</html>\n")
	})
}

// writer streams markup and keeps the first write error.
type writer struct {
	out io.Writer
	err error
}

func component(fn func(ctx context.Context, w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{out: out}
		fn(ctx, w)
		return w.err
	})
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) attr(name, value string) {
	w.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (w *writer) render(ctx context.Context, c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(ctx, w.out)
}

// element writes <tag class="..."> text </tag> on one line.
func (w *writer) element(tag, class, text string) {
	w.raw("<" + tag)
	if class != "" {
		w.attr("class", class)
	}
	w.raw(">")
	w.text(text)
	w.raw("</" + tag + ">\n")
}
