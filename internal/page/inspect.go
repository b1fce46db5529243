package page

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Outline is the structural summary of a rendered page.
type Outline struct {
	Title string
	Lang  string
	// IDs lists element ids in document order.
	IDs []string
	// Controls lists the names of form inputs and textareas in document order.
	Controls []string
	// Invalid lists the names of controls marked aria-invalid.
	Invalid []string
	// FieldErrors maps the id of each inline error to its text.
	FieldErrors map[string]string
	HasToast    bool
}

// Inspect parses an HTML document and extracts its outline.
func Inspect(r io.Reader) (*Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	o := &Outline{FieldErrors: make(map[string]string)}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			o.visit(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return o, nil
}

func (o *Outline) visit(n *html.Node) {
	if id := attr(n, "id"); id != "" {
		o.IDs = append(o.IDs, id)
	}

	switch n.DataAtom {
	case atom.Html:
		o.Lang = attr(n, "lang")
	case atom.Title:
		o.Title = strings.TrimSpace(textContent(n))
	case atom.Input, atom.Textarea, atom.Select:
		if name := attr(n, "name"); name != "" {
			o.Controls = append(o.Controls, name)
			if attr(n, "aria-invalid") == "true" {
				o.Invalid = append(o.Invalid, name)
			}
		}
	case atom.Div:
		if attr(n, "role") == "status" && hasClass(n, "toast") {
			o.HasToast = true
		}
	case atom.P:
		if hasClass(n, "field-error") {
			o.FieldErrors[attr(n, "id")] = strings.TrimSpace(textContent(n))
		}
	}
}

// Missing returns the ids from required that the page does not carry.
func (o *Outline) Missing(required ...string) []string {
	return missing(o.IDs, required)
}

// MissingControls returns the control names from required that the page
// does not carry.
func (o *Outline) MissingControls(required ...string) []string {
	return missing(o.Controls, required)
}

func missing(have, want []string) []string {
	present := make(map[string]struct{}, len(have))
	for _, h := range have {
		present[h] = struct{}{}
	}
	var out []string
	for _, w := range want {
		if _, ok := present[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
