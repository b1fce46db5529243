package page

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/conneroisu/bizconsult/internal/content"
)

func head(p Props) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<head>\n<meta charset=\"UTF-8\">\n")
		w.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		w.raw("<title>")
		w.text(content.Brand)
		w.raw("</title>\n")
		w.raw("<meta name=\"description\"")
		w.attr("content", content.HeroCopy().Lead)
		w.raw(">\n<style>")
		w.raw(styles)
		w.raw("</style>\n</head>\n")
	})
}

func header() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<header class=\"site-header\">\n<nav class=\"container nav\">\n")
		w.element("span", "brand", content.Brand)
		w.raw("<div class=\"nav-links\">\n")
		for _, item := range content.NavItems() {
			w.raw("<a")
			w.attr("href", item.Anchor.Href())
			w.raw(">")
			w.text(item.Label)
			w.raw("</a>\n")
		}
		w.raw("</div>\n<a class=\"btn btn-primary\"")
		w.attr("href", content.AnchorContact.Href())
		w.raw(">")
		w.text(content.ContactButton)
		w.raw("</a>\n</nav>\n</header>\n")
	})
}

func hero() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		hc := content.HeroCopy()
		w.raw("<section")
		w.attr("id", string(content.AnchorHero))
		w.raw(" class=\"hero\">\n<div class=\"container grid-2\">\n<div class=\"fade-in\">\n")
		w.element("h1", "hero-title", hc.Headline)
		w.element("p", "lead", hc.Lead)
		w.raw("<div class=\"actions\">\n<a class=\"btn btn-primary btn-lg\"")
		w.attr("href", content.AnchorServices.Href())
		w.raw(">")
		w.text(hc.PrimaryCTA)
		w.raw(icon("ArrowRight", 20))
		w.raw("</a>\n<a class=\"btn btn-outline btn-lg\"")
		w.attr("href", content.AnchorContact.Href())
		w.raw(">")
		w.text(hc.SecondaryCTA)
		w.raw("</a>\n</div>\n</div>\n<div class=\"scale-in\">\n<img class=\"hero-image\"")
		w.attr("src", hc.ImageURL)
		w.attr("alt", hc.ImageAlt)
		w.raw(">\n</div>\n</div>\n</section>\n")
	})
}

func stats() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<section class=\"stats\">\n<div class=\"container grid-3\">\n")
		for i, s := range content.Stats() {
			w.raw("<div class=\"fade-in\"")
			w.attr("style", delay(i))
			w.raw(">\n")
			w.element("div", "stat-value", s.Value)
			w.element("div", "stat-label", s.Label)
			w.raw("</div>\n")
		}
		w.raw("</div>\n</section>\n")
	})
}

func about() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<section")
		w.attr("id", string(content.AnchorAbout))
		w.raw(">\n<div class=\"container narrow center\">\n")
		w.element("h2", "", content.Sections()[content.AnchorAbout].Title)
		for _, paragraph := range content.About() {
			w.element("p", "muted", paragraph)
		}
		w.raw("</div>\n</section>\n")
	})
}

func services() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<section")
		w.attr("id", string(content.AnchorServices))
		w.raw(" class=\"tinted\">\n<div class=\"container\">\n")
		sectionHeading(w, content.Sections()[content.AnchorServices])
		w.raw("<div class=\"grid-services\">\n")
		for i, s := range content.Services() {
			w.raw("<article class=\"card service scale-in\"")
			w.attr("style", delay(i))
			w.raw(">\n<div class=\"icon-box\">")
			w.raw(icon(s.Icon, 24))
			w.raw("</div>\n")
			w.element("h3", "", s.Title)
			w.element("p", "muted", s.Description)
			w.raw("</article>\n")
		}
		w.raw("</div>\n</div>\n</section>\n")
	})
}

func team() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<section")
		w.attr("id", string(content.AnchorTeam))
		w.raw(">\n<div class=\"container\">\n")
		sectionHeading(w, content.Sections()[content.AnchorTeam])
		w.raw("<div class=\"grid-team\">\n")
		for i, m := range content.Team() {
			w.raw("<div class=\"member scale-in\"")
			w.attr("style", delay(i))
			w.raw(">\n<img class=\"avatar\"")
			w.attr("src", m.Photo)
			w.attr("alt", m.Name)
			w.raw(">\n")
			w.element("h3", "", m.Name)
			w.element("p", "muted", m.Role)
			w.raw("</div>\n")
		}
		w.raw("</div>\n</div>\n</section>\n")
	})
}

func footer() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		fc := content.FooterCopy()
		w.raw("<footer class=\"site-footer\">\n<div class=\"container center\">\n")
		w.element("h3", "brand", content.Brand)
		w.element("p", "tagline", fc.Tagline)
		w.raw("<div class=\"socials\">\n")
		for _, s := range content.Socials() {
			w.raw("<a")
			w.attr("href", s.Href)
			w.attr("aria-label", s.Icon)
			w.raw(">")
			w.raw(icon(s.Icon, 24))
			w.raw("</a>\n")
		}
		w.raw("</div>\n")
		w.element("p", "copyright", fc.Copyright)
		w.raw("</div>\n</footer>\n")
	})
}

func sectionHeading(w *writer, s content.Section) {
	w.raw("<div class=\"section-heading\">\n")
	w.element("h2", "", s.Title)
	if s.Subtitle != "" {
		w.element("p", "muted", s.Subtitle)
	}
	w.raw("</div>\n")
}

// delay staggers the entrance animation of grid items.
func delay(i int) string {
	return fmt.Sprintf("animation-delay: %.1fs", float64(i)*0.1)
}
