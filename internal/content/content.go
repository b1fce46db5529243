// Package content holds the landing page copy. Every table is fixed at
// build time and exposed through accessors that return copies, so callers
// can never mutate what is rendered.
package content

// Brand is the company name shown in the header and footer.
const Brand = "BizConsult"

// Anchor identifies a page section that navigation links scroll to.
type Anchor string

const (
	AnchorHero     Anchor = "hero"
	AnchorAbout    Anchor = "about"
	AnchorServices Anchor = "services"
	AnchorTeam     Anchor = "team"
	AnchorContact  Anchor = "contact"
)

// Anchors returns every section anchor in page order.
func Anchors() []Anchor {
	return []Anchor{AnchorHero, AnchorAbout, AnchorServices, AnchorTeam, AnchorContact}
}

// Href returns the in-page link to the anchor.
func (a Anchor) Href() string {
	return "#" + string(a)
}

// NavItem is a header navigation link.
type NavItem struct {
	Anchor Anchor `json:"anchor" yaml:"anchor"`
	Label  string `json:"label" yaml:"label"`
}

// Stat is a headline figure in the statistics band.
type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Service is one card of the services grid.
type Service struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Member is one person of the team roster.
type Member struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Photo string `json:"photo" yaml:"photo"`
}

// ContactCard is one card next to the contact form.
type ContactCard struct {
	Icon  string   `json:"icon" yaml:"icon"`
	Title string   `json:"title" yaml:"title"`
	Lines []string `json:"lines" yaml:"lines"`
}

// Social is a footer social network link.
type Social struct {
	Icon string `json:"icon" yaml:"icon"`
	Href string `json:"href" yaml:"href"`
}

// Hero is the copy of the first screen.
type Hero struct {
	Headline     string
	Lead         string
	PrimaryCTA   string
	SecondaryCTA string
	ImageURL     string
	ImageAlt     string
}

// Section is a heading with an optional subtitle.
type Section struct {
	Title    string
	Subtitle string
}

// FormCopy is the fixed text around the contact form.
type FormCopy struct {
	Title        string
	NameLabel    string
	EmailLabel   string
	PhoneLabel   string
	MessageLabel string
	Submit       string
}

// Footer is the closing band of the page.
type Footer struct {
	Tagline   string
	Copyright string
}
