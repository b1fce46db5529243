package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSizes(t *testing.T) {
	assert.Len(t, NavItems(), 5)
	assert.Len(t, Stats(), 3)
	assert.Len(t, Services(), 6)
	assert.Len(t, Team(), 4)
	assert.Len(t, ContactCards(), 4)
	assert.Len(t, Socials(), 4)
	assert.Len(t, About(), 2)
}

func TestNavItemsCoverAnchors(t *testing.T) {
	items := NavItems()
	require.Len(t, items, len(Anchors()))

	for i, anchor := range Anchors() {
		assert.Equal(t, anchor, items[i].Anchor)
		assert.NotEmpty(t, items[i].Label)
	}
	assert.Equal(t, "#contact", AnchorContact.Href())
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Services()
	s[0].Title = "changed"
	assert.Equal(t, "Бизнес-консалтинг", Services()[0].Title)

	tm := Team()
	tm[0] = Member{}
	assert.Equal(t, "Алексей Петров", Team()[0].Name)

	cards := ContactCards()
	cards[3].Lines[0] = "changed"
	assert.Equal(t, "Пн-Пт: 9:00 - 18:00", ContactCards()[3].Lines[0])
}

func TestSectionsHaveTitles(t *testing.T) {
	sections := Sections()
	for _, anchor := range []Anchor{AnchorAbout, AnchorServices, AnchorTeam, AnchorContact} {
		assert.NotEmpty(t, sections[anchor].Title, anchor)
	}
}

func TestServicesHaveIcons(t *testing.T) {
	for _, s := range Services() {
		assert.NotEmpty(t, s.Icon, s.Title)
		assert.NotEmpty(t, s.Description, s.Title)
	}
}
