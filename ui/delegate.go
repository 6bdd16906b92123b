package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Nicolas-rosa/Pokedex/types"
)

// cardHeight is the number of terminal lines a rendered card occupies
// (two content lines plus the top and bottom border).
const cardHeight = 4

// renderCard renders a single pokemon as a bordered two-line card.
func renderCard(s Styles, p types.Pokemon, width int) string {
	// Account for the border and horizontal padding of the card style.
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	// Line 1: #ID + Name
	idStr := fmt.Sprintf("#%03d ", p.ID())
	name := truncate.StringWithTail(p.DisplayName(), uint(max(inner-len(idStr), 1)), "…")
	line1 := s.ID.Render(idStr) + s.Name.Render(name)

	// Line 2: height, weight, then type badges
	meta := fmt.Sprintf("Height: %d  Weight: %d  ", p.Height(), p.Weight())
	badges := make([]string, 0, len(p.Types()))
	for _, tag := range p.Types() {
		badges = append(badges, s.TypeBadge(tag).Render(tag))
	}
	line2 := s.Meta.Render(meta) + strings.Join(badges, " ")
	if lipgloss.Width(line2) > inner {
		line2 = truncate.StringWithTail(line2, uint(inner), "…")
	}

	return s.Card.Width(inner + 2).Render(line1 + "\n" + line2)
}

// renderCards stacks the cards of one page.
func renderCards(s Styles, items []types.Pokemon, width int) string {
	cards := make([]string, 0, len(items))
	for _, p := range items {
		cards = append(cards, renderCard(s, p, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
