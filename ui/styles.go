package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Nicolas-rosa/Pokedex/pokedex"
)

// Styles is the lipgloss projection of a theme palette. Building it twice
// from the same palette yields the same styles.
type Styles struct {
	palette pokedex.Palette

	Title       lipgloss.Style
	Header      lipgloss.Style
	Card        lipgloss.Style
	Name        lipgloss.Style
	ID          lipgloss.Style
	Meta        lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Prompt      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Status      lipgloss.Style
	Spinner     lipgloss.Style
}

func NewStyles(p pokedex.Palette) Styles {
	bg := lipgloss.Color(p.Background)
	fg := lipgloss.Color(p.Foreground)
	accent := lipgloss.Color(p.Accent)
	muted := lipgloss.Color(p.Muted)

	return Styles{
		palette: p,

		Title: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Bold(true).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Name: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		ID: lipgloss.NewStyle().
			Foreground(muted),
		Meta: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Card)),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(accent),
		ActiveTab: lipgloss.NewStyle().
			Foreground(fg).
			Background(accent).
			Bold(true).
			Padding(0, 1),
		InactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(muted),
		Spinner: lipgloss.NewStyle().
			Foreground(accent),
	}
}

// TypeBadge colors a category tag with the palette's type table.
func (s Styles) TypeBadge(tag string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(s.palette.TypeColor(tag))).
		Padding(0, 1)
}
