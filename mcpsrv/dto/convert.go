package dto

import (
	"maps"

	"github.com/Nicolas-rosa/Pokedex/pokedex"
	"github.com/Nicolas-rosa/Pokedex/types"
)

func FromPokemon(p types.Pokemon) Pokemon {
	tags := p.Types()
	if tags == nil {
		tags = []string{}
	}
	return Pokemon{
		ID:          p.ID(),
		Name:        p.Name(),
		DisplayName: p.DisplayName(),
		Height:      p.Height(),
		Weight:      p.Weight(),
		Types:       tags,
		SpriteURL:   p.SpriteURL(),
	}
}

func FromPokemonList(list []types.Pokemon) []Pokemon {
	out := make([]Pokemon, 0, len(list))
	for _, p := range list {
		out = append(out, FromPokemon(p))
	}
	return out
}

func FromCategoryCounts(counts []pokedex.CategoryCount) []TypeCount {
	out := make([]TypeCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, TypeCount{Name: c.Name, Count: c.Count})
	}
	return out
}

func FromTheme(t pokedex.Theme) Palette {
	p := pokedex.PaletteFor(t)
	return Palette{
		Theme:      t.String(),
		Background: p.Background,
		Foreground: p.Foreground,
		Accent:     p.Accent,
		Card:       p.Card,
		Muted:      p.Muted,
		TypeColors: maps.Clone(p.TypeColors),
	}
}
