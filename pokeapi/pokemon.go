package pokeapi

import (
	"errors"
	"io"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/Nicolas-rosa/Pokedex/types"
)

// apiPokemon mirrors the subset of /pokemon/{id} the catalog needs.
type apiPokemon struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

// ParsePokemon decodes a PokeAPI pokemon document. Types are returned in slot order.
func ParsePokemon(reader io.Reader) (types.Pokemon, error) {
	var raw apiPokemon
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return types.Pokemon{}, err
	}
	if raw.ID <= 0 || strings.TrimSpace(raw.Name) == "" {
		return types.Pokemon{}, errors.New("pokemon document missing id or name")
	}

	slots := raw.Types
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	tags := make([]string, 0, len(slots))
	for _, s := range slots {
		name := strings.TrimSpace(s.Type.Name)
		if name != "" {
			tags = append(tags, name)
		}
	}

	return types.NewPokemon(
		raw.ID,
		strings.TrimSpace(raw.Name),
		raw.Height,
		raw.Weight,
		tags,
		raw.Sprites.FrontDefault,
	), nil
}
