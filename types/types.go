package types

import (
	"context"
	"fmt"
	"strings"
)

// Pokemon is one catalog record as returned by the lookup service.
// It is immutable once fetched.
type Pokemon struct {
	id        int
	name      string
	height    int
	weight    int
	types     []string
	spriteURL string
}

// NewPokemon creates a new Pokemon with the given fields
func NewPokemon(id int, name string, height, weight int, types []string, spriteURL string) Pokemon {
	return Pokemon{
		id:        id,
		name:      name,
		height:    height,
		weight:    weight,
		types:     append([]string(nil), types...),
		spriteURL: spriteURL,
	}
}

// Getters for Pokemon fields
func (p Pokemon) ID() int           { return p.id }
func (p Pokemon) Name() string      { return p.name }
func (p Pokemon) Height() int       { return p.height }
func (p Pokemon) Weight() int       { return p.weight }
func (p Pokemon) SpriteURL() string { return p.spriteURL }

// Types returns a copy of the category tags in slot order.
func (p Pokemon) Types() []string { return append([]string(nil), p.types...) }

// HasType reports whether the record carries the given tag.
func (p Pokemon) HasType(tag string) bool {
	for _, t := range p.types {
		if t == tag {
			return true
		}
	}
	return false
}

// DisplayName returns the name with its first letter upper-cased.
func (p Pokemon) DisplayName() string {
	if p.name == "" {
		return ""
	}
	return strings.ToUpper(p.name[:1]) + p.name[1:]
}

// FilterValue is the text matched by free-text filtering.
func (p Pokemon) FilterValue() string { return p.name }

// NotFoundError is returned when the lookup service has no record for an id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pokemon %d not found", e.ID)
}

// TransportError wraps network failures, timeouts and unexpected responses.
type TransportError struct {
	ID  int
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lookup pokemon %d: %v", e.ID, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// PokemonSource is the core abstraction for data access.
// Sync methods only, no bubbletea dependency; the TUI, the CLI and the
// MCP server all call it directly.
type PokemonSource interface {
	GetPokemon(ctx context.Context, id int) (Pokemon, error)
}
