package pokedex

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Nicolas-rosa/Pokedex/types"
)

// Suggest returns up to limit records whose names fuzzy-match query, best
// match first. It backs the "did you mean" hint when a filter matches nothing.
func Suggest(c *Catalog, query string, limit int) []types.Pokemon {
	query = strings.ToLower(strings.TrimSpace(query))
	records := c.Records()
	if query == "" || len(records) == 0 || limit <= 0 {
		return nil
	}

	names := make([]string, len(records))
	for i, p := range records {
		names[i] = p.FilterValue()
	}

	matches := fuzzy.Find(query, names)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]types.Pokemon, 0, len(matches))
	for _, m := range matches {
		out = append(out, records[m.Index])
	}
	return out
}
