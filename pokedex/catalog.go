package pokedex

import (
	"errors"

	"github.com/Nicolas-rosa/Pokedex/types"
)

// ErrEmptyCategory is returned for a tag with no members in the index.
var ErrEmptyCategory = errors.New("category has no members")

// Catalog pairs a RecordSet with the category index derived from it.
// Both are fixed at construction, so the index cannot go stale.
type Catalog struct {
	records    RecordSet
	index      map[string][]types.Pokemon
	categories []string
	byID       map[int]int
}

// NewCatalog builds the category index for records. Tags are kept in the
// order they first appear; members of each tag keep record order.
func NewCatalog(records RecordSet) *Catalog {
	c := &Catalog{
		records: append(RecordSet(nil), records...),
		index:   make(map[string][]types.Pokemon),
		byID:    make(map[int]int, len(records)),
	}
	for i, p := range c.records {
		c.byID[p.ID()] = i
		for _, tag := range p.Types() {
			if _, ok := c.index[tag]; !ok {
				c.categories = append(c.categories, tag)
			}
			c.index[tag] = append(c.index[tag], p)
		}
	}
	return c
}

// Records returns the full record set.
func (c *Catalog) Records() RecordSet {
	if c == nil {
		return nil
	}
	return c.records
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Categories returns the index keys in first-appearance order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.categories...)
}

// Category returns the records carrying tag.
func (c *Catalog) Category(tag string) ([]types.Pokemon, error) {
	if c == nil {
		return nil, ErrEmptyCategory
	}
	members := c.index[tag]
	if len(members) == 0 {
		return nil, ErrEmptyCategory
	}
	return members, nil
}

// CategoryCount is a tag with its number of members.
type CategoryCount struct {
	Name  string
	Count int
}

func (c *Catalog) CategoryCounts() []CategoryCount {
	if c == nil {
		return nil
	}
	out := make([]CategoryCount, 0, len(c.categories))
	for _, tag := range c.categories {
		out = append(out, CategoryCount{Name: tag, Count: len(c.index[tag])})
	}
	return out
}

// ByID looks a record up by identifier.
func (c *Catalog) ByID(id int) (types.Pokemon, bool) {
	if c == nil {
		return types.Pokemon{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return types.Pokemon{}, false
	}
	return c.records[i], true
}
