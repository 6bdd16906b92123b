package pokedex

import (
	"strings"

	"github.com/Nicolas-rosa/Pokedex/types"
)

const (
	// CategoryNone selects every record.
	CategoryNone = ""
	// DefaultPerPage is the page size used when ViewState.PerPage is unset.
	DefaultPerPage = 10
)

// ViewState is the per-session selection that drives the visible subset.
// It is a plain value: transitions return a new state.
type ViewState struct {
	Filter   string `json:"filter" yaml:"filter"`
	Category string `json:"category" yaml:"category"`
	Page     int    `json:"page" yaml:"page"`
	PerPage  int    `json:"per_page" yaml:"per_page"`
}

func DefaultViewState() ViewState {
	return ViewState{Filter: "", Category: CategoryNone, Page: 1, PerPage: DefaultPerPage}
}

// View is the derived, visible page.
type View struct {
	Items      []types.Pokemon
	Total      int
	Page       int
	TotalPages int
}

// Empty reports whether the derived subset has no records at all.
func (v View) Empty() bool { return v.Total == 0 }

func (s ViewState) perPage() int {
	if s.PerPage <= 0 {
		return DefaultPerPage
	}
	return s.PerPage
}

// TotalPages returns max(1, ceil(total/perPage)).
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// ClampPage bounds page to [1, TotalPages(total, perPage)].
func ClampPage(page, total, perPage int) int {
	last := TotalPages(total, perPage)
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}

// Matches returns the filtered subset before pagination.
//
// Free-text filtering only applies when no category is selected; a category
// view ignores the filter text.
func Matches(c *Catalog, s ViewState) []types.Pokemon {
	if s.Category != CategoryNone {
		members, err := c.Category(s.Category)
		if err != nil {
			return nil
		}
		return members
	}

	all := c.Records()
	needle := strings.ToLower(strings.TrimSpace(s.Filter))
	if needle == "" {
		return all
	}
	out := make([]types.Pokemon, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Derive computes the visible page for s. It does not clamp s.Page: a page
// past the end yields an empty window.
func Derive(c *Catalog, s ViewState) View {
	matched := Matches(c, s)
	per := s.perPage()
	v := View{
		Total:      len(matched),
		Page:       s.Page,
		TotalPages: TotalPages(len(matched), per),
	}

	if s.Page < 1 {
		return v
	}
	offset := (s.Page - 1) * per
	if offset >= len(matched) {
		return v
	}
	end := offset + per
	if end > len(matched) {
		end = len(matched)
	}
	v.Items = matched[offset:end]
	return v
}

func (s ViewState) clamped(c *Catalog) ViewState {
	s.PerPage = s.perPage()
	s.Page = ClampPage(s.Page, len(Matches(c, s)), s.PerPage)
	return s
}

// WithFilter sets the filter text and clamps the page to the new view.
func (s ViewState) WithFilter(c *Catalog, text string) ViewState {
	s.Filter = text
	return s.clamped(c)
}

// WithCategory selects tag (CategoryNone for all) and clamps the page.
func (s ViewState) WithCategory(c *Catalog, tag string) ViewState {
	s.Category = tag
	return s.clamped(c)
}

func (s ViewState) WithPage(c *Catalog, page int) ViewState {
	s.Page = page
	return s.clamped(c)
}

func (s ViewState) NextPage(c *Catalog) ViewState { return s.WithPage(c, s.Page+1) }
func (s ViewState) PrevPage(c *Catalog) ViewState { return s.WithPage(c, s.Page-1) }

// CycleCategory moves the selection through none, then each tag of the
// index, by delta steps with wrap-around.
func (s ViewState) CycleCategory(c *Catalog, delta int) ViewState {
	options := append([]string{CategoryNone}, c.Categories()...)
	cur := 0
	for i, tag := range options {
		if tag == s.Category {
			cur = i
			break
		}
	}
	n := len(options)
	next := ((cur+delta)%n + n) % n
	return s.WithCategory(c, options[next])
}
