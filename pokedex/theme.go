package pokedex

import (
	"fmt"
	"strings"
)

// Theme names one palette of the closed, ordered theme set.
type Theme int

const (
	ThemeDefault Theme = iota
	ThemeDark
	ThemeOcean
	ThemeForest
	ThemeVolcano
)

// ThemeOrder is the cycle order; the first entry is the starting theme.
var ThemeOrder = []Theme{ThemeDefault, ThemeDark, ThemeOcean, ThemeForest, ThemeVolcano}

func (t Theme) String() string {
	switch t {
	case ThemeDefault:
		return "default"
	case ThemeDark:
		return "dark"
	case ThemeOcean:
		return "ocean"
	case ThemeForest:
		return "forest"
	case ThemeVolcano:
		return "volcano"
	default:
		return "unknown"
	}
}

// ParseTheme resolves a theme by name. An empty name yields the default.
func ParseTheme(raw string) (Theme, error) {
	v := strings.TrimSpace(strings.ToLower(raw))
	if v == "" {
		return ThemeDefault, nil
	}
	for _, t := range ThemeOrder {
		if t.String() == v {
			return t, nil
		}
	}
	return ThemeDefault, fmt.Errorf("invalid theme %q; expected one of %s", raw, strings.Join(ThemeNames(), "|"))
}

func ThemeNames() []string {
	out := make([]string, 0, len(ThemeOrder))
	for _, t := range ThemeOrder {
		out = append(out, t.String())
	}
	return out
}

// Advance returns the theme after t, wrapping from the last to the first.
func Advance(t Theme) Theme {
	for i, cur := range ThemeOrder {
		if cur == t {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}

// Palette holds the presentation values of a theme as hex colors.
type Palette struct {
	Background string
	Foreground string
	Accent     string
	Card       string
	Muted      string
	TypeColors map[string]string
}

// TypeColor returns the color for tag, or Muted for tags outside the table.
func (p Palette) TypeColor(tag string) string {
	if c, ok := p.TypeColors[tag]; ok {
		return c
	}
	return p.Muted
}

var classicTypeColors = map[string]string{
	"grass":    "#78C850",
	"fire":     "#F08030",
	"water":    "#6890F0",
	"poison":   "#4A00F8",
	"bug":      "#FAD327",
	"ghost":    "#CC00FF",
	"flying":   "#009DA8",
	"ground":   "#8D5000",
	"rock":     "#616161",
	"normal":   "#616161",
	"ice":      "#00F7FF",
	"psychic":  "#001AFF",
	"electric": "#FFFC47",
	"fighting": "#FFA500",
	"fairy":    "#EE99AC",
	"dragon":   "#7038F8",
	"steel":    "#B8B8D0",
	"dark":     "#705848",
}

var darkTypeColors = map[string]string{
	"grass":    "#50FA7B",
	"fire":     "#FFB86C",
	"water":    "#8BE9FD",
	"poison":   "#BD93F9",
	"bug":      "#F1FA8C",
	"ghost":    "#FF79C6",
	"flying":   "#6699FF",
	"ground":   "#B06800",
	"rock":     "#6272A4",
	"normal":   "#BFBFBF",
	"ice":      "#00CED1",
	"psychic":  "#FF5555",
	"electric": "#F1FA8C",
	"fighting": "#FFB86C",
	"fairy":    "#FF79C6",
	"dragon":   "#BD93F9",
	"steel":    "#BFBFBF",
	"dark":     "#44475A",
}

var palettes = map[Theme]Palette{
	ThemeDefault: {
		Background: "#4C00FF",
		Foreground: "#FFFFFF",
		Accent:     "#FF0000",
		Card:       "#F9F9F9",
		Muted:      "#DDDDDD",
		TypeColors: classicTypeColors,
	},
	ThemeDark: {
		Background: "#282A36",
		Foreground: "#F8F8F2",
		Accent:     "#BD93F9",
		Card:       "#44475A",
		Muted:      "#6272A4",
		TypeColors: darkTypeColors,
	},
	ThemeOcean: {
		Background: "#1DF4FD",
		Foreground: "#0B1F3A",
		Accent:     "#6045FC",
		Card:       "#E6F7FF",
		Muted:      "#5B7A99",
		TypeColors: classicTypeColors,
	},
	ThemeForest: {
		Background: "#1B3B2F",
		Foreground: "#E8F5E9",
		Accent:     "#78C850",
		Card:       "#2E5E4E",
		Muted:      "#8FBC8F",
		TypeColors: classicTypeColors,
	},
	ThemeVolcano: {
		Background: "#2B0A0A",
		Foreground: "#FFE8D6",
		Accent:     "#F08030",
		Card:       "#5A1A1A",
		Muted:      "#B0714F",
		TypeColors: classicTypeColors,
	},
}

// PaletteFor looks up the presentation values of t.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeDefault]
}
