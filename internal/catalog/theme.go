package catalog

import "strings"

// ThemeColor identifies one of the built-in colour themes.
type ThemeColor string

const (
	ThemeBlue   ThemeColor = "blue"
	ThemePurple ThemeColor = "purple"
	ThemeRose   ThemeColor = "rose"
	ThemeGreen  ThemeColor = "green"
	ThemeOrange ThemeColor = "orange"
	ThemeSlate  ThemeColor = "slate"
)

// Theme is a named colour and gradient palette. Colours are CSS strings.
type Theme struct {
	Key          ThemeColor `json:"key" yaml:"key"`
	Name         string     `json:"name" yaml:"name"`
	Primary      string     `json:"primary" yaml:"primary"`
	Secondary    string     `json:"secondary" yaml:"secondary"`
	Accent       string     `json:"accent" yaml:"accent"`
	GradientFrom string     `json:"gradientFrom" yaml:"gradientFrom"`
	GradientVia  string     `json:"gradientVia" yaml:"gradientVia"`
	GradientTo   string     `json:"gradientTo" yaml:"gradientTo"`
	GlowColor    string     `json:"glowColor" yaml:"glowColor"`
}

var themeOrder = [...]ThemeColor{ThemeBlue, ThemePurple, ThemeRose, ThemeGreen, ThemeOrange, ThemeSlate}

var themes = map[ThemeColor]Theme{
	ThemeBlue: {
		Key:          ThemeBlue,
		Name:         "Ocean Blue",
		Primary:      "rgb(59, 130, 246)",
		Secondary:    "rgb(37, 99, 235)",
		Accent:       "rgb(147, 197, 253)",
		GradientFrom: "#111827",
		GradientVia:  "#0f172a",
		GradientTo:   "#020617",
		GlowColor:    "rgba(120,119,198,0.3)",
	},
	ThemePurple: {
		Key:          ThemePurple,
		Name:         "Royal Purple",
		Primary:      "rgb(147, 51, 234)",
		Secondary:    "rgb(126, 34, 206)",
		Accent:       "rgb(216, 180, 254)",
		GradientFrom: "#1a1033",
		GradientVia:  "#0f0620",
		GradientTo:   "#020205",
		GlowColor:    "rgba(168,85,247,0.3)",
	},
	ThemeRose: {
		Key:          ThemeRose,
		Name:         "Rose Gold",
		Primary:      "rgb(244, 63, 94)",
		Secondary:    "rgb(225, 29, 72)",
		Accent:       "rgb(251, 207, 232)",
		GradientFrom: "#1c1917",
		GradientVia:  "#0c0a09",
		GradientTo:   "#000000",
		GlowColor:    "rgba(244,63,94,0.2)",
	},
	ThemeGreen: {
		Key:          ThemeGreen,
		Name:         "Forest Green",
		Primary:      "rgb(34, 197, 94)",
		Secondary:    "rgb(22, 163, 74)",
		Accent:       "rgb(187, 247, 208)",
		GradientFrom: "#14261c",
		GradientVia:  "#0c1912",
		GradientTo:   "#020604",
		GlowColor:    "rgba(34,197,94,0.2)",
	},
	ThemeOrange: {
		Key:          ThemeOrange,
		Name:         "Sunset Orange",
		Primary:      "rgb(249, 115, 22)",
		Secondary:    "rgb(234, 88, 12)",
		Accent:       "rgb(254, 215, 170)",
		GradientFrom: "#27150b",
		GradientVia:  "#1c0f08",
		GradientTo:   "#000000",
		GlowColor:    "rgba(249,115,22,0.2)",
	},
	ThemeSlate: {
		Key:          ThemeSlate,
		Name:         "Minimal Slate",
		Primary:      "rgb(148, 163, 184)",
		Secondary:    "rgb(100, 116, 139)",
		Accent:       "rgb(226, 232, 240)",
		GradientFrom: "#0f172a",
		GradientVia:  "#020617",
		GradientTo:   "#000000",
		GlowColor:    "rgba(148,163,184,0.2)",
	},
}

// DefaultThemeColor is used when no theme is configured.
const DefaultThemeColor = ThemeBlue

// Valid reports whether c is one of the built-in themes.
func (c ThemeColor) Valid() bool {
	_, ok := themes[c]
	return ok
}

func (c ThemeColor) String() string {
	return string(c)
}

// UnmarshalText rejects keys outside the enumeration.
func (c *ThemeColor) UnmarshalText(text []byte) error {
	parsed, err := ParseThemeColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Next returns the theme after c in display order, wrapping around.
func (c ThemeColor) Next() ThemeColor {
	for i, t := range themeOrder {
		if t == c {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ParseThemeColor parses a theme key. Matching ignores case and surrounding
// whitespace.
func ParseThemeColor(s string) (ThemeColor, error) {
	c := ThemeColor(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", lookupError(KindTheme, s)
	}
	return c, nil
}

// ResolveTheme returns the descriptor for c. Passing a value that is not one of
// the ThemeColor constants is a programming error and panics with a
// *ConfigLookupError; parse untrusted input with ParseThemeColor first.
func ResolveTheme(c ThemeColor) Theme {
	t, ok := themes[c]
	if !ok {
		panic(lookupError(KindTheme, string(c)))
	}
	return t
}

// LookupTheme parses s and resolves it.
func LookupTheme(s string) (Theme, error) {
	c, err := ParseThemeColor(s)
	if err != nil {
		return Theme{}, err
	}
	return themes[c], nil
}

// ThemeColors returns every theme key in display order.
func ThemeColors() []ThemeColor {
	return append([]ThemeColor(nil), themeOrder[:]...)
}

// Themes returns every theme descriptor in display order.
func Themes() []Theme {
	out := make([]Theme, 0, len(themeOrder))
	for _, c := range themeOrder {
		out = append(out, themes[c])
	}
	return out
}
