// Package theme turns catalog themes and fonts into terminal styles.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/goalboard/internal/catalog"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a catalog theme flattened to opaque terminal colours.
type Palette struct {
	Key  catalog.ThemeColor
	Name string

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color

	// Theme colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Glow      lipgloss.Color

	// Header gradient stops
	GradientFrom colorful.Color
	GradientVia  colorful.Color
	GradientTo   colorful.Color

	// Semantic colors
	Success lipgloss.Color
	Error   lipgloss.Color
}

// NewPalette converts a catalog theme. The glow colour is composited over the
// darkest gradient stop.
func NewPalette(t catalog.Theme) (Palette, error) {
	p := Palette{
		Key:        t.Key,
		Name:       t.Name,
		Foreground: lipgloss.Color("#f8fafc"),
		Subtle:     lipgloss.Color("#64748b"),
		Border:     lipgloss.Color("#334155"),
		Success:    lipgloss.Color("#22c55e"),
		Error:      lipgloss.Color("#ef4444"),
	}

	stops := []struct {
		css string
		dst *colorful.Color
	}{
		{t.GradientFrom, &p.GradientFrom},
		{t.GradientVia, &p.GradientVia},
		{t.GradientTo, &p.GradientTo},
	}
	for _, s := range stops {
		c, _, err := ParseCSS(s.css)
		if err != nil {
			return Palette{}, fmt.Errorf("theme %s: %w", t.Key, err)
		}
		*s.dst = c
	}
	p.Background = lipgloss.Color(p.GradientFrom.Hex())

	fields := []struct {
		css string
		dst *lipgloss.Color
	}{
		{t.Primary, &p.Primary},
		{t.Secondary, &p.Secondary},
		{t.Accent, &p.Accent},
		{t.GlowColor, &p.Glow},
	}
	for _, f := range fields {
		c, err := Flatten(f.css, p.GradientTo)
		if err != nil {
			return Palette{}, fmt.Errorf("theme %s: %w", t.Key, err)
		}
		*f.dst = c
	}
	return p, nil
}

// MustPalette is NewPalette for the built-in themes, whose colours are known
// to parse.
func MustPalette(c catalog.ThemeColor) Palette {
	p, err := NewPalette(catalog.ResolveTheme(c))
	if err != nil {
		panic(err)
	}
	return p
}

// Gradient renders s with its foreground blended across the header gradient.
func (p Palette) Gradient(s string) string {
	runes := []rune(s)
	colors := Gradient(p.GradientFrom, p.GradientVia, p.GradientTo, len(runes))
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Background(colors[i]).Foreground(p.Accent).Bold(true).Render(string(r)))
	}
	return b.String()
}

// FontStyle applies a catalog font's style class as terminal text attributes.
// Terminals cannot switch typefaces, so the class picks weight and slant.
func FontStyle(f catalog.Font, s lipgloss.Style) lipgloss.Style {
	switch f.Style {
	case "font-cal", "font-heading":
		return s.Bold(true)
	case "font-handwriting":
		return s.Italic(true)
	}
	return s
}

// Styles holds pre-computed lipgloss styles based on a palette and font
type Styles struct {
	Palette Palette
	Font    catalog.Font

	// Base styles
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Goal styles
	GoalNormal  lipgloss.Style
	GoalFocused lipgloss.Style
	GoalDone    lipgloss.Style

	// Component styles
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	ProgressFill  lipgloss.Style
	ProgressEmpty lipgloss.Style

	// Input styles
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Placeholder  lipgloss.Style

	// Panel styles
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Dialog        lipgloss.Style

	// Help styles
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	StatusBar lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates styles from a palette and font
func NewStyles(p Palette, f catalog.Font) Styles {
	text := func(s lipgloss.Style) lipgloss.Style { return FontStyle(f, s) }

	return Styles{
		Palette: p,
		Font:    f,

		App: lipgloss.NewStyle().
			Foreground(p.Foreground),

		Header: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Padding(0, 1),

		GoalNormal: text(lipgloss.NewStyle().
			Foreground(p.Foreground).
			Padding(0, 1)),

		GoalFocused: text(lipgloss.NewStyle().
			Foreground(p.Primary).
			Background(p.Glow).
			Bold(true).
			Padding(0, 1)),

		GoalDone: text(lipgloss.NewStyle().
			Foreground(p.Subtle).
			Strikethrough(true).
			Padding(0, 1)),

		Title: text(lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true)),

		Subtitle: text(lipgloss.NewStyle().
			Foreground(p.Secondary).
			Italic(true)),

		Label: lipgloss.NewStyle().
			Foreground(p.Subtle),

		ProgressFill: lipgloss.NewStyle().
			Foreground(p.Primary),

		ProgressEmpty: lipgloss.NewStyle().
			Foreground(p.Border),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(p.Subtle),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		PanelTitle: text(lipgloss.NewStyle().
			Bold(true)),

		Button: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Secondary).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Primary).
			Bold(true).
			Padding(0, 2),

		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Subtle),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Accent).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
	}
}

// For builds styles for a theme and font key.
func For(c catalog.ThemeColor, f catalog.FontFamily) Styles {
	return NewStyles(MustPalette(c), catalog.ResolveFont(f))
}

// Category returns the panel style for a category card: its border takes the
// category colour.
func (s Styles) Category(c catalog.Category) lipgloss.Style {
	return s.Panel.BorderForeground(ColorFor(string(c.Color)))
}

// CategoryTitle returns the title style for a category card.
func (s Styles) CategoryTitle(c catalog.Category) lipgloss.Style {
	return s.PanelTitle.Foreground(ColorFor(string(c.Color)))
}
