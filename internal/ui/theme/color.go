package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseCSS parses "#rgb", "#rrggbb", "rgb(r, g, b)" and "rgba(r, g, b, a)"
// into a colour and its alpha.
func ParseCSS(s string) (colorful.Color, float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		return c, 1, nil
	}

	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgba("):len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgb("):len(s)-1], 3
	default:
		return colorful.Color{}, 0, fmt.Errorf("invalid colour %q", s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return colorful.Color{}, 0, fmt.Errorf("invalid colour %q: want %d components", s, want)
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		v[i] = f
	}
	for i := 0; i < 3; i++ {
		if v[i] < 0 || v[i] > 255 {
			return colorful.Color{}, 0, fmt.Errorf("invalid colour %q: channel out of range", s)
		}
	}
	if v[3] < 0 || v[3] > 1 {
		return colorful.Color{}, 0, fmt.Errorf("invalid colour %q: alpha out of range", s)
	}
	return colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}, v[3], nil
}

// Flatten composites a translucent CSS colour over bg and returns an opaque
// terminal colour.
func Flatten(css string, bg colorful.Color) (lipgloss.Color, error) {
	c, alpha, err := ParseCSS(css)
	if err != nil {
		return "", err
	}
	return lipgloss.Color(bg.BlendRgb(c, alpha).Clamped().Hex()), nil
}

// Gradient returns n colours blending from -> via -> to in Lab space.
func Gradient(from, via, to colorful.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{lipgloss.Color(from.Hex())}
	}
	out := make([]lipgloss.Color, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		var c colorful.Color
		if t < 0.5 {
			c = from.BlendLab(via, t*2)
		} else {
			c = via.BlendLab(to, (t-0.5)*2)
		}
		out[i] = lipgloss.Color(c.Clamped().Hex())
	}
	return out
}

// categoryColors maps catalog colour names to their 500-weight hex values.
var categoryColors = map[string]string{
	"blue":    "#3b82f6",
	"yellow":  "#eab308",
	"red":     "#ef4444",
	"purple":  "#a855f7",
	"green":   "#22c55e",
	"pink":    "#ec4899",
	"emerald": "#10b981",
	"orange":  "#f97316",
	"sky":     "#0ea5e9",
	"indigo":  "#6366f1",
	"violet":  "#8b5cf6",
	"amber":   "#f59e0b",
	"gray":    "#6b7280",
}

// ColorFor returns the terminal colour for a catalog colour name. Unknown
// names render gray.
func ColorFor(name string) lipgloss.Color {
	if hex, ok := categoryColors[name]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(categoryColors["gray"])
}
