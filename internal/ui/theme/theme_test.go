package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/goalboard/internal/catalog"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	tests := []struct {
		in    string
		hex   string
		alpha float64
	}{
		{"#111827", "#111827", 1},
		{"#fff", "#ffffff", 1},
		{"rgb(147, 51, 234)", "#9333ea", 1},
		{"rgba(120,119,198,0.3)", "#7877c6", 0.3},
	}
	for _, tt := range tests {
		c, a, err := ParseCSS(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.hex, c.Hex(), tt.in)
		assert.InDelta(t, tt.alpha, a, 1e-9, tt.in)
	}

	for _, bad := range []string{"", "blue", "rgb(1,2)", "rgb(1,2,300)", "rgba(1,2,3,2)", "#zzzzzz", "rgb(a,b,c)"} {
		_, _, err := ParseCSS(bad)
		assert.Error(t, err, bad)
	}
}

func TestFlatten(t *testing.T) {
	black := colorful.Color{}
	c, err := Flatten("rgba(255,255,255,0.5)", black)
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#808080"), c)

	c, err = Flatten("rgb(59, 130, 246)", black)
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#3b82f6"), c)
}

func TestGradientEndpoints(t *testing.T) {
	from, _, _ := ParseCSS("#000000")
	via, _, _ := ParseCSS("#808080")
	to, _, _ := ParseCSS("#ffffff")

	g := Gradient(from, via, to, 5)
	require.Len(t, g, 5)
	assert.Equal(t, lipgloss.Color("#000000"), g[0])
	assert.Equal(t, lipgloss.Color("#808080"), g[2])
	assert.Equal(t, lipgloss.Color("#ffffff"), g[4])

	assert.Nil(t, Gradient(from, via, to, 0))
	assert.Len(t, Gradient(from, via, to, 1), 1)
}

func TestEveryBuiltInThemeBuildsAPalette(t *testing.T) {
	for _, th := range catalog.Themes() {
		p, err := NewPalette(th)
		require.NoError(t, err, th.Key)
		assert.Equal(t, th.Name, p.Name)
		assert.Equal(t, lipgloss.Color(th.GradientFrom), p.Background)
	}
}

func TestPurplePalette(t *testing.T) {
	p := MustPalette(catalog.ThemePurple)
	assert.Equal(t, lipgloss.Color("#9333ea"), p.Primary)
	assert.Equal(t, "Royal Purple", p.Name)
}

func TestNewPaletteRejectsBadColour(t *testing.T) {
	th := catalog.ResolveTheme(catalog.ThemeBlue)
	th.Primary = "not-a-colour"
	_, err := NewPalette(th)
	assert.ErrorContains(t, err, "theme blue")
}

func TestFontStyle(t *testing.T) {
	base := lipgloss.NewStyle()
	assert.True(t, FontStyle(catalog.ResolveFont(catalog.FontHeading), base).GetBold())
	assert.True(t, FontStyle(catalog.ResolveFont(catalog.FontHandwriting), base).GetItalic())
	mono := FontStyle(catalog.ResolveFont(catalog.FontMono), base)
	assert.False(t, mono.GetBold())
	assert.False(t, mono.GetItalic())
}

func TestCategoryStyles(t *testing.T) {
	s := For(catalog.ThemeSlate, catalog.FontInter)
	career := catalog.ResolveCategory("career")
	assert.Equal(t, lipgloss.Color("#3b82f6"), s.CategoryTitle(career).GetForeground())
	assert.Equal(t, lipgloss.Color("#6b7280"), ColorFor("chartreuse"))
	assert.Equal(t, ColorFor("gray"), s.CategoryTitle(catalog.DefaultCategory).GetForeground())
}
