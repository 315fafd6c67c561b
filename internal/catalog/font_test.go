package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolveFontTotal(t *testing.T) {
	styles := make(map[string]bool)
	for _, f := range FontFamilies() {
		font := ResolveFont(f)
		assert.Equal(t, f, font.Key)
		assert.Equal(t, font, ResolveFont(f))
		assert.False(t, styles[font.Style], "duplicate style %q", font.Style)
		styles[font.Style] = true
	}
	assert.Len(t, Fonts(), 5)
}

func TestResolveFontMono(t *testing.T) {
	f := ResolveFont(FontMono)
	assert.Equal(t, Font{Key: FontMono, Name: "Monospace", Family: "JetBrains Mono", Style: "font-mono"}, f)
}

func TestLookupFontUnknown(t *testing.T) {
	_, err := LookupFont("comic-sans")
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.EqualError(t, err, `unknown font "comic-sans"`)
}

func TestFontFamilyYAML(t *testing.T) {
	var cfg struct {
		Font FontFamily `yaml:"font"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("font: Heading\n"), &cfg))
	assert.Equal(t, FontHeading, cfg.Font)

	err := yaml.Unmarshal([]byte("font: papyrus\n"), &cfg)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestResolveFontPanicsOutsideEnum(t *testing.T) {
	assert.Panics(t, func() { ResolveFont(FontFamily("papyrus")) })
}

func TestFontFamilyNext(t *testing.T) {
	assert.Equal(t, FontCal, FontInter.Next())
	assert.Equal(t, FontInter, FontHandwriting.Next())
}
