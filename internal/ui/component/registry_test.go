package component

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/goalboard/internal/catalog"
	"github.com/dori/goalboard/internal/ui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDefaults(t *testing.T) {
	r := Default()
	assert.Len(t, r.Names(), 19)
	for _, name := range []string{Card, CardTitle, Button, Textarea, SelectItem, RadioGroupItem, DialogDescription} {
		assert.True(t, r.Has(name), name)
	}

	err := RegisterDefaults(r)
	assert.ErrorIs(t, err, ErrDuplicateComponent)
}

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register("", func(theme.Styles) lipgloss.Style { return lipgloss.NewStyle() }))
	assert.Error(t, r.Register("X", nil))
	assert.Empty(t, r.Names())
}

func TestRenderUsesActiveStyles(t *testing.T) {
	r := Default()
	s := theme.For(catalog.ThemeRose, catalog.FontHeading)

	st, err := r.Style(Button, s)
	require.NoError(t, err)
	assert.Equal(t, s.Palette.Secondary, st.GetBackground())

	title, err := r.Style(CardTitle, s)
	require.NoError(t, err)
	assert.True(t, title.GetBold())

	out, err := r.Render(Card, s, "hello")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "hello"))

	_, err = r.Render("Tooltip", s, "x")
	assert.ErrorIs(t, err, ErrUnknownComponent)
}
