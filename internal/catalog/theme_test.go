package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveThemePurple(t *testing.T) {
	th := ResolveTheme(ThemePurple)
	assert.Equal(t, "Royal Purple", th.Name)
	assert.Equal(t, "rgb(147, 51, 234)", th.Primary)
	assert.Equal(t, ThemePurple, th.Key)
}

func TestThemesTotalAndDistinct(t *testing.T) {
	names := make(map[string]ThemeColor)
	for _, c := range ThemeColors() {
		first := ResolveTheme(c)
		second := ResolveTheme(c)
		assert.Equal(t, first, second, "resolution of %s must be stable", c)
		assert.Equal(t, c, first.Key)

		prev, dup := names[first.Name]
		assert.False(t, dup, "%s and %s share name %q", prev, c, first.Name)
		names[first.Name] = c
	}
	assert.Len(t, names, 6)
	assert.Len(t, Themes(), 6)
}

func TestParseThemeColor(t *testing.T) {
	c, err := ParseThemeColor(" Rose ")
	require.NoError(t, err)
	assert.Equal(t, ThemeRose, c)

	_, err = ParseThemeColor("teal")
	require.Error(t, err)

	var lookupErr *ConfigLookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, KindTheme, lookupErr.Kind)
	assert.Equal(t, "teal", lookupErr.Key)
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.EqualError(t, err, `unknown theme "teal"`)
}

func TestLookupTheme(t *testing.T) {
	th, err := LookupTheme("green")
	require.NoError(t, err)
	assert.Equal(t, "Forest Green", th.Name)

	_, err = LookupTheme("")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestResolveThemePanicsOutsideEnum(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrUnknownKey)
	}()
	ResolveTheme(ThemeColor("teal"))
}

func TestThemeColorUnmarshalText(t *testing.T) {
	var cfg struct {
		Theme ThemeColor `json:"theme"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"slate"}`), &cfg))
	assert.Equal(t, ThemeSlate, cfg.Theme)

	err := json.Unmarshal([]byte(`{"theme":"neon"}`), &cfg)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestThemeColorNext(t *testing.T) {
	assert.Equal(t, ThemePurple, ThemeBlue.Next())
	assert.Equal(t, ThemeBlue, ThemeSlate.Next())
	assert.Equal(t, ThemeBlue, ThemeColor("bogus").Next())
}
