package catalog

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolveCategoryKnownKeys(t *testing.T) {
	for _, want := range currentCategories {
		got := ResolveCategory(want.Key)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ResolveCategory(%q) mismatch (-want +got):\n%s", want.Key, diff)
		}
	}
}

func TestResolveCategoryCareer(t *testing.T) {
	got := ResolveCategory("career")
	assert.Equal(t, "Career & Professional", got.Label)
	assert.Equal(t, IconName("Briefcase"), got.Icon)
	assert.Equal(t, ColorName("blue"), got.Color)
}

func TestResolveCategoryFallsBackToDefault(t *testing.T) {
	for _, key := range []string{"", "does-not-exist", "Career", " career", GeneralKey, UncategorizedKey, "__proto__"} {
		assert.Equal(t, DefaultCategory, ResolveCategory(key), "key %q", key)
	}
}

func TestCategoryTableInvariants(t *testing.T) {
	for _, r := range []*Resolver{NewResolver(SchemaCurrent), NewResolver(SchemaLegacy)} {
		seen := make(map[string]bool)
		for _, c := range r.Categories() {
			require.False(t, seen[c.Key], "duplicate key %q in %s", c.Key, r.Schema())
			seen[c.Key] = true
		}
		assert.False(t, r.Known(r.Default().Key), "default key must not be a table key in %s", r.Schema())
		assert.Equal(t, r.Default(), r.Resolve(r.Default().Key))
	}
}

func TestLegacyResolver(t *testing.T) {
	r := NewResolver(SchemaLegacy)
	assert.Equal(t, SchemaLegacy, r.Schema())

	got := r.Resolve("personal")
	assert.Equal(t, Category{Key: "personal", Label: "Personal", Icon: "User", Color: "green"}, got)

	def := r.Resolve("education")
	assert.Equal(t, "Uncategorized", def.Label)
	assert.Equal(t, IconName("List"), def.Icon)
	assert.Equal(t, ColorName("gray"), def.Color)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 12)
	cats[0].Label = "mutated"
	assert.Equal(t, "Career & Professional", Categories()[0].Label)
	assert.Equal(t, "Career & Professional", ResolveCategory("career").Label)
}

func TestCategoryKeysOrder(t *testing.T) {
	keys := CategoryKeys()
	require.Len(t, keys, 12)
	assert.Equal(t, CategoryCareer, keys[0])
	assert.Equal(t, CategorySkills, keys[len(keys)-1])
}

func TestMigrateCategoryKey(t *testing.T) {
	assert.Equal(t, GeneralKey, MigrateCategoryKey(UncategorizedKey))
	assert.Equal(t, "career", MigrateCategoryKey("career"))
	assert.Equal(t, "whatever", MigrateCategoryKey("whatever"))
}

func TestParseSchema(t *testing.T) {
	s, err := ParseSchema("")
	require.NoError(t, err)
	assert.Equal(t, SchemaCurrent, s)

	s, err = ParseSchema(" Legacy ")
	require.NoError(t, err)
	assert.Equal(t, SchemaLegacy, s)

	_, err = ParseSchema("v3")
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestDescriptorsRoundTrip(t *testing.T) {
	values := []any{DefaultCategory, ResolveCategory("travel"), ResolveTheme(ThemeRose), ResolveFont(FontMono)}

	for _, v := range values {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		got := decodeLike(t, v, data, json.Unmarshal)
		if diff := cmp.Diff(v, got); diff != "" {
			t.Errorf("json round trip mismatch (-want +got):\n%s", diff)
		}

		data, err = yaml.Marshal(v)
		require.NoError(t, err)
		got = decodeLike(t, v, data, yaml.Unmarshal)
		if diff := cmp.Diff(v, got); diff != "" {
			t.Errorf("yaml round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func decodeLike(t *testing.T, like any, data []byte, unmarshal func([]byte, any) error) any {
	t.Helper()
	switch like.(type) {
	case Category:
		var c Category
		require.NoError(t, unmarshal(data, &c))
		return c
	case Theme:
		var th Theme
		require.NoError(t, unmarshal(data, &th))
		return th
	case Font:
		var f Font
		require.NoError(t, unmarshal(data, &f))
		return f
	}
	t.Fatalf("unexpected type %T", like)
	return nil
}
