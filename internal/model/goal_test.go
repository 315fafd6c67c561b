package model

import (
	"encoding/json"
	"testing"

	"github.com/dori/goalboard/internal/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewGoal(t *testing.T) {
	g := NewGoal("  Run a marathon ", "health")

	_, err := uuid.Parse(g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run a marathon", g.Text)
	assert.Equal(t, "health", g.Category)
	assert.False(t, g.Completed)
	assert.Nil(t, g.Progress)
	assert.NotEqual(t, g.ID, NewGoal("x", "").ID)
}

func TestGoalValidate(t *testing.T) {
	assert.ErrorIs(t, Goal{Text: "   "}.Validate(), ErrEmptyText)
	assert.NoError(t, Goal{Text: "Read"}.Validate())

	g := Goal{Text: "Read", Progress: &Progress{Current: 1, Total: 0}}
	assert.ErrorIs(t, g.Validate(), ErrInvalidProgress)
}

func TestGoalDescriptorUnknownCategory(t *testing.T) {
	r := catalog.NewResolver(catalog.SchemaCurrent)
	g := Goal{Text: "Call grandma", Category: "legacy-thing"}
	assert.Equal(t, catalog.DefaultCategory, g.Descriptor(r))

	g.Category = "family"
	assert.Equal(t, "Family & Relationships", g.Descriptor(r).Label)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		p        Progress
		fraction float64
		percent  int
		done     bool
		str      string
	}{
		{"partial", Progress{Current: 3, Total: 12, Unit: "books"}, 0.25, 25, false, "3/12 books"},
		{"complete", Progress{Current: 10, Total: 10}, 1, 100, true, "10/10"},
		{"overshoot clamps", Progress{Current: 15, Total: 10, Unit: "km"}, 1, 100, true, "15/10 km"},
		{"fractional", Progress{Current: 2.5, Total: 5, Unit: "kg"}, 0.5, 50, false, "2.5/5 kg"},
		{"invalid total", Progress{Current: 1, Total: 0}, 0, 0, false, "1/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.fraction, tt.p.Fraction(), 1e-9)
			assert.Equal(t, tt.percent, tt.p.Percent())
			assert.Equal(t, tt.done, tt.p.Done())
			assert.Equal(t, tt.str, tt.p.String())
		})
	}
}

func TestGoalJSONShape(t *testing.T) {
	g := Goal{ID: "g1", Text: "Save", Category: "financial", Progress: &Progress{Current: 100, Total: 1000, Unit: "USD"}}
	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"g1","text":"Save","category":"financial","completed":false,"progress":{"current":100,"total":1000,"unit":"USD"}}`, string(data))

	data, err = json.Marshal(Goal{ID: "g2", Text: "Nap"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "progress")
}

func TestCardCustomizationDecode(t *testing.T) {
	var c CardCustomization
	require.NoError(t, yaml.Unmarshal([]byte("image:\n  url: https://example.com/a.png\n  position: background\nsubtitle: hi\n"), &c))
	require.NotNil(t, c.Image)
	assert.Equal(t, ImageBackground, c.Image.Position)
	assert.False(t, c.IsZero())
	assert.True(t, CardCustomization{}.IsZero())

	err := json.Unmarshal([]byte(`{"image":{"url":"x","position":"left"}}`), &c)
	assert.ErrorContains(t, err, `unknown image position "left"`)
}
