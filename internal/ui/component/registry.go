// Package component is a registry of named presentational primitives. Views
// look primitives up by name and render content with the active styles, so a
// theme or font change restyles every registered component at once.
package component

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/goalboard/internal/ui/theme"
)

var (
	// ErrDuplicateComponent is returned when a name is registered twice.
	ErrDuplicateComponent = errors.New("component already registered")
	// ErrUnknownComponent is returned when rendering an unregistered name.
	ErrUnknownComponent = errors.New("unknown component")
)

// Factory derives a component's style from the active styles.
type Factory func(s theme.Styles) lipgloss.Style

// Registry maps component names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a named component.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("component %q: name and factory are required", name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateComponent, name)
	}
	r.factories[name] = f
	return nil
}

// Style returns the style of a registered component.
func (r *Registry) Style(name string, s theme.Styles) (lipgloss.Style, error) {
	f, ok := r.factories[name]
	if !ok {
		return lipgloss.Style{}, fmt.Errorf("%w: %s", ErrUnknownComponent, name)
	}
	return f(s), nil
}

// Render renders content with a registered component's style.
func (r *Registry) Render(name string, s theme.Styles, content ...string) (string, error) {
	st, err := r.Style(name, s)
	if err != nil {
		return "", err
	}
	return st.Render(content...), nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}
