package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/goalboard/internal/ui/theme"
)

// Component names registered by RegisterDefaults.
const (
	Card        = "Card"
	CardHeader  = "CardHeader"
	CardContent = "CardContent"
	CardTitle   = "CardTitle"

	Button   = "Button"
	Input    = "Input"
	Textarea = "Textarea"

	Select        = "Select"
	SelectContent = "SelectContent"
	SelectItem    = "SelectItem"
	SelectTrigger = "SelectTrigger"
	SelectValue   = "SelectValue"

	RadioGroup     = "RadioGroup"
	RadioGroupItem = "RadioGroupItem"

	Dialog            = "Dialog"
	DialogContent     = "DialogContent"
	DialogHeader      = "DialogHeader"
	DialogTitle       = "DialogTitle"
	DialogDescription = "DialogDescription"
)

func defaults() []struct {
	name string
	f    Factory
} {
	plain := func(theme.Styles) lipgloss.Style { return lipgloss.NewStyle() }

	return []struct {
		name string
		f    Factory
	}{
		// Card
		{Card, func(s theme.Styles) lipgloss.Style { return s.Panel }},
		{CardHeader, func(s theme.Styles) lipgloss.Style { return lipgloss.NewStyle().MarginBottom(1) }},
		{CardContent, plain},
		{CardTitle, func(s theme.Styles) lipgloss.Style { return s.PanelTitle }},

		// Form
		{Button, func(s theme.Styles) lipgloss.Style { return s.Button }},
		{Input, func(s theme.Styles) lipgloss.Style { return s.InputFocused }},
		{Textarea, func(s theme.Styles) lipgloss.Style { return s.Input.Height(3) }},

		// Select
		{Select, plain},
		{SelectContent, func(s theme.Styles) lipgloss.Style { return s.Panel }},
		{SelectItem, func(s theme.Styles) lipgloss.Style { return s.GoalNormal }},
		{SelectTrigger, func(s theme.Styles) lipgloss.Style { return s.Input }},
		{SelectValue, func(s theme.Styles) lipgloss.Style { return s.App }},

		// Radio
		{RadioGroup, plain},
		{RadioGroupItem, func(s theme.Styles) lipgloss.Style { return s.GoalNormal }},

		// Dialog
		{Dialog, plain},
		{DialogContent, func(s theme.Styles) lipgloss.Style { return s.Dialog }},
		{DialogHeader, func(s theme.Styles) lipgloss.Style { return lipgloss.NewStyle().MarginBottom(1) }},
		{DialogTitle, func(s theme.Styles) lipgloss.Style { return s.Title }},
		{DialogDescription, func(s theme.Styles) lipgloss.Style { return s.Label }},
	}
}

// RegisterDefaults registers the built-in card, form, select, radio and
// dialog primitives.
func RegisterDefaults(r *Registry) error {
	for _, d := range defaults() {
		if err := r.Register(d.name, d.f); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a registry with the built-in primitives.
func Default() *Registry {
	r := NewRegistry()
	if err := RegisterDefaults(r); err != nil {
		panic(err)
	}
	return r
}
