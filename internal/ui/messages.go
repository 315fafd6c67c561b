package ui

import "github.com/dori/goalboard/internal/catalog"

// mode is what the root model is currently doing with key input.
type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// String returns the display name for a mode
func (m mode) String() string {
	switch m {
	case modeBrowse:
		return "Browse"
	case modeAdd:
		return "Add"
	case modeEdit:
		return "Edit"
	case modeConfirmDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Messages for inter-component communication

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// ThemeChangedMsg requests a theme change, e.g. from a command palette.
type ThemeChangedMsg struct {
	Theme catalog.ThemeColor
}

// FontChangedMsg requests a font change.
type FontChangedMsg struct {
	Font catalog.FontFamily
}
