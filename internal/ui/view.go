package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/goalboard/internal/board"
	"github.com/dori/goalboard/internal/model"
	"github.com/dori/goalboard/internal/ui/component"
)

const progressBarWidth = 12

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sections := []string{m.renderHeader()}

	switch m.mode {
	case modeAdd, modeEdit:
		sections = append(sections, m.renderInput())
	case modeConfirmDelete:
		sections = append(sections, m.renderConfirm())
	}

	sections = append(sections, m.renderBoard(), m.renderFooter())
	return strings.Join(sections, "\n")
}

// renderHeader renders the gradient title bar with the active theme and font
func (m RootModel) renderHeader() string {
	s := m.styles
	title := s.Palette.Gradient(" goalboard ")

	stats := m.board.Stats()
	progress := s.Label.Render(fmt.Sprintf(" %d/%d done", stats.Completed, stats.Total))

	right := s.Label.Render(fmt.Sprintf("%s · %s ", s.Palette.Name, s.Font.Name))

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, progress)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m RootModel) renderBoard() string {
	groups := m.board.Groups()
	if len(groups) == 0 {
		return m.styles.Placeholder.Padding(1, 2).Render("No goals yet. Press a to add one.")
	}

	cardWidth := max(m.width-2, 20)
	var cards []string
	index := 0
	for _, g := range groups {
		cards = append(cards, m.renderGroup(g, index, cardWidth))
		index += len(g.Goals)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderGroup renders one category card. offset is the flattened index of the
// group's first goal, used to place the cursor.
func (m RootModel) renderGroup(g board.Group, offset, width int) string {
	s := m.styles

	title := s.CategoryTitle(g.Category).Render(g.Category.Label) +
		s.Label.Render(fmt.Sprintf("  %s · %d", g.Category.Icon, len(g.Goals)))
	header := m.component(component.CardHeader, title)

	lines := make([]string, 0, len(g.Goals))
	for i, goal := range g.Goals {
		lines = append(lines, m.renderGoal(goal, offset+i == m.cursor && m.mode != modeAdd))
	}
	content := m.component(component.CardContent, strings.Join(lines, "\n"))

	return s.Category(g.Category).Width(width).Render(header + "\n" + content)
}

func (m RootModel) renderGoal(g model.Goal, focused bool) string {
	s := m.styles

	check := "[ ]"
	style := s.GoalNormal
	if g.Completed {
		check = "[x]"
		style = s.GoalDone
	}
	if focused {
		style = s.GoalFocused
	}

	line := style.Render(check + " " + g.Text)
	if g.Progress != nil {
		line += " " + m.renderProgress(*g.Progress)
	}
	if g.Card != nil && g.Card.Subtitle != "" {
		line += "\n    " + s.Subtitle.Render(g.Card.Subtitle)
	}
	return line
}

func (m RootModel) renderProgress(p model.Progress) string {
	s := m.styles
	filled := int(p.Fraction()*progressBarWidth + 0.5)
	bar := s.ProgressFill.Render(strings.Repeat("█", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("░", progressBarWidth-filled))
	return bar + s.Label.Render(fmt.Sprintf(" %s (%d%%)", p.String(), p.Percent()))
}

func (m RootModel) renderInput() string {
	label := "New goal"
	if m.mode == modeEdit {
		label = "Edit goal"
	}
	title := m.component(component.DialogTitle, label)

	field := m.component(component.Input, m.input.View())

	var category string
	if m.mode == modeAdd {
		c := m.board.Resolver().Resolve(m.newCategory)
		trigger := m.component(component.SelectTrigger, m.styles.CategoryTitle(c).Render(c.Label))
		category = "\n" + m.component(component.DialogDescription, "category (tab to change)") + "\n" + trigger
	}

	return m.component(component.DialogContent, title+"\n"+field+category)
}

func (m RootModel) renderConfirm() string {
	g, ok := m.focused(m.orderedGoals())
	if !ok {
		return ""
	}
	title := m.component(component.DialogTitle, "Delete goal?")
	desc := m.component(component.DialogDescription, g.Text)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.component(component.Button, "y delete"), " ",
		m.component(component.Button, "n cancel"))
	return m.component(component.DialogContent, title+"\n"+desc+"\n\n"+buttons)
}

// renderFooter renders the status line and key help
func (m RootModel) renderFooter() string {
	s := m.styles
	var status string
	switch {
	case m.errorMsg != "":
		status = s.Error.Render(m.errorMsg)
	case m.statusMsg != "":
		status = s.StatusBar.Render(m.statusMsg)
	}
	return status + "\n" + s.Footer.Render(m.help.View(m.keys))
}

// component renders content with a registered primitive. Unknown names fall
// back to plain content so a missing registration never blanks the screen.
func (m RootModel) component(name, content string) string {
	out, err := m.registry.Render(name, m.styles, content)
	if err != nil {
		m.log.Error().Err(err).Str("component", name).Msg("render failed")
		return content
	}
	return out
}
