package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/goalboard/internal/app"
	"github.com/dori/goalboard/internal/board"
	"github.com/dori/goalboard/internal/catalog"
	"github.com/dori/goalboard/internal/log"
	"github.com/dori/goalboard/internal/model"
	"github.com/dori/goalboard/internal/notify"
	"github.com/dori/goalboard/internal/ui/component"
	"github.com/dori/goalboard/internal/ui/theme"
	"github.com/rs/zerolog"
)

// RootModel is the main application model: the goal board grouped by category
type RootModel struct {
	board    *board.Board
	registry *component.Registry
	notifier *notify.Notifier
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	log      zerolog.Logger

	width  int
	height int

	themeKey catalog.ThemeColor
	fontKey  catalog.FontFamily
	styles   theme.Styles

	mode        mode
	cursor      int
	editingID   string
	newCategory string
	helpVisible bool

	// Status message
	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = false

	in := textinput.New()
	in.Placeholder = "What do you want to achieve?"
	in.CharLimit = 200

	m := RootModel{
		board:       application.Board,
		registry:    application.Components,
		notifier:    application.Notifier,
		keys:        DefaultKeyMap(),
		help:        h,
		input:       in,
		log:         log.WithComponent("ui"),
		themeKey:    application.Config.Theme,
		fontKey:     application.Config.Font,
		newCategory: application.Resolver.Default().Key,
	}
	m.applyStyles()
	return m
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-12, 10)
		return m, nil

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		// ctrl+c always quits, 'q' only outside text input
		if key.Matches(msg, m.keys.Quit) && (msg.String() == "ctrl+c" || !m.isInputMode()) {
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, m.keys.ThemeCycle):
			return m.setTheme(m.themeKey.Next()), nil
		case key.Matches(msg, m.keys.FontCycle):
			return m.setFont(m.fontKey.Next()), nil
		}

		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg), nil
		default:
			return m.updateBrowse(msg), nil
		}

	case ThemeChangedMsg:
		return m.setTheme(msg.Theme), nil

	case FontChangedMsg:
		return m.setFont(msg.Font), nil

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil
	}

	if m.isInputMode() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m RootModel) isInputMode() bool {
	return m.mode == modeAdd || m.mode == modeEdit
}

func (m RootModel) updateBrowse(msg tea.KeyMsg) RootModel {
	goals := m.orderedGoals()

	switch {
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(goals)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(goals)-1, 0)

	case key.Matches(msg, m.keys.Add):
		if g, ok := m.focused(goals); ok {
			m.newCategory = m.board.Resolver().Resolve(g.Category).Key
		}
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, m.keys.Edit):
		if g, ok := m.focused(goals); ok {
			m.mode = modeEdit
			m.editingID = g.ID
			m.input.SetValue(g.Text)
			m.input.CursorEnd()
			m.input.Focus()
		}

	case key.Matches(msg, m.keys.Toggle):
		if g, ok := m.focused(goals); ok {
			done, err := m.board.Toggle(g.ID)
			if err != nil {
				return m.fail(err)
			}
			m.log.Debug().Str("goal", g.ID).Bool("completed", done).Msg("toggled")
			if done {
				m.announce(g)
			}
			m.cursor = m.indexOf(g.ID)
		}

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.focused(goals); ok {
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, m.keys.Category):
		if g, ok := m.focused(goals); ok {
			next := m.nextCategory(g.Category)
			if err := m.board.UpdateCategory(g.ID, next); err != nil {
				return m.fail(err)
			}
			m.statusMsg = "Moved to " + m.board.Resolver().Resolve(next).Label
			m.cursor = m.indexOf(g.ID)
		}

	case key.Matches(msg, m.keys.ProgressUp), key.Matches(msg, m.keys.ProgressDown):
		if g, ok := m.focused(goals); ok {
			if g.Progress == nil {
				m.statusMsg = "No progress tracked for this goal"
				break
			}
			p := *g.Progress
			step := 1.0
			if key.Matches(msg, m.keys.ProgressDown) {
				step = -1
			}
			p.Current = math.Min(math.Max(p.Current+step, 0), p.Total)
			if err := m.board.UpdateProgress(g.ID, &p); err != nil {
				return m.fail(err)
			}
			if !g.Completed && p.Done() {
				m.announce(g)
			}
			m.statusMsg = p.String()
			m.cursor = m.indexOf(g.ID)
		}
	}
	return m
}

func (m RootModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		text := m.input.Value()
		if m.mode == modeAdd {
			g, err := m.board.Create(text, m.newCategory)
			if err != nil {
				return m.fail(err), nil
			}
			m.log.Debug().Str("goal", g.ID).Str("category", g.Category).Msg("created")
			m.statusMsg = "Added to " + m.board.Resolver().Resolve(g.Category).Label
			m.cursor = m.indexOf(g.ID)
		} else {
			if err := m.board.UpdateText(m.editingID, text); err != nil {
				return m.fail(err), nil
			}
			m.cursor = m.indexOf(m.editingID)
		}
		m.mode = modeBrowse
		m.editingID = ""
		m.input.Blur()
		return m, nil

	case m.mode == modeAdd && key.Matches(msg, m.keys.Next):
		m.newCategory = m.nextCategory(m.newCategory)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m RootModel) updateConfirm(msg tea.KeyMsg) RootModel {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		goals := m.orderedGoals()
		if g, ok := m.focused(goals); ok {
			if err := m.board.Delete(g.ID); err != nil {
				m.mode = modeBrowse
				return m.fail(err)
			}
			m.statusMsg = "Deleted: " + g.Text
			if m.cursor >= m.board.Len() {
				m.cursor = max(m.board.Len()-1, 0)
			}
		}
		m.mode = modeBrowse
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
	}
	return m
}

// announce sends the completion notification. Failures are logged only; a
// missing notify-send must not interrupt the board.
func (m RootModel) announce(g model.Goal) {
	label := m.board.Resolver().Resolve(g.Category).Label
	if err := m.notifier.SendGoalComplete(g.Text, label); err != nil {
		m.log.Warn().Err(err).Str("goal", g.ID).Msg("notification failed")
	}
}

func (m RootModel) fail(err error) RootModel {
	m.log.Warn().Err(err).Msg("goal action failed")
	m.errorMsg = err.Error()
	return m
}

func (m RootModel) setTheme(c catalog.ThemeColor) RootModel {
	if !c.Valid() {
		return m.fail(fmt.Errorf("unknown theme %q", c))
	}
	m.themeKey = c
	m.applyStyles()
	m.statusMsg = "Theme: " + m.styles.Palette.Name
	m.log.Debug().Str("theme", c.String()).Msg("theme changed")
	return m
}

func (m RootModel) setFont(f catalog.FontFamily) RootModel {
	if !f.Valid() {
		return m.fail(fmt.Errorf("unknown font %q", f))
	}
	m.fontKey = f
	m.applyStyles()
	m.statusMsg = "Font: " + m.styles.Font.Name
	m.log.Debug().Str("font", f.String()).Msg("font changed")
	return m
}

func (m *RootModel) applyStyles() {
	m.styles = theme.For(m.themeKey, m.fontKey)
	m.input.PromptStyle = m.styles.HelpKey
	m.input.TextStyle = m.styles.App
	m.input.PlaceholderStyle = m.styles.Placeholder
	m.help.Styles.ShortKey = m.styles.HelpKey
	m.help.Styles.ShortDesc = m.styles.HelpDesc
	m.help.Styles.FullKey = m.styles.HelpKey
	m.help.Styles.FullDesc = m.styles.HelpDesc
}

// orderedGoals flattens the board in display order so the cursor follows
// what is on screen.
func (m RootModel) orderedGoals() []model.Goal {
	var out []model.Goal
	for _, g := range m.board.Groups() {
		out = append(out, g.Goals...)
	}
	return out
}

func (m RootModel) focused(goals []model.Goal) (model.Goal, bool) {
	if m.cursor < 0 || m.cursor >= len(goals) {
		return model.Goal{}, false
	}
	return goals[m.cursor], true
}

func (m RootModel) indexOf(id string) int {
	for i, g := range m.orderedGoals() {
		if g.ID == id {
			return i
		}
	}
	return 0
}

// nextCategory cycles through the category table and then the default.
func (m RootModel) nextCategory(current string) string {
	r := m.board.Resolver()
	keys := make([]string, 0, len(r.Categories())+1)
	for _, c := range r.Categories() {
		keys = append(keys, c.Key)
	}
	keys = append(keys, r.Default().Key)

	resolved := r.Resolve(current).Key
	for i, k := range keys {
		if k == resolved {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}
