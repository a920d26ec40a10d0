package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hook-digger/internal/core"
)

// LevelChoice is one startable campaign level.
type LevelChoice struct {
	Level  int
	Target int
}

// LevelSelectModel lets users pick the level a campaign starts at.
type LevelSelectModel struct {
	choices   []LevelChoice
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    *LevelChoice
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a selector over the given levels.
func NewLevelSelectModel(choices []LevelChoice, width, height int) LevelSelectModel {
	return LevelSelectModel{
		choices:   choices,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.choices) > 0 {
			c := m.choices[m.cursor]
			m.chosen = &c
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, c := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%sLevel %2d   target %5d", cursor, c.Level, c.Target), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen level, or nil if none was picked.
func (m LevelSelectModel) Selected() *LevelChoice {
	return m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector shows the level picker. A nil choice means the user
// backed out or quit.
func RunLevelSelector(choices []LevelChoice, cfg core.RuntimeConfig) (*LevelChoice, error) {
	p := tea.NewProgram(NewLevelSelectModel(choices, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
