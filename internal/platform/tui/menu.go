package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/core"
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	MenuChoiceQuit MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
)

// menuItem indexes the rows of the title menu.
type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemScores
	itemQuit
	itemCount
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor     menuItem
	difficulty int // index into config.Presets()
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	choice     MenuChoice
	done       bool
}

// NewMenuModel creates a title menu. An unknown or empty difficulty starts
// on normal.
func NewMenuModel(cfg core.RuntimeConfig, difficulty string) MenuModel {
	idx := 1
	if p, err := config.ParsePreset(difficulty); err == nil && p != "" {
		for i, preset := range config.Presets() {
			if preset == p {
				idx = i
			}
		}
	}
	return MenuModel{
		difficulty: idx,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		return m.finish(MenuChoiceQuit)

	case MenuActionUp:
		m.cursor = (m.cursor + itemCount - 1) % itemCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % itemCount

	case MenuActionLeft:
		if m.cursor == itemDifficulty {
			m.cycleDifficulty(-1)
		}

	case MenuActionRight:
		if m.cursor == itemDifficulty {
			m.cycleDifficulty(1)
		}

	case MenuActionScoreboard:
		return m.finish(MenuChoiceScores)

	case MenuActionSelect:
		switch m.cursor {
		case itemPlay:
			return m.finish(MenuChoicePlay)
		case itemDifficulty:
			m.cycleDifficulty(1)
		case itemScores:
			return m.finish(MenuChoiceScores)
		case itemQuit:
			return m.finish(MenuChoiceQuit)
		}
	}
	return m, nil
}

func (m MenuModel) finish(choice MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = choice
	m.done = true
	return m, tea.Quit
}

func (m *MenuModel) cycleDifficulty(delta int) {
	n := len(config.Presets())
	m.difficulty = (m.difficulty + delta + n) % n
}

// Difficulty returns the preset currently shown.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets()[m.difficulty]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B L O C K   H O P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Build your way to the flag", m.width))
	b.WriteString("\n\n")

	for i := itemPlay; i < itemCount; i++ {
		line := m.itemLabel(i)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(helpStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) itemLabel(i menuItem) string {
	switch i {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty  < %s >", m.Difficulty())
	case itemScores:
		return "High Scores"
	default:
		return "Quit"
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the title menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, difficulty string) (MenuResult, error) {
	model := NewMenuModel(cfg, difficulty)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg}, nil
	}
	return MenuResult{
		Choice:     m.choice,
		Difficulty: m.Difficulty(),
		Config:     m.config,
	}, nil
}
