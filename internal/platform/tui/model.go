package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockhop/internal/core"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/levels"
	"github.com/vovakirdan/blockhop/internal/registry"
	"github.com/vovakirdan/blockhop/internal/storage"
)

// helpRows is the number of rows below the game reserved for the help bar.
const helpRows = 1

// noticeTicks is how long a notice replaces the help bar.
const noticeTicks = 120

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// Options are the optional collaborators of a game session.
type Options struct {
	Store      *storage.Store  // nil disables run saving
	Logger     *log.Logger     // nil discards logs
	Watcher    *levels.Watcher // nil disables level hot reload
	Difficulty string          // stored with saved runs
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	watcher    *levels.Watcher
	difficulty string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	notice     string
	noticeLeft int
	quitting   bool
	runSaved   bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		store:      opts.Store,
		logger:     logger,
		watcher:    opts.Watcher,
		difficulty: opts.Difficulty,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "difficulty", m.difficulty)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForLevels(m.watcher))
	}
	return tea.Batch(cmds...)
}

// gameConfig is the runtime config as the game sees it: the screen minus
// the help bar.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case LevelsChangedMsg:
		return m.handleLevelsChanged(msg)

	case WatchErrorMsg:
		m.logger.Warn("level watcher", "err", msg.Err)
		return m, m.nextWatch()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The run continues; the
// game draws into whatever screen it is given.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("event", "name", ev)
	}

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun()
	case !m.gameState.GameOver && m.runSaved:
		// restarted after a finished run
		m.runSaved = false
	}

	if m.noticeLeft > 0 {
		m.noticeLeft--
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) handleLevelsChanged(msg LevelsChangedMsg) (tea.Model, tea.Cmd) {
	reloader, ok := m.game.(registry.LevelReloader)
	if !ok {
		return m, m.nextWatch()
	}

	n, err := reloader.ReloadLevels()
	if err != nil {
		m.logger.Warn("level reload failed", "path", msg.Path, "err", err)
		m.setNotice("Level reload failed, see log")
		return m, m.nextWatch()
	}
	m.logger.Info("levels reloaded", "path", msg.Path, "levels", n)
	m.setNotice(fmt.Sprintf("Levels reloaded (%d)", n))
	return m, m.nextWatch()
}

func (m Model) nextWatch() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForLevels(m.watcher)
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeLeft = noticeTicks
}

// saveRun stores the current run once. Empty runs are skipped.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	reporter, ok := m.game.(registry.StatsReporter)
	if !ok || m.store == nil {
		return
	}
	stats := reporter.RunStats()
	if stats.Frames == 0 {
		return
	}

	run := storage.Run{
		GameID:     m.game.ID(),
		Score:      m.game.State().Score,
		Level:      stats.Level,
		Coins:      stats.Coins,
		Stars:      stats.Stars,
		BlocksUsed: stats.BlocksUsed,
		Deaths:     stats.Deaths,
		Frames:     stats.Frames,
		Won:        stats.Won,
		Seed:       m.config.Seed,
		Difficulty: m.difficulty,
	}
	if rec, ok := m.game.(registry.Recorder); ok {
		data, err := rec.EncodeRecording()
		if err != nil {
			m.logger.Warn("replay not saved", "err", err)
		}
		run.Replay = data
	}

	// Best-effort save, game continues regardless
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("run not saved", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", run.Score, "level", run.Level, "won", run.Won)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setNotice("Screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.noticeLeft > 0 {
		b.WriteString(noticeStyle.Render(m.notice))
	} else {
		b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	}
	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
