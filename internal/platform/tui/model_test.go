package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockhop/internal/core"
	"github.com/vovakirdan/blockhop/internal/storage"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets    int
	steps     int
	last      core.InputFrame
	state     core.GameState
	stats     core.RunStats
	reloads   int
	reloadErr error
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state, Events: []string{"tick"}}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState   { return g.state }
func (g *stubGame) RunStats() core.RunStats { return g.stats }
func (g *stubGame) EncodeRecording() ([]byte, error) {
	return []byte("seed: 1\n"), nil
}

func (g *stubGame) ReloadLevels() (int, error) {
	g.reloads++
	return 3, g.reloadErr
}

func newTestModel(t *testing.T, g *stubGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(g, cfg, Options{Store: store, Difficulty: "hard"})
	m.Init()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func runs(t *testing.T, store *storage.Store) []storage.Run {
	t.Helper()
	got, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	return got
}

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if h := m.gameConfig().ScreenH; h != 23 {
		t.Errorf("game screen height = %d, want 23", h)
	}
}

func TestModelKeyReachesNextTick(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if !g.last.Pressed(core.ActionLeft) {
		t.Error("left press not passed to Step")
	}

	update(t, m, TickMsg{})
	if g.last.Pressed(core.ActionLeft) {
		t.Error("press leaked into the following tick")
	}
	if g.steps != 2 {
		t.Errorf("steps = %d, want 2", g.steps)
	}
}

func TestModelSavesFinishedRunOnce(t *testing.T) {
	g := &stubGame{
		state: core.GameState{Score: 450, GameOver: true},
		stats: core.RunStats{Level: 3, Coins: 5, Stars: 2, Deaths: 1, Frames: 900, Won: true},
	}
	m, store := newTestModel(t, g)

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	got := runs(t, store)
	if len(got) != 1 {
		t.Fatalf("saved %d runs, want 1", len(got))
	}
	r := got[0]
	if r.Score != 450 || r.Level != 3 || !r.Won || r.Seed != 7 || r.Difficulty != "hard" {
		t.Errorf("saved run = %+v", r)
	}
	full, err := store.RunByID(r.ID)
	if err != nil {
		t.Fatalf("RunByID: %v", err)
	}
	if string(full.Replay) != "seed: 1\n" {
		t.Errorf("replay = %q", full.Replay)
	}

	// A restart clears GameOver, so the next finish is a new run.
	g.state.GameOver = false
	m, _ = update(t, m, TickMsg{})
	g.state.GameOver = true
	update(t, m, TickMsg{})
	if n := len(runs(t, store)); n != 2 {
		t.Errorf("saved %d runs after restart, want 2", n)
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		want   int
	}{
		{"played", 120, 1},
		{"never started", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &stubGame{stats: core.RunStats{Level: 1, Frames: tt.frames}}
			m, store := newTestModel(t, g)

			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
			if cmd == nil {
				t.Fatal("quit returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit did not return tea.Quit")
			}
			if m.View() != "" {
				t.Error("view not empty after quit")
			}
			if n := len(runs(t, store)); n != tt.want {
				t.Errorf("saved %d runs, want %d", n, tt.want)
			}
		})
	}
}

func TestModelLevelsChanged(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	m, cmd := update(t, m, LevelsChangedMsg{Path: "levels/level1.yaml"})
	if cmd != nil {
		t.Error("expected no watch command without a watcher")
	}
	if g.reloads != 1 {
		t.Errorf("reloads = %d, want 1", g.reloads)
	}
	if view := m.View(); !strings.Contains(view, "Levels reloaded (3)") {
		t.Errorf("view missing reload notice:\n%s", view)
	}

	g.reloadErr = errors.New("bad level")
	m, _ = update(t, m, LevelsChangedMsg{Path: "levels/level1.yaml"})
	if view := m.View(); !strings.Contains(view, "Level reload failed") {
		t.Errorf("view missing failure notice:\n%s", view)
	}
}

func TestModelNoticeExpires(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, LevelsChangedMsg{})
	for range noticeTicks {
		m, _ = update(t, m, TickMsg{})
	}
	view := m.View()
	if strings.Contains(view, "Levels reloaded") {
		t.Error("notice still shown after it expired")
	}
	if !strings.Contains(view, "jump") {
		t.Errorf("help bar missing:\n%s", view)
	}
}

func TestModelViewAndResize(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	view := m.View()
	if !strings.HasPrefix(view, "stub") {
		t.Errorf("view does not start with the game screen:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.screen.Width() != 40 || m.screen.Height() != 11 {
		t.Errorf("screen = %dx%d, want 40x11", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
}
