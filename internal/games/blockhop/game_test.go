package blockhop

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/blockhop/internal/core"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
	"github.com/vovakirdan/blockhop/internal/registry"
)

// instantLevel puts the player on the goal so the first step completes it.
func instantLevel(n int) string {
	return strings.ReplaceAll(`
number: N
name: Instant
width: 400
player_start: {x: 50, y: 300}
goal: {x: 50, y: 300}
platforms:
  - {x: 0, y: 368, w: 400}
`, "N", string(rune('0'+n)))
}

func newTestGame(t *testing.T, levelFiles map[string]string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	reset := func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetLevelsDir("")
	}
	reset()
	t.Cleanup(reset)

	if len(levelFiles) > 0 {
		dir := t.TempDir()
		for name, data := range levelFiles {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		SetLevelsDir(dir)
	}

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	if err := g.SetupErr(); err != nil {
		t.Fatalf("Reset() fell back to defaults: %v", err)
	}
	return g
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func stepN(g *Game, n int) []string {
	var events []string
	for i := 0; i < n; i++ {
		events = append(events, g.Step(core.NewInputFrame()).Events...)
	}
	return events
}

func TestRegistered(t *testing.T) {
	info, ok := registry.Lookup(GameID)
	if !ok {
		t.Fatal("blockhop is not registered")
	}
	if info.Title != "Block Hop" {
		t.Errorf("title = %q", info.Title)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != GameID {
		t.Errorf("ID() = %q", g.ID())
	}
	if _, ok := g.(registry.StatsReporter); !ok {
		t.Error("game should report run stats")
	}
	if _, ok := g.(registry.Recorder); !ok {
		t.Error("game should record replays")
	}
	if _, ok := g.(registry.LevelReloader); !ok {
		t.Error("game should reload level files")
	}
}

func TestResetDefaults(t *testing.T) {
	g := newTestGame(t, nil)

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused || st.Status != "Level 1" {
		t.Errorf("State() = %+v", st)
	}
	snap := g.Snapshot()
	if snap.LevelName != "First Steps" || snap.Session.BlocksRemaining != 3 {
		t.Errorf("snapshot = level %q blocks %d", snap.LevelName, snap.Session.BlocksRemaining)
	}
	if g.Recording().Seed != 42 {
		t.Errorf("recording seed = %d, expected 42", g.Recording().Seed)
	}
}

func TestBrokenConfigFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())
	if g.SetupErr() == nil {
		t.Error("missing config should be reported")
	}
	if g.State().Status != "Level 1" {
		t.Errorf("game should still start, status = %q", g.State().Status)
	}
}

func TestDifficultyPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(core.DefaultConfig())
	if got := g.Snapshot().Session.MaxBlocks; got != 5 {
		t.Errorf("easy capacity = %d, expected 5", got)
	}
	if g.Recording().Difficulty != "easy" {
		t.Errorf("recording difficulty = %q", g.Recording().Difficulty)
	}
}

func TestHeldKeyMovesPlayer(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(press(core.ActionRight))
	stepN(g, 8)
	if vx := g.Snapshot().Player.VX; vx != 5 {
		t.Fatalf("vx inside the hold window = %v, expected 5", vx)
	}
	stepN(g, 1)
	if vx := g.Snapshot().Player.VX; vx != 4 {
		t.Errorf("vx after the hold window = %v, expected friction to 4", vx)
	}
}

func TestBuildIsEdgeTriggered(t *testing.T) {
	g := newTestGame(t, nil)

	isBlock := func(name string) bool { return strings.HasPrefix(name, "block-") }

	held := core.NewInputFrame()
	held.Hold(core.ActionBuild)
	if slices.ContainsFunc(g.Step(held).Events, isBlock) {
		t.Error("a held build key should not build")
	}

	res := g.Step(press(core.ActionBuild))
	if n := len(slices.DeleteFunc(slices.Clone(res.Events), func(s string) bool { return !isBlock(s) })); n != 1 {
		t.Errorf("events = %v, expected exactly one block event", res.Events)
	}
	if slices.ContainsFunc(stepN(g, 3), isBlock) {
		t.Error("build should not repeat while the key is held")
	}
}

func TestBuildNeedsRelease(t *testing.T) {
	g := newTestGame(t, nil)

	builds := func(events []string) int {
		n := 0
		for _, ev := range events {
			if strings.HasPrefix(ev, "block-") {
				n++
			}
		}
		return n
	}

	tests := []struct {
		name  string
		frame core.InputFrame
		idle  int // empty ticks after the frame
		want  int
	}{
		{"first press", press(core.ActionBuild), 0, 1},
		{"repeat next tick", press(core.ActionBuild), 3, 0},
		{"repeat inside the hold window", press(core.ActionBuild), 9, 0},
		{"press after release", press(core.ActionBuild), 0, 1},
	}
	for _, tt := range tests {
		events := g.Step(tt.frame).Events
		events = append(events, stepN(g, tt.idle)...)
		if got := builds(events); got != tt.want {
			t.Errorf("%s: %d build events %v, expected %d", tt.name, got, events, tt.want)
		}
	}
}

func TestDefaultsBuildWorld(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		if _, err := sim.NewWorld(sim.DefaultParams(), sim.DefaultCampaign(), seed); err != nil {
			t.Fatalf("NewWorld(defaults, seed %d) error = %v", seed, err)
		}
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, nil)
	stepN(g, 5)

	g.Step(press(core.ActionPause))
	if st := g.State(); !st.Paused || st.Status != "Paused" {
		t.Fatalf("State() = %+v, expected paused", st)
	}
	frames := g.Snapshot().Frame
	stepN(g, 10)
	if g.Snapshot().Frame != frames {
		t.Error("frames advanced while paused")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestTransitionAndAdvance(t *testing.T) {
	g := newTestGame(t, map[string]string{"one.yaml": instantLevel(1)})

	res := g.Step(core.NewInputFrame())
	if !slices.Contains(res.Events, "level-complete") {
		t.Fatalf("events = %v, expected level-complete", res.Events)
	}
	if g.State().Status != "Level 1 complete" {
		t.Errorf("status = %q", g.State().Status)
	}

	stepN(g, 5)
	if g.State().Status != "Level 1 complete" {
		t.Error("transition should wait for confirmation")
	}

	g.Step(press(core.ActionConfirm))
	if g.State().Status != "Level 2" {
		t.Errorf("status after confirm = %q, expected Level 2", g.State().Status)
	}
	if name := g.Snapshot().LevelName; name != "Generated" {
		t.Errorf("level 2 = %q, expected the generated level", name)
	}
}

func TestWinAndRestart(t *testing.T) {
	g := newTestGame(t, map[string]string{
		"one.yaml": instantLevel(1),
		"two.yaml": instantLevel(2),
	})

	g.Step(core.NewInputFrame())
	res := g.Step(press(core.ActionJump))
	if !slices.Contains(res.Events, "game-won") {
		t.Fatalf("events = %v, expected game-won", res.Events)
	}
	st := g.State()
	if !st.GameOver || st.Status != "Won" || st.Score != 200 {
		t.Errorf("State() = %+v", st)
	}
	if stats := g.RunStats(); !stats.Won || stats.Level != 2 {
		t.Errorf("RunStats() = %+v", stats)
	}

	// the restarted run steps straight onto the goal of level 1 again
	g.Step(press(core.ActionConfirm))
	if st := g.State(); st.GameOver || st.Score != 100 || st.Status != "Level 1 complete" {
		t.Errorf("after restart State() = %+v", st)
	}
	if g.Snapshot().Level != 1 {
		t.Error("restart should return to level 1")
	}
}

func TestRecordingReplays(t *testing.T) {
	g := newTestGame(t, nil)

	script := []core.InputFrame{
		press(core.ActionRight),
		press(core.ActionJump),
		press(core.ActionBuild),
		press(core.ActionPause),
		press(core.ActionPause),
		press(core.ActionLeft, core.ActionJump),
	}
	for _, f := range script {
		g.Step(f)
		stepN(g, 15)
	}

	data, err := g.EncodeRecording()
	if err != nil {
		t.Fatalf("EncodeRecording() error = %v", err)
	}
	rec, err := DecodeReplay(data)
	if err != nil {
		t.Fatalf("DecodeReplay() error = %v", err)
	}
	if rec.Frames() != len(script)*16 {
		t.Fatalf("recorded %d frames, expected %d", rec.Frames(), len(script)*16)
	}

	setup, err := LoadSetup()
	if err != nil {
		t.Fatal(err)
	}
	w, _, err := rec.Play(setup.Params, setup.Campaign)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if w.Snapshot().Hash() != g.Snapshot().Hash() {
		t.Error("replay diverged from the recorded run")
	}
}

func TestReloadLevels(t *testing.T) {
	g := newTestGame(t, map[string]string{"one.yaml": instantLevel(1)})

	if err := os.WriteFile(filepath.Join(LevelsDir(), "three.yaml"), []byte(instantLevel(3)), 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := g.ReloadLevels()
	if err != nil {
		t.Fatalf("ReloadLevels() error = %v", err)
	}
	if n != 3 {
		t.Errorf("levels = %d, expected 3", n)
	}

	if err := os.WriteFile(filepath.Join(LevelsDir(), "bad.yaml"), []byte("number: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := g.ReloadLevels(); err == nil {
		t.Error("a broken file should fail the reload")
	}
	if g.world.Campaign().Len() != 3 {
		t.Error("a failed reload should keep the previous levels")
	}
}

func TestDecodeReplayErrors(t *testing.T) {
	if _, err := DecodeReplay([]byte("seed: [")); err == nil {
		t.Error("malformed replay should fail")
	}
	if _, err := DecodeReplay([]byte("seed: 1\n")); err == nil {
		t.Error("replay without frames should fail")
	}
}

func TestEventName(t *testing.T) {
	tests := []struct {
		ev   sim.Event
		want string
	}{
		{sim.Event{Kind: sim.EventJump}, "jump"},
		{sim.Event{Kind: sim.EventDeath, Cause: sim.CauseSpike}, "death:spike"},
		{sim.Event{Kind: sim.EventGameWon}, "game-won"},
	}
	for _, tt := range tests {
		if got := EventName(tt.ev); got != tt.want {
			t.Errorf("EventName(%v) = %q, expected %q", tt.ev.Kind, got, tt.want)
		}
	}
}
