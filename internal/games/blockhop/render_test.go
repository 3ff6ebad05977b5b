package blockhop

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockhop/internal/core"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
)

func TestFollowCamera(t *testing.T) {
	snap := sim.Snapshot{Width: 1500}

	tests := []struct {
		name    string
		playerX float64
		want    float64
	}{
		{"start clamps to zero", 50, 0},
		{"middle centres", 700, 700 + 12 - 320},
		{"end clamps to level edge", 1450, 1500 - 640},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap.Player.Rect = sim.R(tt.playerX, 300, 24, 24)
			cam := FollowCamera(snap, 80, 20, 1)
			if cam.X != tt.want {
				t.Errorf("camera x = %v, expected %v", cam.X, tt.want)
			}
		})
	}

	narrow := sim.Snapshot{Width: 300}
	if cam := FollowCamera(narrow, 80, 20, 1); cam.X != 0 {
		t.Errorf("level narrower than the view should not scroll, x = %v", cam.X)
	}
}

func TestCameraProject(t *testing.T) {
	cam := Camera{X: 100, ScaleX: 8, ScaleY: 20, Top: 1}

	tests := []struct {
		r    sim.Rect
		want core.Rect
	}{
		{sim.R(100, 0, 8, 20), core.NewRect(0, 1, 1, 1)},
		{sim.R(116, 368, 32, 32), core.NewRect(2, 19, 4, 2)},
		{sim.R(104, 10, 24, 24), core.NewRect(0, 1, 4, 2)},
		{sim.R(60, 0, 8, 20), core.NewRect(-5, 1, 1, 1)},
	}
	for _, tt := range tests {
		if got := cam.Project(tt.r); got != tt.want {
			t.Errorf("Project(%+v) = %+v, expected %+v", tt.r, got, tt.want)
		}
	}
}

func TestRenderHUDAndPlayer(t *testing.T) {
	g := newTestGame(t, nil)
	stepN(g, 30)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if hud := scr.Row(0); !strings.Contains(hud, "L1 First Steps") || !strings.Contains(hud, "▒3/3") {
		t.Errorf("HUD = %q", hud)
	}

	found := false
	for y := HUDRows; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if c := scr.GetCell(x, y); c.Rune == PlayerChar {
				found = true
				if c.Color != core.ColorCyan {
					t.Errorf("player colour = %v", c.Color)
				}
			}
		}
	}
	if !found {
		t.Error("player not drawn")
	}
	if !strings.Contains(scr.String(), string(SpikeChar)) {
		t.Error("spikes of the first level should be visible at the start")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, nil)
	scr := core.NewScreen(80, 24)

	g.Step(press(core.ActionPause))
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderScreenTooSmall(t *testing.T) {
	g := newTestGame(t, nil)

	scr := core.NewScreen(20, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Screen too small") {
		t.Errorf("expected a size warning, got:\n%s", scr.String())
	}
}
