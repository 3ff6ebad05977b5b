package blockhop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockhop/internal/core"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
)

// World-to-screen projection.
const (
	ColumnWidth = 8.0   // world pixels per screen column
	WorldHeight = 400.0 // visible world height in pixels
	HUDRows     = 1
)

// Glyphs
const (
	PlatformChar = '█'
	BlockChar    = '▒'
	SpikeChar    = '^'
	CoinChar     = 'o'
	StarChar     = '*'
	EnemyChar    = 'M'
	GoalChar     = 'F'
	PlayerChar   = '@'
)

// Camera maps world rectangles onto screen cells.
type Camera struct {
	X      float64 // world x of the left screen edge
	ScaleX float64 // world pixels per column
	ScaleY float64 // world pixels per row
	Top    int     // screen row where the world starts
}

// FollowCamera centres the player horizontally inside a cols x rows view,
// without scrolling past either end of the level.
func FollowCamera(snap sim.Snapshot, cols, rows, top int) Camera {
	cam := Camera{
		ScaleX: ColumnWidth,
		ScaleY: WorldHeight / float64(max(rows, 1)),
		Top:    top,
	}
	view := float64(cols) * cam.ScaleX
	limit := math.Max(0, snap.Width-view)
	cam.X = core.ClampF(snap.Player.CenterX()-view/2, 0, limit)
	return cam
}

// Project converts a world rectangle to the cells it covers.
func (c Camera) Project(r sim.Rect) core.Rect {
	x, w := core.CellSpan(r.X-c.X, r.W, c.ScaleX)
	y, h := core.CellSpan(r.Y, r.H, c.ScaleY)
	return core.NewRect(x, y+c.Top, w, h)
}

// DrawWorld draws every entity of the snapshot. Later layers overwrite
// earlier ones: geometry, hazards, pickups, enemies, then the player.
func DrawWorld(dst *core.Screen, snap sim.Snapshot, cam Camera) {
	for _, p := range snap.Platforms {
		dst.FillRect(cam.Project(p.Rect), PlatformChar, core.ColorGreen)
	}
	for _, b := range snap.Blocks {
		dst.FillRect(cam.Project(b.Rect), BlockChar, core.ColorOrange)
	}
	for _, o := range snap.Obstacles {
		dst.FillRect(cam.Project(o.Rect), SpikeChar, core.ColorRed)
	}
	for _, c := range snap.Coins {
		if !c.Collected {
			dst.FillRect(cam.Project(c.Rect), CoinChar, core.ColorBrightYellow)
		}
	}
	if snap.Star != nil && !snap.Star.Collected {
		dst.FillRect(cam.Project(snap.Star.Rect), StarChar, core.ColorBrightCyan)
	}
	dst.FillRect(cam.Project(snap.Goal), GoalChar, core.ColorWhite)
	for _, e := range snap.Enemies {
		if e.Alive {
			dst.FillRect(cam.Project(e.Rect), EnemyChar, core.ColorMagenta)
		}
	}
	dst.FillRect(cam.Project(snap.Player.Rect), PlayerChar, core.ColorCyan)
}

// Render draws the world under a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Screen too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	snap := g.world.Snapshot()
	cam := FollowCamera(snap, dst.Width(), dst.Height()-HUDRows, HUDRows)
	DrawWorld(dst, snap, cam)
	g.drawHUD(dst, snap)

	s := snap.Session
	switch s.Phase() {
	case sim.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case sim.PhaseTransition:
		drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d COMPLETE", s.CurrentLevel),
			fmt.Sprintf("Score: %d  |  Enter for level %d", s.Score(), s.CurrentLevel+1))
	case sim.PhaseWon:
		drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to play again", s.Score()))
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	s := snap.Session
	dst.FillRect(core.NewRect(0, 0, dst.Width(), HUDRows), ' ', core.ColorDefault)

	left := fmt.Sprintf(" L%d %s ", s.CurrentLevel, snap.LevelName)
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	stars := "-"
	if s.StarsThisLevel > 0 {
		stars = "*"
	}
	right := fmt.Sprintf(" o%d %s ▒%d/%d  %d ", s.Coins, stars, s.BlocksRemaining, s.MaxBlocks, s.Score())
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxW = min(boxW, dst.Width())
	boxH := 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+2, subtitle, core.ColorDefault)
}
