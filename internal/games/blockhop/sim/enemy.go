package sim

// patrolEnemies walks every live enemy along its platform. An enemy that
// would leave its platform, or touches either end of it, stays put for the
// frame and turns around.
func (w *World) patrolEnemies() {
	width := w.level.Width
	for i := range w.level.Enemies {
		e := &w.level.Enemies[i]
		if !e.Alive {
			continue
		}
		oldX := e.X
		e.X += float64(e.Direction) * e.Speed

		plat, ok := w.supportOf(e.Rect)
		if !ok || e.X <= plat.X || e.Right() >= plat.Right() {
			e.Direction = -e.Direction
			e.X = oldX
		}

		if e.X < 0 {
			e.X = 0
			e.Direction = 1
		}
		if e.Right() > width {
			e.X = width - e.W
			e.Direction = -1
		}
	}
}

// supportOf returns the first static platform r is standing on: horizontal
// overlap and feet within the enemy tolerance of the platform top.
func (w *World) supportOf(r Rect) (Rect, bool) {
	tol := w.params.EnemyTolerance
	feet := r.Bottom()
	for _, p := range w.level.Platforms {
		if r.Right() > p.X && r.X < p.Right() &&
			feet >= p.Y-tol && feet <= p.Y+tol {
			return p.Rect, true
		}
	}
	return Rect{}, false
}
