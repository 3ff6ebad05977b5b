package sim

// StepResult reports one frame.
type StepResult struct {
	Frame   int
	Events  []Event
	Session Session
}

// Step advances the world by one frame. It does nothing while the level is
// not running or the game is paused. Events are returned in the order they
// happened.
func (w *World) Step(in Input) StepResult {
	w.events = nil
	if !w.session.Running || w.session.Paused {
		return w.result()
	}
	w.session.Frames++

	if Intersects(w.player.Rect, w.level.Goal) {
		w.completeLevel()
		return w.result()
	}
	if w.session.Won {
		return w.result()
	}

	w.player.JustLanded = false
	w.applyInput(in)
	w.integrate()
	if w.params.FallLimit > 0 && w.player.Y > w.params.FallLimit {
		w.die(CauseFall)
	}
	if in.Build {
		w.build()
	}
	w.patrolEnemies()
	w.collidePlatforms()
	w.collideObstacles()
	w.collideEnemies()
	w.collectCoins()
	w.collectStar()

	return w.result()
}

func (w *World) result() StepResult {
	return StepResult{
		Frame:   w.session.Frames,
		Events:  w.events,
		Session: w.session,
	}
}

func (w *World) completeLevel() {
	s := &w.session
	s.LevelComplete = true
	s.Running = false
	s.CoinsBanked += s.Coins

	if s.CurrentLevel < w.campaign.Len() {
		s.ShowLevelTransition = true
		w.emit(EventLevelComplete, w.level.Goal, "")
		return
	}
	s.Won = true
	w.emit(EventGameWon, w.level.Goal, "")
}

func (w *World) applyInput(in Input) {
	p := &w.player
	switch {
	case in.Left:
		p.VX = -w.params.MoveSpeed
	case in.Right:
		p.VX = w.params.MoveSpeed
	default:
		p.VX *= w.params.Friction
	}

	if in.Jump && p.OnGround && !p.JustLanded {
		p.VY = w.params.JumpForce
		p.OnGround = false
		w.emit(EventJump, p.Rect, "")
	}
}

func (w *World) integrate() {
	p := &w.player
	p.VY += w.params.Gravity
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 {
		p.X = 0
	}
	if p.Right() > w.level.Width {
		p.X = w.level.Width - p.W
	}
}

// collidePlatforms resolves against level platforms first, then blocks.
func (w *World) collidePlatforms() {
	p := &w.player
	p.OnGround = false
	for _, plat := range w.level.Platforms {
		ResolvePlatform(p, plat.Rect)
	}
	for _, b := range w.blocks {
		ResolvePlatform(p, b.Rect)
	}
}

func (w *World) collideObstacles() {
	for _, o := range w.level.Obstacles {
		if Intersects(w.player.Rect, o.Rect) {
			w.die(CauseSpike)
		}
	}
}

func (w *World) collideEnemies() {
	p := &w.player
	for i := range w.level.Enemies {
		e := &w.level.Enemies[i]
		if !e.Alive || !Intersects(p.Rect, e.Rect) {
			continue
		}
		if p.VY > 0 && p.Y < e.Y {
			e.Alive = false
			p.VY = w.params.StompBounce
			w.emit(EventEnemyStomp, e.Rect, "")
			continue
		}
		w.die(CauseEnemy)
	}
}

func (w *World) collectCoins() {
	for i := range w.level.Coins {
		c := &w.level.Coins[i]
		if c.Collected || !Intersects(w.player.Rect, c.Rect) {
			continue
		}
		c.Collected = true
		w.session.Coins++
		w.emit(EventCoinPickup, c.Rect, "")
	}
}

// collectStar raises block capacity for the rest of the run.
func (w *World) collectStar() {
	if w.star == nil || w.star.Collected || !Intersects(w.player.Rect, w.star.Rect) {
		return
	}
	w.star.Collected = true
	s := &w.session
	s.StarsThisLevel = 1
	s.MaxBlocks++
	s.BlocksRemaining++
	s.TotalStars++
	w.emit(EventStarPickup, w.star.Rect, "")
}
