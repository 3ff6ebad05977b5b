package sim

import "math"

// Generate builds a procedural level from gen, drawing every random choice
// from rng. The same seed and params always give the same level.
//
// Platforms[0] is the ground strip, Platforms[1] the starting platform and
// the last platform carries the goal. Generation always terminates; when
// placements keep failing the level simply has fewer entities.
func Generate(rng RNG, gen GeneratorParams) *Level {
	g := &generator{rng: rng, gen: gen}
	g.placePlatforms()
	goalY := g.placeGoalPlatform()
	g.placeSpikes()
	g.placeCoins()
	g.placeEnemies()

	return &Level{
		Width:       gen.Width,
		PlayerStart: gen.PlayerStart,
		Goal:        R(gen.Width-gen.GoalInset, goalY-GoalSize, GoalSize, GoalSize),
		Platforms:   g.platforms,
		Obstacles:   g.obstacles,
		Coins:       g.coins,
		Enemies:     g.enemies,
	}
}

type generator struct {
	rng RNG
	gen GeneratorParams

	platforms []Platform
	obstacles []Obstacle
	coins     []Collectible
	enemies   []Enemy
}

// between returns a uniform int in the inclusive range.
func (g *generator) between(r IntRange) int {
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}

func (g *generator) staticPlatform(x, y, w float64) Platform {
	return Platform{Rect: R(x, y, w, PlatformHeight), Kind: PlatformStatic}
}

func (g *generator) placePlatforms() {
	gen := g.gen
	g.platforms = append(g.platforms,
		g.staticPlatform(0, gen.GroundY, gen.Width),
		g.staticPlatform(0, gen.GroundY, gen.StartPlatform),
	)

	x := gen.FirstPlatformX
	count := g.between(gen.PlatformCount)
	for i := 0; i < count; i++ {
		w := float64(g.between(gen.PlatformWidth))
		x += float64(g.between(gen.PlatformGap))
		y := gen.BaseY + float64(g.between(gen.YVariation))
		y = math.Max(gen.MinY, math.Min(gen.MaxY, y))

		candidate := g.staticPlatform(x, y, w)
		if !g.platformFits(candidate.Rect) {
			candidate.Y = math.Max(gen.MinY, y-gen.RetryLift)
			if !g.platformFits(candidate.Rect) {
				continue
			}
		}
		g.platforms = append(g.platforms, candidate)
	}
}

// platformFits rejects platforms reaching into the ground strip, past the
// level end or touching an already placed platform.
func (g *generator) platformFits(r Rect) bool {
	if r.Bottom() > g.gen.GroundY || r.Right() > g.gen.Width {
		return false
	}
	for _, p := range g.platforms {
		if Intersects(r, p.Rect) {
			return false
		}
	}
	return true
}

func (g *generator) placeGoalPlatform() float64 {
	gen := g.gen
	goalY := float64(g.between(gen.GoalY))
	goal := g.staticPlatform(gen.Width-gen.GoalPlatformInset, goalY, gen.GoalPlatformWidth)

	// Generated platforms under the goal column give way to it.
	kept := g.platforms[:2]
	for _, p := range g.platforms[2:] {
		if !Intersects(p.Rect, goal.Rect) {
			kept = append(kept, p)
		}
	}
	g.platforms = append(kept, goal)
	return goalY
}

func (g *generator) placeSpikes() {
	gen := g.gen
	start := g.platforms[1]
	startCenter := start.CenterX()

	want := g.between(gen.SpikeCount)
	placed := 0
	for attempts := 0; placed < want && attempts < gen.SpikeAttempts; attempts++ {
		var spike Obstacle
		if g.rng.Float64() < gen.GroundSpikeChance {
			x := float64(g.rng.Intn(int(gen.Width) - SpikeWidth))
			if math.Abs(x-startCenter) < gen.SafeRadius {
				continue
			}
			spike = Spike(x, gen.GroundY-SpikeHeight)
		} else {
			idx := g.rng.Intn(len(g.platforms)-1) + 1
			p := g.platforms[idx]
			x := p.X + float64(g.rng.Intn(int(p.W)-SpikeWidth))
			if idx == 1 && math.Abs(x-startCenter) < gen.SafeRadius {
				continue
			}
			spike = Spike(x, p.Y-SpikeHeight)
		}

		if overlapsObstacle(spike.Rect, g.obstacles) {
			continue
		}
		g.obstacles = append(g.obstacles, spike)
		placed++
	}
}

func (g *generator) placeCoins() {
	gen := g.gen
	want := g.between(gen.CoinCount)
	placed := 0
	for attempts := 0; placed < want && attempts < gen.CoinAttempts; attempts++ {
		p := g.platforms[g.rng.Intn(len(g.platforms)-1)+1]
		coin := Coin(p.X+float64(g.rng.Intn(int(p.W)-CoinSize)), p.Y-gen.CoinLift)

		if overlapsObstacle(coin.Rect, g.obstacles) || coin.Y > gen.CoinMaxY {
			continue
		}
		if overlapsCollectible(coin.Rect, g.coins) {
			continue
		}
		g.coins = append(g.coins, coin)
		placed++
	}
}

func (g *generator) placeEnemies() {
	gen := g.gen
	if len(g.platforms) < 3 {
		return
	}
	want := g.between(gen.EnemyCount)
	placed := 0
	for attempts := 0; placed < want && attempts < gen.EnemyAttempts; attempts++ {
		p := g.platforms[g.rng.Intn(len(g.platforms)-2)+2]
		r := R(p.X+float64(g.rng.Intn(int(p.W)-EnemySize)), p.Y-EnemySize, EnemySize, EnemySize)

		if overlapsObstacle(r, g.obstacles) || r.Y > gen.EnemyMaxY {
			continue
		}
		if overlapsEnemy(r, g.enemies) {
			continue
		}

		dir := -1
		if g.rng.Float64() > 0.5 {
			dir = 1
		}
		speed := gen.EnemySpeed.Min + g.rng.Float64()*(gen.EnemySpeed.Max-gen.EnemySpeed.Min)
		g.enemies = append(g.enemies, Enemy{Rect: r, Direction: dir, Speed: speed, Alive: true})
		placed++
	}
}

func overlapsObstacle(r Rect, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if Intersects(r, o.Rect) {
			return true
		}
	}
	return false
}

func overlapsCollectible(r Rect, items []Collectible) bool {
	for _, c := range items {
		if Intersects(r, c.Rect) {
			return true
		}
	}
	return false
}

func overlapsEnemy(r Rect, enemies []Enemy) bool {
	for _, e := range enemies {
		if Intersects(r, e.Rect) {
			return true
		}
	}
	return false
}
