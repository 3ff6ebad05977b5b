package sim

// FirstLevel returns the hand-made opening level.
func FirstLevel() *Level {
	plat := func(x, y, w float64) Platform {
		return Platform{Rect: R(x, y, w, PlatformHeight), Kind: PlatformStatic}
	}
	return &Level{
		Number:      1,
		Name:        "First Steps",
		Width:       1500,
		PlayerStart: Point{X: 50, Y: 300},
		Goal:        R(1450, 56, GoalSize, GoalSize),
		Platforms: []Platform{
			plat(0, 368, 200),
			plat(300, 320, 100),
			plat(500, 280, 80),
			plat(700, 240, 100),
			plat(900, 200, 80),
			plat(1100, 160, 100),
			plat(1300, 120, 100),
			plat(1420, 88, 60),
			plat(0, 368, 1500), // ground
		},
		Obstacles: []Obstacle{
			Spike(250, 350),
			Spike(282, 350),
			Spike(450, 310),
			Spike(650, 270),
			Spike(850, 230),
			Spike(1050, 190),
			Spike(1250, 150),
		},
		Coins: []Collectible{
			Coin(150, 320),
			Coin(350, 280),
			Coin(550, 240),
			Coin(750, 200),
			Coin(950, 160),
			Coin(1150, 120),
			Coin(1350, 80),
			Coin(1430, 48),
		},
	}
}
