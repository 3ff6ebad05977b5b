package sim

// Fixed entity sizes in pixels.
const (
	PlatformHeight = 32
	SpikeWidth     = 32
	SpikeHeight    = 18
	CoinSize       = 16
	StarSize       = 20
	EnemySize      = 24
	GoalSize       = 32
)

// Point is a world position.
type Point struct {
	X, Y float64
}

// Player is the controllable character. The World owns exactly one.
type Player struct {
	Rect
	VX, VY     float64
	OnGround   bool
	JustLanded bool
}

// PlatformKind tells level geometry apart from blocks the player placed.
// Both kinds collide the same way.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformBuildable
)

func (k PlatformKind) String() string {
	if k == PlatformBuildable {
		return "buildable"
	}
	return "static"
}

// Platform is solid geometry.
type Platform struct {
	Rect
	Kind PlatformKind
}

// ObstacleKind enumerates hazards. Spikes are the only kind.
type ObstacleKind int

const (
	ObstacleSpike ObstacleKind = iota
)

// Obstacle is a stateless hazard; touching it kills the player.
type Obstacle struct {
	Rect
	Kind ObstacleKind
}

// Spike returns a spike obstacle at (x, y).
func Spike(x, y float64) Obstacle {
	return Obstacle{Rect: R(x, y, SpikeWidth, SpikeHeight), Kind: ObstacleSpike}
}

// Enemy patrols the top of a static platform.
type Enemy struct {
	Rect
	Direction int // +1 right, -1 left
	Speed     float64
	Alive     bool
}

// CollectibleKind tells coins and stars apart.
type CollectibleKind int

const (
	CollectibleCoin CollectibleKind = iota
	CollectibleStar
)

func (k CollectibleKind) String() string {
	if k == CollectibleStar {
		return "star"
	}
	return "coin"
}

// Collectible is a coin or the level star.
type Collectible struct {
	Rect
	Kind      CollectibleKind
	Collected bool
}

// Coin returns an uncollected coin at (x, y).
func Coin(x, y float64) Collectible {
	return Collectible{Rect: R(x, y, CoinSize, CoinSize), Kind: CollectibleCoin}
}
