package sim

import (
	"errors"
	"fmt"
)

// IntRange is an inclusive integer range.
type IntRange struct {
	Min, Max int
}

// FloatRange is a half-open float range [Min, Max).
type FloatRange struct {
	Min, Max float64
}

// Params are the physics and rule constants of a World.
type Params struct {
	Gravity     float64
	JumpForce   float64 // negative: up
	MoveSpeed   float64
	Friction    float64 // velocity multiplier when no direction is held
	StompBounce float64 // vertical velocity after a stomp
	FallLimit   float64 // kill plane y; 0 disables it

	PlayerSize  float64
	BlockSize   float64
	StartBlocks int

	// EnemyTolerance is how far an enemy's feet may be from a platform top
	// and still count as standing on it.
	EnemyTolerance float64

	Generator GeneratorParams
}

// GeneratorParams drive procedural level generation.
type GeneratorParams struct {
	Width         float64
	GroundY       float64
	StartPlatform float64 // width of the starting platform at x=0
	PlayerStart   Point

	FirstPlatformX float64
	PlatformCount  IntRange
	PlatformWidth  IntRange
	PlatformGap    IntRange
	BaseY          float64
	YVariation     IntRange
	MinY, MaxY     float64
	RetryLift      float64

	GoalPlatformInset float64 // goal platform x = Width - inset
	GoalPlatformWidth float64
	GoalY             IntRange
	GoalInset         float64 // goal x = Width - inset

	SpikeCount        IntRange
	SpikeAttempts     int
	GroundSpikeChance float64
	SafeRadius        float64

	CoinCount    IntRange
	CoinAttempts int
	CoinLift     float64
	CoinMaxY     float64

	EnemyCount    IntRange
	EnemyAttempts int
	EnemyMaxY     float64
	EnemySpeed    FloatRange
}

// DefaultParams returns the classic Block Hop tuning.
func DefaultParams() Params {
	return Params{
		Gravity:        0.5,
		JumpForce:      -9,
		MoveSpeed:      5,
		Friction:       0.8,
		StompBounce:    -6,
		FallLimit:      0,
		PlayerSize:     24,
		BlockSize:      32,
		StartBlocks:    3,
		EnemyTolerance: 2,
		Generator:      DefaultGeneratorParams(),
	}
}

// DefaultGeneratorParams returns the generator tuning for the procedural level.
func DefaultGeneratorParams() GeneratorParams {
	return GeneratorParams{
		Width:         1800,
		GroundY:       368,
		StartPlatform: 120,
		PlayerStart:   Point{X: 50, Y: 300},

		FirstPlatformX: 200,
		PlatformCount:  IntRange{8, 11},
		PlatformWidth:  IntRange{60, 120},
		PlatformGap:    IntRange{80, 150},
		BaseY:          350,
		YVariation:     IntRange{-60, 20},
		MinY:           120,
		MaxY:           350,
		RetryLift:      50,

		GoalPlatformInset: 100,
		GoalPlatformWidth: 80,
		GoalY:             IntRange{100, 199},
		GoalInset:         50,

		SpikeCount:        IntRange{8, 11},
		SpikeAttempts:     80,
		GroundSpikeChance: 0.3,
		SafeRadius:        150,

		CoinCount:    IntRange{8, 11},
		CoinAttempts: 50,
		CoinLift:     20,
		CoinMaxY:     350,

		EnemyCount:    IntRange{3, 6},
		EnemyAttempts: 30,
		EnemyMaxY:     340,
		EnemySpeed:    FloatRange{1.5, 2.0},
	}
}

// ErrInvalidParams is wrapped by Validate errors.
var ErrInvalidParams = errors.New("sim: invalid params")

// Validate checks values the step and generator rely on.
func (p Params) Validate() error {
	switch {
	case p.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidParams)
	case p.JumpForce >= 0:
		return fmt.Errorf("%w: jump force must be negative", ErrInvalidParams)
	case p.MoveSpeed <= 0:
		return fmt.Errorf("%w: move speed must be positive", ErrInvalidParams)
	case p.Friction < 0 || p.Friction > 1:
		return fmt.Errorf("%w: friction must be within [0, 1]", ErrInvalidParams)
	case p.PlayerSize <= 0 || p.BlockSize <= 0:
		return fmt.Errorf("%w: sizes must be positive", ErrInvalidParams)
	case p.StartBlocks < 0:
		return fmt.Errorf("%w: start blocks must not be negative", ErrInvalidParams)
	case p.FallLimit < 0:
		return fmt.Errorf("%w: fall limit must not be negative", ErrInvalidParams)
	}
	return p.Generator.Validate()
}

// Validate checks the generator ranges.
func (g GeneratorParams) Validate() error {
	ranges := []struct {
		name string
		r    IntRange
	}{
		{"platform count", g.PlatformCount},
		{"platform width", g.PlatformWidth},
		{"platform gap", g.PlatformGap},
		{"y variation", g.YVariation},
		{"goal y", g.GoalY},
		{"spike count", g.SpikeCount},
		{"coin count", g.CoinCount},
		{"enemy count", g.EnemyCount},
	}
	for _, rr := range ranges {
		if rr.r.Max < rr.r.Min {
			return fmt.Errorf("%w: %s range %d..%d is empty", ErrInvalidParams, rr.name, rr.r.Min, rr.r.Max)
		}
	}
	switch {
	case g.Width <= g.GoalPlatformInset || g.Width <= SpikeWidth:
		return fmt.Errorf("%w: level width %v too small", ErrInvalidParams, g.Width)
	case g.GoalPlatformWidth > g.GoalPlatformInset || g.GoalInset < GoalSize:
		return fmt.Errorf("%w: goal platform or goal reaches past the level end", ErrInvalidParams)
	case g.MinY > g.MaxY:
		return fmt.Errorf("%w: min y above max y", ErrInvalidParams)
	case g.PlatformWidth.Min < EnemySize:
		return fmt.Errorf("%w: platforms narrower than an enemy", ErrInvalidParams)
	case g.EnemySpeed.Max < g.EnemySpeed.Min:
		return fmt.Errorf("%w: enemy speed range is empty", ErrInvalidParams)
	case g.GroundSpikeChance < 0 || g.GroundSpikeChance > 1:
		return fmt.Errorf("%w: ground spike chance must be within [0, 1]", ErrInvalidParams)
	}
	return nil
}
