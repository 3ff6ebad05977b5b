package sim

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownLevel is returned when a level number has no source.
var ErrUnknownLevel = errors.New("sim: unknown level")

// ErrInvalidLevel is wrapped by Level.Validate errors.
var ErrInvalidLevel = errors.New("sim: invalid level")

// Level is the geometry and entity set of one level.
// It is not modified after loading except for entity flags (coin collected,
// enemy alive) and enemy positions.
type Level struct {
	Number      int
	Name        string
	Width       float64
	PlayerStart Point
	Goal        Rect
	Platforms   []Platform
	Obstacles   []Obstacle
	Coins       []Collectible
	Enemies     []Enemy
}

// Clone returns a deep copy with every coin uncollected and every enemy
// alive. Authored levels are cloned on each load.
func (l *Level) Clone() *Level {
	c := *l
	c.Platforms = slices.Clone(l.Platforms)
	c.Obstacles = slices.Clone(l.Obstacles)
	c.Coins = slices.Clone(l.Coins)
	c.Enemies = slices.Clone(l.Enemies)
	for i := range c.Coins {
		c.Coins[i].Collected = false
	}
	for i := range c.Enemies {
		c.Enemies[i].Alive = true
	}
	return &c
}

// Validate checks that the level can be played.
func (l *Level) Validate() error {
	if l.Number < 1 {
		return fmt.Errorf("%w: level number %d must be at least 1", ErrInvalidLevel, l.Number)
	}
	if l.Width <= 0 {
		return fmt.Errorf("%w: level %d: width must be positive", ErrInvalidLevel, l.Number)
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("%w: level %d: no platforms", ErrInvalidLevel, l.Number)
	}
	if l.Goal.W <= 0 || l.Goal.H <= 0 {
		return fmt.Errorf("%w: level %d: goal has no area", ErrInvalidLevel, l.Number)
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: level %d: platform %d has no area", ErrInvalidLevel, l.Number, i)
		}
	}
	for i, e := range l.Enemies {
		if e.Direction != 1 && e.Direction != -1 {
			return fmt.Errorf("%w: level %d: enemy %d direction must be 1 or -1", ErrInvalidLevel, l.Number, i)
		}
		if e.Speed < 0 {
			return fmt.Errorf("%w: level %d: enemy %d speed is negative", ErrInvalidLevel, l.Number, i)
		}
	}
	return nil
}

// LevelSource produces a fresh Level each time the level is loaded.
type LevelSource interface {
	Load(rng RNG, gen GeneratorParams) (*Level, error)
}

// Authored serves a fixed, hand-made level.
type Authored struct {
	Level *Level
}

// Load returns a fresh copy of the authored level.
func (a Authored) Load(RNG, GeneratorParams) (*Level, error) {
	if a.Level == nil {
		return nil, fmt.Errorf("%w: empty authored source", ErrInvalidLevel)
	}
	return a.Level.Clone(), nil
}

// Procedural generates a new level on every load.
type Procedural struct {
	Number int
	Name   string
}

// Load runs the generator.
func (p Procedural) Load(rng RNG, gen GeneratorParams) (*Level, error) {
	lvl := Generate(rng, gen)
	lvl.Number = p.Number
	lvl.Name = p.Name
	return lvl, nil
}

// Campaign maps level numbers to sources. Level n is Campaign[n-1].
type Campaign []LevelSource

// DefaultCampaign is the authored first level followed by a generated one.
func DefaultCampaign() Campaign {
	return Campaign{
		Authored{Level: FirstLevel()},
		Procedural{Number: 2, Name: "Generated"},
	}
}

// Source returns the source of level n.
func (c Campaign) Source(n int) (LevelSource, error) {
	if n < 1 || n > len(c) {
		return nil, fmt.Errorf("%w: %d (campaign has %d levels)", ErrUnknownLevel, n, len(c))
	}
	return c[n-1], nil
}

// Len returns the number of levels.
func (c Campaign) Len() int {
	return len(c)
}

// WithLevels returns a copy of c where each authored level replaces the
// source with the same number. A level numbered one past the end extends
// the campaign; any other gap is an error.
func (c Campaign) WithLevels(levels []*Level) (Campaign, error) {
	out := slices.Clone(c)
	sorted := slices.Clone(levels)
	slices.SortFunc(sorted, func(a, b *Level) int { return a.Number - b.Number })

	for _, lvl := range sorted {
		if err := lvl.Validate(); err != nil {
			return nil, err
		}
		switch {
		case lvl.Number <= len(out):
			out[lvl.Number-1] = Authored{Level: lvl}
		case lvl.Number == len(out)+1:
			out = append(out, Authored{Level: lvl})
		default:
			return nil, fmt.Errorf("%w: level %d leaves a gap after level %d", ErrInvalidLevel, lvl.Number, len(out))
		}
	}
	return out, nil
}
