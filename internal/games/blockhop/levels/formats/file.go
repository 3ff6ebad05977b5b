// Package formats provides the on-disk level schema and its YAML and TOML
// encodings.
package formats

import (
	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
)

// DefaultEnemySpeed is used when a level file omits an enemy's speed.
const DefaultEnemySpeed = 1.5

// File is the schema shared by every level format.
// Sizes of spikes, coins, enemies and the goal are fixed by the game and
// are not stored.
type File struct {
	Number      int         `yaml:"number" toml:"number"`
	Name        string      `yaml:"name,omitempty" toml:"name,omitempty"`
	Width       float64     `yaml:"width" toml:"width"`
	PlayerStart Point       `yaml:"player_start" toml:"player_start"`
	Goal        Point       `yaml:"goal" toml:"goal"`
	Platforms   []Box       `yaml:"platforms" toml:"platforms"`
	Spikes      []Point     `yaml:"spikes,omitempty" toml:"spikes,omitempty"`
	Coins       []Point     `yaml:"coins,omitempty" toml:"coins,omitempty"`
	Enemies     []EnemySpec `yaml:"enemies,omitempty" toml:"enemies,omitempty"`
}

// Point is a top-left corner.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Box is a platform. H defaults to the standard platform height.
type Box struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h,omitempty" toml:"h,omitempty"`
}

// EnemySpec is a patrolling enemy. Dir defaults to 1 (right) and Speed to
// DefaultEnemySpeed.
type EnemySpec struct {
	X     float64 `yaml:"x" toml:"x"`
	Y     float64 `yaml:"y" toml:"y"`
	Dir   int     `yaml:"dir,omitempty" toml:"dir,omitempty"`
	Speed float64 `yaml:"speed,omitempty" toml:"speed,omitempty"`
}

// Level converts the file into a simulation level. The result is not
// validated.
func (f File) Level() *sim.Level {
	lvl := &sim.Level{
		Number:      f.Number,
		Name:        f.Name,
		Width:       f.Width,
		PlayerStart: sim.Point{X: f.PlayerStart.X, Y: f.PlayerStart.Y},
		Goal:        sim.R(f.Goal.X, f.Goal.Y, sim.GoalSize, sim.GoalSize),
	}
	for _, b := range f.Platforms {
		h := b.H
		if h == 0 {
			h = sim.PlatformHeight
		}
		lvl.Platforms = append(lvl.Platforms, sim.Platform{Rect: sim.R(b.X, b.Y, b.W, h), Kind: sim.PlatformStatic})
	}
	for _, s := range f.Spikes {
		lvl.Obstacles = append(lvl.Obstacles, sim.Spike(s.X, s.Y))
	}
	for _, c := range f.Coins {
		lvl.Coins = append(lvl.Coins, sim.Coin(c.X, c.Y))
	}
	for _, e := range f.Enemies {
		dir := e.Dir
		if dir == 0 {
			dir = 1
		}
		speed := e.Speed
		if speed == 0 {
			speed = DefaultEnemySpeed
		}
		lvl.Enemies = append(lvl.Enemies, sim.Enemy{
			Rect:      sim.R(e.X, e.Y, sim.EnemySize, sim.EnemySize),
			Direction: dir,
			Speed:     speed,
			Alive:     true,
		})
	}
	return lvl
}

// FromLevel converts a simulation level into its file form.
// Player-placed blocks are not part of a level and are never written.
func FromLevel(lvl *sim.Level) File {
	f := File{
		Number:      lvl.Number,
		Name:        lvl.Name,
		Width:       lvl.Width,
		PlayerStart: Point{X: lvl.PlayerStart.X, Y: lvl.PlayerStart.Y},
		Goal:        Point{X: lvl.Goal.X, Y: lvl.Goal.Y},
	}
	for _, p := range lvl.Platforms {
		if p.Kind != sim.PlatformStatic {
			continue
		}
		b := Box{X: p.X, Y: p.Y, W: p.W}
		if p.H != sim.PlatformHeight {
			b.H = p.H
		}
		f.Platforms = append(f.Platforms, b)
	}
	for _, o := range lvl.Obstacles {
		f.Spikes = append(f.Spikes, Point{X: o.X, Y: o.Y})
	}
	for _, c := range lvl.Coins {
		f.Coins = append(f.Coins, Point{X: c.X, Y: c.Y})
	}
	for _, e := range lvl.Enemies {
		f.Enemies = append(f.Enemies, EnemySpec{X: e.X, Y: e.Y, Dir: e.Direction, Speed: e.Speed})
	}
	return f
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}
