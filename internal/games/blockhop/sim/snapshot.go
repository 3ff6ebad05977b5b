package sim

import (
	"fmt"
	"hash/fnv"
	"slices"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Frame     int
	Level     int
	LevelName string
	Width     float64
	Player    Player
	Goal      Rect
	Platforms []Platform
	Blocks    []Platform
	Obstacles []Obstacle
	Coins     []Collectible
	Enemies   []Enemy
	Star      *Collectible
	Session   Session
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Frame:     w.session.Frames,
		Level:     w.level.Number,
		LevelName: w.level.Name,
		Width:     w.level.Width,
		Player:    w.player,
		Goal:      w.level.Goal,
		Platforms: slices.Clone(w.level.Platforms),
		Blocks:    slices.Clone(w.blocks),
		Obstacles: slices.Clone(w.level.Obstacles),
		Coins:     slices.Clone(w.level.Coins),
		Enemies:   slices.Clone(w.level.Enemies),
		Session:   w.session,
	}
	if w.star != nil {
		star := *w.star
		s.Star = &star
	}
	return s
}

// Hash fingerprints the snapshot for determinism checks. Two worlds fed the
// same seed, campaign and inputs produce equal hashes every frame.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "L:%d:%v;", s.Level, s.Width)
	p := s.Player
	fmt.Fprintf(h, "P:%v:%v:%v:%v:%v:%v;", p.X, p.Y, p.VX, p.VY, p.OnGround, p.JustLanded)
	fmt.Fprintf(h, "G:%v;", s.Goal)

	fmt.Fprintf(h, "S:")
	for _, pl := range s.Platforms {
		fmt.Fprintf(h, "%v,", pl.Rect)
	}
	fmt.Fprintf(h, ";B:")
	for _, b := range s.Blocks {
		fmt.Fprintf(h, "%v,", b.Rect)
	}
	fmt.Fprintf(h, ";O:")
	for _, o := range s.Obstacles {
		fmt.Fprintf(h, "%v,", o.Rect)
	}
	fmt.Fprintf(h, ";C:")
	for _, c := range s.Coins {
		fmt.Fprintf(h, "%v:%v,", c.Rect, c.Collected)
	}
	fmt.Fprintf(h, ";E:")
	for _, e := range s.Enemies {
		fmt.Fprintf(h, "%v:%d:%v:%v,", e.Rect, e.Direction, e.Speed, e.Alive)
	}
	if s.Star != nil {
		fmt.Fprintf(h, ";T:%v:%v", s.Star.Rect, s.Star.Collected)
	}
	fmt.Fprintf(h, ";X:%+v", s.Session)

	return h.Sum64()
}
