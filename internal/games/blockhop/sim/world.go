package sim

import (
	"errors"
	"fmt"
)

// ErrNoTransition is returned by Advance when no level is waiting to start.
var ErrNoTransition = errors.New("sim: no level transition pending")

// Input is the abstract control state for one frame.
type Input struct {
	Left, Right, Jump, Build bool
}

// World is the whole simulation context: the loaded level, the player, the
// blocks placed on this level and the session. It is not safe for concurrent
// use; the driver owns it.
type World struct {
	params   Params
	campaign Campaign
	rng      *XorShift
	seed     uint64

	level  *Level
	player Player
	blocks []Platform
	star   *Collectible

	session Session
	events  []Event
}

// NewWorld creates a world and loads level 1.
func NewWorld(params Params, campaign Campaign, seed uint64) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if campaign.Len() == 0 {
		return nil, fmt.Errorf("%w: empty campaign", ErrUnknownLevel)
	}
	w := &World{
		params:   params,
		campaign: campaign,
		rng:      NewRNG(seed),
		seed:     seed,
		session:  newSession(params.StartBlocks),
	}
	if err := w.LoadLevel(1); err != nil {
		return nil, err
	}
	return w, nil
}

// Seed returns the seed the world was created with.
func (w *World) Seed() uint64 {
	return w.seed
}

// Params returns the world's tuning.
func (w *World) Params() Params {
	return w.params
}

// Session returns a copy of the session state.
func (w *World) Session() Session {
	return w.session
}

// Level returns the loaded level. Callers must not modify it.
func (w *World) Level() *Level {
	return w.level
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Campaign returns the level table.
func (w *World) Campaign() Campaign {
	return w.campaign
}

// SetCampaign swaps the level table. The loaded level keeps running; the
// new table applies from the next load.
func (w *World) SetCampaign(c Campaign) {
	if c.Len() > 0 {
		w.campaign = c
	}
}

// LoadLevel replaces the level with a fresh copy of level n and resets all
// level-scoped state. Capacity, total stars, banked coins and deaths carry
// over. On error the world is left untouched.
func (w *World) LoadLevel(n int) error {
	src, err := w.campaign.Source(n)
	if err != nil {
		return err
	}
	lvl, err := src.Load(w.rng, w.params.Generator)
	if err != nil {
		return fmt.Errorf("sim: load level %d: %w", n, err)
	}
	if lvl.Number == 0 {
		lvl.Number = n
	}

	w.level = lvl
	w.blocks = w.blocks[:0]
	w.placePlayer()

	s := &w.session
	s.CurrentLevel = n
	s.BlocksRemaining = s.MaxBlocks
	s.BlocksUsed = 0
	s.Coins = 0
	s.StarsThisLevel = 0
	s.Running = true
	s.Won = false
	s.LevelComplete = false
	s.ShowLevelTransition = false
	s.Paused = false

	for i := range lvl.Coins {
		lvl.Coins[i].Collected = false
	}
	for i := range lvl.Enemies {
		lvl.Enemies[i].Alive = true
	}
	w.star = SpawnStar(lvl.Platforms, w.rng)
	return nil
}

// Advance starts the next level after a level transition.
func (w *World) Advance() error {
	if !w.session.ShowLevelTransition {
		return ErrNoTransition
	}
	return w.LoadLevel(w.session.CurrentLevel + 1)
}

// Restart begins a new run from level 1 with the starting capacity.
// The random stream continues, so a restarted run sees a new procedural level.
func (w *World) Restart() error {
	prev := w.session
	w.session = newSession(w.params.StartBlocks)
	if err := w.LoadLevel(1); err != nil {
		w.session = prev
		return err
	}
	return nil
}

// TogglePause freezes or resumes stepping while a level is running.
func (w *World) TogglePause() {
	if !w.session.Running {
		return
	}
	w.session.Paused = !w.session.Paused
}

func (w *World) placePlayer() {
	size := w.params.PlayerSize
	w.player = Player{
		Rect: R(w.level.PlayerStart.X, w.level.PlayerStart.Y, size, size),
	}
}

// die performs the soft reset: the player returns to the start, placed
// blocks disappear, block allowance and coins reset, enemies revive.
// Capacity and the star's collected flag are kept.
func (w *World) die(cause string) {
	w.emit(EventDeath, w.player.Rect, cause)

	w.placePlayer()
	w.blocks = w.blocks[:0]

	s := &w.session
	s.BlocksRemaining = s.MaxBlocks
	s.BlocksUsed = 0
	s.Coins = 0
	s.Deaths++

	for i := range w.level.Coins {
		w.level.Coins[i].Collected = false
	}
	for i := range w.level.Enemies {
		w.level.Enemies[i].Alive = true
	}
}

func (w *World) emit(kind EventKind, at Rect, cause string) {
	w.events = append(w.events, Event{
		Kind:  kind,
		Frame: w.session.Frames,
		At:    at,
		Cause: cause,
	})
}
