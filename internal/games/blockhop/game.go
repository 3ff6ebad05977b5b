// Package blockhop adapts the Block Hop simulation to the arcade platform.
// It maps key presses to simulation input, records the run for replay and
// draws the world into a character screen.
package blockhop

import (
	"fmt"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/core"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/levels"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
	"github.com/vovakirdan/blockhop/internal/registry"
	"gopkg.in/yaml.v3"
)

// GameID is the registry ID.
const GameID = "blockhop"

// Minimum playable screen size.
const (
	MinScreenW = 30
	MinScreenH = 10
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelsDir stores the authored level directory set via CLI
var levelsDir string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it;
// the CLI validates names before calling.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLevelsDir sets the directory of authored level files.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// LevelsDir returns the directory set with SetLevelsDir.
func LevelsDir() string {
	return levelsDir
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          GameID,
		Title:       "Block Hop",
		Description: "Jump, build blocks and grab the star on the way to the flag",
	}, func() registry.Game { return New() })
}

// Setup is everything needed to build a world: tuning from the config file
// and the level table with authored level files applied.
type Setup struct {
	Config     config.BlockHopConfig
	Params     sim.Params
	Campaign   sim.Campaign
	Difficulty config.DifficultyPreset
}

// LoadSetup reads the config, applies the difficulty preset and loads
// level files from the levels directory, reporting the first problem.
func LoadSetup() (Setup, error) {
	cfg, err := config.LoadBlockHop(configPath)
	if err != nil {
		return Setup{}, err
	}
	if difficultyPreset != "" {
		config.ApplyBlockHopPreset(&cfg, difficultyPreset)
	}

	params := ParamsFromConfig(cfg)
	if err := params.Validate(); err != nil {
		return Setup{}, fmt.Errorf("blockhop: config: %w", err)
	}

	campaign := sim.DefaultCampaign()
	if levelsDir != "" {
		campaign, err = levels.NewLoader(levelsDir).Campaign(campaign)
		if err != nil {
			return Setup{}, err
		}
	}

	return Setup{Config: cfg, Params: params, Campaign: campaign, Difficulty: difficultyPreset}, nil
}

// ParamsFromConfig converts the YAML config into simulation params.
func ParamsFromConfig(cfg config.BlockHopConfig) sim.Params {
	gen := cfg.Generator
	ir := func(r config.Range) sim.IntRange { return sim.IntRange{Min: r.Min, Max: r.Max} }

	return sim.Params{
		Gravity:        cfg.Physics.Gravity,
		JumpForce:      cfg.Physics.JumpForce,
		MoveSpeed:      cfg.Physics.MoveSpeed,
		Friction:       cfg.Physics.Friction,
		StompBounce:    cfg.Physics.StompBounce,
		FallLimit:      cfg.Physics.FallLimit,
		PlayerSize:     cfg.Player.Size,
		BlockSize:      cfg.Build.BlockSize,
		StartBlocks:    cfg.Build.StartBlocks,
		EnemyTolerance: cfg.Enemy.GroundTolerance,
		Generator: sim.GeneratorParams{
			Width:         gen.Width,
			GroundY:       gen.GroundY,
			StartPlatform: gen.StartPlatformWidth,
			PlayerStart:   sim.Point{X: cfg.Player.StartX, Y: cfg.Player.StartY},

			FirstPlatformX: gen.FirstPlatformX,
			PlatformCount:  ir(gen.PlatformCount),
			PlatformWidth:  ir(gen.PlatformWidth),
			PlatformGap:    ir(gen.PlatformGap),
			BaseY:          gen.BaseY,
			YVariation:     ir(gen.YVariation),
			MinY:           gen.MinY,
			MaxY:           gen.MaxY,
			RetryLift:      gen.RetryLift,

			GoalPlatformInset: gen.GoalPlatformInset,
			GoalPlatformWidth: gen.GoalPlatformWidth,
			GoalY:             ir(gen.GoalY),
			GoalInset:         gen.GoalInset,

			SpikeCount:        ir(gen.SpikeCount),
			SpikeAttempts:     gen.SpikeAttempts,
			GroundSpikeChance: gen.GroundSpikeChance,
			SafeRadius:        gen.SafeRadius,

			CoinCount:    ir(gen.CoinCount),
			CoinAttempts: gen.CoinAttempts,
			CoinLift:     gen.CoinLift,
			CoinMaxY:     gen.CoinMaxY,

			EnemyCount:    ir(gen.EnemyCount),
			EnemyAttempts: gen.EnemyAttempts,
			EnemyMaxY:     gen.EnemyMaxY,
			EnemySpeed:    sim.FloatRange{Min: gen.EnemySpeed.Min, Max: gen.EnemySpeed.Max},
		},
	}
}

// Game implements registry.Game for Block Hop.
type Game struct {
	runtime core.RuntimeConfig
	setup   Setup
	world   *sim.World
	hold    *core.HoldTracker
	replay  sim.Replay

	// setupErr is the problem that forced built-in defaults, if any.
	setupErr error
	// events holds the simulation events of the last Step.
	events []sim.Event
	// buildDown is set while the build key was pressed or held last tick.
	buildDown bool
}

// New creates a new Block Hop game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Block Hop"
}

// Reset loads the configuration and level files and starts a new run.
// Broken config or level files fall back to the built-in defaults; the
// error stays available from SetupErr.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	setup, err := LoadSetup()
	g.setupErr = err
	if err != nil {
		cfg := config.DefaultBlockHopConfig()
		setup = Setup{Config: cfg, Params: ParamsFromConfig(cfg), Campaign: sim.DefaultCampaign()}
	}

	seed := uint64(runtime.Seed)
	world, err := sim.NewWorld(setup.Params, setup.Campaign, seed)
	if err != nil {
		g.setupErr = err
		setup.Params = sim.DefaultParams()
		setup.Campaign = sim.DefaultCampaign()
		if world, err = sim.NewWorld(setup.Params, setup.Campaign, seed); err != nil {
			panic(fmt.Sprintf("blockhop: built-in defaults rejected: %v", err))
		}
	}

	g.setup = setup
	g.world = world
	g.hold = core.NewHoldTracker(setup.Config.Input.HoldTicks(runtime.TickRate))
	g.replay = sim.Replay{Seed: seed, Difficulty: string(setup.Difficulty)}
	g.events = nil
	g.buildDown = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	frame := g.hold.Update(in)
	session := g.world.Session()

	restart := frame.Pressed(core.ActionRestart) ||
		(session.Won && frame.Pressed(core.ActionConfirm))
	advance := session.ShowLevelTransition &&
		(frame.Pressed(core.ActionConfirm) || frame.Pressed(core.ActionJump))
	pause := frame.Pressed(core.ActionPause)

	input := sim.Input{
		Left:  frame.Has(core.ActionLeft),
		Right: frame.Has(core.ActionRight),
		Jump:  frame.Has(core.ActionJump),
		Build: frame.Pressed(core.ActionBuild) && !g.buildDown,
	}
	// auto-repeat keeps the key held, so one block per key press
	g.buildDown = frame.Has(core.ActionBuild)
	if advance || restart {
		// the key that started the level must not also make the player hop
		input.Jump = false
		g.hold.Release(core.ActionJump)
	}

	cmd := sim.NewCommand(input, advance, restart, pause)
	g.replay.Record(cmd)

	res, err := cmd.Apply(g.world)
	if err != nil {
		g.setupErr = err
	}
	g.events = res.Events

	names := make([]string, len(res.Events))
	for i, ev := range res.Events {
		names[i] = EventName(ev)
	}
	return core.StepResult{State: g.State(), Events: names}
}

// EventName formats an event for logs, e.g. "death:spike".
func EventName(ev sim.Event) string {
	if ev.Cause != "" {
		return ev.Kind.String() + ":" + ev.Cause
	}
	return ev.Kind.String()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.Session()
	return core.GameState{
		Score:    s.Score(),
		GameOver: s.Won,
		Paused:   s.Paused,
		Status:   g.status(s),
	}
}

func (g *Game) status(s sim.Session) string {
	switch s.Phase() {
	case sim.PhaseWon:
		return "Won"
	case sim.PhaseTransition:
		return fmt.Sprintf("Level %d complete", s.CurrentLevel)
	case sim.PhasePaused:
		return "Paused"
	default:
		return fmt.Sprintf("Level %d", s.CurrentLevel)
	}
}

// RunStats summarises the run for the score table.
func (g *Game) RunStats() core.RunStats {
	s := g.world.Session()
	return core.RunStats{
		Level:      s.CurrentLevel,
		Coins:      s.CoinsBanked + s.Coins,
		Stars:      s.TotalStars,
		BlocksUsed: s.BlocksUsed,
		Deaths:     s.Deaths,
		Frames:     s.Frames,
		Won:        s.Won,
	}
}

// Recording returns the commands of every frame since Reset.
func (g *Game) Recording() sim.Replay {
	r := g.replay
	r.Runs = append([]sim.Run(nil), g.replay.Runs...)
	return r
}

// EncodeRecording returns the recording as YAML.
func (g *Game) EncodeRecording() ([]byte, error) {
	data, err := yaml.Marshal(g.Recording())
	if err != nil {
		return nil, fmt.Errorf("blockhop: encode replay: %w", err)
	}
	return data, nil
}

// DecodeReplay parses a recording written by EncodeRecording.
func DecodeReplay(data []byte) (sim.Replay, error) {
	var r sim.Replay
	if err := yaml.Unmarshal(data, &r); err != nil {
		return sim.Replay{}, fmt.Errorf("blockhop: decode replay: %w", err)
	}
	if len(r.Runs) == 0 {
		return sim.Replay{}, fmt.Errorf("blockhop: decode replay: no recorded frames")
	}
	return r, nil
}

// Events returns the simulation events of the last Step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Snapshot returns the renderable world state.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// SetupErr reports why Reset fell back to the built-in defaults, or the
// last level load failure.
func (g *Game) SetupErr() error {
	return g.setupErr
}

// ReloadLevels re-reads the levels directory and swaps the level table.
// The running level continues; reloaded files apply from the next load.
// It returns the new number of levels.
func (g *Game) ReloadLevels() (int, error) {
	if levelsDir == "" {
		return g.world.Campaign().Len(), nil
	}
	campaign, err := levels.NewLoader(levelsDir).Campaign(sim.DefaultCampaign())
	if err != nil {
		return g.world.Campaign().Len(), err
	}
	g.setup.Campaign = campaign
	g.world.SetCampaign(campaign)
	return campaign.Len(), nil
}
