// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// BlockHopConfig contains all configuration for Block Hop.
type BlockHopConfig struct {
	Physics   BlockHopPhysics   `yaml:"physics"`
	Player    BlockHopPlayer    `yaml:"player"`
	Build     BlockHopBuild     `yaml:"build"`
	Generator BlockHopGenerator `yaml:"generator"`
	Enemy     BlockHopEnemy     `yaml:"enemy"`
	Input     BlockHopInput     `yaml:"input"`
}

// BlockHopPhysics defines per-frame physics in world pixels.
type BlockHopPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpForce   float64 `yaml:"jump_force"` // negative = up
	MoveSpeed   float64 `yaml:"move_speed"`
	Friction    float64 `yaml:"friction"`
	StompBounce float64 `yaml:"stomp_bounce"`
	FallLimit   float64 `yaml:"fall_limit"` // kill plane y, 0 = none
}

// BlockHopPlayer defines the player body and the procedural spawn point.
type BlockHopPlayer struct {
	Size   float64 `yaml:"size"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// BlockHopBuild defines placeable blocks.
type BlockHopBuild struct {
	BlockSize   float64 `yaml:"block_size"`
	StartBlocks int     `yaml:"start_blocks"`
}

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange is a half-open float range.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// BlockHopGenerator drives the procedural level.
type BlockHopGenerator struct {
	Width              float64 `yaml:"width"`
	GroundY            float64 `yaml:"ground_y"`
	StartPlatformWidth float64 `yaml:"start_platform_width"`

	FirstPlatformX float64 `yaml:"first_platform_x"`
	PlatformCount  Range   `yaml:"platform_count"`
	PlatformWidth  Range   `yaml:"platform_width"`
	PlatformGap    Range   `yaml:"platform_gap"`
	BaseY          float64 `yaml:"base_y"`
	YVariation     Range   `yaml:"y_variation"`
	MinY           float64 `yaml:"min_y"`
	MaxY           float64 `yaml:"max_y"`
	RetryLift      float64 `yaml:"retry_lift"`

	GoalPlatformInset float64 `yaml:"goal_platform_inset"`
	GoalPlatformWidth float64 `yaml:"goal_platform_width"`
	GoalY             Range   `yaml:"goal_y"`
	GoalInset         float64 `yaml:"goal_inset"`

	SpikeCount        Range   `yaml:"spike_count"`
	SpikeAttempts     int     `yaml:"spike_attempts"`
	GroundSpikeChance float64 `yaml:"ground_spike_chance"`
	SafeRadius        float64 `yaml:"safe_radius"`

	CoinCount    Range   `yaml:"coin_count"`
	CoinAttempts int     `yaml:"coin_attempts"`
	CoinLift     float64 `yaml:"coin_lift"`
	CoinMaxY     float64 `yaml:"coin_max_y"`

	EnemyCount    Range      `yaml:"enemy_count"`
	EnemyAttempts int        `yaml:"enemy_attempts"`
	EnemyMaxY     float64    `yaml:"enemy_max_y"`
	EnemySpeed    FloatRange `yaml:"enemy_speed"`
}

// BlockHopEnemy defines patrol behaviour.
type BlockHopEnemy struct {
	GroundTolerance float64 `yaml:"ground_tolerance"`
}

// BlockHopInput tunes held-key emulation. Terminals send repeated key
// presses but no releases, so a key counts as held for HoldMS after its
// last press.
type BlockHopInput struct {
	HoldMS int `yaml:"hold_ms"`
}

// HoldTicks converts the hold window to simulation ticks.
func (in BlockHopInput) HoldTicks(tickRate int) int {
	if in.HoldMS <= 0 || tickRate <= 0 {
		return 0
	}
	return (in.HoldMS*tickRate + 999) / 1000
}
