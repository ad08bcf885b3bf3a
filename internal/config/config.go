// Package config provides YAML-based game configuration loading and
// difficulty presets for Skyfall.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Playfield    Playfield    `yaml:"playfield"`
	Physics      Physics      `yaml:"physics"`
	Player       Player       `yaml:"player"`
	Collectibles Collectibles `yaml:"collectibles"`
	Obstacles    Obstacles    `yaml:"obstacles"`
	Effects      Effects      `yaml:"effects"`
	Timer        Timer        `yaml:"timer"`
	Difficulty   Difficulty   `yaml:"difficulty"`
}

// Playfield defines the logical coordinate space the simulation runs in.
// The terminal renderer scales this space to the visible cell grid.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the player's vertical motion parameters, in logical
// units per nominal tick.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// Player defines the player's fixed horizontal position and hitbox size.
type Player struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// Reward defines what a collectible kind is worth on pickup.
type Reward struct {
	Score     int     `yaml:"score"`
	TimeBonus float64 `yaml:"time_bonus"` // seconds added to the countdown
}

// Collectibles defines spawn, motion, and reward parameters for pickups.
type Collectibles struct {
	Size        float64 `yaml:"size"`
	BaseSpeed   float64 `yaml:"base_speed"`
	SpawnChance float64 `yaml:"spawn_chance"` // per-tick probability before scaling
	SpawnCap    float64 `yaml:"spawn_cap"`    // ceiling after difficulty scaling

	Token        Reward `yaml:"token"`
	DoublePoints Reward `yaml:"double_points"`
	Shield       Reward `yaml:"shield"`
}

// Obstacles defines spawn and motion parameters for hazards.
type Obstacles struct {
	Size        float64 `yaml:"size"`
	BaseSpeed   float64 `yaml:"base_speed"`
	SpawnChance float64 `yaml:"spawn_chance"`
	SpawnCap    float64 `yaml:"spawn_cap"`
}

// Effects defines real-time durations for timed player states.
type Effects struct {
	DoublePointsMS int `yaml:"double_points_ms"`
	ShieldMS       int `yaml:"shield_ms"`
}

// Timer defines the countdown parameters.
type Timer struct {
	Start float64 `yaml:"start"` // initial time budget in seconds
}

// Difficulty defines the score-driven difficulty step function:
// multiplier = 1 + floor(score/step_score) * step_amount.
type Difficulty struct {
	StepScore  int     `yaml:"step_score"`
	StepAmount float64 `yaml:"step_amount"`
}

// Preset represents a named difficulty level selectable from the CLI.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ApplyPreset adjusts the difficulty step for a named preset.
// "fixed" disables scaling entirely; unknown presets are ignored.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Difficulty.StepAmount = 0.1
	case PresetNormal:
		cfg.Difficulty.StepAmount = 0.2
	case PresetHard:
		cfg.Difficulty.StepAmount = 0.3
	case PresetFixed:
		cfg.Difficulty.StepAmount = 0
	}
}
