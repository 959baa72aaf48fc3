// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tunable parameters of the runner.
type RunnerConfig struct {
	Player    RunnerPlayer    `yaml:"player"`
	Platforms RunnerPlatforms `yaml:"platforms"`
	Camera    RunnerCamera    `yaml:"camera"`
	Score     RunnerScore     `yaml:"score"`
}

// RunnerPlayer defines the player's physics parameters. Rates are per second.
type RunnerPlayer struct {
	RunAcceleration  float64 `yaml:"run_acceleration"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	Gravity          float64 `yaml:"gravity"`
	BottomOfTheWorld float64 `yaml:"bottom_of_the_world"` // Fall threshold (y)
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	StartVelocityX   float64 `yaml:"start_velocity_x"`
	ColliderWidth    float64 `yaml:"collider_width"`
	ColliderHeight   float64 `yaml:"collider_height"`
}

// RunnerPlatforms defines spawning and recycling of platforms.
type RunnerPlatforms struct {
	SpawnDistance   float64 `yaml:"spawn_distance"`
	RecycleDistance float64 `yaml:"recycle_distance"`
	MinWidth        float64 `yaml:"min_width"`
	MaxWidth        float64 `yaml:"max_width"`
	MinXSpacing     float64 `yaml:"min_x_spacing"`
	MaxXSpacing     float64 `yaml:"max_x_spacing"`
	MinYSpacing     float64 `yaml:"min_y_spacing"`
	MaxYSpacing     float64 `yaml:"max_y_spacing"`
	FirstX          float64 `yaml:"first_x"` // Initial spawn cursor
	FirstY          float64 `yaml:"first_y"`
}

// RunnerCamera defines camera placement and behaviour.
type RunnerCamera struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Smoothing float64 `yaml:"smoothing"`
	OrthoSize float64 `yaml:"ortho_size"` // Half of the visible height in world units
	ZoomStep  float64 `yaml:"zoom_step"`
}

// RunnerScore defines scoring.
type RunnerScore struct {
	PerLanding   int    `yaml:"per_landing"`
	ZoomEvery    int    `yaml:"zoom_every"`
	GameOverText string `yaml:"game_over_text"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"

	// DifficultyCustom labels runs played on a user supplied config file.
	DifficultyCustom DifficultyPreset = "custom"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
