// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import "time"

// SpeedballConfig contains all tunable parameters of the game.
type SpeedballConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Bricks    BricksConfig    `yaml:"bricks"`
	PowerUps  PowerUpsConfig  `yaml:"powerups"`
	Particles ParticlesConfig `yaml:"particles"`
	Sprint    SprintConfig    `yaml:"sprint"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// FieldConfig is the playfield size in world units (pixels).
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and movement.
type PaddleConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Y          float64 `yaml:"y"`
	Speed      float64 `yaml:"speed"`
	WideFactor float64 `yaml:"wide_factor"` // Width multiplier of the wide-paddle power-up
}

// BallConfig defines ball kinematics.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	LaunchJitter float64 `yaml:"launch_jitter"` // Horizontal launch velocity spread
	BounceSpread float64 `yaml:"bounce_spread"` // Full paddle bounce arc, in multiples of pi
	SplitAngle   float64 `yaml:"split_angle"`   // Radians between split balls
}

// BricksConfig defines the grid layout and brick tiers.
type BricksConfig struct {
	Rows       int          `yaml:"rows"`
	Cols       int          `yaml:"cols"`
	Width      float64      `yaml:"width"`
	Height     float64      `yaml:"height"`
	Padding    float64      `yaml:"padding"`
	OffsetTop  float64      `yaml:"offset_top"`
	OffsetLeft float64      `yaml:"offset_left"`
	Tiers      []TierConfig `yaml:"tiers"`
	RowTiers   []int        `yaml:"row_tiers"` // Tier index per row; rows past the end use the last entry
}

// TierConfig describes one brick type.
type TierConfig struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Hits   int    `yaml:"hits"`
	Points int    `yaml:"points"`
}

// PowerUpsConfig defines pickup drop rates and effect parameters.
type PowerUpsConfig struct {
	DropChance          float64 `yaml:"drop_chance"`
	IncreasedDropChance float64 `yaml:"increased_drop_chance"`
	DecreasedDropChance float64 `yaml:"decreased_drop_chance"`
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	FallSpeed           float64 `yaml:"fall_speed"`
	FrameMS             int     `yaml:"frame_ms"` // Countdown step per tick
	WideDurationMS      int     `yaml:"wide_duration_ms"`
	SlowDurationMS      int     `yaml:"slow_duration_ms"`
	SlowFactor          float64 `yaml:"slow_factor"`
	SplitCount          int     `yaml:"split_count"`
}

// ParticlesConfig defines the brick-destruction burst.
type ParticlesConfig struct {
	BurstCount int     `yaml:"burst_count"`
	Spread     float64 `yaml:"spread"`
	Life       int     `yaml:"life"`
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	Gravity    float64 `yaml:"gravity"`
}

// SprintConfig defines the speed burst.
type SprintConfig struct {
	AccelerationMS int     `yaml:"acceleration_ms"`
	DefaultSpeed   float64 `yaml:"default_speed"`
	TopSpeed       float64 `yaml:"top_speed"`
}

// AnalysisConfig defines the assistance heuristic cadence.
type AnalysisConfig struct {
	IntervalMS        int `yaml:"interval_ms"`
	HistorySize       int `yaml:"history_size"`
	LongLevelMS       int `yaml:"long_level_ms"`
	LowProgressMS     int `yaml:"low_progress_ms"`
	LowProgressBricks int `yaml:"low_progress_bricks"`
}

// GameplayConfig defines session rules and level progression.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	RespawnDelayMS  int     `yaml:"respawn_delay_ms"`
	LevelDelayMS    int     `yaml:"level_delay_ms"`
	BallSpeedStep   float64 `yaml:"ball_speed_step"`
	PaddleSpeedStep float64 `yaml:"paddle_speed_step"`
	MaxBallSpeed    float64 `yaml:"max_ball_speed"` // 0 means uncapped
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

// FrameStep returns the power-up countdown step.
func (c PowerUpsConfig) FrameStep() time.Duration { return ms(c.FrameMS) }

// WideDuration returns the wide-paddle effect duration.
func (c PowerUpsConfig) WideDuration() time.Duration { return ms(c.WideDurationMS) }

// SlowDuration returns the slow-ball effect duration.
func (c PowerUpsConfig) SlowDuration() time.Duration { return ms(c.SlowDurationMS) }

// AccelerationPeriod returns the sprint ramp duration.
func (c SprintConfig) AccelerationPeriod() time.Duration { return ms(c.AccelerationMS) }

// Multiplier returns the top speed ratio.
func (c SprintConfig) Multiplier() float64 {
	if c.DefaultSpeed <= 0 {
		return 1
	}
	return c.TopSpeed / c.DefaultSpeed
}

// Interval returns the minimum time between analyses.
func (c AnalysisConfig) Interval() time.Duration { return ms(c.IntervalMS) }

// LongLevel returns the time on level after which help is offered.
func (c AnalysisConfig) LongLevel() time.Duration { return ms(c.LongLevelMS) }

// LowProgress returns the time window of the low-progress rule.
func (c AnalysisConfig) LowProgress() time.Duration { return ms(c.LowProgressMS) }

// RespawnDelay returns the pause between losing a ball and respawning.
func (c GameplayConfig) RespawnDelay() time.Duration { return ms(c.RespawnDelayMS) }

// LevelDelay returns the pause between clearing a level and the next one.
func (c GameplayConfig) LevelDelay() time.Duration { return ms(c.LevelDelayMS) }

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return DifficultyNormal, false
	}
}
