package config

import (
	_ "embed"
)

//go:embed defaults/speedball.yaml
var defaultSpeedballYAML []byte

// DefaultSpeedballConfig returns the built-in configuration. It matches
// defaults/speedball.yaml and is the fallback if the embedded file fails
// to parse.
func DefaultSpeedballConfig() SpeedballConfig {
	return SpeedballConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Paddle: PaddleConfig{
			Width:      100,
			Height:     15,
			Y:          550,
			Speed:      8,
			WideFactor: 1.5,
		},
		Ball: BallConfig{
			Radius:       8,
			Speed:        5,
			LaunchJitter: 4,
			BounceSpread: 0.6,
			SplitAngle:   0.5,
		},
		Bricks: BricksConfig{
			Rows:       6,
			Cols:       10,
			Width:      75,
			Height:     20,
			Padding:    5,
			OffsetTop:  60,
			OffsetLeft: 37.5,
			Tiers: []TierConfig{
				{Name: "red", Color: "red", Hits: 1, Points: 10},
				{Name: "orange", Color: "orange", Hits: 1, Points: 20},
				{Name: "yellow", Color: "yellow", Hits: 2, Points: 30},
				{Name: "green", Color: "green", Hits: 2, Points: 40},
			},
			RowTiers: []int{0, 0, 1, 1, 2, 3},
		},
		PowerUps: PowerUpsConfig{
			DropChance:          0.15,
			IncreasedDropChance: 0.25,
			DecreasedDropChance: 0.10,
			Width:               30,
			Height:              20,
			FallSpeed:           2,
			FrameMS:             16,
			WideDurationMS:      15000,
			SlowDurationMS:      20000,
			SlowFactor:          0.7,
			SplitCount:          2,
		},
		Particles: ParticlesConfig{
			BurstCount: 8,
			Spread:     8,
			Life:       30,
			MinSize:    1,
			MaxSize:    4,
			Gravity:    0.3,
		},
		Sprint: SprintConfig{
			AccelerationMS: 500,
			DefaultSpeed:   5,
			TopSpeed:       50,
		},
		Analysis: AnalysisConfig{
			IntervalMS:        1000,
			HistorySize:       10,
			LongLevelMS:       120000,
			LowProgressMS:     60000,
			LowProgressBricks: 10,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			RespawnDelayMS:  1000,
			LevelDelayMS:    2000,
			BallSpeedStep:   0.2,
			PaddleSpeedStep: 0.2,
		},
	}
}
