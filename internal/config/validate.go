package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/speedball/internal/core"
)

// Validate reports every missing or out-of-range required field.
func (c SpeedballConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	unit := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)

	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("paddle.wide_factor", c.Paddle.WideFactor)
	if c.Paddle.Y < 0 || c.Paddle.Y+c.Paddle.Height > c.Field.Height {
		errs = append(errs, fmt.Errorf("paddle.y %v places the paddle outside the field", c.Paddle.Y))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v exceeds field width", c.Paddle.Width))
	}

	positive("ball.radius", c.Ball.Radius)
	positive("ball.speed", c.Ball.Speed)
	unit("ball.bounce_spread", c.Ball.BounceSpread)

	positive("bricks.rows", float64(c.Bricks.Rows))
	positive("bricks.cols", float64(c.Bricks.Cols))
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	if len(c.Bricks.Tiers) == 0 {
		errs = append(errs, errors.New("bricks.tiers must not be empty"))
	}
	for i, tier := range c.Bricks.Tiers {
		if tier.Hits < 1 {
			errs = append(errs, fmt.Errorf("bricks.tiers[%d].hits must be at least 1", i))
		}
		if _, ok := core.ParseColor(tier.Color); !ok {
			errs = append(errs, fmt.Errorf("bricks.tiers[%d].color %q is not a palette color", i, tier.Color))
		}
	}
	for i, idx := range c.Bricks.RowTiers {
		if idx < 0 || idx >= len(c.Bricks.Tiers) {
			errs = append(errs, fmt.Errorf("bricks.row_tiers[%d] = %d has no tier", i, idx))
		}
	}

	unit("powerups.drop_chance", c.PowerUps.DropChance)
	unit("powerups.increased_drop_chance", c.PowerUps.IncreasedDropChance)
	unit("powerups.decreased_drop_chance", c.PowerUps.DecreasedDropChance)
	positive("powerups.fall_speed", c.PowerUps.FallSpeed)
	positive("powerups.frame_ms", float64(c.PowerUps.FrameMS))
	positive("powerups.slow_factor", c.PowerUps.SlowFactor)
	positive("powerups.split_count", float64(c.PowerUps.SplitCount))

	positive("sprint.acceleration_ms", float64(c.Sprint.AccelerationMS))
	positive("sprint.default_speed", c.Sprint.DefaultSpeed)
	if c.Sprint.TopSpeed < c.Sprint.DefaultSpeed {
		errs = append(errs, fmt.Errorf("sprint.top_speed %v is below default_speed %v", c.Sprint.TopSpeed, c.Sprint.DefaultSpeed))
	}

	positive("analysis.interval_ms", float64(c.Analysis.IntervalMS))
	positive("analysis.history_size", float64(c.Analysis.HistorySize))

	positive("gameplay.lives", float64(c.Gameplay.Lives))
	if c.Gameplay.RespawnDelayMS < 0 || c.Gameplay.LevelDelayMS < 0 {
		errs = append(errs, errors.New("gameplay delays must not be negative"))
	}

	return errors.Join(errs...)
}
