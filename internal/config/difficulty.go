package config

// Progression computes per-level speeds. Each cleared level adds a fixed
// step to the ball and paddle base speeds.
type Progression struct {
	cfg    GameplayConfig
	ball   float64
	paddle float64
}

// NewProgression creates a progression from the level-1 speeds.
func NewProgression(cfg SpeedballConfig) *Progression {
	return &Progression{
		cfg:    cfg.Gameplay,
		ball:   cfg.Ball.Speed,
		paddle: cfg.Paddle.Speed,
	}
}

// BallSpeed returns the base ball speed for a level (1-based).
func (p *Progression) BallSpeed(level int) float64 {
	speed := p.ball + p.cfg.BallSpeedStep*float64(max(0, level-1))
	if p.cfg.MaxBallSpeed > 0 {
		speed = min(speed, p.cfg.MaxBallSpeed)
	}
	return speed
}

// PaddleSpeed returns the paddle speed for a level (1-based).
func (p *Progression) PaddleSpeed(level int) float64 {
	return p.paddle + p.cfg.PaddleSpeedStep*float64(max(0, level-1))
}
