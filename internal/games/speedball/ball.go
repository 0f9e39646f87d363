package speedball

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/logging"
)

// Ball is one ball in play.
type Ball struct {
	X, Y        float64
	Radius      float64
	DX, DY      float64
	Speed       float64
	NormalSpeed float64
	OnPaddle    bool
}

// Box returns the ball's bounding box.
func (b *Ball) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.Radius)
}

// SetSpeed changes the speed and rescales the velocity to match.
func (b *Ball) SetSpeed(speed float64) {
	b.DX, b.DY = core.Rescale(b.DX, b.DY, speed)
	b.Speed = speed
}

// Magnitude returns the length of the velocity vector.
func (b *Ball) Magnitude() float64 {
	return math.Hypot(b.DX, b.DY)
}

// BallHooks receives collision notifications from the ball collection.
type BallHooks interface {
	WallBounce()
	PaddleHit(b *Ball)
	BallLost(b *Ball)
}

type nopBallHooks struct{}

func (nopBallHooks) WallBounce()     {}
func (nopBallHooks) PaddleHit(*Ball) {}
func (nopBallHooks) BallLost(*Ball)  {}

// BallSet owns every ball of the session.
type BallSet struct {
	cfg       config.BallConfig
	baseSpeed float64
	balls     []*Ball
	hooks     BallHooks
	log       *log.Logger
}

// NewBallSet creates an empty collection. hooks and logger may be nil.
func NewBallSet(cfg config.BallConfig, hooks BallHooks, logger *log.Logger) *BallSet {
	if hooks == nil {
		hooks = nopBallHooks{}
	}
	return &BallSet{
		cfg:       cfg,
		baseSpeed: cfg.Speed,
		hooks:     hooks,
		log:       logging.OrDiscard(logger),
	}
}

// SetBaseSpeed sets the speed given to balls created from now on.
func (s *BallSet) SetBaseSpeed(speed float64) { s.baseSpeed = speed }

// BaseSpeed returns the speed of newly created balls.
func (s *BallSet) BaseSpeed() float64 { return s.baseSpeed }

// AddBall adds a ball at (x, y).
func (s *BallSet) AddBall(x, y float64, onPaddle bool) *Ball {
	b := &Ball{
		X:           x,
		Y:           y,
		Radius:      s.cfg.Radius,
		Speed:       s.baseSpeed,
		NormalSpeed: s.baseSpeed,
		OnPaddle:    onPaddle,
	}
	s.balls = append(s.balls, b)
	s.log.Debug("ball added", "x", x, "y", y, "onPaddle", onPaddle, "total", len(s.balls))
	return b
}

// Clear removes every ball.
func (s *BallSet) Clear() {
	s.balls = s.balls[:0]
}

// Reset leaves a single ball resting on the paddle.
func (s *BallSet) Reset(p *Paddle) {
	s.Clear()
	s.AddBall(p.CenterX(), p.Y-s.cfg.Radius, true)
}

// Launch frees the first paddle-bound ball with a small random
// horizontal jitter. It returns the launched ball, or nil.
func (s *BallSet) Launch(rng *core.RNG) *Ball {
	for _, b := range s.balls {
		if !b.OnPaddle {
			continue
		}
		b.OnPaddle = false
		b.DX = (rng.Float64() - 0.5) * s.cfg.LaunchJitter
		b.DY = -b.Speed
		s.log.Debug("ball launched", "dx", b.DX, "dy", b.DY, "speed", b.Speed)
		return b
	}
	return nil
}

// Update advances every ball one tick inside a field of fieldW x fieldH.
func (s *BallSet) Update(fieldW, fieldH float64, p *Paddle) {
	kept := s.balls[:0]
	for _, b := range s.balls {
		if b.OnPaddle {
			b.X = p.CenterX()
			b.Y = p.Y - b.Radius
			kept = append(kept, b)
			continue
		}

		b.X += b.DX
		b.Y += b.DY

		if b.X-b.Radius <= 0 || b.X+b.Radius >= fieldW {
			b.DX = -b.DX
			b.X = core.ClampF(b.X, b.Radius, fieldW-b.Radius)
			s.log.Debug("ball hit side wall", "x", b.X, "dx", b.DX)
			s.hooks.WallBounce()
		}
		if b.Y-b.Radius <= 0 {
			b.DY = -b.DY
			b.Y = b.Radius
			s.log.Debug("ball hit top wall", "y", b.Y, "dy", b.DY)
			s.hooks.WallBounce()
		}

		if b.Y+b.Radius >= p.Y && b.Y-b.Radius <= p.Y+p.Height &&
			b.X >= p.X && b.X <= p.X+p.Width {
			angle := p.BounceAngle(b.X, s.cfg.BounceSpread)
			b.DX = math.Sin(angle) * b.Speed
			b.DY = -math.Cos(angle) * b.Speed
			b.Y = p.Y - b.Radius
			s.log.Debug("ball hit paddle", "hitPos", p.HitPosition(b.X), "angle", angle)
			s.hooks.PaddleHit(b)
		}

		if b.Y > fieldH {
			s.log.Debug("ball fell off screen", "remaining", len(s.balls)-1)
			s.hooks.BallLost(b)
			continue
		}
		kept = append(kept, b)
	}
	clear(s.balls[len(kept):])
	s.balls = kept
}

// SplitBall spawns count balls at the source position with headings
// fanned around the source heading. Paddle-bound or nil sources are
// ignored.
func (s *BallSet) SplitBall(src *Ball, count int) []*Ball {
	if src == nil || src.OnPaddle || count <= 0 {
		return nil
	}
	spawned := make([]*Ball, 0, count)
	for i := 0; i < count; i++ {
		angle := (float64(i) - float64(count-1)/2) * s.cfg.SplitAngle
		dx, dy := core.Rotate(src.DX, src.DY, angle)
		b := &Ball{
			X:           src.X,
			Y:           src.Y,
			Radius:      src.Radius,
			DX:          dx,
			DY:          dy,
			Speed:       src.Speed,
			NormalSpeed: src.NormalSpeed,
		}
		s.balls = append(s.balls, b)
		spawned = append(spawned, b)
	}
	s.log.Debug("ball split", "created", count, "total", len(s.balls))
	return spawned
}

// UpdateAllSpeeds sets every free ball to normalSpeed*modifier.
func (s *BallSet) UpdateAllSpeeds(modifier float64) {
	for _, b := range s.balls {
		if !b.OnPaddle {
			b.SetSpeed(b.NormalSpeed * modifier)
		}
	}
}

// All returns every ball. The slice is owned by the set.
func (s *BallSet) All() []*Ball { return s.balls }

// Free returns the balls in motion.
func (s *BallSet) Free() []*Ball {
	return slices.DeleteFunc(slices.Clone(s.balls), func(b *Ball) bool { return b.OnPaddle })
}

// FirstFree returns the first ball in motion, or nil.
func (s *BallSet) FirstFree() *Ball {
	for _, b := range s.balls {
		if !b.OnPaddle {
			return b
		}
	}
	return nil
}

// OnPaddle returns the paddle-bound balls.
func (s *BallSet) OnPaddle() []*Ball {
	return slices.DeleteFunc(slices.Clone(s.balls), func(b *Ball) bool { return !b.OnPaddle })
}

// Len returns the number of balls.
func (s *BallSet) Len() int { return len(s.balls) }

// FreeCount returns the number of balls in motion.
func (s *BallSet) FreeCount() int {
	n := 0
	for _, b := range s.balls {
		if !b.OnPaddle {
			n++
		}
	}
	return n
}

// HasBalls reports whether any ball remains.
func (s *BallSet) HasBalls() bool { return len(s.balls) > 0 }
