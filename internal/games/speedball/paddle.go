package speedball

import (
	"math"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
)

// InputMode selects which input source steers the paddle.
type InputMode int

const (
	InputKeyboard InputMode = iota
	InputMouse
)

// String returns the mode name.
func (m InputMode) String() string {
	if m == InputMouse {
		return "mouse"
	}
	return "keyboard"
}

// Paddle is the player-controlled bar at the bottom of the field.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	NormalWidth   float64
	Mode          InputMode

	fieldW     float64
	wideFactor float64
}

// NewPaddle creates a paddle centered in a field of the given width.
func NewPaddle(cfg config.PaddleConfig, fieldW float64) *Paddle {
	p := &Paddle{
		Y:           cfg.Y,
		Height:      cfg.Height,
		Speed:       cfg.Speed,
		NormalWidth: cfg.Width,
		fieldW:      fieldW,
		wideFactor:  cfg.WideFactor,
	}
	p.Reset()
	return p
}

// Reset recenters the paddle, restores its normal width and returns
// control to the keyboard.
func (p *Paddle) Reset() {
	p.Width = p.NormalWidth
	p.X = (p.fieldW - p.Width) / 2
	p.Mode = InputKeyboard
}

// MakeWide widens the paddle by the configured factor.
func (p *Paddle) MakeWide() {
	p.Width = p.NormalWidth * p.wideFactor
	p.X = core.ClampF(p.X, 0, p.fieldW-p.Width)
}

// MakeNormal restores the normal width.
func (p *Paddle) MakeNormal() {
	p.Width = p.NormalWidth
}

// Box returns the paddle bounds.
func (p *Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Steer moves the paddle one keyboard step. dir is -1, 0 or +1.
func (p *Paddle) Steer(dir int) {
	if dir == 0 {
		return
	}
	p.Mode = InputKeyboard
	p.MoveBy(float64(dir) * p.Speed)
}

// MoveBy shifts the paddle, keeping it inside the field.
func (p *Paddle) MoveBy(dx float64) {
	p.X = core.ClampF(p.X+dx, 0, p.fieldW-p.Width)
}

// MoveTo positions the left edge at x, keeping the paddle inside the field.
func (p *Paddle) MoveTo(x float64) {
	p.X = core.ClampF(x, 0, p.fieldW-p.Width)
}

// Follow centers the paddle on a pointer x coordinate.
func (p *Paddle) Follow(pointerX float64) {
	if pointerX < 0 || pointerX > p.fieldW {
		return
	}
	p.Mode = InputMouse
	p.MoveTo(pointerX - p.Width/2)
}

// HitPosition maps a ball x to [0, 1]: 0 at the left edge, 1 at the right.
func (p *Paddle) HitPosition(ballX float64) float64 {
	if p.Width <= 0 {
		return 0.5
	}
	return core.ClampF((ballX-p.X)/p.Width, 0, 1)
}

// BounceAngle returns the deflection from vertical for a hit at ballX.
// spread is the full arc in multiples of pi.
func (p *Paddle) BounceAngle(ballX, spread float64) float64 {
	return (p.HitPosition(ballX) - 0.5) * math.Pi * spread
}
