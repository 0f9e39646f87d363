package speedball

import (
	"math"
	"testing"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
)

type powerUpFixture struct {
	pu     *PowerUps
	paddle *Paddle
	balls  *BallSet
	ball   *Ball
}

func newPowerUpFixture() powerUpFixture {
	cfg := config.DefaultSpeedballConfig()
	balls := NewBallSet(cfg.Ball, nil, nil)
	ball := balls.AddBall(400, 300, false)
	ball.DX, ball.DY = 3, -4
	return powerUpFixture{
		pu:     NewPowerUps(cfg.PowerUps, core.NewRNG(7), nil, nil),
		paddle: NewPaddle(cfg.Paddle, cfg.Field.Width),
		balls:  balls,
		ball:   ball,
	}
}

func (f powerUpFixture) tick(n int) {
	for i := 0; i < n; i++ {
		f.pu.Update(f.paddle, f.balls, 600)
	}
}

func TestPowerUpActivationIsIdempotent(t *testing.T) {
	f := newPowerUpFixture()

	f.pu.Activate(EffectWidePaddle, f.paddle, f.balls)
	f.tick(10)
	f.pu.Activate(EffectWidePaddle, f.paddle, f.balls)

	if f.pu.ActiveCount() != 1 {
		t.Fatalf("Expected one active entry, got %d", f.pu.ActiveCount())
	}
	if got := f.pu.Active()[0].Remaining; got != f.pu.cfg.WideDuration() {
		t.Errorf("Timer should reset to full duration, got %v", got)
	}
	if f.paddle.Width != 150 {
		t.Errorf("Paddle width = %v, want 150", f.paddle.Width)
	}
}

func TestPowerUpExpiryReverts(t *testing.T) {
	f := newPowerUpFixture()
	f.pu.Activate(EffectSlowBall, f.paddle, f.balls)

	if math.Abs(f.ball.Speed-3.5) > 1e-9 {
		t.Fatalf("Slow ball speed = %v, want 3.5", f.ball.Speed)
	}

	// 20s at 16ms per tick
	f.tick(1249)
	if !f.pu.IsActive(EffectSlowBall) {
		t.Fatal("Slow ball should still be active one tick before expiry")
	}
	f.tick(1)
	if f.pu.IsActive(EffectSlowBall) {
		t.Fatal("Slow ball should have expired")
	}
	if f.ball.Speed != 5 {
		t.Errorf("Ball speed after expiry = %v, want 5", f.ball.Speed)
	}
}

func TestPowerUpResetActive(t *testing.T) {
	f := newPowerUpFixture()
	f.pu.Activate(EffectWidePaddle, f.paddle, f.balls)
	f.pu.Activate(EffectSlowBall, f.paddle, f.balls)

	f.pu.ResetActive(f.paddle, f.balls)

	if f.pu.ActiveCount() != 0 {
		t.Errorf("Expected no active effects, got %d", f.pu.ActiveCount())
	}
	if f.paddle.Width != f.paddle.NormalWidth {
		t.Errorf("Paddle width = %v, want %v", f.paddle.Width, f.paddle.NormalWidth)
	}
	if f.ball.Speed != f.ball.NormalSpeed {
		t.Errorf("Ball speed = %v, want %v", f.ball.Speed, f.ball.NormalSpeed)
	}
}

func TestMultiBallIsInstant(t *testing.T) {
	f := newPowerUpFixture()
	f.pu.Activate(EffectMultiBall, f.paddle, f.balls)

	if f.balls.Len() != 3 {
		t.Errorf("Multi-ball should add 2 balls, have %d", f.balls.Len())
	}
	if f.pu.ActiveCount() != 0 {
		t.Error("Instant effects should not enter the active list")
	}
}

func TestPickupCaughtByPaddle(t *testing.T) {
	f := newPowerUpFixture()
	if !f.pu.Create(f.paddle.CenterX(), 530) {
		t.Fatal("Create should spawn a pickup")
	}

	caught := f.pu.Update(f.paddle, f.balls, 600)
	if len(caught) != 1 {
		t.Fatalf("Expected the pickup to be caught, got %d", len(caught))
	}
	if len(f.pu.Falling()) != 0 {
		t.Error("Caught pickup should be removed")
	}
}

func TestPickupFallsOffScreen(t *testing.T) {
	f := newPowerUpFixture()
	f.pu.Create(100, 599)

	caught := f.pu.Update(f.paddle, f.balls, 600)
	if len(caught) != 0 || len(f.pu.Falling()) != 0 {
		t.Errorf("Missed pickup should be dropped: caught=%d falling=%d", len(caught), len(f.pu.Falling()))
	}
}

func TestPickupFalls(t *testing.T) {
	f := newPowerUpFixture()
	f.pu.Create(100, 100)
	f.tick(5)

	falling := f.pu.Falling()
	if len(falling) != 1 || falling[0].Y != 110 {
		t.Errorf("Pickup should fall 2 per tick, got %+v", falling)
	}
	if falling[0].X != 85 {
		t.Errorf("Pickup should be centered on x, X=%v", falling[0].X)
	}
}

func TestUnregisterRemovesKindFromDrops(t *testing.T) {
	f := newPowerUpFixture()
	f.pu.Unregister(EffectWidePaddle)

	if len(f.pu.Kinds()) != 2 {
		t.Fatalf("Expected 2 kinds, got %v", f.pu.Kinds())
	}
	for i := 0; i < 50; i++ {
		f.pu.Create(100, 100)
	}
	for _, pk := range f.pu.Falling() {
		if pk.Def.Kind == EffectWidePaddle {
			t.Fatal("Unregistered kind should not drop")
		}
	}
	if f.pu.Activate(EffectWidePaddle, f.paddle, f.balls) {
		t.Error("Activating an unregistered kind should fail")
	}

	f.pu.Unregister(EffectMultiBall)
	f.pu.Unregister(EffectSlowBall)
	if f.pu.Create(100, 100) {
		t.Error("Create with an empty registry should fail")
	}
}
