package speedball

import (
	"math"
	"testing"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
)

type countingHooks struct {
	walls, paddles, lost int
}

func (h *countingHooks) WallBounce()     { h.walls++ }
func (h *countingHooks) PaddleHit(*Ball) { h.paddles++ }
func (h *countingHooks) BallLost(*Ball)  { h.lost++ }

func newTestBalls() (*BallSet, *countingHooks) {
	hooks := &countingHooks{}
	return NewBallSet(config.DefaultSpeedballConfig().Ball, hooks, nil), hooks
}

func TestBallSideWallReflects(t *testing.T) {
	set, hooks := newTestBalls()
	p := newTestPaddle()
	b := set.AddBall(10, 300, false)
	b.DX, b.DY = -5, 0

	set.Update(800, 600, p)

	if b.DX != 5 {
		t.Errorf("DX should reflect to 5, got %v", b.DX)
	}
	if b.X != b.Radius {
		t.Errorf("Ball should be clamped to X=%v, got %v", b.Radius, b.X)
	}
	if hooks.walls != 1 {
		t.Errorf("Expected 1 wall bounce, got %d", hooks.walls)
	}
}

func TestBallTopWallReflects(t *testing.T) {
	set, hooks := newTestBalls()
	p := newTestPaddle()
	b := set.AddBall(400, 10, false)
	b.DX, b.DY = 0, -5

	set.Update(800, 600, p)

	if b.DY != 5 || b.Y != b.Radius {
		t.Errorf("Ball should reflect off the top: DY=%v Y=%v", b.DY, b.Y)
	}
	if hooks.walls != 1 {
		t.Errorf("Expected 1 wall bounce, got %d", hooks.walls)
	}
}

func TestBallPaddleBounce(t *testing.T) {
	set, hooks := newTestBalls()
	p := newTestPaddle()
	b := set.AddBall(p.CenterX(), 540, false)
	b.DX, b.DY = 0, 5

	set.Update(800, 600, p)

	if hooks.paddles != 1 {
		t.Fatalf("Expected paddle hit, got %d", hooks.paddles)
	}
	if math.Abs(b.DX) > 1e-9 || math.Abs(b.DY+b.Speed) > 1e-9 {
		t.Errorf("Center hit should bounce straight up, got (%v, %v)", b.DX, b.DY)
	}
	if b.Y != p.Y-b.Radius {
		t.Errorf("Ball should sit on the paddle top, Y=%v", b.Y)
	}
}

func TestBallFallsOff(t *testing.T) {
	set, hooks := newTestBalls()
	p := newTestPaddle()
	b := set.AddBall(400, 598, false)
	b.DX, b.DY = 0, 5

	set.Update(800, 600, p)

	if set.HasBalls() {
		t.Error("Ball below the field should be removed")
	}
	if hooks.lost != 1 {
		t.Errorf("Expected 1 lost ball, got %d", hooks.lost)
	}
}

func TestBallOnPaddleTracksPaddle(t *testing.T) {
	set, _ := newTestBalls()
	p := newTestPaddle()
	set.Reset(p)

	p.MoveTo(100)
	set.Update(800, 600, p)

	b := set.All()[0]
	if !b.OnPaddle {
		t.Fatal("Reset ball should be on the paddle")
	}
	if b.X != p.CenterX() || b.Y != p.Y-b.Radius {
		t.Errorf("Ball should follow the paddle, got (%v, %v)", b.X, b.Y)
	}
	if b.DX != 0 || b.DY != 0 {
		t.Errorf("Paddle-bound ball should not move, velocity (%v, %v)", b.DX, b.DY)
	}
}

func TestBallLaunch(t *testing.T) {
	set, _ := newTestBalls()
	set.Reset(newTestPaddle())
	rng := core.NewRNG(1)

	b := set.Launch(rng)
	if b == nil {
		t.Fatal("Launch should free the paddle ball")
	}
	if b.OnPaddle || b.DY != -b.Speed || math.Abs(b.DX) > 2 {
		t.Errorf("Unexpected launch state: onPaddle=%v dx=%v dy=%v", b.OnPaddle, b.DX, b.DY)
	}
	if set.Launch(rng) != nil {
		t.Error("Second launch should find no paddle ball")
	}
}

func TestSplitBallPreservesSpeed(t *testing.T) {
	set, _ := newTestBalls()
	src := set.AddBall(400, 300, false)
	src.DX, src.DY = 3, -4

	spawned := set.SplitBall(src, 2)
	if len(spawned) != 2 || set.Len() != 3 {
		t.Fatalf("Expected 2 new balls (3 total), got %d (%d)", len(spawned), set.Len())
	}
	for i, b := range spawned {
		if math.Abs(b.Magnitude()-5) > 1e-9 {
			t.Errorf("Split ball %d magnitude = %v, want 5", i, b.Magnitude())
		}
		if b.X != src.X || b.Y != src.Y {
			t.Errorf("Split ball %d should start at the source", i)
		}
	}
	if spawned[0].DX == spawned[1].DX {
		t.Error("Split balls should fan out")
	}

	if got := set.SplitBall(nil, 2); got != nil {
		t.Error("Splitting nil should be a no-op")
	}
}

func TestUpdateAllSpeeds(t *testing.T) {
	set, _ := newTestBalls()
	p := newTestPaddle()
	set.Reset(p)
	free := set.AddBall(400, 300, false)
	free.DX, free.DY = 3, -4

	set.UpdateAllSpeeds(0.7)

	if math.Abs(free.Speed-3.5) > 1e-9 || math.Abs(free.Magnitude()-3.5) > 1e-9 {
		t.Errorf("Free ball speed = %v (|v|=%v), want 3.5", free.Speed, free.Magnitude())
	}
	if set.OnPaddle()[0].Speed != 5 {
		t.Error("Paddle-bound ball speed should not change")
	}
	if set.FreeCount() != 1 || len(set.Free()) != 1 {
		t.Errorf("Expected 1 free ball, got %d", set.FreeCount())
	}
}
