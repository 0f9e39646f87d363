package speedball

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
)

func newTestSprint() (*Sprint, *BallSet, *core.ManualClock) {
	cfg := config.DefaultSpeedballConfig()
	clock := core.NewManualClock(time.Unix(0, 0))
	balls := NewBallSet(cfg.Ball, nil, nil)
	b := balls.AddBall(400, 300, false)
	b.DX, b.DY = 3, -4
	return NewSprint(cfg.Sprint, clock, nil, nil), balls, clock
}

func TestSprintRoundTrip(t *testing.T) {
	s, balls, clock := newTestSprint()
	b := balls.All()[0]

	if !s.Start(balls, StatePlaying) {
		t.Fatal("Start should succeed while playing")
	}

	clock.Advance(250 * time.Millisecond)
	s.Update(balls)
	if math.Abs(b.Speed-27.5) > 1e-4 {
		t.Errorf("Halfway speed = %v, want 27.5", b.Speed)
	}

	clock.Advance(500 * time.Millisecond)
	s.Update(balls)
	if math.Abs(b.Speed-50) > 1e-4 {
		t.Errorf("Top speed = %v, want 50", b.Speed)
	}

	clock.Advance(time.Second)
	s.Update(balls)
	if s.Phase() != SprintAccelerating || math.Abs(b.Speed-50) > 1e-4 {
		t.Errorf("Sprint should hold at top speed, phase=%v speed=%v", s.Phase(), b.Speed)
	}

	if !s.End() {
		t.Fatal("End should succeed while accelerating")
	}
	if s.End() {
		t.Error("End while decelerating should be a no-op")
	}
	if s.Start(balls, StatePlaying) {
		t.Error("Start while active should be a no-op")
	}

	clock.Advance(600 * time.Millisecond)
	s.Update(balls)
	if s.Phase() != SprintIdle || s.Tracked() != 0 {
		t.Errorf("Sprint should be idle with no baselines, phase=%v tracked=%d", s.Phase(), s.Tracked())
	}
	if math.Abs(b.Speed-5) > 1e-9 || math.Abs(b.Magnitude()-5) > 1e-9 {
		t.Errorf("Speed should return to baseline, got %v (|v|=%v)", b.Speed, b.Magnitude())
	}
}

func TestSprintRequiresPlaying(t *testing.T) {
	s, balls, _ := newTestSprint()
	if s.Start(balls, StatePaused) {
		t.Error("Start should be a no-op outside playing")
	}
	if s.End() {
		t.Error("End should be a no-op when idle")
	}
}

func TestSprintIgnoresBallsFreedLater(t *testing.T) {
	s, balls, clock := newTestSprint()
	late := balls.AddBall(200, 300, true)

	s.Start(balls, StatePlaying)
	late.OnPaddle = false
	late.DX, late.DY = 0, -5

	clock.Advance(250 * time.Millisecond)
	s.Update(balls)

	if s.Tracked() != 1 {
		t.Errorf("Expected 1 tracked ball, got %d", s.Tracked())
	}
	if late.Speed != 5 {
		t.Errorf("Ball freed after start should keep its speed, got %v", late.Speed)
	}
}

func TestSprintApplySettings(t *testing.T) {
	s, _, _ := newTestSprint()

	if err := s.ApplySettings(config.SprintConfig{AccelerationMS: 0, DefaultSpeed: 5, TopSpeed: 10}); err == nil {
		t.Error("Zero period should be rejected")
	}
	if err := s.ApplySettings(config.SprintConfig{AccelerationMS: 100, DefaultSpeed: 5, TopSpeed: 4}); err == nil {
		t.Error("Top speed below default should be rejected")
	}
	if err := s.ApplySettings(config.SprintConfig{AccelerationMS: 100, DefaultSpeed: 5, TopSpeed: 20}); err != nil {
		t.Fatalf("Valid settings rejected: %v", err)
	}
	if s.Settings().Multiplier() != 4 {
		t.Errorf("Multiplier = %v, want 4", s.Settings().Multiplier())
	}

	s.ResetSettings()
	if s.Settings().Multiplier() != 10 {
		t.Errorf("Reset multiplier = %v, want 10", s.Settings().Multiplier())
	}
}
