package speedball

import (
	"testing"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
)

func TestParticleBurstLifecycle(t *testing.T) {
	cfg := config.DefaultSpeedballConfig().Particles
	ps := NewParticles(cfg, core.NewRNG(3))

	ps.Burst(100, 100, core.ColorRed)
	if ps.Count() != cfg.BurstCount {
		t.Fatalf("Expected %d particles, got %d", cfg.BurstCount, ps.Count())
	}
	startDY := ps.All()[0].DY

	ps.Update()
	p := ps.All()[0]
	if p.DY-startDY < cfg.Gravity-1e-9 {
		t.Errorf("Gravity should add %v to DY, got %v", cfg.Gravity, p.DY-startDY)
	}
	if p.Alpha() >= 1 {
		t.Errorf("Alpha should fade, got %v", p.Alpha())
	}

	for i := 0; i < cfg.Life; i++ {
		ps.Update()
	}
	if ps.Count() != 0 {
		t.Errorf("All particles should have expired, %d left", ps.Count())
	}
}

func TestParticleEffects(t *testing.T) {
	ps := NewParticles(config.DefaultSpeedballConfig().Particles, core.NewRNG(3))
	ps.Explosion(0, 0, core.ColorMagenta, 12)
	ps.Sparks(0, 0, 5)
	ps.Trail(0, 0, core.ColorCyan, 2)

	if ps.Count() != 19 {
		t.Errorf("Expected 19 particles, got %d", ps.Count())
	}
	ps.Clear()
	if ps.Count() != 0 {
		t.Error("Clear should remove every particle")
	}
}
