package speedball

import (
	"math"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
)

// Particle is a short-lived cosmetic dot.
type Particle struct {
	X, Y    float64
	DX, DY  float64
	Color   core.Color
	Life    int
	MaxLife int
	Size    float64
}

// Alpha fades from 1 to 0 over the particle's life.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Particles holds every live particle. Nothing in gameplay reads it.
type Particles struct {
	cfg       config.ParticlesConfig
	rng       *core.RNG
	particles []Particle
}

// NewParticles creates an empty particle system using rng for spread.
func NewParticles(cfg config.ParticlesConfig, rng *core.RNG) *Particles {
	return &Particles{cfg: cfg, rng: rng}
}

func (ps *Particles) jitter(spread float64) float64 {
	return (ps.rng.Float64() - 0.5) * spread
}

func (ps *Particles) add(p Particle) {
	p.MaxLife = p.Life
	ps.particles = append(ps.particles, p)
}

// Burst emits the brick-destruction burst at (x, y).
func (ps *Particles) Burst(x, y float64, c core.Color) {
	for i := 0; i < ps.cfg.BurstCount; i++ {
		ps.add(Particle{
			X: x, Y: y,
			DX:    ps.jitter(ps.cfg.Spread),
			DY:    ps.jitter(ps.cfg.Spread),
			Color: c,
			Life:  ps.cfg.Life,
			Size:  ps.cfg.MinSize + ps.rng.Float64()*(ps.cfg.MaxSize-ps.cfg.MinSize),
		})
	}
}

// Explosion emits a ring of particles at (x, y).
func (ps *Particles) Explosion(x, y float64, c core.Color, count int) {
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		speed := ps.rng.Float64()*6 + 2
		ps.add(Particle{
			X: x, Y: y,
			DX:    math.Cos(angle) * speed,
			DY:    math.Sin(angle) * speed,
			Color: c,
			Life:  40,
			Size:  ps.rng.Float64()*4 + 2,
		})
	}
}

// Sparks emits small fast yellow particles at (x, y).
func (ps *Particles) Sparks(x, y float64, count int) {
	for i := 0; i < count; i++ {
		ps.add(Particle{
			X: x, Y: y,
			DX:    ps.jitter(12),
			DY:    ps.jitter(12),
			Color: core.ColorYellow,
			Life:  20,
			Size:  1,
		})
	}
}

// Trail emits a few slow particles around (x, y).
func (ps *Particles) Trail(x, y float64, c core.Color, count int) {
	for i := 0; i < count; i++ {
		ps.add(Particle{
			X:     x + ps.jitter(4),
			Y:     y + ps.jitter(4),
			DX:    ps.jitter(2),
			DY:    ps.jitter(2),
			Color: c,
			Life:  15,
			Size:  ps.rng.Float64()*2 + 0.5,
		})
	}
}

// Update moves every particle, applies gravity and drops dead ones.
func (ps *Particles) Update() {
	kept := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.DX
		p.Y += p.DY
		p.DY += ps.cfg.Gravity
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.particles = kept
}

// Clear removes every particle.
func (ps *Particles) Clear() { ps.particles = ps.particles[:0] }

// Count returns the number of live particles.
func (ps *Particles) Count() int { return len(ps.particles) }

// All returns the live particles. The slice is owned by the system.
func (ps *Particles) All() []Particle { return ps.particles }
