package speedball

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/logging"
)

// EffectKind identifies a power-up effect.
type EffectKind int

const (
	EffectWidePaddle EffectKind = iota // Widen the paddle
	EffectMultiBall                    // Split the first free ball
	EffectSlowBall                     // Slow every free ball
)

// String returns the registry key of the kind.
func (k EffectKind) String() string {
	switch k {
	case EffectWidePaddle:
		return "widePaddle"
	case EffectMultiBall:
		return "multiBall"
	case EffectSlowBall:
		return "slowBall"
	default:
		return "unknown"
	}
}

// EffectDef is a registry entry. A zero Duration marks an instantaneous
// effect that never enters the active list.
type EffectDef struct {
	Kind     EffectKind
	Name     string
	Letter   rune
	Color    core.Color
	Duration time.Duration
}

// DefaultEffects returns the built-in registry.
func DefaultEffects(cfg config.PowerUpsConfig) []EffectDef {
	return []EffectDef{
		{Kind: EffectWidePaddle, Name: "Wide Paddle", Letter: 'W', Color: core.ColorBlue, Duration: cfg.WideDuration()},
		{Kind: EffectMultiBall, Name: "Multi-ball", Letter: 'M', Color: core.ColorMagenta},
		{Kind: EffectSlowBall, Name: "Slow Ball", Letter: 'S', Color: core.ColorGreen, Duration: cfg.SlowDuration()},
	}
}

// Pickup is a falling power-up.
type Pickup struct {
	X, Y          float64
	Width, Height float64
	DY            float64
	Def           EffectDef
}

// Box returns the pickup bounds.
func (p *Pickup) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// ActivePowerUp is a timed effect in force.
type ActivePowerUp struct {
	Def       EffectDef
	Remaining time.Duration
}

// PowerUps owns the registry, the falling pickups and the active effects.
type PowerUps struct {
	cfg      config.PowerUpsConfig
	defs     map[EffectKind]EffectDef
	order    []EffectKind
	pickups  []Pickup
	active   []ActivePowerUp
	rng      *core.RNG
	announce Announcer
	log      *log.Logger
}

// NewPowerUps creates the system with the default registry.
func NewPowerUps(cfg config.PowerUpsConfig, rng *core.RNG, announce Announcer, logger *log.Logger) *PowerUps {
	if announce == nil {
		announce = NopAnnouncer{}
	}
	pu := &PowerUps{
		cfg:      cfg,
		defs:     make(map[EffectKind]EffectDef),
		rng:      rng,
		announce: announce,
		log:      logging.OrDiscard(logger),
	}
	for _, def := range DefaultEffects(cfg) {
		pu.Register(def)
	}
	return pu
}

// Register adds or replaces a registry entry.
func (pu *PowerUps) Register(def EffectDef) {
	if _, ok := pu.defs[def.Kind]; !ok {
		pu.order = append(pu.order, def.Kind)
	}
	pu.defs[def.Kind] = def
}

// Unregister removes a kind from the drop pool. Active entries of that
// kind run out normally.
func (pu *PowerUps) Unregister(kind EffectKind) {
	delete(pu.defs, kind)
	pu.order = slices.DeleteFunc(pu.order, func(k EffectKind) bool { return k == kind })
}

// Kinds returns the registered kinds in registration order.
func (pu *PowerUps) Kinds() []EffectKind { return slices.Clone(pu.order) }

// Def returns the registry entry of a kind.
func (pu *PowerUps) Def(kind EffectKind) (EffectDef, bool) {
	def, ok := pu.defs[kind]
	return def, ok
}

// Create spawns a pickup of a uniformly random registered kind centered
// on x. It returns false when the registry is empty.
func (pu *PowerUps) Create(x, y float64) bool {
	if len(pu.order) == 0 {
		return false
	}
	def := pu.defs[pu.order[pu.rng.Intn(len(pu.order))]]
	pu.pickups = append(pu.pickups, Pickup{
		X:      x - pu.cfg.Width/2,
		Y:      y,
		Width:  pu.cfg.Width,
		Height: pu.cfg.Height,
		DY:     pu.cfg.FallSpeed,
		Def:    def,
	})
	pu.log.Debug("power-up spawned", "kind", def.Kind, "x", x, "y", y)
	return true
}

// Update advances pickups and timers one tick. Pickups touching the paddle
// are activated and returned; pickups below fieldH are dropped.
func (pu *PowerUps) Update(p *Paddle, balls *BallSet, fieldH float64) []Pickup {
	var caught []Pickup
	paddle := p.Box()
	kept := pu.pickups[:0]
	for _, pk := range pu.pickups {
		pk.Y += pk.DY

		box := pk.Box()
		if box.Bottom() >= paddle.Y && box.Y <= paddle.Bottom() &&
			box.Right() >= paddle.X && box.X <= paddle.Right() {
			pu.activate(pk.Def, p, balls)
			caught = append(caught, pk)
			continue
		}
		if pk.Y > fieldH {
			continue
		}
		kept = append(kept, pk)
	}
	pu.pickups = kept

	step := pu.cfg.FrameStep()
	running := pu.active[:0]
	for _, a := range pu.active {
		a.Remaining -= step
		if a.Remaining <= 0 {
			pu.revert(a.Def.Kind, p, balls)
			pu.log.Debug("power-up expired", "kind", a.Def.Kind)
			continue
		}
		running = append(running, a)
	}
	pu.active = running
	return caught
}

// Activate applies a registered kind directly.
func (pu *PowerUps) Activate(kind EffectKind, p *Paddle, balls *BallSet) bool {
	def, ok := pu.defs[kind]
	if !ok {
		return false
	}
	pu.activate(def, p, balls)
	return true
}

func (pu *PowerUps) activate(def EffectDef, p *Paddle, balls *BallSet) {
	pu.apply(def.Kind, p, balls)
	pu.announce.PowerUp(def.Name)
	pu.log.Debug("power-up activated", "kind", def.Kind, "duration", def.Duration)

	if def.Duration <= 0 {
		return
	}
	pu.active = slices.DeleteFunc(pu.active, func(a ActivePowerUp) bool { return a.Def.Kind == def.Kind })
	pu.active = append(pu.active, ActivePowerUp{Def: def, Remaining: def.Duration})
}

func (pu *PowerUps) apply(kind EffectKind, p *Paddle, balls *BallSet) {
	switch kind {
	case EffectWidePaddle:
		p.MakeWide()
	case EffectMultiBall:
		balls.SplitBall(balls.FirstFree(), pu.cfg.SplitCount)
	case EffectSlowBall:
		balls.UpdateAllSpeeds(pu.cfg.SlowFactor)
	}
}

func (pu *PowerUps) revert(kind EffectKind, p *Paddle, balls *BallSet) {
	switch kind {
	case EffectWidePaddle:
		p.MakeNormal()
	case EffectSlowBall:
		balls.UpdateAllSpeeds(1.0)
	}
}

// ResetActive reverts and removes every active effect.
func (pu *PowerUps) ResetActive(p *Paddle, balls *BallSet) {
	for _, a := range pu.active {
		pu.revert(a.Def.Kind, p, balls)
	}
	pu.active = pu.active[:0]
}

// Clear drops pickups and active entries without reverting.
func (pu *PowerUps) Clear() {
	pu.pickups = pu.pickups[:0]
	pu.active = pu.active[:0]
}

// IsActive reports whether a kind is in force.
func (pu *PowerUps) IsActive(kind EffectKind) bool {
	return slices.ContainsFunc(pu.active, func(a ActivePowerUp) bool { return a.Def.Kind == kind })
}

// Active returns the effects in force. The slice is owned by the system.
func (pu *PowerUps) Active() []ActivePowerUp { return pu.active }

// ActiveCount returns the number of effects in force.
func (pu *PowerUps) ActiveCount() int { return len(pu.active) }

// Falling returns the pickups in flight. The slice is owned by the system.
func (pu *PowerUps) Falling() []Pickup { return pu.pickups }
