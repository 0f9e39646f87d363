package speedball

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/logging"
)

// SprintPhase is the state of the speed burst.
type SprintPhase int

const (
	SprintIdle SprintPhase = iota
	SprintAccelerating
	SprintDecelerating
)

// String returns the phase name.
func (p SprintPhase) String() string {
	switch p {
	case SprintAccelerating:
		return "accelerating"
	case SprintDecelerating:
		return "decelerating"
	default:
		return "idle"
	}
}

// Sprint ramps every tracked ball between its baseline speed and
// baseline*multiplier. The tracked set is fixed when the sprint starts.
type Sprint struct {
	cfg      config.SprintConfig
	defaults config.SprintConfig
	clock    core.Clock

	phase     SprintPhase
	last      time.Time
	tween     *gween.Tween
	progress  float64
	baselines map[*Ball]float64

	announce Announcer
	log      *log.Logger
}

// NewSprint creates an idle controller. announce and logger may be nil.
func NewSprint(cfg config.SprintConfig, clock core.Clock, announce Announcer, logger *log.Logger) *Sprint {
	if announce == nil {
		announce = NopAnnouncer{}
	}
	return &Sprint{
		cfg:       cfg,
		defaults:  cfg,
		clock:     clock,
		baselines: make(map[*Ball]float64),
		announce:  announce,
		log:       logging.OrDiscard(logger),
	}
}

func (s *Sprint) restartRamp() {
	s.last = s.clock.Now()
	s.progress = 0
	s.tween = gween.New(0, 1, float32(s.cfg.AccelerationPeriod().Seconds()), ease.Linear)
}

// Start begins accelerating. It is a no-op unless the controller is idle
// and the game is playing. Only balls in motion right now are tracked.
func (s *Sprint) Start(balls *BallSet, state State) bool {
	if s.phase != SprintIdle || state != StatePlaying {
		return false
	}
	clear(s.baselines)
	for _, b := range balls.All() {
		if !b.OnPaddle {
			s.baselines[b] = b.Speed
		}
	}
	s.phase = SprintAccelerating
	s.restartRamp()
	s.announce.Sprint(true, s.cfg.AccelerationPeriod())
	s.log.Debug("sprint started", "tracked", len(s.baselines))
	return true
}

// End begins decelerating. It is a no-op unless a sprint is running and
// not already decelerating.
func (s *Sprint) End() bool {
	if s.phase != SprintAccelerating {
		return false
	}
	s.phase = SprintDecelerating
	s.restartRamp()
	s.announce.Sprint(false, s.cfg.AccelerationPeriod())
	s.log.Debug("sprint ending")
	return true
}

// Update advances the ramp by the time elapsed since the previous call
// and rescales every tracked ball still in play.
func (s *Sprint) Update(balls *BallSet) {
	if s.phase == SprintIdle {
		return
	}

	now := s.clock.Now()
	dt := now.Sub(s.last)
	s.last = now
	if dt > 0 {
		p, _ := s.tween.Update(float32(dt.Seconds()))
		s.progress = core.ClampF(float64(p), 0, 1)
	}

	mult := s.cfg.Multiplier()
	for _, b := range balls.All() {
		base, ok := s.baselines[b]
		if !ok || b.OnPaddle {
			continue
		}
		top := base * mult
		if s.phase == SprintAccelerating {
			b.SetSpeed(core.Lerp(base, top, s.progress))
		} else {
			b.SetSpeed(core.Lerp(top, base, s.progress))
		}
	}

	if s.phase == SprintDecelerating && s.progress >= 1 {
		s.phase = SprintIdle
		clear(s.baselines)
		s.log.Debug("sprint finished")
	}
}

// Resume restarts the elapsed-time reference without moving progress.
// Call it when play continues after time passed with no updates.
func (s *Sprint) Resume() {
	s.last = s.clock.Now()
}

// Cancel drops the sprint without touching ball speeds. Used when the
// balls it tracked are discarded.
func (s *Sprint) Cancel() {
	s.phase = SprintIdle
	s.progress = 0
	clear(s.baselines)
}

// ApplySettings replaces the ramp parameters. A running phase keeps its
// period; the new period applies from the next phase.
func (s *Sprint) ApplySettings(cfg config.SprintConfig) error {
	if cfg.AccelerationMS <= 0 {
		return errors.New("sprint: acceleration period must be positive")
	}
	if cfg.DefaultSpeed <= 0 || cfg.TopSpeed < cfg.DefaultSpeed {
		return errors.New("sprint: top speed must be at least the default speed")
	}
	s.cfg = cfg
	s.log.Info("sprint settings applied", "accelerationMs", cfg.AccelerationMS, "defaultSpeed", cfg.DefaultSpeed, "topSpeed", cfg.TopSpeed)
	return nil
}

// ResetSettings restores the parameters the controller was created with.
func (s *Sprint) ResetSettings() {
	s.cfg = s.defaults
	s.log.Info("sprint settings reset")
}

// Settings returns the current ramp parameters.
func (s *Sprint) Settings() config.SprintConfig { return s.cfg }

// Phase returns the current phase.
func (s *Sprint) Phase() SprintPhase { return s.phase }

// Active reports whether a sprint is running.
func (s *Sprint) Active() bool { return s.phase != SprintIdle }

// Progress returns the ramp position of the current phase in [0, 1].
func (s *Sprint) Progress() float64 { return s.progress }

// Tracked returns the number of balls in the sprint.
func (s *Sprint) Tracked() int { return len(s.baselines) }
