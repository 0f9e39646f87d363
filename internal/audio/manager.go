package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/speedball/internal/logging"
)

// DefaultSampleRate is the speaker rate used by the frontends.
const DefaultSampleRate = beep.SampleRate(44100)

// speakerLock guards the mixer once the speaker plays it.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Manager owns the mixer fed to the speaker. Until Init succeeds every
// Play is a no-op, as it is while disabled.
type Manager struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	volume  *effects.Volume
	sweep   *beep.Ctrl
	ready   bool
	enabled bool
	locker  sync.Locker
	log     *log.Logger
}

// New creates a manager. logger may be nil.
func New(rate beep.SampleRate, logger *log.Logger) *Manager {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	mixer := &beep.Mixer{}
	return &Manager{
		rate:    rate,
		mixer:   mixer,
		volume:  &effects.Volume{Streamer: mixer, Base: 2},
		enabled: true,
		locker:  speakerLock{},
		log:     logging.OrDiscard(logger),
	}
}

// Init opens the speaker. On failure audio stays off for the session and
// the error is returned for the caller to report.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ready {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		m.log.Warn("audio unavailable", "err", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(m.volume)
	m.ready = true
	m.log.Debug("speaker ready", "rate", int(m.rate))
	return nil
}

// Close silences everything still playing.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready {
		return
	}
	m.locker.Lock()
	m.mixer.Clear()
	m.locker.Unlock()
	m.sweep = nil
	m.ready = false
}

// Available reports whether the speaker was opened.
func (m *Manager) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

// Enabled reports whether cues are played.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// SetEnabled turns cues on or off. Disabling mutes the running sweep.
func (m *Manager) SetEnabled(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = on
	m.locker.Lock()
	m.volume.Silent = !on
	m.locker.Unlock()
	m.log.Debug("audio toggled", "enabled", on)
}

// SetVolume sets the master volume in base-2 steps; 0 is unchanged.
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.locker.Lock()
	m.volume.Volume = v
	m.locker.Unlock()
}

// Play mixes a decaying tone.
func (m *Manager) Play(t Tone) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready || !m.enabled || t.Duration <= 0 {
		return
	}
	m.locker.Lock()
	m.mixer.Add(NewToneStreamer(t, m.rate))
	m.locker.Unlock()
}

// PlaySweep replaces the running sweep, if any, with s.
func (m *Manager) PlaySweep(s Sweep) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready || !m.enabled || s.Duration <= 0 {
		return
	}
	ctrl := &beep.Ctrl{Streamer: NewSweepStreamer(s, m.rate)}
	m.locker.Lock()
	if m.sweep != nil {
		m.sweep.Streamer = nil
	}
	m.mixer.Add(ctrl)
	m.locker.Unlock()
	m.sweep = ctrl
}

// StopSweep ends the running sweep.
func (m *Manager) StopSweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sweep == nil {
		return
	}
	m.locker.Lock()
	m.sweep.Streamer = nil
	m.locker.Unlock()
	m.sweep = nil
}

// Playing returns the number of streamers in the mixer.
func (m *Manager) Playing() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.locker.Lock()
	defer m.locker.Unlock()
	return m.mixer.Len()
}
