// Package settings persists the player's toggles (audio cues, debug
// logging) and the master volume between sessions.
package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"

	"github.com/vovakirdan/speedball/internal/logging"
)

// AppName names the per-user data directory.
const AppName = "speedball"

const itemKey = "settings"

// Settings are the persisted flags.
type Settings struct {
	Audio bool `json:"audio"`
	Debug bool `json:"debug"`
	// Volume is the master gain in base-2 steps. 0 plays cues unscaled.
	Volume float64 `json:"volume,omitempty"`
}

// Volume bounds in base-2 steps.
const (
	MinVolume = -6
	MaxVolume = 2
)

// MasterVolume returns Volume clamped to [MinVolume, MaxVolume].
func (s Settings) MasterVolume() float64 {
	return min(max(s.Volume, MinVolume), MaxVolume)
}

// Defaults returns the settings of a first run.
func Defaults() Settings {
	return Settings{Audio: true}
}

// Backend stores named blobs. *gdata.Manager implements it.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes Settings through a Backend.
type Store struct {
	backend Backend
	log     *log.Logger
}

// Open returns a store in the user data directory.
func Open(logger *log.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("settings: cannot open data dir: %w", err)
	}
	return NewStore(m, logger), nil
}

// NewStore wraps a backend. logger may be nil.
func NewStore(b Backend, logger *log.Logger) *Store {
	return &Store{backend: b, log: logging.OrDiscard(logger)}
}

// Load returns the saved settings, or Defaults when nothing is saved yet.
func (s *Store) Load() (Settings, error) {
	data, err := s.backend.LoadItem(itemKey)
	if err != nil {
		return Defaults(), fmt.Errorf("settings: cannot load: %w", err)
	}
	if len(data) == 0 {
		return Defaults(), nil
	}
	out := Defaults()
	if err := json.Unmarshal(data, &out); err != nil {
		return Defaults(), fmt.Errorf("settings: cannot parse: %w", err)
	}
	return out, nil
}

// Save writes v.
func (s *Store) Save(v Settings) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := s.backend.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	s.log.Debug("settings saved", "audio", v.Audio, "debug", v.Debug, "volume", v.Volume)
	return nil
}

// Update loads, applies fn and saves. A load failure starts from Defaults.
func (s *Store) Update(fn func(*Settings)) (Settings, error) {
	v, err := s.Load()
	if err != nil {
		s.log.Warn("settings reset", "err", err)
	}
	fn(&v)
	return v, s.Save(v)
}

// Memory is a Backend kept in memory. Frontends fall back to it when the
// data directory is unavailable.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
}

// NewMemory creates an empty backend.
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

// LoadItem implements Backend. A missing key yields nil data.
func (m *Memory) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.items[key]...), nil
}

// SaveItem implements Backend.
func (m *Memory) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), data...)
	return nil
}
