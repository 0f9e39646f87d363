package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/speedball/internal/audio"
	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/logging"
	"github.com/vovakirdan/speedball/internal/settings"
	"github.com/vovakirdan/speedball/internal/storage"
)

const debugLogPath = "~/.speedball/debug.log"

// ringLines is how many recent log lines the terminal UI can show.
const ringLines = 64

// env holds what a local frontend needs. Optional parts that fail to
// open are left nil with a warning; only an unusable config or
// difficulty is fatal.
type env struct {
	game     config.SpeedballConfig
	preset   config.DifficultyPreset
	sprint   config.SprintConfig
	prefs    settings.Settings
	settings *settings.Store
	store    *storage.Store
	audio    *audio.Manager
	logs     *logging.Set
	ring     *logging.Ring
	logFile  *os.File
}

func openEnv(withAudio bool) (*env, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	game, err := config.LoadSpeedball(flagConfig)
	if err != nil {
		return nil, err
	}

	e := &env{
		game:   game,
		preset: preset,
		sprint: sprintOverride(game.Sprint, flagSprintMS, flagSprintTop),
		ring:   logging.NewRing(ringLines),
	}

	// The terminal UI owns stdout, so logs go to a file.
	var out io.Writer = e.ring
	if f, err := logging.OpenFile(debugLogPath); err == nil {
		e.logFile = f
		out = io.MultiWriter(f, e.ring)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
	}
	e.logs = logging.NewSet(out, false)
	logger := e.logs.For("game")

	e.settings, err = settings.Open(e.logs.For("settings"))
	if err != nil {
		logger.Warn("settings not persisted", "err", err)
		e.settings = settings.NewStore(settings.NewMemory(), e.logs.For("settings"))
	}
	if e.prefs, err = e.settings.Load(); err != nil {
		logger.Warn("using default settings", "err", err)
	}
	e.logs.SetDebug(e.prefs.Debug)

	if e.store, err = storage.Open(flagDBPath); err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "err", err)
		e.store = nil
	}

	if withAudio {
		m := audio.New(audio.DefaultSampleRate, e.logs.For("audio"))
		if err := m.Init(); err == nil {
			m.SetEnabled(e.prefs.Audio)
			m.SetVolume(e.prefs.MasterVolume())
			e.audio = m
		}
	}
	return e, nil
}

// sprintOverride applies the --sprint-* flags to base. With neither flag
// set it returns the zero config, which leaves the game's ramp alone.
func sprintOverride(base config.SprintConfig, periodMS int, topSpeed float64) config.SprintConfig {
	if periodMS <= 0 && topSpeed <= 0 {
		return config.SprintConfig{}
	}
	if periodMS > 0 {
		base.AccelerationMS = periodMS
	}
	if topSpeed > 0 {
		base.TopSpeed = topSpeed
	}
	return base
}

func (e *env) close() {
	if e.audio != nil {
		e.audio.Close()
	}
	if e.store != nil {
		e.store.Close()
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}
