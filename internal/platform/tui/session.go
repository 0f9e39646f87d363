package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/games/speedball"
)

type sessionScreen int

const (
	screenLauncher sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: launcher -> game or
// scores -> launcher. It is the top-level model locally and over SSH.
type SessionModel struct {
	deps     Deps
	base     config.SpeedballConfig
	config   core.RuntimeConfig
	user     string
	current  sessionScreen
	launcher LauncherModel
	game     *Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session starting at the launcher.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig, preset config.DifficultyPreset, user string) SessionModel {
	deps = deps.withDefaults()
	m := SessionModel{
		deps:   deps,
		base:   deps.Config,
		config: cfg,
		user:   user,
	}
	m.launcher = m.newLauncher(preset)
	return m
}

func (m SessionModel) newLauncher(preset config.DifficultyPreset) LauncherModel {
	high := 0
	if m.deps.Store != nil {
		if h, err := m.deps.Store.HighScore(speedball.ID); err == nil {
			high = h
		}
	}
	sprint := m.deps.Sprint
	if sprint == (config.SprintConfig{}) {
		sprint = m.base.Sprint
	}
	return NewLauncherModel(preset, m.deps.Prefs, sprint, m.base.Sprint, high, m.config.ScreenW, m.config.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.launcher.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateLauncher(msg)
	}
}

func (m SessionModel) updateLauncher(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.launcher.Update(msg)
	if lm, ok := next.(LauncherModel); ok {
		m.launcher = lm
	}

	switch m.launcher.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.applyPrefs()
		m.scores = NewScoreboardModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.scores.embedded = true
		m.current = screenScores
		return m, m.scores.Init()

	case ChoicePlay:
		m.applyPrefs()
		cfg := m.base
		config.ApplyPreset(&cfg, m.launcher.Difficulty())
		m.deps.Sprint = m.launcher.Sprint()
		deps := m.deps
		deps.Config = cfg

		gm := NewModel(deps, m.config)
		if m.launcher.SprintReset() {
			gm.Game().ResetSprintSettings()
		}
		m.game = &gm
		m.current = screenGame
		m.deps.Logs.For("game").Info("game started", "user", m.user, "difficulty", m.launcher.Difficulty())
		return m, m.game.Init()
	}
	return m, cmd
}

// applyPrefs persists and applies the toggles made in the launcher.
func (m *SessionModel) applyPrefs() {
	if !m.launcher.PrefsChanged() {
		return
	}
	m.deps.Prefs = m.launcher.Prefs()
	m.deps.Logs.SetDebug(m.deps.Prefs.Debug)
	if m.deps.Audio != nil {
		m.deps.Audio.SetEnabled(m.deps.Prefs.Audio)
	}
	if m.deps.Settings != nil {
		if err := m.deps.Settings.Save(m.deps.Prefs); err != nil {
			m.deps.Logs.For("game").Warn("settings not saved", "err", err)
		}
	}
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToLauncher() {
		m.deps.Prefs = m.game.Prefs()
		preset := m.launcher.Difficulty()
		m.game = nil
		m.current = screenLauncher
		m.launcher = m.newLauncher(preset)
		return m, m.launcher.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.current = screenLauncher
		m.launcher = m.newLauncher(m.launcher.Difficulty())
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.launcher.View()
	}
}

// Run starts a local session in the alternate screen.
func Run(deps Deps, cfg core.RuntimeConfig, preset config.DifficultyPreset) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg, preset, ""),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
