package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedball/internal/a11y"
	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/games/speedball"
	"github.com/vovakirdan/speedball/internal/logging"
	"github.com/vovakirdan/speedball/internal/settings"
	"github.com/vovakirdan/speedball/internal/storage"
)

// statusRows are the terminal rows below the play field: announcements
// and the help or debug line.
const statusRows = 2

var _ speedball.Canvas = (*Canvas)(nil)

// Speaker plays cues and can be muted. *audio.Manager implements it.
type Speaker interface {
	a11y.Player
	SetEnabled(on bool)
}

// Deps are the collaborators shared by the models of one session.
// Every field is optional.
type Deps struct {
	Config   config.SpeedballConfig
	Sprint   config.SprintConfig // replaces Config.Sprint when set
	Prefs    settings.Settings
	Store    *storage.Store
	Settings *settings.Store
	Audio    Speaker
	Logs     *logging.Set
	Ring     *logging.Ring
}

func (d Deps) withDefaults() Deps {
	if d.Config.Field.Width == 0 {
		d.Config = config.DefaultSpeedballConfig()
	}
	if d.Logs == nil {
		d.Logs = logging.NewSet(io.Discard, false)
	}
	return d
}

// Model is the Bubble Tea model running one Speedball game.
type Model struct {
	game      *speedball.Game
	clock     *core.TickClock
	screen    *core.Screen
	canvas    *Canvas
	announcer *a11y.Announcer
	deps      Deps
	log       *log.Logger
	keys      KeyMap
	help      help.Model
	hold      *holdTracker
	frame     core.InputFrame
	config    core.RuntimeConfig
	state     core.GameState
	gen       uint64

	sprintLatched bool
	scoreSaved    bool
	quitting      bool
	back          bool
}

// NewModel creates a game model. The simulation clock advances one tick
// per TickMsg, so pauses of the terminal do not leak into game time.
func NewModel(deps Deps, cfg core.RuntimeConfig) Model {
	deps = deps.withDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	clock := core.NewTickClock(time.Now(), cfg.TickRate)
	announcer := a11y.New(a11y.Options{
		Clock:  clock,
		Player: deps.Audio,
		Seed:   cfg.Seed,
		Logger: deps.Logs.For("audio"),
	})
	announcer.SetAudio(deps.Prefs.Audio)

	game := speedball.New(speedball.Options{
		Config:    deps.Config,
		Clock:     clock,
		Announcer: announcer,
		Logs:      deps.Logs,
	})
	game.SetDebug(deps.Prefs.Debug)
	game.Reset(cfg)
	if deps.Sprint != (config.SprintConfig{}) && deps.Sprint != deps.Config.Sprint {
		if err := game.ApplySprintSettings(deps.Sprint); err != nil {
			deps.Logs.For("game").Warn("sprint settings rejected", "err", err)
		}
	}

	screen := core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-statusRows))
	field := game.Config().Field

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		clock:     clock,
		screen:    screen,
		canvas:    NewCanvas(screen, field.Width, field.Height),
		announcer: announcer,
		deps:      deps,
		log:       deps.Logs.For("input"),
		keys:      DefaultKeyMap(),
		help:      h,
		hold:      newHoldTracker(cfg.TickRate / 4),
		frame:     core.NewInputFrame(),
		config:    cfg,
		state:     game.State(),
		gen:       nextGen(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action of a key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	p := m.keys.MapKey(msg)
	switch p.Action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionToggleAudio:
		m.toggleAudio()
	case core.ActionToggleDebug:
		m.toggleDebug()
	case core.ActionMenu:
		// Esc outside a running game leaves to the launcher.
		if phase := m.game.Phase(); phase == speedball.StateMenu || phase == speedball.StateGameOver {
			m.back = true
			return m, nil
		}
		m.frame.Set(p.Action)
	default:
		m.frame.Set(p.Action)
	}

	if p.Hold != core.ActionNone {
		m.hold.press(p.Hold)
	}
	if p.Sprint {
		m.hold.press(core.ActionSprint)
	}
	if p.Toggle {
		m.sprintLatched = !m.sprintLatched
	}
	return m, nil
}

// handleMouse records pointer movement and clicks in world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !core.NewRect(0, 0, m.screen.Width(), m.screen.Height()).Contains(msg.X, msg.Y) {
		return m, nil
	}
	x, y := m.canvas.ToWorld(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.frame.Pointer.X, m.frame.Pointer.Y = x, y
		m.frame.Pointer.Moved = true
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.frame.Pointer.X, m.frame.Pointer.Y = x, y
		m.frame.Pointer.Clicked = true
	}
	return m, nil
}

// handleResize rescales the play field. The game itself keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-statusRows))
	field := m.game.Config().Field
	m.canvas.Fit(field.Width, field.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.clock.Tick()

	m.hold.apply(&m.frame)
	phase := m.game.Phase()
	if phase != speedball.StatePlaying && phase != speedball.StatePaused {
		m.sprintLatched = false
	}
	if m.sprintLatched {
		m.frame.Set(core.ActionSprint)
	}

	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()
	m.recordScore()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordScore saves the result once per game over.
func (m *Model) recordScore() {
	if !m.state.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.deps.Store == nil || m.state.Score <= 0 {
		return
	}
	acc := m.game.Analyzer().Metrics().CurrentAccuracy
	if _, err := m.deps.Store.SaveScore(speedball.ID, m.state.Score, m.state.Level, acc); err != nil {
		m.log.Warn("score not saved", "err", err)
	}
}

func (m *Model) toggleAudio() {
	on := m.announcer.ToggleAudio()
	if m.deps.Audio != nil {
		m.deps.Audio.SetEnabled(on)
	}
	m.deps.Prefs.Audio = on
	m.persist(func(s *settings.Settings) { s.Audio = on })
}

func (m *Model) toggleDebug() {
	on := !m.deps.Logs.Debug()
	m.game.SetDebug(on)
	m.deps.Prefs.Debug = on
	if on {
		m.announcer.Announce("Debug logging on", a11y.Polite)
	} else {
		m.announcer.Announce("Debug logging off", a11y.Polite)
	}
	m.persist(func(s *settings.Settings) { s.Debug = on })
}

func (m *Model) persist(fn func(*settings.Settings)) {
	if m.deps.Settings == nil {
		return
	}
	if _, err := m.deps.Settings.Update(fn); err != nil {
		m.log.Warn("settings not saved", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.canvas.Clear()
	m.game.Draw(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".speedball", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", speedball.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.announcer.Announce("Screenshot saved", a11y.Polite)
}

// View renders the play field and the status rows.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	m.game.Draw(m.canvas)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(truncate(strings.Join(m.announcer.Messages(), "  |  "), m.config.ScreenW)))
	b.WriteString("\n")
	b.WriteString(m.bottomLine())
	return b.String()
}

func (m Model) bottomLine() string {
	if m.deps.Logs.Debug() && m.deps.Ring != nil {
		if lines := m.deps.Ring.Lines(1); len(lines) > 0 {
			return debugStyle.Render(truncate(lines[0], m.config.ScreenW))
		}
	}
	return m.help.View(m.keys)
}

// truncate cuts s to at most width runes.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	return string(r[:width])
}

// Game returns the running game.
func (m Model) Game() *speedball.Game { return m.game }

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToLauncher returns true if user left the game for the launcher.
func (m Model) BackToLauncher() bool { return m.back }

// Prefs returns the settings as changed during the game.
func (m Model) Prefs() settings.Settings { return m.deps.Prefs }
