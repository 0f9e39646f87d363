package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/settings"
)

// LauncherChoice is what the launcher was left with.
type LauncherChoice int

const (
	ChoiceNone LauncherChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

type launcherItem int

const (
	itemPlay launcherItem = iota
	itemDifficulty
	itemScores
	itemSound
	itemDebug
	itemSprintPeriod
	itemSprintTop
	itemSprintReset
	itemQuit
)

var launcherItems = []launcherItem{
	itemPlay, itemDifficulty, itemScores, itemSound, itemDebug,
	itemSprintPeriod, itemSprintTop, itemSprintReset, itemQuit,
}

// Sprint tuning steps and bounds.
const (
	sprintPeriodStep = 100
	sprintPeriodMin  = 100
	sprintPeriodMax  = 3000
	sprintTopStep    = 5
	sprintTopFactor  = 20 // top speed cap as a multiple of the default
)

var presets = []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard}

// LauncherKeyMap defines the launcher key bindings.
type LauncherKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LauncherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LauncherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Select, k.Quit}}
}

// DefaultLauncherKeyMap returns default key bindings.
func DefaultLauncherKeyMap() LauncherKeyMap {
	return LauncherKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "change"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "change"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LauncherModel picks the difficulty, toggles settings and tunes the
// sprint ramp before a game.
type LauncherModel struct {
	keys        LauncherKeyMap
	help        help.Model
	cursor      int
	difficulty  int
	prefs       settings.Settings
	sprint      config.SprintConfig
	sprintBase  config.SprintConfig
	sprintReset bool
	highScore   int
	width       int
	height      int
	choice      LauncherChoice
	changed     bool
}

// NewLauncherModel creates a launcher. sprint is the ramp to start from
// and base the one "Reset sprint" restores. highScore is shown under the
// title.
func NewLauncherModel(preset config.DifficultyPreset, prefs settings.Settings, sprint, base config.SprintConfig, highScore, width, height int) LauncherModel {
	h := help.New()
	h.Width = width

	m := LauncherModel{
		keys:       DefaultLauncherKeyMap(),
		help:       h,
		difficulty: 1,
		prefs:      prefs,
		sprint:     sprint,
		sprintBase: base,
		highScore:  highScore,
		width:      width,
		height:     height,
	}
	for i, p := range presets {
		if p == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the launcher.
func (m LauncherModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the launcher. A choice ends it; the parent
// model reads Choice.
func (m LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m LauncherModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = ChoiceQuit

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + len(launcherItems) - 1) % len(launcherItems)

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(launcherItems)

	case key.Matches(msg, m.keys.Left):
		m.change(-1)

	case key.Matches(msg, m.keys.Right):
		m.change(1)

	case key.Matches(msg, m.keys.Select):
		switch launcherItems[m.cursor] {
		case itemPlay:
			m.choice = ChoicePlay
		case itemScores:
			m.choice = ChoiceScores
		case itemQuit:
			m.choice = ChoiceQuit
		default:
			m.change(1)
		}
	}
	return m, nil
}

// change cycles the value of the item under the cursor.
func (m *LauncherModel) change(step int) {
	switch launcherItems[m.cursor] {
	case itemDifficulty:
		m.difficulty = (m.difficulty + len(presets) + step) % len(presets)
	case itemSound:
		m.prefs.Audio = !m.prefs.Audio
		m.changed = true
	case itemDebug:
		m.prefs.Debug = !m.prefs.Debug
		m.changed = true
	case itemSprintPeriod:
		m.sprint.AccelerationMS = min(max(m.sprint.AccelerationMS+step*sprintPeriodStep, sprintPeriodMin), sprintPeriodMax)
		m.sprintReset = false
	case itemSprintTop:
		top := m.sprint.TopSpeed + float64(step*sprintTopStep)
		m.sprint.TopSpeed = min(max(top, m.sprint.DefaultSpeed), m.sprint.DefaultSpeed*sprintTopFactor)
		m.sprintReset = false
	case itemSprintReset:
		m.sprint = m.sprintBase
		m.sprintReset = true
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func (m LauncherModel) label(it launcherItem) string {
	switch it {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", presets[m.difficulty])
	case itemScores:
		return "High Scores"
	case itemSound:
		return "Sound: " + onOff(m.prefs.Audio)
	case itemDebug:
		return "Debug log: " + onOff(m.prefs.Debug)
	case itemSprintPeriod:
		return fmt.Sprintf("Sprint ramp: < %dms >", m.sprint.AccelerationMS)
	case itemSprintTop:
		return fmt.Sprintf("Sprint top speed: < %g >", m.sprint.TopSpeed)
	case itemSprintReset:
		return "Reset sprint"
	default:
		return "Quit"
	}
}

// View renders the launcher.
func (m LauncherModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S P E E D B A L L"), m.width, lipgloss.Width))
	b.WriteString("\n")
	if m.highScore > 0 {
		b.WriteString(centerText(mutedStyle.Render(fmt.Sprintf("High score: %d", m.highScore)), m.width, lipgloss.Width))
	}
	b.WriteString("\n\n")

	for i, it := range launcherItems {
		line := "  " + m.label(it)
		if i == m.cursor {
			line = selectedStyle.Render("> " + m.label(it))
		}
		b.WriteString(centerText(line, m.width, lipgloss.Width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width, lipgloss.Width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns what the user picked, or ChoiceNone.
func (m LauncherModel) Choice() LauncherChoice { return m.choice }

// Difficulty returns the selected preset.
func (m LauncherModel) Difficulty() config.DifficultyPreset { return presets[m.difficulty] }

// Prefs returns the settings, including toggles made in the launcher.
func (m LauncherModel) Prefs() settings.Settings { return m.prefs }

// PrefsChanged reports whether a toggle was flipped.
func (m LauncherModel) PrefsChanged() bool { return m.changed }

// Sprint returns the tuned sprint ramp.
func (m LauncherModel) Sprint() config.SprintConfig { return m.sprint }

// SprintReset reports whether the ramp was reset and not tuned since.
func (m LauncherModel) SprintReset() bool { return m.sprintReset }

// centerText centers text within given width, measuring with widthOf.
func centerText(text string, width int, widthOf func(string) int) string {
	w := widthOf(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
