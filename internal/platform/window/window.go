// Package window runs Speedball in a desktop window with ebiten.
package window

import (
	"errors"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/speedball/internal/a11y"
	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/games/speedball"
	"github.com/vovakirdan/speedball/internal/logging"
	"github.com/vovakirdan/speedball/internal/settings"
	"github.com/vovakirdan/speedball/internal/storage"
)

const title = "SPEEDBALL"

var background = color.RGBA{0x11, 0x11, 0x1a, 0xff}

// Speaker plays cues and can be muted.
type Speaker interface {
	a11y.Player
	SetEnabled(on bool)
}

// Options configure a window session. Every field except Runtime is
// optional.
type Options struct {
	Config   config.SpeedballConfig
	Sprint   config.SprintConfig // replaces Config.Sprint when set
	Runtime  core.RuntimeConfig
	Prefs    settings.Settings
	Store    *storage.Store
	Settings *settings.Store
	Audio    Speaker
	Logs     *logging.Set
	Source   Source
}

// Game adapts a speedball.Game to ebiten.Game. Update runs at the tick
// rate and advances the simulation clock by one tick each call.
type Game struct {
	game      *speedball.Game
	clock     *core.TickClock
	announcer *a11y.Announcer
	input     reader
	opts      Options
	log       *log.Logger

	scoreSaved bool
}

var _ ebiten.Game = (*Game)(nil)

// New creates a window game showing the menu.
func New(opts Options) *Game {
	if opts.Config.Field.Width == 0 {
		opts.Config = config.DefaultSpeedballConfig()
	}
	if opts.Logs == nil {
		opts.Logs = logging.NewSet(io.Discard, false)
	}
	if opts.Source == nil {
		opts.Source = ebitenSource{}
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.ScreenW, rt.ScreenH = int(opts.Config.Field.Width), int(opts.Config.Field.Height)
	opts.Runtime = rt

	clock := core.NewTickClock(time.Now(), rt.TickRate)
	announcer := a11y.New(a11y.Options{
		Clock:  clock,
		Player: opts.Audio,
		Seed:   rt.Seed,
		Logger: opts.Logs.For("audio"),
	})
	announcer.SetAudio(opts.Prefs.Audio)

	game := speedball.New(speedball.Options{
		Config:    opts.Config,
		Clock:     clock,
		Announcer: announcer,
		Logs:      opts.Logs,
	})
	game.SetDebug(opts.Prefs.Debug)
	game.Reset(rt)
	if opts.Sprint != (config.SprintConfig{}) && opts.Sprint != opts.Config.Sprint {
		if err := game.ApplySprintSettings(opts.Sprint); err != nil {
			opts.Logs.For("game").Warn("sprint settings rejected", "err", err)
		}
	}

	return &Game{
		game:      game,
		clock:     clock,
		announcer: announcer,
		input:     reader{src: opts.Source},
		opts:      opts,
		log:       opts.Logs.For("input"),
	}
}

// Update advances one tick. It returns ebiten.Termination on quit.
func (g *Game) Update() error {
	g.clock.Tick()

	f := g.input.read()
	if f.Has(core.ActionToggleAudio) {
		g.toggleAudio()
	}
	if f.Has(core.ActionToggleDebug) {
		g.toggleDebug()
	}

	result := g.game.Step(f)
	g.recordScore(result.State)
	if result.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the field and the announcement line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.game.Draw(NewCanvas(screen))

	if msgs := g.announcer.Messages(); len(msgs) > 0 {
		h := screen.Bounds().Dy()
		ebitenutil.DebugPrintAt(screen, strings.Join(msgs, "  |  "), 4, h-glyphH-2)
	}
}

// Layout keeps the logical screen at field size; ebiten scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Runtime.ScreenW, g.opts.Runtime.ScreenH
}

func (g *Game) recordScore(st core.GameState) {
	if !st.GameOver {
		g.scoreSaved = false
		return
	}
	if g.scoreSaved {
		return
	}
	g.scoreSaved = true
	if g.opts.Store == nil || st.Score <= 0 {
		return
	}
	acc := g.game.Analyzer().Metrics().CurrentAccuracy
	if _, err := g.opts.Store.SaveScore(speedball.ID, st.Score, st.Level, acc); err != nil {
		g.log.Warn("score not saved", "err", err)
	}
}

func (g *Game) toggleAudio() {
	on := g.announcer.ToggleAudio()
	if g.opts.Audio != nil {
		g.opts.Audio.SetEnabled(on)
	}
	g.opts.Prefs.Audio = on
	g.persist(func(s *settings.Settings) { s.Audio = on })
}

func (g *Game) toggleDebug() {
	on := !g.opts.Logs.Debug()
	g.game.SetDebug(on)
	g.opts.Prefs.Debug = on
	g.persist(func(s *settings.Settings) { s.Debug = on })
}

func (g *Game) persist(fn func(*settings.Settings)) {
	if g.opts.Settings == nil {
		return
	}
	if _, err := g.opts.Settings.Update(fn); err != nil {
		g.log.Warn("settings not saved", "err", err)
	}
}

// Game returns the running simulation.
func (g *Game) Game() *speedball.Game { return g.game }

// Prefs returns the settings as changed during the session.
func (g *Game) Prefs() settings.Settings { return g.opts.Prefs }

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	g := New(opts)
	rt := g.opts.Runtime

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(rt.ScreenW, rt.ScreenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rt.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
