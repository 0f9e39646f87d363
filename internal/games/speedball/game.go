// Package speedball implements the Speedball breakout game: paddle, balls,
// brick grid, power-ups, particles, the sprint speed burst and the
// orchestrator state machine tying them together.
package speedball

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedball/internal/analysis"
	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/logging"
)

// ID is the game identifier used for high scores.
const ID = "speedball"

// State is the orchestrator state.
type State string

const (
	StateMenu          State = "menu"
	StatePlaying       State = "playing"
	StatePaused        State = "paused"
	StateBallLost      State = "ballLost"
	StateLevelComplete State = "levelComplete"
	StateGameOver      State = "gameOver"
)

// Number of sparks emitted on a paddle hit.
const paddleSparks = 5

// Options configures a Game. Zero fields get defaults: the built-in
// config, the system clock, no announcements and discarded logs.
type Options struct {
	Config    config.SpeedballConfig
	Clock     core.Clock
	Announcer Announcer
	Logs      *logging.Set
}

// Game owns one session and drives every component in a fixed order
// once per tick.
type Game struct {
	cfg      config.SpeedballConfig
	prog     *config.Progression
	clock    core.Clock
	runtime  core.RuntimeConfig
	rng      *core.RNG
	announce Announcer
	logs     *logging.Set
	log      *log.Logger
	inputLog *log.Logger

	paddle    *Paddle
	balls     *BallSet
	grid      *Grid
	particles *Particles
	powerups  *PowerUps
	sprint    *Sprint
	analyzer  *analysis.Analyzer
	events    EventQueue

	state     State
	score     int
	lives     int
	level     int
	tick      uint64
	epoch     uint64
	lastScore int

	sprintHeld bool
}

// New creates a game in the menu state.
func New(opts Options) *Game {
	if opts.Config.Field.Width == 0 {
		opts.Config = config.DefaultSpeedballConfig()
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Announcer == nil {
		opts.Announcer = NopAnnouncer{}
	}
	if opts.Logs == nil {
		opts.Logs = logging.NewSet(io.Discard, false)
	}
	g := &Game{
		cfg:      opts.Config,
		prog:     config.NewProgression(opts.Config),
		clock:    opts.Clock,
		announce: opts.Announcer,
		logs:     opts.Logs,
		log:      opts.Logs.For("game"),
		inputLog: opts.Logs.For("input"),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// Reset rebuilds every component from the runtime config and returns to
// the menu. The seed drives launch jitter, drops and particles.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewRNG(runtime.Seed)

	physics := g.logs.For("physics")
	g.paddle = NewPaddle(g.cfg.Paddle, g.cfg.Field.Width)
	g.balls = NewBallSet(g.cfg.Ball, ballHooks{g}, physics)
	g.grid = NewGrid(g.cfg.Bricks, g.cfg.PowerUps, physics)
	g.particles = NewParticles(g.cfg.Particles, g.rng)
	g.powerups = NewPowerUps(g.cfg.PowerUps, g.rng, g.announce, physics)
	g.sprint = NewSprint(g.cfg.Sprint, g.clock, g.announce, physics)
	g.analyzer = analysis.New(g.cfg.Analysis, g.clock, g.logs.For("ai"))
	g.events.Clear()

	g.grid.Create()
	g.balls.Reset(g.paddle)

	g.score, g.lastScore = 0, 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.tick = 0
	g.epoch++
	g.sprintHeld = false
	g.state = StateMenu
	g.log.Info("game reset", "seed", runtime.Seed)
	g.announce.GameState(StateMenu, g.info())
}

// Start begins a new game from the menu or the game-over screen.
func (g *Game) Start() bool {
	if g.state != StateMenu && g.state != StateGameOver {
		return false
	}
	g.epoch++
	g.events.Clear()

	g.score, g.lastScore = 0, 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1

	g.powerups.ResetActive(g.paddle, g.balls)
	g.powerups.Clear()
	g.sprint.Cancel()
	g.paddle.Reset()
	g.paddle.Speed = g.prog.PaddleSpeed(g.level)
	g.grid.Create()
	g.balls.SetBaseSpeed(g.prog.BallSpeed(g.level))
	g.balls.Reset(g.paddle)
	g.particles.Clear()
	g.analyzer.ResetForNewGame()

	g.state = StatePlaying
	g.log.Info("game started", "score", g.score, "lives", g.lives, "level", g.level)
	g.announce.GameState(StatePlaying, g.info())
	return true
}

// Pause freezes a running game.
func (g *Game) Pause() bool {
	if g.state != StatePlaying {
		return false
	}
	g.state = StatePaused
	g.log.Info("game paused")
	g.announce.GameState(StatePaused, g.info())
	return true
}

// Resume continues a paused game.
func (g *Game) Resume() bool {
	if g.state != StatePaused {
		return false
	}
	g.state = StatePlaying
	g.sprint.Resume()
	g.log.Info("game resumed")
	return true
}

// ReturnToMenu abandons a running or paused game. Pending respawn and
// level events are invalidated.
func (g *Game) ReturnToMenu() bool {
	if g.state != StatePlaying && g.state != StatePaused {
		return false
	}
	g.epoch++
	g.events.Clear()
	g.sprint.Cancel()
	g.state = StateMenu
	g.log.Info("returned to menu", "score", g.score, "level", g.level)
	g.announce.GameState(StateMenu, g.info())
	return true
}

// Continue skips the respawn delay after a lost ball.
func (g *Game) Continue() bool {
	if g.state != StateBallLost || g.lives <= 0 {
		return false
	}
	g.respawn()
	return true
}

// ApplySprintSettings replaces the sprint ramp parameters. Invalid
// parameters are rejected and the current ones kept.
func (g *Game) ApplySprintSettings(cfg config.SprintConfig) error {
	if err := g.sprint.ApplySettings(cfg); err != nil {
		return err
	}
	g.announce.Notice("Sprint settings updated")
	return nil
}

// ResetSprintSettings restores the configured sprint ramp.
func (g *Game) ResetSprintSettings() {
	g.sprint.ResetSettings()
	g.announce.Notice("Sprint settings reset to defaults")
}

// SetDebug switches every component logger between debug and info.
func (g *Game) SetDebug(debug bool) {
	g.logs.SetDebug(debug)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, ev := range g.events.Due(g.clock.Now()) {
		g.fire(ev)
	}

	quit := g.handleInput(in)
	if g.state != StatePlaying {
		return core.StepResult{State: g.State(), Quit: quit}
	}

	g.updatePaddle(in)
	g.balls.Update(g.cfg.Field.Width, g.cfg.Field.Height, g.paddle)
	for _, pk := range g.powerups.Update(g.paddle, g.balls, g.cfg.Field.Height) {
		if pk.Def.Kind == EffectMultiBall {
			g.particles.Explosion(g.paddle.CenterX(), g.paddle.Y, pk.Def.Color, 12)
		}
	}
	g.particles.Update()
	g.resolveBricks()
	g.sprint.Update(g.balls)
	if g.sprint.Phase() == SprintAccelerating {
		for _, b := range g.balls.Free() {
			g.particles.Trail(b.X, b.Y, core.ColorCyan, 1)
		}
	}

	switch {
	case g.grid.AllDestroyed():
		g.completeLevel()
	case !g.balls.HasBalls():
		g.loseLife()
	}

	if g.analyzer.Tick() {
		g.log.Debug("performance analyzed", "summary", g.analyzer.Summary())
		g.announce.Accuracy(g.analyzer.Metrics().CurrentAccuracy)
	}
	if g.score != g.lastScore {
		g.lastScore = g.score
		g.announce.Score(g.score)
	}

	return core.StepResult{State: g.State(), Quit: quit}
}

// handleInput applies edge-triggered actions. It reports a quit request.
func (g *Game) handleInput(in core.InputFrame) bool {
	if in.Has(core.ActionHelp) {
		g.announce.Shortcuts()
	}

	switch {
	case in.Has(core.ActionMenu):
		g.ReturnToMenu()
	case in.Has(core.ActionPause):
		switch g.state {
		case StateMenu:
			g.Start()
		case StatePlaying:
			g.Pause()
		case StatePaused:
			g.Resume()
		}
	case in.Has(core.ActionLaunch):
		switch g.state {
		case StateMenu, StateGameOver:
			g.Start()
		case StatePlaying:
			if g.paddle.Mode == InputKeyboard {
				g.balls.Launch(g.rng)
			}
		}
	}

	if in.Pointer.Clicked {
		switch g.state {
		case StateMenu, StateGameOver:
			g.Start()
		case StatePlaying:
			g.balls.Launch(g.rng)
		case StateBallLost:
			g.Continue()
		}
	}

	held := in.Has(core.ActionSprint)
	switch {
	case held && !g.sprintHeld:
		g.sprint.Start(g.balls, g.state)
	case !held && g.sprintHeld:
		g.sprint.End()
	}
	g.sprintHeld = held

	return in.Has(core.ActionQuit)
}

func (g *Game) updatePaddle(in core.InputFrame) {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	if left || right {
		dir := 0
		if left {
			dir--
		}
		if right {
			dir++
		}
		if g.paddle.Mode != InputKeyboard {
			g.inputLog.Debug("paddle control", "mode", InputKeyboard)
		}
		g.paddle.Mode = InputKeyboard
		g.paddle.Steer(dir)
		return
	}
	if in.Pointer.Moved {
		if g.paddle.Mode != InputMouse {
			g.inputLog.Debug("paddle control", "mode", InputMouse)
		}
		g.paddle.Follow(in.Pointer.X)
	}
}

// resolveBricks checks every ball against the grid once.
func (g *Game) resolveBricks() {
	for _, b := range g.balls.All() {
		hit, ok := g.grid.CheckCollision(b)
		if !ok {
			continue
		}
		g.analyzer.TrackBrickHit()
		if !hit.Destroyed {
			continue
		}

		br := hit.Brick
		box := br.Box()
		g.score += br.Points
		g.particles.Burst(box.CenterX(), box.CenterY(), br.Color)
		g.announce.BrickDestroyed(br.Name, br.Points)
		if g.rng.Float64() < g.grid.DropChance(g.analyzer) {
			g.powerups.Create(box.CenterX(), box.CenterY())
		}
	}
}

func (g *Game) completeLevel() {
	g.state = StateLevelComplete
	g.epoch++
	g.sprint.Cancel()
	g.schedule(EventNextLevel, g.cfg.Gameplay.LevelDelay())
	g.log.Info("level complete", "level", g.level, "score", g.score)
	g.announce.GameState(StateLevelComplete, g.info())
}

func (g *Game) loseLife() {
	g.lives--
	g.analyzer.TrackBallLoss()
	g.sprint.Cancel()
	g.epoch++

	if g.lives <= 0 {
		g.lives = 0
		g.analyzer.Analyze()
		g.state = StateGameOver
		g.log.Info("game over", "score", g.score, "level", g.level,
			"accuracy", g.analyzer.Metrics().CurrentAccuracy)
		g.announce.GameState(StateGameOver, g.info())
		return
	}

	g.state = StateBallLost
	g.schedule(EventRespawn, g.cfg.Gameplay.RespawnDelay())
	g.log.Info("ball lost", "lives", g.lives)
	g.announce.GameState(StateBallLost, g.info())
}

func (g *Game) schedule(kind EventKind, delay time.Duration) {
	g.events.Schedule(Event{
		Kind:   kind,
		FireAt: g.clock.Now().Add(delay),
		Epoch:  g.epoch,
	})
}

// fire applies a due event if its guard still holds.
func (g *Game) fire(ev Event) {
	if ev.Epoch != g.epoch {
		g.log.Debug("stale event dropped", "kind", ev.Kind, "state", g.state)
		return
	}
	switch ev.Kind {
	case EventRespawn:
		if g.state == StateBallLost && g.lives > 0 {
			g.respawn()
		}
	case EventNextLevel:
		if g.state == StateLevelComplete {
			g.nextLevel()
		}
	}
}

func (g *Game) respawn() {
	g.epoch++
	g.balls.AddBall(g.paddle.CenterX(), g.paddle.Y-g.cfg.Ball.Radius, true)
	g.state = StatePlaying
	g.sprint.Resume()
	g.log.Debug("ball respawned", "lives", g.lives)
}

func (g *Game) nextLevel() {
	g.epoch++
	g.level++

	g.grid.Create()
	g.powerups.ResetActive(g.paddle, g.balls)
	g.paddle.Reset()
	g.paddle.Speed = g.prog.PaddleSpeed(g.level)
	g.balls.SetBaseSpeed(g.prog.BallSpeed(g.level))
	g.balls.Reset(g.paddle)
	g.analyzer.ResetForNewLevel()

	g.state = StatePlaying
	g.log.Info("level started", "level", g.level,
		"ballSpeed", g.balls.BaseSpeed(), "paddleSpeed", g.paddle.Speed)
}

func (g *Game) info() StateInfo {
	return StateInfo{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		Accuracy: g.analyzer.Metrics().CurrentAccuracy,
	}
}

// State returns the game summary for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    string(g.state),
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the orchestrator state.
func (g *Game) Phase() State { return g.state }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Level returns the current level (1-based).
func (g *Game) Level() int { return g.level }

// Tick returns the number of steps since Reset.
func (g *Game) Tick() uint64 { return g.tick }

// Config returns the game parameters.
func (g *Game) Config() config.SpeedballConfig { return g.cfg }

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle { return g.paddle }

// Balls returns the ball collection.
func (g *Game) Balls() *BallSet { return g.balls }

// Grid returns the brick grid.
func (g *Game) Grid() *Grid { return g.grid }

// PowerUps returns the power-up system.
func (g *Game) PowerUps() *PowerUps { return g.powerups }

// Particles returns the particle system.
func (g *Game) Particles() *Particles { return g.particles }

// Sprint returns the sprint controller.
func (g *Game) Sprint() *Sprint { return g.sprint }

// Analyzer returns the performance analyzer.
func (g *Game) Analyzer() *analysis.Analyzer { return g.analyzer }

// Events returns the pending deferred transitions.
func (g *Game) Events() []Event { return g.events.Pending() }

// ballHooks forwards ball collisions to analysis, audio and particles.
type ballHooks struct{ g *Game }

func (h ballHooks) WallBounce() { h.g.announce.WallBounce() }

func (h ballHooks) PaddleHit(b *Ball) {
	h.g.analyzer.TrackPaddleHit()
	h.g.announce.PaddleHit()
	h.g.particles.Sparks(b.X, b.Y+b.Radius, paddleSparks)
}

func (h ballHooks) BallLost(b *Ball) {
	p := h.g.paddle
	h.g.analyzer.TrackPaddleMiss(b.X, p.X, p.Width)
}
