// Package a11y turns game events into screen-reader style text
// announcements and audio cues.
package a11y

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedball/internal/audio"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/games/speedball"
	"github.com/vovakirdan/speedball/internal/logging"
)

// Priority selects the announcement region.
type Priority int

const (
	Polite Priority = iota
	Assertive
)

// String returns the region name.
func (p Priority) String() string {
	if p == Assertive {
		return "assertive"
	}
	return "polite"
}

// MessageTTL is how long an announcement stays visible.
const MessageTTL = 3 * time.Second

// BrickAnnounceChance is the share of destroyed bricks that are announced.
const BrickAnnounceChance = 0.1

// Shortcuts lists the keyboard controls read out on request.
var Shortcuts = []string{
	"Arrow keys: Move paddle",
	"Space: Pause game",
	"Enter: Launch ball",
	"Shift: Sprint mode",
	"A: Toggle audio",
}

// Cue tones.
var (
	ToneBallLost      = audio.Tone{Freq: 200, Duration: 300 * time.Millisecond, Wave: audio.WaveSaw}
	ToneGameOver      = audio.Tone{Freq: 150, Duration: 500 * time.Millisecond, Wave: audio.WaveTriangle}
	ToneLevelComplete = audio.Tone{Freq: 800, Duration: 200 * time.Millisecond, Wave: audio.WaveSine}
	TonePowerUp       = audio.Tone{Freq: 600, Duration: 150 * time.Millisecond, Wave: audio.WaveSine}
	TonePaddle        = audio.Tone{Freq: 300, Duration: 50 * time.Millisecond, Wave: audio.WaveSquare}
	ToneWall          = audio.Tone{Freq: 250, Duration: 30 * time.Millisecond, Wave: audio.WaveSquare}
)

// Sprint sweep bounds.
const (
	SprintLowFreq  = 300
	SprintHighFreq = 800
)

// BrickTone is the cue for a destroyed brick; pitch rises with points.
func BrickTone(points int) audio.Tone {
	return audio.Tone{Freq: float64(400 + points*5), Duration: 50 * time.Millisecond, Wave: audio.WaveSine}
}

// Player plays cues. *audio.Manager implements it.
type Player interface {
	Play(t audio.Tone)
	PlaySweep(s audio.Sweep)
	StopSweep()
}

type nopPlayer struct{}

func (nopPlayer) Play(audio.Tone)       {}
func (nopPlayer) PlaySweep(audio.Sweep) {}
func (nopPlayer) StopSweep()            {}

type message struct {
	text string
	at   time.Time
}

// Options configures an Announcer. Every field is optional.
type Options struct {
	Clock  core.Clock
	Player Player
	Seed   int64
	Logger *log.Logger
}

// Announcer implements speedball.Announcer.
type Announcer struct {
	mu        sync.Mutex
	clock     core.Clock
	player    Player
	roll      func() float64
	log       *log.Logger
	audio     bool
	milestone int
	regions   [2]message
}

var _ speedball.Announcer = (*Announcer)(nil)

// New creates an announcer with audio cues on.
func New(opts Options) *Announcer {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Player == nil {
		opts.Player = nopPlayer{}
	}
	return &Announcer{
		clock:  opts.Clock,
		player: opts.Player,
		roll:   core.NewRNG(opts.Seed).Float64,
		log:    logging.OrDiscard(opts.Logger),
		audio:  true,
	}
}

// Announce sets the text of a region. It replaces whatever was there.
func (a *Announcer) Announce(text string, p Priority) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.announce(text, p)
}

func (a *Announcer) announce(text string, p Priority) {
	a.regions[p] = message{text: text, at: a.clock.Now()}
	a.log.Debug("announce", "priority", p, "text", text)
}

// Message returns the live text of a region, or "" once it has expired.
func (a *Announcer) Message(p Priority) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	m := a.regions[p]
	if m.text == "" || a.clock.Now().Sub(m.at) >= MessageTTL {
		return ""
	}
	return m.text
}

// Messages returns the live assertive and polite texts, assertive first,
// skipping empty regions.
func (a *Announcer) Messages() []string {
	var out []string
	for _, p := range []Priority{Assertive, Polite} {
		if s := a.Message(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AudioEnabled reports whether cues are played.
func (a *Announcer) AudioEnabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.audio
}

// SetAudio turns cues on or off.
func (a *Announcer) SetAudio(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.audio = on
	if !on {
		a.player.StopSweep()
	}
}

// ToggleAudio flips cues and announces the new setting.
func (a *Announcer) ToggleAudio() bool {
	a.mu.Lock()
	on := !a.audio
	a.mu.Unlock()

	a.SetAudio(on)
	if on {
		a.Announce("Sound on", Polite)
	} else {
		a.Announce("Sound off", Polite)
	}
	return on
}

func (a *Announcer) play(t audio.Tone) {
	if a.audio {
		a.player.Play(t)
	}
}

// GameState implements speedball.Announcer.
func (a *Announcer) GameState(state speedball.State, info speedball.StateInfo) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch state {
	case speedball.StateMenu:
		a.announce("Game menu. Click or press Enter to start playing.", Polite)
	case speedball.StatePlaying:
		a.announce("Game started. Use arrow keys to move paddle.", Polite)
		a.milestone = info.Score / 100
	case speedball.StatePaused:
		a.announce("Game paused. Press Space to continue.", Assertive)
	case speedball.StateBallLost:
		a.announce(fmt.Sprintf("Ball lost! %d lives remaining.", info.Lives), Assertive)
		a.play(ToneBallLost)
	case speedball.StateGameOver:
		a.announce(fmt.Sprintf("Game Over! Final score: %d. Level reached: %d.", info.Score, max(1, info.Level)), Assertive)
		a.play(ToneGameOver)
	case speedball.StateLevelComplete:
		a.announce(fmt.Sprintf("Level %d complete! Advancing to next level.", max(1, info.Level)), Polite)
		a.play(ToneLevelComplete)
	}
}

// PowerUp implements speedball.Announcer.
func (a *Announcer) PowerUp(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.announce("Power-up collected: "+name, Polite)
	a.play(TonePowerUp)
}

// BrickDestroyed implements speedball.Announcer.
func (a *Announcer) BrickDestroyed(name string, points int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.roll() < BrickAnnounceChance {
		a.announce(fmt.Sprintf("%s brick hit for %d points", capitalize(name), points), Polite)
	}
	a.play(BrickTone(points))
}

// PaddleHit implements speedball.Announcer.
func (a *Announcer) PaddleHit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.play(TonePaddle)
}

// WallBounce implements speedball.Announcer.
func (a *Announcer) WallBounce() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.play(ToneWall)
}

// Sprint implements speedball.Announcer. The cue sweeps between the low
// and high pitch over the ramp period.
func (a *Announcer) Sprint(accelerating bool, period time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sweep := audio.Sweep{From: SprintLowFreq, To: SprintHighFreq, Duration: period, Wave: audio.WaveSine}
	if accelerating {
		a.announce("Sprint mode activated!", Assertive)
	} else {
		sweep.From, sweep.To = sweep.To, sweep.From
		a.announce("Sprint mode deactivated.", Polite)
	}
	if a.audio {
		a.player.PlaySweep(sweep)
	}
}

// Score implements speedball.Announcer. Each hundred is announced once.
func (a *Announcer) Score(score int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if score <= 0 {
		a.milestone = 0
		return
	}
	if m := score / 100; m > a.milestone {
		a.milestone = m
		a.announce(fmt.Sprintf("Score milestone: %d points!", m*100), Polite)
	}
}

// Accuracy implements speedball.Announcer.
func (a *Announcer) Accuracy(accuracy int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case accuracy >= 90:
		a.announce("Excellent accuracy!", Polite)
	case accuracy <= 20:
		a.announce("Try to aim for the bricks!", Polite)
	}
}

// Shortcuts implements speedball.Announcer.
func (a *Announcer) Shortcuts() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.announce("Keyboard shortcuts: "+strings.Join(Shortcuts, ", "), Polite)
}

// Notice announces a free-form message politely.
func (a *Announcer) Notice(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.announce(text, Polite)
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
