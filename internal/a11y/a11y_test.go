package a11y

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/speedball/internal/audio"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/games/speedball"
)

type fakePlayer struct {
	tones   []audio.Tone
	sweeps  []audio.Sweep
	stopped int
}

func (p *fakePlayer) Play(t audio.Tone)       { p.tones = append(p.tones, t) }
func (p *fakePlayer) PlaySweep(s audio.Sweep) { p.sweeps = append(p.sweeps, s) }
func (p *fakePlayer) StopSweep()              { p.stopped++ }

func newTestAnnouncer() (*Announcer, *fakePlayer, *core.ManualClock) {
	clock := core.NewManualClock(time.Unix(0, 0))
	player := &fakePlayer{}
	return New(Options{Clock: clock, Player: player}), player, clock
}

func TestStateAnnouncements(t *testing.T) {
	a, player, _ := newTestAnnouncer()

	a.GameState(speedball.StateMenu, speedball.StateInfo{})
	assert.Equal(t, "Game menu. Click or press Enter to start playing.", a.Message(Polite))

	a.GameState(speedball.StateBallLost, speedball.StateInfo{Lives: 2})
	assert.Equal(t, "Ball lost! 2 lives remaining.", a.Message(Assertive))

	a.GameState(speedball.StateGameOver, speedball.StateInfo{Score: 340, Level: 2})
	assert.Equal(t, "Game Over! Final score: 340. Level reached: 2.", a.Message(Assertive))

	a.GameState(speedball.StateLevelComplete, speedball.StateInfo{Level: 3})
	assert.Equal(t, "Level 3 complete! Advancing to next level.", a.Message(Polite))

	assert.Equal(t, []audio.Tone{ToneBallLost, ToneGameOver, ToneLevelComplete}, player.tones)
}

func TestMessagesExpire(t *testing.T) {
	a, _, clock := newTestAnnouncer()

	a.GameState(speedball.StatePaused, speedball.StateInfo{})
	a.PowerUp("Wide Paddle")
	assert.Equal(t, []string{"Game paused. Press Space to continue.", "Power-up collected: Wide Paddle"}, a.Messages())

	clock.Advance(MessageTTL - time.Millisecond)
	assert.Len(t, a.Messages(), 2)

	clock.Advance(time.Millisecond)
	assert.Empty(t, a.Messages())
}

func TestNewerMessageKeepsItsOwnTimer(t *testing.T) {
	a, _, clock := newTestAnnouncer()

	a.Announce("first", Polite)
	clock.Advance(2 * time.Second)
	a.Announce("second", Polite)
	clock.Advance(2 * time.Second)
	assert.Equal(t, "second", a.Message(Polite))
}

func TestBrickAnnouncementsAreSampled(t *testing.T) {
	a, player, _ := newTestAnnouncer()

	a.roll = func() float64 { return 0.5 }
	a.BrickDestroyed("red", 10)
	assert.Empty(t, a.Message(Polite))

	a.roll = func() float64 { return 0.05 }
	a.BrickDestroyed("yellow", 30)
	assert.Equal(t, "Yellow brick hit for 30 points", a.Message(Polite))

	require.Len(t, player.tones, 2)
	assert.InDelta(t, 450, player.tones[0].Freq, 1e-9)
	assert.InDelta(t, 550, player.tones[1].Freq, 1e-9)
}

func TestScoreMilestones(t *testing.T) {
	a, _, clock := newTestAnnouncer()

	a.Score(90)
	assert.Empty(t, a.Message(Polite))

	a.Score(110)
	assert.Equal(t, "Score milestone: 100 points!", a.Message(Polite))

	clock.Advance(MessageTTL)
	a.Score(150)
	assert.Empty(t, a.Message(Polite), "a milestone is announced once")

	a.Score(0)
	a.Score(100)
	assert.Equal(t, "Score milestone: 100 points!", a.Message(Polite))
}

func TestAccuracyRemarks(t *testing.T) {
	a, _, clock := newTestAnnouncer()

	a.Accuracy(50)
	assert.Empty(t, a.Message(Polite))

	a.Accuracy(90)
	assert.Equal(t, "Excellent accuracy!", a.Message(Polite))

	clock.Advance(MessageTTL)
	a.Accuracy(20)
	assert.Equal(t, "Try to aim for the bricks!", a.Message(Polite))
}

func TestSprintSweeps(t *testing.T) {
	a, player, _ := newTestAnnouncer()

	a.Sprint(true, 500*time.Millisecond)
	assert.Equal(t, "Sprint mode activated!", a.Message(Assertive))
	a.Sprint(false, 500*time.Millisecond)
	assert.Equal(t, "Sprint mode deactivated.", a.Message(Polite))

	require.Len(t, player.sweeps, 2)
	assert.Equal(t, audio.Sweep{From: 300, To: 800, Duration: 500 * time.Millisecond, Wave: audio.WaveSine}, player.sweeps[0])
	assert.Equal(t, audio.Sweep{From: 800, To: 300, Duration: 500 * time.Millisecond, Wave: audio.WaveSine}, player.sweeps[1])
}

func TestAudioToggle(t *testing.T) {
	a, player, _ := newTestAnnouncer()

	assert.False(t, a.ToggleAudio())
	assert.Equal(t, "Sound off", a.Message(Polite))
	assert.Equal(t, 1, player.stopped)

	a.PaddleHit()
	a.WallBounce()
	a.Sprint(true, time.Second)
	assert.Empty(t, player.tones)
	assert.Empty(t, player.sweeps)

	assert.True(t, a.ToggleAudio())
	a.PaddleHit()
	a.WallBounce()
	assert.Equal(t, []audio.Tone{TonePaddle, ToneWall}, player.tones)
}

func TestShortcuts(t *testing.T) {
	a, _, _ := newTestAnnouncer()
	a.Shortcuts()
	assert.Equal(t, "Keyboard shortcuts: Arrow keys: Move paddle, Space: Pause game, Enter: Launch ball, Shift: Sprint mode, A: Toggle audio", a.Message(Polite))
}

func TestNotice(t *testing.T) {
	a, player, _ := newTestAnnouncer()
	a.Notice("Sprint settings updated")
	assert.Equal(t, "Sprint settings updated", a.Message(Polite))
	assert.Empty(t, a.Message(Assertive))
	assert.Empty(t, player.tones)
}

func TestDrivesGame(t *testing.T) {
	a, _, _ := newTestAnnouncer()
	g := speedball.New(speedball.Options{Announcer: a})

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	assert.Equal(t, speedball.StatePlaying, g.Phase())
	assert.Equal(t, "Game started. Use arrow keys to move paddle.", a.Message(Polite))
}
