package speedball

import "time"

// Announcer receives discrete game events for accessibility output
// (text announcements and tone cues). It never feeds back into the game.
type Announcer interface {
	GameState(state State, info StateInfo)
	PowerUp(name string)
	BrickDestroyed(name string, points int)
	PaddleHit()
	WallBounce()
	Sprint(accelerating bool, period time.Duration)
	Score(score int)
	Accuracy(accuracy int)
	Shortcuts()
	Notice(text string)
}

// StateInfo carries the numbers some state announcements mention.
type StateInfo struct {
	Score    int
	Lives    int
	Level    int
	Accuracy int
}

// NopAnnouncer ignores every event.
type NopAnnouncer struct{}

func (NopAnnouncer) GameState(State, StateInfo) {}
func (NopAnnouncer) PowerUp(string)             {}
func (NopAnnouncer) BrickDestroyed(string, int) {}
func (NopAnnouncer) PaddleHit()                 {}
func (NopAnnouncer) WallBounce()                {}
func (NopAnnouncer) Sprint(bool, time.Duration) {}
func (NopAnnouncer) Score(int)                  {}
func (NopAnnouncer) Accuracy(int)               {}
func (NopAnnouncer) Shortcuts()                 {}
func (NopAnnouncer) Notice(string)              {}
