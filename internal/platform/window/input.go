package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/speedball/internal/core"
)

// Source reports the device state for one tick.
type Source interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (x, y int)
	Clicked() bool
}

// ebitenSource reads the real devices.
type ebitenSource struct{}

func (ebitenSource) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

func (ebitenSource) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenSource) Cursor() (int, int) { return ebiten.CursorPosition() }

func (ebitenSource) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Edge-triggered keys.
var edgeKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEnter, core.ActionLaunch},
	{ebiten.KeySpace, core.ActionPause},
	{ebiten.KeyEscape, core.ActionMenu},
	{ebiten.KeyH, core.ActionHelp},
	{ebiten.KeyA, core.ActionToggleAudio},
	{ebiten.KeyD, core.ActionToggleDebug},
	{ebiten.KeyQ, core.ActionQuit},
}

// reader turns device state into input frames. A window gets key
// releases, so Left, Right and Shift are sampled as real holds.
type reader struct {
	src    Source
	lastX  int
	lastY  int
	primed bool
}

func (r *reader) read() core.InputFrame {
	f := core.NewInputFrame()

	if r.src.Pressed(ebiten.KeyArrowLeft) {
		f.Set(core.ActionLeft)
	}
	if r.src.Pressed(ebiten.KeyArrowRight) {
		f.Set(core.ActionRight)
	}
	if r.src.Pressed(ebiten.KeyShiftLeft) || r.src.Pressed(ebiten.KeyShiftRight) {
		f.Set(core.ActionSprint)
	}
	for _, e := range edgeKeys {
		if r.src.JustPressed(e.key) {
			f.Set(e.action)
		}
	}

	x, y := r.src.Cursor()
	f.Pointer.X, f.Pointer.Y = float64(x), float64(y)
	// The first sample only records where the cursor rests.
	if r.primed && (x != r.lastX || y != r.lastY) {
		f.Pointer.Moved = true
	}
	r.lastX, r.lastY, r.primed = x, y, true
	f.Pointer.Clicked = r.src.Clicked()
	return f
}
