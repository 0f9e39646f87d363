package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/speedball/internal/core"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

// Canvas draws the world onto an ebiten image. The window layout equals
// the field size, so world units are pixels.
type Canvas struct {
	dst *ebiten.Image
}

// NewCanvas wraps dst.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

func withAlpha(c core.Color, alpha float64) color.NRGBA {
	v := c.RGBA()
	return color.NRGBA{R: v.R, G: v.G, B: v.B, A: uint8(core.ClampF(alpha, 0, 1) * 255)}
}

// FillRect implements speedball.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col core.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), withAlpha(col, alpha), false)
}

// FillCircle implements speedball.Canvas.
func (c *Canvas) FillCircle(cx, cy, r float64, col core.Color) {
	//nolint:staticcheck // TODO: migrate to vector.FillCircle
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col.RGBA(), true)
}

// Text implements speedball.Canvas. The debug font is always white, so
// col is ignored.
func (c *Canvas) Text(centerX, y float64, s string, _ core.Color) {
	x := int(centerX) - len([]rune(s))*glyphW/2
	ebitenutil.DebugPrintAt(c.dst, s, x, int(y)-glyphH/2)
}

// Dim implements speedball.Canvas by blending black over the image.
func (c *Canvas) Dim(alpha float64) {
	b := c.dst.Bounds()
	vector.FillRect(c.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), withAlpha(core.ColorBlack, alpha), false)
}
