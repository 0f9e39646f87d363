package tui

import (
	"math"

	"github.com/vovakirdan/speedball/internal/core"
)

// Canvas draws the world onto a terminal cell buffer. World coordinates
// are scaled to the screen; every shape covers at least one cell.
type Canvas struct {
	screen *core.Screen
	sx, sy float64
}

// NewCanvas maps a world of worldW x worldH units onto s.
func NewCanvas(s *core.Screen, worldW, worldH float64) *Canvas {
	c := &Canvas{screen: s}
	c.Fit(worldW, worldH)
	return c
}

// Fit recomputes the scale after the screen was resized.
func (c *Canvas) Fit(worldW, worldH float64) {
	c.sx = float64(c.screen.Width()) / math.Max(1, worldW)
	c.sy = float64(c.screen.Height()) / math.Max(1, worldH)
}

// Clear blanks the buffer.
func (c *Canvas) Clear() { c.screen.Clear() }

// ToWorld converts a cell position to the world point at its center.
func (c *Canvas) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) / c.sx, (float64(row) + 0.5) / c.sy
}

func (c *Canvas) span(pos, size, scale float64) (int, int) {
	lo := int(math.Round(pos * scale))
	hi := int(math.Round((pos + size) * scale))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// shade picks a block rune for an opacity.
func shade(alpha float64) rune {
	switch {
	case alpha >= 0.75:
		return '█'
	case alpha >= 0.5:
		return '▓'
	case alpha >= 0.25:
		return '▒'
	default:
		return '░'
	}
}

// FillRect implements speedball.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col core.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	x0, x1 := c.span(x, w, c.sx)
	y0, y1 := c.span(y, h, c.sy)
	c.screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), shade(alpha), col)
}

// FillCircle implements speedball.Canvas. Small circles become one dot.
func (c *Canvas) FillCircle(cx, cy, r float64, col core.Color) {
	rx, ry := r*c.sx, r*c.sy
	col0, row0 := int(math.Floor(cx*c.sx)), int(math.Floor(cy*c.sy))
	if rx < 1 || ry < 1 {
		c.screen.Set(col0, row0, '●', col)
		return
	}
	for row := int(math.Floor((cy - r) * c.sy)); row <= int(math.Floor((cy+r)*c.sy)); row++ {
		for x := int(math.Floor((cx - r) * c.sx)); x <= int(math.Floor((cx+r)*c.sx)); x++ {
			wx, wy := c.ToWorld(x, row)
			if (wx-cx)*(wx-cx)+(wy-cy)*(wy-cy) <= r*r {
				c.screen.Set(x, row, '█', col)
			}
		}
	}
}

// Text implements speedball.Canvas.
func (c *Canvas) Text(centerX, y float64, s string, col core.Color) {
	c.screen.DrawTextCentered(int(math.Round(centerX*c.sx)), int(math.Floor(y*c.sy)), s, col)
}

// Dim implements speedball.Canvas by greying out what is drawn so far.
func (c *Canvas) Dim(alpha float64) {
	to := core.ColorGray
	if alpha >= 0.5 {
		to = core.ColorDarkGray
	}
	c.screen.MapColors(func(core.Color) core.Color { return to })
}
