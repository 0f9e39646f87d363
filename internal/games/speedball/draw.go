package speedball

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/speedball/internal/analysis"
	"github.com/vovakirdan/speedball/internal/core"
)

// Canvas is the drawing surface a frontend provides. Coordinates are in
// world units; the frontend scales them to cells or pixels.
type Canvas interface {
	FillRect(x, y, w, h float64, c core.Color, alpha float64)
	FillCircle(cx, cy, r float64, c core.Color)
	Text(centerX, y float64, s string, c core.Color)
	Dim(alpha float64)
}

// HUD rows, above the brick grid.
const (
	hudScoreY    = 16
	hudAccuracyY = 36
)

// Draw renders the current state.
func (g *Game) Draw(c Canvas) {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	cx, cy := w/2, h/2

	switch g.state {
	case StateMenu:
		g.drawMenu(c, cx)

	case StatePlaying:
		g.drawWorld(c, true, true)
		g.drawHUD(c)

	case StatePaused:
		g.drawWorld(c, true, true)
		g.drawHUD(c)
		c.Dim(0.6)
		c.Text(cx, cy, "PAUSED", core.ColorWhite)
		c.Text(cx, cy+40, "Press SPACE to continue", core.ColorWhite)

	case StateBallLost:
		g.drawWorld(c, false, false)
		g.drawHUD(c)
		c.Dim(0.6)
		c.Text(cx, cy-20, "BALL LOST!", core.ColorRed)
		c.Text(cx, cy+20, fmt.Sprintf("Lives Remaining: %d", g.lives), core.ColorWhite)
		if g.lives > 0 {
			c.Text(cx, cy+50, "Click to continue or wait...", core.ColorGray)
		}

	case StateLevelComplete:
		g.drawWorld(c, true, false)
		g.drawHUD(c)
		c.Dim(0.7)
		c.Text(cx, cy, "LEVEL COMPLETE!", core.ColorWhite)
		c.Text(cx, cy+40, "Get ready for the next level...", core.ColorWhite)

	case StateGameOver:
		g.drawGameOver(c, cx)
	}
}

// drawWorld draws the bricks, paddle and particles, optionally with the
// balls and falling pickups.
func (g *Game) drawWorld(c Canvas, balls, pickups bool) {
	for _, br := range g.grid.Bricks() {
		if br.Destroyed {
			continue
		}
		c.FillRect(br.X, br.Y, br.Width, br.Height, br.Color, 0.4+0.6*br.Intensity())
	}

	paddleColor := core.ColorWhite
	if g.powerups.IsActive(EffectWidePaddle) {
		paddleColor = core.ColorBlue
	}
	p := g.paddle
	c.FillRect(p.X, p.Y, p.Width, p.Height, paddleColor, 1)

	if balls {
		ballColor := core.ColorWhite
		if g.sprint.Active() {
			ballColor = core.ColorCyan
		}
		for _, b := range g.balls.All() {
			c.FillCircle(b.X, b.Y, b.Radius, ballColor)
		}
	}

	if pickups {
		for _, pk := range g.powerups.Falling() {
			c.FillRect(pk.X, pk.Y, pk.Width, pk.Height, pk.Def.Color, 1)
			c.Text(pk.X+pk.Width/2, pk.Y+pk.Height/2, string(pk.Def.Letter), core.ColorBlack)
		}
	}

	for _, pt := range g.particles.All() {
		c.FillRect(pt.X, pt.Y, pt.Size, pt.Size, pt.Color, pt.Alpha())
	}
}

func (g *Game) drawHUD(c Canvas) {
	cx := g.cfg.Field.Width / 2
	c.Text(cx, hudScoreY, fmt.Sprintf("SCORE %d   LIVES %d   LEVEL %d (%d%%)", g.score, g.lives, g.level, g.grid.CompletionPercent()), core.ColorWhite)

	m := g.analyzer.Metrics()
	c.Text(cx, hudAccuracyY, fmt.Sprintf("ACCURACY %d%%", m.CurrentAccuracy), skillColor(m.Skill))

	var parts []string
	for _, a := range g.powerups.Active() {
		parts = append(parts, fmt.Sprintf("%s %ds", a.Def.Name, int(math.Ceil(a.Remaining.Seconds()))))
	}
	if g.sprint.Active() {
		parts = append(parts, "SPRINT")
	}
	if len(parts) > 0 {
		c.Text(cx, g.cfg.Field.Height-16, strings.Join(parts, "   "), core.ColorGray)
	}
}

// skillColor is the accuracy marker: red struggling, green skilled.
func skillColor(s analysis.SkillLevel) core.Color {
	switch s {
	case analysis.SkillStruggling:
		return core.ColorRed
	case analysis.SkillSkilled:
		return core.ColorGreen
	default:
		return core.ColorYellow
	}
}

func (g *Game) drawMenu(c Canvas, cx float64) {
	c.Dim(0.8)
	c.Text(cx, 200, "SPEEDBALL", core.ColorWhite)
	c.Text(cx, 280, "Click to Start", core.ColorWhite)
	c.Text(cx, 310, "or press SPACE / ENTER", core.ColorGray)
	c.Text(cx, 340, "H: keyboard shortcuts", core.ColorGray)
}

func (g *Game) drawGameOver(c Canvas, cx float64) {
	m := g.analyzer.Metrics()
	c.Dim(0.8)
	c.Text(cx, 200, "GAME OVER", core.ColorWhite)
	c.Text(cx, 260, fmt.Sprintf("Final Score: %d", g.score), core.ColorWhite)
	c.Text(cx, 290, fmt.Sprintf("Level Reached: %d", g.level), core.ColorWhite)
	c.Text(cx, 320, fmt.Sprintf("Accuracy: %d%%", m.CurrentAccuracy), core.ColorWhite)
	c.Text(cx, 360, fmt.Sprintf("Bricks Hit: %d | Balls Lost: %d", m.BricksHit, m.BallsLost), core.ColorGray)
	c.Text(cx, 420, "Click to Play Again", core.ColorWhite)
}
