package speedball

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/logging"
)

// Brick is one cell of the grid.
type Brick struct {
	X, Y          float64
	Width, Height float64
	HitsRemaining int
	MaxHits       int
	Points        int
	Color         core.Color
	Name          string
	Destroyed     bool
}

// Box returns the brick bounds.
func (b *Brick) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Intensity is the remaining strength in (0, 1]; damaged bricks draw darker.
func (b *Brick) Intensity() float64 {
	if b.MaxHits <= 0 {
		return 1
	}
	return float64(b.HitsRemaining) / float64(b.MaxHits)
}

// Axis is the velocity component reflected by a brick collision.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Hit describes a resolved ball-brick collision.
type Hit struct {
	Brick     *Brick
	Axis      Axis
	Destroyed bool
}

// Assist is the adaptive-assistance signal consulted for drop rates.
type Assist interface {
	ShouldIncreasePowerUpRate() bool
	ShouldDecreasePowerUpRate() bool
}

// Grid is the brick layout of the current level.
type Grid struct {
	cfg    config.BricksConfig
	drops  config.PowerUpsConfig
	tiers  []tier
	bricks []*Brick
	log    *log.Logger
}

type tier struct {
	name   string
	color  core.Color
	hits   int
	points int
}

// NewGrid creates an empty grid; call Create to lay out bricks.
func NewGrid(cfg config.BricksConfig, drops config.PowerUpsConfig, logger *log.Logger) *Grid {
	g := &Grid{cfg: cfg, drops: drops, log: logging.OrDiscard(logger)}
	for _, t := range cfg.Tiers {
		c, _ := core.ParseColor(t.Color)
		g.tiers = append(g.tiers, tier{name: t.Name, color: c, hits: max(1, t.Hits), points: t.Points})
	}
	if len(g.tiers) == 0 {
		g.tiers = []tier{{name: "brick", color: core.ColorWhite, hits: 1, points: 10}}
	}
	return g
}

// tierForRow maps a row to its tier; rows past the table reuse the last entry.
func (g *Grid) tierForRow(row int) tier {
	idx := len(g.tiers) - 1
	if len(g.cfg.RowTiers) > 0 {
		idx = g.cfg.RowTiers[min(row, len(g.cfg.RowTiers)-1)]
	}
	return g.tiers[core.Clamp(idx, 0, len(g.tiers)-1)]
}

// Create lays out a fresh rows x cols grid.
func (g *Grid) Create() {
	g.bricks = g.bricks[:0]
	for row := 0; row < g.cfg.Rows; row++ {
		t := g.tierForRow(row)
		for col := 0; col < g.cfg.Cols; col++ {
			g.bricks = append(g.bricks, &Brick{
				X:             float64(col)*(g.cfg.Width+g.cfg.Padding) + g.cfg.OffsetLeft,
				Y:             float64(row)*(g.cfg.Height+g.cfg.Padding) + g.cfg.OffsetTop,
				Width:         g.cfg.Width,
				Height:        g.cfg.Height,
				HitsRemaining: t.hits,
				MaxHits:       t.hits,
				Points:        t.points,
				Color:         t.color,
				Name:          t.name,
			})
		}
	}
	g.log.Debug("bricks created", "rows", g.cfg.Rows, "cols", g.cfg.Cols, "total", len(g.bricks))
}

// CheckCollision resolves at most one brick against the ball. The first
// live brick in layout order whose box overlaps the ball's box is hit:
// the ball reflects on the axis of shallower penetration (ties reflect
// DX) and the brick loses one hit.
func (g *Grid) CheckCollision(b *Ball) (Hit, bool) {
	ballBox := b.Box()
	for _, br := range g.bricks {
		if br.Destroyed || !ballBox.Overlaps(br.Box()) {
			continue
		}

		box := br.Box()
		intersectX := math.Abs(b.X-box.CenterX()) - (br.Width/2 + b.Radius)
		intersectY := math.Abs(b.Y-box.CenterY()) - (br.Height/2 + b.Radius)

		hit := Hit{Brick: br}
		if intersectX >= intersectY {
			b.DX = -b.DX
			hit.Axis = AxisX
		} else {
			b.DY = -b.DY
			hit.Axis = AxisY
		}

		br.HitsRemaining--
		if br.HitsRemaining <= 0 {
			br.HitsRemaining = 0
			br.Destroyed = true
			hit.Destroyed = true
		}
		g.log.Debug("brick hit", "name", br.Name, "remaining", br.HitsRemaining, "destroyed", br.Destroyed)
		return hit, true
	}
	return Hit{}, false
}

// DropChance returns the power-up spawn probability for a destroyed brick.
func (g *Grid) DropChance(assist Assist) float64 {
	if assist != nil {
		if assist.ShouldIncreasePowerUpRate() {
			return g.drops.IncreasedDropChance
		}
		if assist.ShouldDecreasePowerUpRate() {
			return g.drops.DecreasedDropChance
		}
	}
	return g.drops.DropChance
}

// AllDestroyed reports whether the level is cleared.
func (g *Grid) AllDestroyed() bool {
	return g.Remaining() == 0
}

// Remaining returns the number of live bricks.
func (g *Grid) Remaining() int {
	n := 0
	for _, br := range g.bricks {
		if !br.Destroyed {
			n++
		}
	}
	return n
}

// Total returns the number of bricks in the layout.
func (g *Grid) Total() int { return len(g.bricks) }

// CompletionPercent returns the share of destroyed bricks, 0-100.
func (g *Grid) CompletionPercent() int {
	if len(g.bricks) == 0 {
		return 0
	}
	return int(math.Round(float64(len(g.bricks)-g.Remaining()) / float64(len(g.bricks)) * 100))
}

// Bricks returns the layout. The slice is owned by the grid.
func (g *Grid) Bricks() []*Brick { return g.bricks }
