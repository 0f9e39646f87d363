// Package analysis classifies recent play and exposes the assistance
// signals that tune power-up drop rates.
package analysis

import (
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/logging"
)

// SkillLevel is the coarse classification of recent play.
type SkillLevel string

const (
	SkillStruggling SkillLevel = "struggling"
	SkillAverage    SkillLevel = "average"
	SkillSkilled    SkillLevel = "skilled"
)

// Assistance is how much help the player should get.
type Assistance string

const (
	AssistNone   Assistance = "none"
	AssistSubtle Assistance = "subtle"
	AssistActive Assistance = "active"
)

// Classification thresholds.
const (
	strugglingAccuracy = 30
	strugglingDeaths   = 3
	strugglingLossRate = 2.0
	skilledAccuracy    = 60
	skilledLossRate    = 0.5
	lossRateWindow     = 30 * time.Second

	increaseDeaths   = 2
	increaseAccuracy = 40
	decreaseAccuracy = 70
)

// Snapshot is one entry of the recent-performance history.
type Snapshot struct {
	Timestamp         time.Time
	Accuracy          int
	ConsecutiveDeaths int
	Skill             SkillLevel
}

// Metrics are the counters behind the classification.
type Metrics struct {
	BallsLost          int
	BricksHit          int
	TotalBallBounces   int
	PaddleHits         int
	MissedBalls        int
	ConsecutiveDeaths  int
	CurrentAccuracy    int
	TimeOnLevel        time.Duration
	LevelStart         time.Time
	Skill              SkillLevel
	NeedsHelp          bool
	RecentPerformance  []Snapshot
	AvgReactionTime    time.Duration
	PaddleMissDistance float64
}

// Summary is the compact view logged after each analysis.
type Summary struct {
	Accuracy          int
	Skill             SkillLevel
	NeedsHelp         bool
	Assistance        Assistance
	BricksHit         int
	BallsLost         int
	TimeOnLevel       time.Duration
	ConsecutiveDeaths int
}

// Analyzer owns the metrics of one game session.
type Analyzer struct {
	cfg        config.AnalysisConfig
	clock      core.Clock
	m          Metrics
	lastUpdate time.Time
	log        *log.Logger
}

// New creates an analyzer with fresh metrics. logger may be nil.
func New(cfg config.AnalysisConfig, clock core.Clock, logger *log.Logger) *Analyzer {
	a := &Analyzer{cfg: cfg, clock: clock, log: logging.OrDiscard(logger)}
	a.ResetForNewGame()
	return a
}

// TrackBallLoss records a lost ball.
func (a *Analyzer) TrackBallLoss() {
	a.m.BallsLost++
	a.m.ConsecutiveDeaths++
	a.m.MissedBalls++
	a.log.Debug("ball loss tracked", "ballsLost", a.m.BallsLost, "consecutiveDeaths", a.m.ConsecutiveDeaths)
}

// TrackBrickHit records a ball-brick collision.
func (a *Analyzer) TrackBrickHit() {
	a.m.BricksHit++
	a.m.TotalBallBounces++
	a.m.ConsecutiveDeaths = 0
}

// TrackPaddleHit records a ball-paddle collision.
func (a *Analyzer) TrackPaddleHit() {
	a.m.PaddleHits++
	a.m.TotalBallBounces++
}

// TrackPaddleMiss folds the distance between a lost ball and the paddle
// center into a running average.
func (a *Analyzer) TrackPaddleMiss(ballX, paddleX, paddleWidth float64) {
	miss := math.Abs(ballX - (paddleX + paddleWidth/2))
	if a.m.PaddleMissDistance == 0 {
		a.m.PaddleMissDistance = miss
	} else {
		a.m.PaddleMissDistance = (a.m.PaddleMissDistance + miss) / 2
	}
}

// ShouldUpdate reports whether the analysis interval has passed.
func (a *Analyzer) ShouldUpdate() bool {
	return a.clock.Now().Sub(a.lastUpdate) > a.cfg.Interval()
}

// MarkUpdated restarts the analysis interval.
func (a *Analyzer) MarkUpdated() {
	a.lastUpdate = a.clock.Now()
}

// Tick analyzes when the interval has passed. It reports whether an
// analysis ran.
func (a *Analyzer) Tick() bool {
	if !a.ShouldUpdate() {
		return false
	}
	a.Analyze()
	a.MarkUpdated()
	return true
}

// Analyze recomputes accuracy, skill level and the help flag.
func (a *Analyzer) Analyze() {
	now := a.clock.Now()
	a.m.TimeOnLevel = now.Sub(a.m.LevelStart)
	a.m.CurrentAccuracy = Accuracy(a.m.BricksHit, a.m.TotalBallBounces)

	prevSkill, prevHelp := a.m.Skill, a.m.NeedsHelp
	a.m.Skill = a.classify()
	a.m.NeedsHelp = a.m.Skill == SkillStruggling ||
		a.m.TimeOnLevel > a.cfg.LongLevel() ||
		(a.m.BricksHit < a.cfg.LowProgressBricks && a.m.TimeOnLevel > a.cfg.LowProgress())

	if prevSkill != a.m.Skill {
		a.log.Debug("skill level changed", "from", prevSkill, "to", a.m.Skill,
			"accuracy", a.m.CurrentAccuracy, "consecutiveDeaths", a.m.ConsecutiveDeaths)
	}
	if prevHelp != a.m.NeedsHelp {
		a.log.Debug("help status changed", "needsHelp", a.m.NeedsHelp, "assistance", a.AssistanceLevel())
	}

	a.m.RecentPerformance = append(a.m.RecentPerformance, Snapshot{
		Timestamp:         now,
		Accuracy:          a.m.CurrentAccuracy,
		ConsecutiveDeaths: a.m.ConsecutiveDeaths,
		Skill:             a.m.Skill,
	})
	if extra := len(a.m.RecentPerformance) - max(1, a.cfg.HistorySize); extra > 0 {
		a.m.RecentPerformance = slices.Delete(a.m.RecentPerformance, 0, extra)
	}
}

// lossRate is balls lost per 30 seconds on the level, with the window
// count floored at one.
func (a *Analyzer) lossRate() float64 {
	windows := max(1, a.m.TimeOnLevel.Seconds()/lossRateWindow.Seconds())
	return float64(a.m.BallsLost) / windows
}

func (a *Analyzer) classify() SkillLevel {
	acc, deaths, rate := a.m.CurrentAccuracy, a.m.ConsecutiveDeaths, a.lossRate()
	switch {
	case acc < strugglingAccuracy || deaths >= strugglingDeaths || rate > strugglingLossRate:
		return SkillStruggling
	case acc > skilledAccuracy && deaths == 0 && rate < skilledLossRate:
		return SkillSkilled
	default:
		return SkillAverage
	}
}

// AssistanceLevel maps the classification to a help intensity.
func (a *Analyzer) AssistanceLevel() Assistance {
	switch {
	case a.m.Skill == SkillStruggling:
		return AssistActive
	case a.m.Skill == SkillAverage && a.m.NeedsHelp:
		return AssistSubtle
	default:
		return AssistNone
	}
}

// ShouldIncreasePowerUpRate reports whether drops should be more likely.
func (a *Analyzer) ShouldIncreasePowerUpRate() bool {
	return a.m.Skill == SkillStruggling ||
		(a.m.ConsecutiveDeaths >= increaseDeaths && a.m.CurrentAccuracy < increaseAccuracy)
}

// ShouldDecreasePowerUpRate reports whether drops should be less likely.
func (a *Analyzer) ShouldDecreasePowerUpRate() bool {
	return a.m.Skill == SkillSkilled && a.m.CurrentAccuracy > decreaseAccuracy
}

// ResetForNewLevel clears per-level counters and keeps the cross-level
// trend: skill, history, reaction time and miss distance.
func (a *Analyzer) ResetForNewLevel() {
	a.log.Debug("resetting metrics for new level", "skill", a.m.Skill, "accuracy", a.m.CurrentAccuracy, "bricksHit", a.m.BricksHit)
	a.m = Metrics{
		LevelStart:         a.clock.Now(),
		Skill:              a.m.Skill,
		RecentPerformance:  a.m.RecentPerformance,
		AvgReactionTime:    a.m.AvgReactionTime,
		PaddleMissDistance: a.m.PaddleMissDistance,
	}
}

// ResetForNewGame clears everything.
func (a *Analyzer) ResetForNewGame() {
	now := a.clock.Now()
	a.m = Metrics{LevelStart: now, Skill: SkillAverage}
	a.lastUpdate = now
}

// Metrics returns a copy of the current metrics.
func (a *Analyzer) Metrics() Metrics {
	m := a.m
	m.RecentPerformance = slices.Clone(a.m.RecentPerformance)
	return m
}

// Summary returns the compact view of the current metrics.
func (a *Analyzer) Summary() Summary {
	return Summary{
		Accuracy:          a.m.CurrentAccuracy,
		Skill:             a.m.Skill,
		NeedsHelp:         a.m.NeedsHelp,
		Assistance:        a.AssistanceLevel(),
		BricksHit:         a.m.BricksHit,
		BallsLost:         a.m.BallsLost,
		TimeOnLevel:       a.m.TimeOnLevel.Round(time.Second),
		ConsecutiveDeaths: a.m.ConsecutiveDeaths,
	}
}

// Accuracy is round(hits/bounces*100), or 0 without bounces.
func Accuracy(hits, bounces int) int {
	if bounces <= 0 {
		return 0
	}
	return int(math.Round(float64(hits) / float64(bounces) * 100))
}
