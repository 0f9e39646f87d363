package speedball

import "math"

// Snapshot is a flattened copy of the simulation state used to compare
// runs. Floats are stored as IEEE-754 bits so equal states hash equally.
type Snapshot struct {
	Tick  uint64
	Epoch uint64
	State string
	Score int
	Lives int
	Level int

	PaddleX     uint64
	PaddleWidth uint64
	PaddleSpeed uint64
	PaddleMode  int

	// Each ball is 6 values: X, Y, DX, DY, Speed, OnPaddle
	BallCount int
	BallData  []uint64

	// Each brick is 2 values: Destroyed, HitsRemaining
	BrickData []int

	// Each pickup is 3 values: Kind, X, Y
	PickupCount int
	PickupData  []uint64

	// Each effect is 2 values: Kind, Remaining (ns)
	EffectData []int64

	SprintPhase    int
	SprintProgress uint64
	PendingEvents  int
	ParticleCount  int

	RNGState uint64
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	balls := g.balls.All()
	ballData := make([]uint64, 0, len(balls)*6)
	for _, b := range balls {
		ballData = append(ballData,
			math.Float64bits(b.X),
			math.Float64bits(b.Y),
			math.Float64bits(b.DX),
			math.Float64bits(b.DY),
			math.Float64bits(b.Speed),
			boolBits(b.OnPaddle),
		)
	}

	bricks := g.grid.Bricks()
	brickData := make([]int, 0, len(bricks)*2)
	for _, br := range bricks {
		destroyed := 0
		if br.Destroyed {
			destroyed = 1
		}
		brickData = append(brickData, destroyed, br.HitsRemaining)
	}

	pickups := g.powerups.Falling()
	pickupData := make([]uint64, 0, len(pickups)*3)
	for _, pk := range pickups {
		pickupData = append(pickupData, uint64(pk.Def.Kind), math.Float64bits(pk.X), math.Float64bits(pk.Y)) //#nosec G115 -- kind is a small enum
	}

	active := g.powerups.Active()
	effectData := make([]int64, 0, len(active)*2)
	for _, a := range active {
		effectData = append(effectData, int64(a.Def.Kind), int64(a.Remaining))
	}

	return Snapshot{
		Tick:  g.tick,
		Epoch: g.epoch,
		State: string(g.state),
		Score: g.score,
		Lives: g.lives,
		Level: g.level,

		PaddleX:     math.Float64bits(g.paddle.X),
		PaddleWidth: math.Float64bits(g.paddle.Width),
		PaddleSpeed: math.Float64bits(g.paddle.Speed),
		PaddleMode:  int(g.paddle.Mode),

		BallCount: len(balls),
		BallData:  ballData,
		BrickData: brickData,

		PickupCount: len(pickups),
		PickupData:  pickupData,
		EffectData:  effectData,

		SprintPhase:    int(g.sprint.Phase()),
		SprintProgress: math.Float64bits(g.sprint.Progress()),
		PendingEvents:  g.events.Len(),
		ParticleCount:  g.particles.Count(),

		RNGState: g.rng.State(),
	}
}

func mix(h uint64, v int) uint64 {
	return h*31 + uint64(v) //#nosec G115 -- hash computation
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + snap.Epoch
	for _, c := range snap.State {
		h = mix(h, int(c))
	}
	h = mix(h, snap.Score)
	h = mix(h, snap.Lives)
	h = mix(h, snap.Level)
	h = h*31 + snap.PaddleX
	h = h*31 + snap.PaddleWidth
	h = h*31 + snap.PaddleSpeed
	h = mix(h, snap.PaddleMode)
	h = mix(h, snap.BallCount)
	h = mix(h, snap.PickupCount)

	for _, v := range snap.BallData {
		h = h*31 + v
	}

	for _, v := range snap.BrickData {
		h = mix(h, v)
	}

	for _, v := range snap.PickupData {
		h = h*31 + v
	}

	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = mix(h, snap.SprintPhase)
	h = h*31 + snap.SprintProgress
	h = mix(h, snap.PendingEvents)
	h = mix(h, snap.ParticleCount)
	h = h*31 + snap.RNGState

	return h
}
