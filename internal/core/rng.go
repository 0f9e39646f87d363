package core

// RNG is a small deterministic generator (64-bit LCG). Equal seeds give
// equal sequences on every platform.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{state: uint64(seed)}
}

// Next returns the next raw value.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n))
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the internal generator state.
func (r *RNG) State() uint64 { return r.state }
