// Package audio synthesises the short tone cues of the game with beep and
// plays them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// String returns the wave name.
func (w Wave) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return "sine"
	}
}

const (
	// StartGain and EndGain bound the exponential decay of a tone.
	StartGain = 0.1
	EndGain   = 0.01

	// SweepGain is the constant level of a frequency sweep.
	SweepGain = 0.1
)

// Tone is a single decaying cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Sweep is a tone whose frequency moves linearly from From to To.
type Sweep struct {
	From, To float64
	Duration time.Duration
	Wave     Wave
}

// sample returns the value of wave w at phase p in [0, 1).
func sample(w Wave, p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (p - 0.5)
	case WaveTriangle:
		if p < 0.5 {
			return 4*p - 1
		}
		return 3 - 4*p
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// oscillator streams a wave for a fixed number of samples. freq and gain
// are evaluated per sample from the position in [0, 1].
type oscillator struct {
	wave  Wave
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
	freq  func(t float64) float64
	gain  func(t float64) float64
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}
		t := float64(o.pos) / float64(max(1, o.total-1))
		v := sample(o.wave, o.phase) * o.gain(t)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq(t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// NewToneStreamer returns a streamer for t that decays from StartGain to
// EndGain over the tone duration.
func NewToneStreamer(t Tone, rate beep.SampleRate) beep.Streamer {
	ratio := EndGain / StartGain
	return &oscillator{
		wave:  t.Wave,
		rate:  rate,
		total: rate.N(t.Duration),
		freq:  func(float64) float64 { return t.Freq },
		gain:  func(x float64) float64 { return StartGain * math.Pow(ratio, x) },
	}
}

// NewSweepStreamer returns a streamer for s at a constant SweepGain.
func NewSweepStreamer(s Sweep, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:  s.Wave,
		rate:  rate,
		total: rate.N(s.Duration),
		freq:  func(x float64) float64 { return s.From + (s.To-s.From)*x },
		gain:  func(float64) float64 { return SweepGain },
	}
}
