package audio

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(1000)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return out
}

func TestToneLengthAndDecay(t *testing.T) {
	samples := drain(t, NewToneStreamer(Tone{Freq: 250, Duration: 100 * time.Millisecond, Wave: WaveSquare}, testRate))
	require.Len(t, samples, 100)

	assert.InDelta(t, StartGain, math.Abs(samples[0][0]), 1e-9)
	assert.InDelta(t, EndGain, math.Abs(samples[99][0]), 1e-9)
	for i := 1; i < len(samples); i++ {
		assert.LessOrEqual(t, math.Abs(samples[i][0]), math.Abs(samples[i-1][0])+1e-12)
		assert.Equal(t, samples[i][0], samples[i][1], "stereo channels differ at %d", i)
	}
}

func TestSquareWaveAlternates(t *testing.T) {
	// 250 Hz at 1000 Hz rate: two samples high, two low.
	samples := drain(t, NewToneStreamer(Tone{Freq: 250, Duration: 8 * time.Millisecond, Wave: WaveSquare}, testRate))
	signs := make([]bool, len(samples))
	for i, s := range samples {
		signs[i] = s[0] > 0
	}
	assert.Equal(t, []bool{true, true, false, false, true, true, false, false}, signs)
}

func TestWaveShapes(t *testing.T) {
	assert.InDelta(t, 0, sample(WaveSine, 0), 1e-12)
	assert.InDelta(t, 1, sample(WaveSine, 0.25), 1e-12)
	assert.InDelta(t, -1, sample(WaveSaw, 0), 1e-12)
	assert.InDelta(t, 0.5, sample(WaveSaw, 0.75), 1e-12)
	assert.InDelta(t, -1, sample(WaveTriangle, 0), 1e-12)
	assert.InDelta(t, 1, sample(WaveTriangle, 0.5), 1e-12)
	assert.InDelta(t, 0, sample(WaveTriangle, 0.75), 1e-12)
	assert.Equal(t, "sawtooth", WaveSaw.String())
}

func TestSweepConstantGain(t *testing.T) {
	samples := drain(t, NewSweepStreamer(Sweep{From: 100, To: 200, Duration: 50 * time.Millisecond, Wave: WaveSquare}, testRate))
	require.Len(t, samples, 50)
	for _, s := range samples {
		assert.InDelta(t, SweepGain, math.Abs(s[0]), 1e-9)
	}
}

func TestEmptyToneDrainsImmediately(t *testing.T) {
	n, ok := NewToneStreamer(Tone{Freq: 440}, testRate).Stream(make([][2]float64, 8))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func newReadyManager() *Manager {
	m := New(testRate, nil)
	m.locker = &sync.Mutex{}
	m.ready = true
	return m
}

func TestManagerWithoutSpeakerIsSilent(t *testing.T) {
	m := New(testRate, nil)
	m.Play(Tone{Freq: 300, Duration: 50 * time.Millisecond})
	m.PlaySweep(Sweep{From: 300, To: 800, Duration: time.Second})
	assert.False(t, m.Available())
	assert.Zero(t, m.mixer.Len())
}

func TestManagerPlay(t *testing.T) {
	m := newReadyManager()
	m.Play(Tone{Freq: 300, Duration: 50 * time.Millisecond})
	m.Play(Tone{Freq: 300})
	assert.Equal(t, 1, m.Playing())

	m.SetEnabled(false)
	assert.False(t, m.Enabled())
	assert.True(t, m.volume.Silent)
	m.Play(Tone{Freq: 300, Duration: 50 * time.Millisecond})
	assert.Equal(t, 1, m.Playing())
}

func TestManagerSweepReplaced(t *testing.T) {
	m := newReadyManager()
	m.PlaySweep(Sweep{From: 300, To: 800, Duration: time.Second})
	first := m.sweep
	m.PlaySweep(Sweep{From: 800, To: 300, Duration: time.Second})

	require.NotNil(t, first)
	assert.Nil(t, first.Streamer)
	assert.NotSame(t, first, m.sweep)

	m.StopSweep()
	assert.Nil(t, m.sweep)
}

func TestManagerClose(t *testing.T) {
	m := newReadyManager()
	m.Play(Tone{Freq: 300, Duration: 50 * time.Millisecond})
	m.Close()
	assert.False(t, m.Available())
	assert.Zero(t, m.Playing())
}

func TestManagerVolumeScalesMix(t *testing.T) {
	m := newReadyManager()
	m.SetVolume(-1)
	assert.InDelta(t, -1, m.volume.Volume, 1e-12)

	m.Play(Tone{Freq: 250, Duration: 4 * time.Millisecond, Wave: WaveSquare})
	buf := make([][2]float64, 1)
	n, _ := m.volume.Stream(buf)
	require.Equal(t, 1, n)
	assert.InDelta(t, StartGain/2, math.Abs(buf[0][0]), 1e-9)
}
