package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	toneFrequency  = 440.0
	toneStartPhase = 0.7
	toneVolume     = 0.25

	// shotLength is how long the tone sounds per shot
	shotLength = 60 * time.Millisecond
)

// squareWave generates an endless square tone
type squareWave struct {
	phaseInc float64
	phase    float64
	volume   float64
}

// NewSquareWave creates a square wave at freq Hz. The wave is high for the first
// half of each cycle, and phase is where in the cycle it starts, in [0, 1).
func NewSquareWave(freq, phase, volume float64, rate beep.SampleRate) beep.Streamer {
	return &squareWave{
		phaseInc: freq / float64(rate),
		phase:    phase - math.Floor(phase),
		volume:   volume,
	}
}

func (w *squareWave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := -w.volume
		if w.phase <= 0.5 {
			val = w.volume
		}
		samples[i][0] = val
		samples[i][1] = val

		w.phase += w.phaseInc
		w.phase -= math.Floor(w.phase)
	}
	return len(samples), true
}

func (w *squareWave) Err() error { return nil }

// Tone plays the fire tone through the speaker
type Tone struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewTone creates a silent tone player; call Init to open the device
func NewTone() *Tone {
	return &Tone{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer
func (t *Tone) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	// 100ms buffer keeps latency under a few frames
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}

	speaker.Play(t.mixer)
	t.initialized = true
	return nil
}

// Shot sounds one short burst. It does nothing before Init.
func (t *Tone) Shot() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}

	burst := beep.Take(sampleRate.N(shotLength), NewSquareWave(toneFrequency, toneStartPhase, toneVolume, sampleRate))
	speaker.Lock()
	t.mixer.Add(burst)
	speaker.Unlock()
}

// Close silences everything still playing and releases the device
func (t *Tone) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}

	speaker.Lock()
	t.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	t.initialized = false
}
