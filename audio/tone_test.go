package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

func TestSquareWaveLevels(t *testing.T) {
	wave := NewSquareWave(440, 0.7, 0.25, beep.SampleRate(44100))

	samples := make([][2]float64, 512)
	n, ok := wave.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 512 {
		t.Errorf("Expected to stream 512 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != 0.25 && val != -0.25 {
			t.Errorf("Sample %d should be ±0.25, got %f", i, val)
		}
		if samples[i][1] != val {
			t.Errorf("Sample %d channels differ: %f vs %f", i, val, samples[i][1])
		}
	}

	if wave.Err() != nil {
		t.Errorf("Expected no error, got: %v", wave.Err())
	}
}

func TestSquareWaveStartsLow(t *testing.T) {
	// Phase 0.7 is in the low half of the cycle
	wave := NewSquareWave(440, 0.7, 0.25, beep.SampleRate(48000))
	samples := make([][2]float64, 1)
	wave.Stream(samples)
	if samples[0][0] != -0.25 {
		t.Errorf("Expected first sample -0.25, got %f", samples[0][0])
	}
}

func TestSquareWaveFrequency(t *testing.T) {
	rate := beep.SampleRate(44000)
	wave := NewSquareWave(440, 0, 1, rate)

	// One second holds 440 cycles, so 440 rising edges
	samples := make([][2]float64, int(rate))
	wave.Stream(samples)

	rising := 0
	for i := 1; i < len(samples); i++ {
		if samples[i-1][0] < 0 && samples[i][0] > 0 {
			rising++
		}
	}
	if rising < 439 || rising > 440 {
		t.Errorf("Expected about 440 rising edges, got %d", rising)
	}
}

func TestShotLength(t *testing.T) {
	burst := beep.Take(sampleRate.N(shotLength), NewSquareWave(toneFrequency, toneStartPhase, toneVolume, sampleRate))

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := burst.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(shotLength); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestShotBeforeInit(t *testing.T) {
	tone := NewTone()
	tone.Shot()
	tone.Close()
	if tone.initialized {
		t.Error("Expected tone to stay uninitialized")
	}
}
