package audio

import (
	"math"
	"testing"
)

func sine(freq, amp, rate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/rate)
	}
	return out
}

func TestDominantFrequency(t *testing.T) {
	const rate = 44100.0
	const n = 1024
	bin := rate / n
	tests := []struct {
		name string
		freq float64
	}{
		{"low hum", 110},
		{"concert A", 440},
		{"whistle", 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DominantFrequency(sine(tt.freq, 0.5, rate, n), rate)
			if math.Abs(got-tt.freq) > bin {
				t.Errorf("DominantFrequency() = %.1f, want %.1f within %.1f", got, tt.freq, bin)
			}
		})
	}
	if got := DominantFrequency(nil, rate); got != 0 {
		t.Errorf("DominantFrequency(nil) = %v, want 0", got)
	}
}

func TestLevels(t *testing.T) {
	const amp = 0.8
	s := sine(441, amp, 44100, 4410) // exactly 44 periods
	if got, want := RMS(s), amp/math.Sqrt2; math.Abs(got-want) > 1e-3 {
		t.Errorf("RMS() = %v, want %v", got, want)
	}
	if got, want := MeanAbs(s), 2*amp/math.Pi; math.Abs(got-want) > 1e-3 {
		t.Errorf("MeanAbs() = %v, want %v", got, want)
	}
	if got := Decibels(1); got != 0 {
		t.Errorf("Decibels(1) = %v, want 0", got)
	}
	if got := Decibels(0.1); math.Abs(got+20) > 1e-9 {
		t.Errorf("Decibels(0.1) = %v, want -20", got)
	}
	if got := Decibels(RMS(make([]float64, 64))); !math.IsInf(got, -1) {
		t.Errorf("silence should be -Inf dB, got %v", got)
	}
	if MeanAbs(nil) != 0 || RMS(nil) != 0 {
		t.Error("empty input should give 0")
	}
}

func TestAnalyze(t *testing.T) {
	f := Analyze(Frame{Samples: sine(300, 0.5, 8000, 800), SampleRate: 8000, Seq: 7})
	if f.Seq != 7 {
		t.Errorf("Seq = %d, want 7", f.Seq)
	}
	if math.Abs(f.Pitch-300) > 10 {
		t.Errorf("Pitch = %v, want 300", f.Pitch)
	}
	if f.Decibels > 0 || f.Decibels < -10 {
		t.Errorf("Decibels = %v, want about -9", f.Decibels)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	f := Frame{Samples: sine(440, 0.5, 44100, 1024), SampleRate: 44100}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Analyze(f)
	}
}
