// Package audio reduces blocks of samples to the few scalars the sketches
// react to, and maps them to the visualizer shape.
package audio

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Frame is one block of mono samples in [-1, 1].
type Frame struct {
	Samples    []float64
	SampleRate float64
	Seq        int64
}

// Feature summarizes a frame.
type Feature struct {
	Amplitude float64 // mean |x|
	Decibels  float64 // 20 log10 rms, -Inf for silence
	Pitch     float64 // Hz of the strongest FFT bin
	Seq       int64
}

// MeanAbs is the average absolute sample value. Boid steering thresholds are
// expressed in this unit.
func MeanAbs(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range samples {
		sum += math.Abs(x)
	}
	return sum / float64(len(samples))
}

// RMS is the root mean square of samples, 0 for an empty frame.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))
}

// Decibels converts an rms level to dBFS.
func Decibels(rms float64) float64 {
	return 20 * math.Log10(rms)
}

// DominantFrequency returns the frequency of the largest magnitude bin of the
// real FFT of samples. The resolution is sampleRate/len(samples).
func DominantFrequency(samples []float64, sampleRate float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	fft := fourier.NewFFT(len(samples))
	coeff := fft.Coefficients(nil, samples)
	mags := make([]float64, len(coeff))
	for i, c := range coeff {
		mags[i] = cmplx.Abs(c)
	}
	return fft.Freq(floats.MaxIdx(mags)) * sampleRate
}

// Analyze summarizes one frame.
func Analyze(f Frame) Feature {
	return Feature{
		Amplitude: MeanAbs(f.Samples),
		Decibels:  Decibels(RMS(f.Samples)),
		Pitch:     DominantFrequency(f.Samples, f.SampleRate),
		Seq:       f.Seq,
	}
}
