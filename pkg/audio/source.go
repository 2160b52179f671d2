package audio

import (
	"context"
	"io"
	"math"
	"time"
)

// Source yields frames until it is exhausted (io.EOF) or ctx is done.
type Source interface {
	Next(ctx context.Context) (Frame, error)
}

// Wait sleeps for d or until ctx is done, whichever comes first.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// FrameDuration is how long a frame of n samples lasts at rate.
func FrameDuration(n int, rate float64) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(float64(n) / rate * float64(time.Second))
}

// ToneSource synthesizes a sine whose level and pitch swell and fade over
// Period. It stands in for a microphone when none is wanted.
type ToneSource struct {
	Frequency  float64       // pitch at the quiet end of the envelope, Hz
	Glide      float64       // pitch multiplier reached at the envelope peak
	Amplitude  float64       // peak sample value
	Period     time.Duration // envelope period
	SampleRate float64
	FrameSize  int
	Frames     int  // stop after this many frames, 0 for endless
	Realtime   bool // pace frames as a capture device would

	phase float64
	clock float64 // seconds of audio produced
	seq   int64
}

// NewToneSource returns an endless, unpaced tone at 44.1 kHz.
func NewToneSource(frequency, amplitude float64) *ToneSource {
	return &ToneSource{
		Frequency:  frequency,
		Glide:      3,
		Amplitude:  amplitude,
		Period:     4 * time.Second,
		SampleRate: 44100,
		FrameSize:  1024,
	}
}

// Next synthesizes one frame, sleeping for its duration when Realtime is set.
func (s *ToneSource) Next(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	if s.Frames > 0 && s.seq >= int64(s.Frames) {
		return Frame{}, io.EOF
	}
	if s.Realtime {
		if err := Wait(ctx, FrameDuration(s.FrameSize, s.SampleRate)); err != nil {
			return Frame{}, err
		}
	}

	// envelope and pitch are held for the whole frame so the frame is a pure tone
	env := 1.0
	pitch := s.Frequency
	if s.Period > 0 {
		env = 0.5 - 0.5*math.Cos(2*math.Pi*s.clock/s.Period.Seconds())
		pitch = s.Frequency * (1 + (s.Glide-1)*env)
	}
	step := 2 * math.Pi * pitch / s.SampleRate
	samples := make([]float64, s.FrameSize)
	for i := range samples {
		samples[i] = s.Amplitude * env * math.Sin(s.phase)
		s.phase = math.Mod(s.phase+step, 2*math.Pi)
	}
	s.clock += float64(s.FrameSize) / s.SampleRate

	f := Frame{Samples: samples, SampleRate: s.SampleRate, Seq: s.seq}
	s.seq++
	return f, nil
}
