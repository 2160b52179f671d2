package audio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pb"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/feed"
)

// Analyzer is the actor that owns audio analysis. It turns each AudioFrame
// into an AudioFeature, publishes it to the frame loop through a feed and
// answers GetFeature with the newest one.
type Analyzer struct {
	out    *feed.Latest[*pb.AudioFeature]
	latest *pb.AudioFeature
	frames int64
}

// NewAnalyzer publishes every computed feature to out.
func NewAnalyzer(out *feed.Latest[*pb.AudioFeature]) *Analyzer {
	return &Analyzer{out: out, latest: &pb.AudioFeature{}}
}

// PreStart is called when the actor starts.
func (a *Analyzer) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("Audio analyzer is starting...")
	return nil
}

// Receive analyzes frames and answers feature queries.
func (a *Analyzer) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("Audio analyzer started")
	case *pb.AudioFrame:
		f := Analyze(Frame{Samples: msg.GetSamples(), SampleRate: msg.GetSampleRate(), Seq: msg.GetSeq()})
		a.latest = &pb.AudioFeature{
			Amplitude: f.Amplitude,
			Decibels:  f.Decibels,
			Pitch:     f.Pitch,
			Seq:       f.Seq,
		}
		if a.out != nil {
			a.out.Publish(a.latest)
		}
		a.frames++
		if a.frames%500 == 0 {
			ctx.Logger().Debugf("analyzed %d frames, last: %.1f dB %.0f Hz", a.frames, f.Decibels, f.Pitch)
		}
	case *pb.GetFeature:
		ctx.Response(a.latest)
	default:
		ctx.Unhandled()
	}
}

// PostStop is called when the actor stops.
func (a *Analyzer) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Audio analyzer is shutdown after %d frames", a.frames)
	return nil
}

// FeatureFromProto converts the wire message back to a Feature.
func FeatureFromProto(m *pb.AudioFeature) Feature {
	return Feature{
		Amplitude: m.GetAmplitude(),
		Decibels:  m.GetDecibels(),
		Pitch:     m.GetPitch(),
		Seq:       m.GetSeq(),
	}
}

// Pump reads src and tells every frame to pid until the source is exhausted or
// ctx is done. Both of those end the pump without error.
func Pump(ctx context.Context, src Source, system actor.ActorSystem, pid *actor.PID) error {
	logger := system.Logger()
	for {
		frame, err := src.Next(ctx)
		switch {
		case errors.Is(err, io.EOF):
			logger.Info("audio source exhausted")
			return nil
		case ctx.Err() != nil:
			return nil
		case err != nil:
			return fmt.Errorf("failed to read audio frame: %w", err)
		}
		msg := &pb.AudioFrame{Samples: frame.Samples, SampleRate: frame.SampleRate, Seq: frame.Seq}
		if err := actor.Tell(ctx, pid, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to send audio frame: %w", err)
		}
	}
}
