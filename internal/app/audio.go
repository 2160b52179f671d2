package app

import (
	"context"
	"fmt"

	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pb"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/audio"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/audio/wavsource"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/feed"
)

// AudioPipeline is the running actor system that turns an audio source into
// features for the frame loop.
type AudioPipeline struct {
	System   actor.ActorSystem
	Analyzer *actor.PID
	Features *feed.Latest[*pb.AudioFeature]

	cancel context.CancelFunc
	done   chan error
	closer func() error
}

// OpenSource picks the audio source from the args: audio=<file.wav> decodes a
// file (looped, paced in real time), anything else synthesizes a tone peaking
// at amp unless tone_amp says otherwise.
func OpenSource(args config.Args, amp float64) (audio.Source, func() error, error) {
	if path, ok := args["audio"]; ok && path != "" {
		src, err := wavsource.Open(path, 1024)
		if err != nil {
			return nil, nil, err
		}
		src.Realtime = true
		src.Loop = true
		return src, src.Close, nil
	}
	freq := 150.0
	args.Float("tone_freq", &freq)
	args.Float("tone_amp", &amp)
	tone := audio.NewToneSource(freq, amp)
	tone.Realtime = true
	return tone, func() error { return nil }, nil
}

// StartAudio starts the actor system, spawns the analyzer and pumps src into
// it from a goroutine until Stop.
func StartAudio(ctx context.Context, logger golog.Logger, src audio.Source, closer func() error) (*AudioPipeline, error) {
	system, err := actor.NewActorSystem("AudioSketch", actor.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}
	features := feed.New[*pb.AudioFeature]()
	pid, err := system.Spawn(ctx, "analyzer", audio.NewAnalyzer(features))
	if err != nil {
		_ = system.Stop(ctx)
		return nil, fmt.Errorf("failed to spawn analyzer: %w", err)
	}

	pumpCtx, cancel := context.WithCancel(ctx)
	p := &AudioPipeline{
		System:   system,
		Analyzer: pid,
		Features: features,
		cancel:   cancel,
		done:     make(chan error, 1),
		closer:   closer,
	}
	go func() { p.done <- audio.Pump(pumpCtx, src, system, pid) }()
	return p, nil
}

// Stop cancels the pump, waits for it and shuts the actor system down.
func (p *AudioPipeline) Stop(ctx context.Context) error {
	p.cancel()
	err := <-p.done
	if p.closer != nil {
		if cerr := p.closer(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if serr := p.System.Stop(ctx); serr != nil && err == nil {
		err = serr
	}
	return err
}

// AudioUsage documents the audio args shared by the audio driven binaries.
const AudioUsage = `  audio=<file.wav>               Analyze a WAV file (looped)
  tone_freq=<hz>                 Base pitch of the synthetic tone (default: 150)
  tone_amp=<0..1>                Peak level of the synthetic tone
  debug=<true/false>             Verbose logging`
