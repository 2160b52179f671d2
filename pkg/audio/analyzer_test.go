package audio

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pb"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/feed"
)

func TestAnalyzerPipeline(t *testing.T) {
	ctx := context.Background()
	system, err := actor.NewActorSystem("AudioTest", actor.WithLogger(golog.DiscardLogger))
	if err != nil {
		t.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		t.Fatalf("failed to start actor system: %v", err)
	}
	defer func() { _ = system.Stop(ctx) }()

	out := feed.New[*pb.AudioFeature]()
	pid, err := system.Spawn(ctx, "analyzer", NewAnalyzer(out))
	if err != nil {
		t.Fatalf("failed to spawn analyzer: %v", err)
	}

	src := NewToneSource(300, 0.5)
	src.Period = 0
	src.Frames = 5
	if err := Pump(ctx, src, system, pid); err != nil {
		t.Fatalf("Pump() error = %v", err)
	}

	resp, err := actor.Ask(ctx, pid, &pb.GetFeature{}, time.Second)
	if err != nil {
		t.Fatalf("Ask(GetFeature) error = %v", err)
	}
	got, ok := resp.(*pb.AudioFeature)
	if !ok {
		t.Fatalf("unexpected response type %T", resp)
	}
	if got.GetSeq() != 4 {
		t.Errorf("latest feature seq = %d, want 4", got.GetSeq())
	}
	if math.Abs(got.GetPitch()-300) > 44100.0/1024 {
		t.Errorf("pitch = %v, want 300", got.GetPitch())
	}

	last, ok := out.Last()
	if !ok || last.GetSeq() != 4 {
		t.Errorf("feed last = %v, %v; want seq 4", last, ok)
	}
	f := FeatureFromProto(last)
	if ShapeFor(f.Pitch) != Square {
		t.Errorf("300 Hz should draw a square, got %v", ShapeFor(f.Pitch))
	}
}

func TestPumpStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	system, err := actor.NewActorSystem("AudioCancel", actor.WithLogger(golog.DiscardLogger))
	if err != nil {
		t.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = system.Stop(context.Background()) }()
	pid, err := system.Spawn(ctx, "analyzer", NewAnalyzer(nil))
	if err != nil {
		t.Fatal(err)
	}

	src := NewToneSource(440, 0.5)
	src.Realtime = true
	done := make(chan error, 1)
	go func() { done <- Pump(ctx, src, system, pid) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Pump() after cancel error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Pump() did not stop after cancel")
	}
}
