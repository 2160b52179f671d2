package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-visual-sketches/internal/app"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pb"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/feed"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/flock"
)

// toneAmplitude keeps the synthetic tone's mean level sweeping across the
// default steering thresholds.
const toneAmplitude = 0.001

func main() {
	args, help := config.ParseArgs(os.Args[1:])
	if help {
		fmt.Println("Usage: boids [key=value ...]")
		fmt.Println(flock.Usage)
		fmt.Println(app.AudioUsage)
		return
	}
	logger := config.NewLogger(args.Debug())
	cfg, err := flock.LoadConfig(args)
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	sim := flock.New(cfg, args.Seed())

	ctx := context.Background()
	tone := false
	args.Bool("tone", &tone)
	var pipeline *app.AudioPipeline
	if args["audio"] != "" || tone {
		src, closer, err := app.OpenSource(args, toneAmplitude)
		if err != nil {
			logger.Fatalf("failed to open audio source: %v", err)
		}
		pipeline, err = app.StartAudio(ctx, logger, src, closer)
		if err != nil {
			logger.Fatalf("failed to start audio pipeline: %v", err)
		}
		logger.Infof("boids steered by sound, thresholds %v", cfg.FreqThresholds)
	} else {
		logger.Infof("boids steered by the mouse: %d boids, %d obstacles", cfg.NumBoids, cfg.NumObstacles)
	}

	var features *feed.Latest[*pb.AudioFeature]
	if pipeline != nil {
		features = pipeline.Features
	}
	game := app.NewBoidsGame(sim, features)
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Boids")
	runErr := ebiten.RunGame(game)
	if pipeline != nil {
		if err := pipeline.Stop(ctx); err != nil {
			logger.Errorf("audio pipeline stopped with error: %v", err)
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
