package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-visual-sketches/internal/app"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/audio"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
)

const usage = `Usage: visualizer [key=value ...]
Options:
  width=<number>                 Width of the window (default: 800)
  height=<number>                Height of the window (default: 600)
  smooth=<true/false>            Ease the radius with a spring (default: true)
  seed=<number>                  Random seed for colors (default: clock)`

func main() {
	args, help := config.ParseArgs(os.Args[1:])
	if help {
		fmt.Println(usage)
		fmt.Println(app.AudioUsage)
		return
	}
	logger := config.NewLogger(args.Debug())
	width, height, smooth := 800, 600, true
	args.Count("width", &width)
	args.Count("height", &height)
	args.Bool("smooth", &smooth)

	src, closer, err := app.OpenSource(args, 0.3)
	if err != nil {
		logger.Fatalf("failed to open audio source: %v", err)
	}
	ctx := context.Background()
	pipeline, err := app.StartAudio(ctx, logger, src, closer)
	if err != nil {
		logger.Fatalf("failed to start audio pipeline: %v", err)
	}

	vis := audio.NewVisualizer(args.Seed(), ebiten.DefaultTPS, smooth)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Audio Visualizer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	runErr := ebiten.RunGame(app.NewVisualizerGame(vis, pipeline.Features, height))
	if err := pipeline.Stop(ctx); err != nil {
		logger.Errorf("audio pipeline stopped with error: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
