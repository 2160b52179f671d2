package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-visual-sketches/internal/app"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/segments"
)

func main() {
	args, help := config.ParseArgs(os.Args[1:])
	if help {
		fmt.Println("Usage: segments [key=value ...]")
		fmt.Println(segments.Usage)
		return
	}
	logger := config.NewLogger(args.Debug())
	cfg, err := segments.LoadConfig(args)
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	logger.Debugf("segments config: %+v", cfg)

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Resizable Window")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app.NewSegmentsGame(segments.New(cfg, args.Seed()))); err != nil {
		log.Fatal(err)
	}
}
