package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-visual-sketches/internal/app"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/spiral"
)

func main() {
	args, help := config.ParseArgs(os.Args[1:])
	if help {
		fmt.Println("Usage: spiral [key=value ...]")
		fmt.Println(spiral.Usage)
		return
	}
	logger := config.NewLogger(args.Debug())
	cfg, err := spiral.LoadConfig(args)
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	logger.Debugf("spiral config: %+v", cfg)

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Spiral Circles")
	if err := ebiten.RunGame(app.NewSpiralGame(spiral.New(cfg, args.Seed()))); err != nil {
		log.Fatal(err)
	}
}
