package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-visual-sketches/internal/app"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/field"
)

func main() {
	args, help := config.ParseArgs(os.Args[1:])
	if help {
		fmt.Println("Usage: field [key=value ...]")
		fmt.Println(field.Usage)
		return
	}
	logger := config.NewLogger(args.Debug())
	cfg, err := field.LoadConfig(args)
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	seed := args.Seed()
	logger.Infof("particle field: %dx%d particles, %s collisions, seed %d", cfg.Rows, cfg.Cols, cfg.Mode, seed)

	game := app.NewFieldGame(field.New(cfg, seed))
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Particle field")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
