package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-visual-sketches/internal/app"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/grass"
)

func main() {
	args, help := config.ParseArgs(os.Args[1:])
	if help {
		fmt.Println("Usage: grass [key=value ...]")
		fmt.Println(grass.Usage)
		return
	}
	logger := config.NewLogger(args.Debug())
	cfg, err := grass.LoadConfig(args)
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	world := grass.New(cfg, args.Seed())
	logger.Infof("grass: %dx%d grid, %d cells at start", cfg.WorldSize, cfg.WorldSize, world.Count())

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Grass Simulation")
	if err := ebiten.RunGame(app.NewGrassGame(world)); err != nil {
		log.Fatal(err)
	}
}
