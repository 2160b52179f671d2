package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/grass"
)

var (
	youngGrass  = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	matureGrass = color.RGBA{R: 0, G: 100, B: 0, A: 255}
)

// GrassGame grows the grid. Holding the left button plants under the cursor.
type GrassGame struct {
	chrome
	sim *grass.World
}

// NewGrassGame wires the grass panel to the live settings of sim.
func NewGrassGame(sim *grass.World) *GrassGame {
	cfg := sim.Settings()
	g := &GrassGame{chrome: newChrome("Grass", cfg.Height), sim: sim}
	g.panel.AddSection("Growth")
	g.panel.AddSlider("Meadow threshold", -0.5, 0.5, &cfg.MeadowThreshold)
	g.panel.AddButton("Grow meadow", func() { sim.Meadow(cfg.MeadowThreshold) })
	g.panel.AddButton("Reset", func() { sim.Reset(newSeed()) })
	return g
}

// Update plants under a held pointer and steps the world.
func (g *GrassGame) Update() error {
	defer g.hud.trackUpdate(time.Now())
	in := g.input()
	if in.Pressed && g.free(in) {
		g.sim.Plant(pointer(in))
	}
	if !g.paused {
		g.sim.Step()
	}
	return nil
}

func (g *GrassGame) Draw(screen *ebiten.Image) {
	defer g.hud.trackDraw(time.Now())
	screen.Fill(color.White)
	cell := float32(g.sim.Settings().CellSize)
	g.sim.Each(func(x, y int, c *grass.Cell) {
		clr := youngGrass
		if g.sim.Mature(c) {
			clr = matureGrass
		}
		vector.FillRect(screen, float32(x)*cell, float32(y)*cell, cell, cell, clr, false)
	})
	g.overlay(screen, g.sim.Stats())
}

func (g *GrassGame) Layout(w, h int) (int, int) {
	cfg := g.sim.Settings()
	return int(cfg.Width), int(cfg.Height)
}
