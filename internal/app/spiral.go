package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/spiral"
)

// SpiralGame spawns a spiral point at every click.
type SpiralGame struct {
	chrome
	sim *spiral.Generator
}

// NewSpiralGame wires the spiral panel to the live settings of sim.
func NewSpiralGame(sim *spiral.Generator) *SpiralGame {
	cfg := sim.Settings()
	g := &SpiralGame{chrome: newChrome("Spiral", cfg.Height), sim: sim}
	g.panel.AddSection("Motion")
	g.panel.AddSlider("Angle increment", 0, 0.3, &cfg.AngleIncrement)
	g.panel.AddSlider("Radius increment", 0, 3, &cfg.RadiusIncrement)
	g.panel.AddSlider("Circle radius", 1, 40, &cfg.Radius)
	g.panel.AddSection("Display")
	g.panel.AddCheckbox("Connect lines", &cfg.ConnectLine)
	g.panel.AddButton("Clear", func() { sim.Reset(newSeed()) })
	return g
}

// Update spawns a point on click, steps and then sleeps FrameDelay.
func (g *SpiralGame) Update() error {
	defer g.hud.trackUpdate(time.Now())
	in := g.input()
	if g.free(in) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.Spawn(pointer(in))
	}
	if !g.paused {
		g.sim.Step()
	}
	time.Sleep(g.sim.Settings().FrameDelay())
	return nil
}

func (g *SpiralGame) Draw(screen *ebiten.Image) {
	defer g.hud.trackDraw(time.Now())
	screen.Fill(color.White)
	for _, seg := range g.sim.Links() {
		strokeSegment(screen, seg[0], seg[1], 1, color.Black)
	}
	r := float32(g.sim.Settings().Radius)
	for _, p := range g.sim.Points() {
		pos := p.Position()
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), r, p.Color, true)
	}
	g.overlay(screen, g.sim.Stats())
}

func (g *SpiralGame) Layout(w, h int) (int, int) {
	cfg := g.sim.Settings()
	return int(cfg.Width), int(cfg.Height)
}
