package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/field"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/ui"
)

// FieldGame renders the particle field. A click launches the particles under
// the cursor and, with mouse_move, hovering kicks them.
type FieldGame struct {
	chrome
	sim  *field.Field
	last ui.Input
}

// NewFieldGame wires the field panel to the live settings of sim.
func NewFieldGame(sim *field.Field) *FieldGame {
	cfg := sim.Settings()
	g := &FieldGame{chrome: newChrome("Particle field", cfg.Height), sim: sim}
	g.panel.AddSection("Physics")
	g.panel.AddSlider("Friction", 0, 0.1, &cfg.Friction)
	g.panel.AddSlider("Transfer rate", 0, 1, &cfg.TransferRate)
	g.panel.AddSlider("Max speed", 0, 20, &cfg.MaxSpeed)
	g.panel.AddSlider("Deviation angle", 0, 0.5, &cfg.DevAngle)
	g.panel.AddSection("Display")
	g.panel.AddCheckbox("Trace line", &cfg.TraceLine)
	g.panel.AddCheckbox("Kick on hover", &cfg.MouseMove)
	g.panel.AddButton("Reset", func() { sim.Reset(newSeed()) })
	return g
}

// Update handles clicks and hover before stepping the field.
func (g *FieldGame) Update() error {
	defer g.hud.trackUpdate(time.Now())
	in := g.input()
	if g.free(in) {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.sim.Click(pointer(in))
		}
		if in.X != g.last.X || in.Y != g.last.Y {
			g.sim.Hover(pointer(in))
		}
	}
	g.last = in
	if !g.paused {
		g.sim.Step()
	}
	return nil
}

func (g *FieldGame) Draw(screen *ebiten.Image) {
	defer g.hud.trackDraw(time.Now())
	screen.Fill(color.Black)
	for _, seg := range g.sim.TraceLine() {
		strokeSegment(screen, seg[0], seg[1], 1, color.White)
	}
	r := float32(g.sim.Settings().Radius)
	for _, p := range g.sim.Particles() {
		vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), r, p.Color, true)
	}
	g.overlay(screen, g.sim.Stats())
}

func (g *FieldGame) Layout(w, h int) (int, int) {
	cfg := g.sim.Settings()
	return int(cfg.Width), int(cfg.Height)
}
