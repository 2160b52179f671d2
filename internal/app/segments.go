package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/segments"
)

var pointColor = color.RGBA{R: 255, A: 255}

// SegmentsGame draws the segments field in a resizable window. A resize
// regenerates every point.
type SegmentsGame struct {
	chrome
	sim *segments.Field
}

// NewSegmentsGame wires the segments panel to the live settings of sim.
func NewSegmentsGame(sim *segments.Field) *SegmentsGame {
	cfg := sim.Settings()
	g := &SegmentsGame{chrome: newChrome("Segments", cfg.Height), sim: sim}
	g.panel.AddSection("Display")
	g.panel.AddCheckbox("Colorized", &cfg.Colorized)
	g.panel.AddCheckbox("Invisible lines", &cfg.InvisibleLines)
	g.panel.AddSlider("Point radius", 0, 20, &cfg.PointRadius)
	g.panel.AddButton("Regenerate", func() { sim.Reset(newSeed()) })
	return g
}

func (g *SegmentsGame) Update() error {
	defer g.hud.trackUpdate(time.Now())
	g.input()
	if !g.paused {
		g.sim.Step()
	}
	time.Sleep(g.sim.Settings().FrameDelay())
	return nil
}

// Draw paints triangles first so points and lines stay on top.
func (g *SegmentsGame) Draw(screen *ebiten.Image) {
	defer g.hud.trackDraw(time.Now())
	cfg := g.sim.Settings()
	screen.Fill(color.White)
	if cfg.Colorized {
		for _, t := range g.sim.Triangles() {
			fillPolygon(screen, []geometry.Vector2D{t.A, t.B, t.C}, t.Color)
		}
	}
	r := float32(cfg.PointRadius)
	for _, p := range g.sim.Internal() {
		vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), r, pointColor, true)
	}
	if !cfg.InvisibleLines {
		for _, set := range [][]segments.Segment{g.sim.Links(), g.sim.Nearest(), g.sim.EdgeRing(), g.sim.EdgeMesh()} {
			for _, s := range set {
				strokeSegment(screen, s[0], s[1], 1, color.Black)
			}
		}
	}
	g.overlay(screen, g.sim.Stats())
}

// Layout follows the window size so the field can be resized.
func (g *SegmentsGame) Layout(w, h int) (int, int) {
	cfg := g.sim.Settings()
	if w > 2 && h > 2 && (float64(w) != cfg.Width || float64(h) != cfg.Height) {
		g.sim.Resize(float64(w), float64(h))
	}
	return w, h
}
