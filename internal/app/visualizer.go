package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pb"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/audio"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/feed"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

// VisualizerGame draws one shape in the middle of the window whose size follows
// the level and whose kind follows the pitch of the latest audio feature.
type VisualizerGame struct {
	chrome
	vis      *audio.Visualizer
	features *feed.Latest[*pb.AudioFeature]
	current  audio.Feature
}

// NewVisualizerGame starts silent until the first feature arrives.
func NewVisualizerGame(vis *audio.Visualizer, features *feed.Latest[*pb.AudioFeature], height int) *VisualizerGame {
	return &VisualizerGame{
		chrome:   newChrome("Visualizer", float64(height)),
		vis:      vis,
		features: features,
		current:  audio.Feature{Decibels: -100},
	}
}

// Update takes the newest feature, if any, and eases the shape toward it.
func (g *VisualizerGame) Update() error {
	defer g.hud.trackUpdate(time.Now())
	g.input()
	if f, ok := g.features.Poll(); ok {
		g.current = audio.FeatureFromProto(f)
	}
	if !g.paused {
		g.vis.Update(g.current)
	}
	return nil
}

func (g *VisualizerGame) Draw(screen *ebiten.Image) {
	defer g.hud.trackDraw(time.Now())
	screen.Fill(color.Black)
	b := screen.Bounds()
	c := geometry.Rect{W: float64(b.Dx()), H: float64(b.Dy())}.Center()
	r := g.vis.Radius()
	clr := g.vis.Color()
	switch g.vis.Shape() {
	case audio.Circle:
		vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(r), clr, true)
	case audio.Square:
		vector.FillRect(screen, float32(c.X-r), float32(c.Y-r), float32(2*r), float32(2*r), clr, true)
	default:
		fillPolygon(screen, boxTriangle(c, r), clr)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f dB  %.0f Hz  %s", g.current.Decibels, g.current.Pitch, g.vis.Shape()), 10, b.Dy()-20)
	g.overlay(screen, map[string]float64{
		"decibels": g.current.Decibels,
		"pitch":    g.current.Pitch,
		"radius":   r,
		"color":    float64(g.vis.ColorIndex()),
		"seq":      float64(g.current.Seq),
	})
}

// Layout follows the window so the shape stays centered after a resize.
func (g *VisualizerGame) Layout(w, h int) (int, int) {
	return w, h
}
