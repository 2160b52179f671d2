package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pb"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/feed"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/flock"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/ui"
)

var obstacleColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}

// BoidsGame steers the flock toward the cursor, or toward the audio target
// when a feature feed is attached. Any click scatters the flock.
type BoidsGame struct {
	chrome
	sim      *flock.Flock
	features *feed.Latest[*pb.AudioFeature]
	last     ui.Input
}

// NewBoidsGame builds the game. features may be nil for mouse steering.
func NewBoidsGame(sim *flock.Flock, features *feed.Latest[*pb.AudioFeature]) *BoidsGame {
	cfg := sim.Settings()
	g := &BoidsGame{chrome: newChrome("Boids", cfg.Height), sim: sim, features: features}
	g.panel.AddSection("Steering")
	g.panel.AddSlider("Speed", 0, 10, &cfg.Speed)
	g.panel.AddSlider("Max turn (deg)", 0, 90, &cfg.MaxAngle)
	g.panel.AddSlider("Crowd distance", 0, 30, &cfg.Distance)
	g.panel.AddSlider("Jitter", 0, 5, &cfg.Sault)
	g.panel.AddButton("Scatter", sim.Scatter)
	g.panel.AddButton("Reset", func() { sim.Reset(newSeed()) })
	return g
}

// Update moves the target from audio when a feature is available, from the cursor otherwise.
func (g *BoidsGame) Update() error {
	defer g.hud.trackUpdate(time.Now())
	in := g.input()
	cfg := g.sim.Settings()
	switch {
	case g.features != nil:
		if f, ok := g.features.Poll(); ok {
			g.sim.SetTarget(flock.AudioTarget(f.GetAmplitude(), cfg.FreqThresholds, cfg.Width, cfg.Height))
		}
	case g.free(in) && (in.X != g.last.X || in.Y != g.last.Y):
		g.sim.SetTarget(pointer(in))
	}
	if g.free(in) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.Scatter()
	}
	g.last = in
	if !g.paused {
		g.sim.Step()
	}
	return nil
}

func (g *BoidsGame) Draw(screen *ebiten.Image) {
	defer g.hud.trackDraw(time.Now())
	screen.Fill(color.White)
	for _, obs := range g.sim.Obstacles() {
		vector.FillRect(screen, float32(obs.X), float32(obs.Y), float32(obs.W), float32(obs.H), obstacleColor, true)
	}
	size := g.sim.Settings().BoidSize
	boids := g.sim.Boids()
	for i := range boids {
		b := &boids[i]
		fillPolygon(screen, arrowhead(b.Pos, geometry.Radians(b.Heading()), size), b.Color)
	}
	t := g.sim.Target()
	vector.StrokeCircle(screen, float32(t.X), float32(t.Y), 6, 2, color.RGBA{R: 220, G: 40, B: 40, A: 255}, true)
	g.overlay(screen, g.sim.Stats())
}

func (g *BoidsGame) Layout(w, h int) (int, int) {
	cfg := g.sim.Settings()
	return int(cfg.Width), int(cfg.Height)
}
