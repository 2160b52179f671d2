// Package spiral spawns points that wind outward from where they were clicked
// and drops them once they leave the window.
package spiral

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/entity"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

type Point struct {
	Origin    geometry.Vector2D
	Angle     float64
	Radius    float64
	Color     colorful.Color
	Direction float64 // +1 or -1
}

// Position is the point projected from its origin.
func (p Point) Position() geometry.Vector2D {
	return p.Origin.Add(geometry.NewVector(math.Cos(p.Angle), math.Sin(p.Angle)).Mul(p.Radius))
}

type Generator struct {
	cfg     Config
	rng     *rand.Rand
	points  []Point
	spawned int
	dropped int
	frames  int
}

// New builds an empty generator seeded with seed.
func New(cfg Config, seed int64) *Generator {
	g := &Generator{cfg: cfg}
	g.Reset(seed)
	return g
}

// Name is the registry key of the spiral sketch.
func (g *Generator) Name() string { return "spiral" }

// Reset removes every point and reseeds the color draws.
func (g *Generator) Reset(seed int64) {
	g.rng = entity.NewRand(seed)
	g.points = g.points[:0]
	g.spawned, g.dropped, g.frames = 0, 0, 0
}

// Spawn adds a point at origin with a random palette color and direction.
func (g *Generator) Spawn(origin geometry.Vector2D) {
	dir := 1.0
	if g.rng.IntN(2) == 0 {
		dir = -1
	}
	g.points = append(g.points, Point{
		Origin:    origin,
		Color:     entity.Palette[g.rng.IntN(len(entity.Palette))],
		Direction: dir,
	})
	g.spawned++
}

// Step winds every point then retains only those still inside the closed
// window rectangle.
func (g *Generator) Step() {
	for i := range g.points {
		g.points[i].Angle += g.cfg.AngleIncrement * g.points[i].Direction
		g.points[i].Radius += g.cfg.RadiusIncrement
	}
	kept := g.points[:0]
	for _, p := range g.points {
		if geometry.InBounds(p.Position(), g.cfg.Width, g.cfg.Height) {
			kept = append(kept, p)
		}
	}
	g.dropped += len(g.points) - len(kept)
	g.points = kept
	g.frames++
}

// Points exposes the live slice for rendering.
func (g *Generator) Points() []Point { return g.points }

func (g *Generator) Config() Config { return g.cfg }

// Settings exposes the live configuration. Edits apply from the next Step.
func (g *Generator) Settings() *Config { return &g.cfg }

// Links joins consecutive points when ConnectLine is on.
func (g *Generator) Links() [][2]geometry.Vector2D {
	if !g.cfg.ConnectLine || len(g.points) < 2 {
		return nil
	}
	out := make([][2]geometry.Vector2D, 0, len(g.points)-1)
	for i := 1; i < len(g.points); i++ {
		out = append(out, [2]geometry.Vector2D{g.points[i-1].Position(), g.points[i].Position()})
	}
	return out
}

// Stats reports the live points, and the spawned and dropped totals since Reset.
func (g *Generator) Stats() map[string]float64 {
	return map[string]float64{
		"frame":   float64(g.frames),
		"points":  float64(len(g.points)),
		"spawned": float64(g.spawned),
		"dropped": float64(g.dropped),
	}
}
