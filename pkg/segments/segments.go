// Package segments moves a few points around the window and derives the line
// and triangle sets drawn between them and a fixed ring of edge points.
package segments

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/entity"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

// Segment is a line between two points.
type Segment [2]geometry.Vector2D

// Triangle is three internal points and the fill color cached for that triple.
type Triangle struct {
	A, B, C geometry.Vector2D
	Color   colorful.Color
}

type Field struct {
	cfg      Config
	rng      *rand.Rand
	internal []entity.Body
	edge     []geometry.Vector2D
	colors   map[int]colorful.Color
	frames   int
}

// New builds a segments field and resets it with seed.
func New(cfg Config, seed int64) *Field {
	f := &Field{cfg: cfg}
	f.Reset(seed)
	return f
}

// Name is the registry key of the segments sketch.
func (f *Field) Name() string { return "segments" }

// Reset drops the cached triangle colors and regenerates every point.
func (f *Field) Reset(seed int64) {
	f.rng = entity.NewRand(seed)
	f.colors = make(map[int]colorful.Color)
	f.frames = 0
	f.generate()
}

// Resize adopts the new window size and regenerates every point. Triangle
// colors are kept since they are keyed by index only.
func (f *Field) Resize(w, h float64) {
	f.cfg.Width, f.cfg.Height = w, h
	f.generate()
}

func (f *Field) generate() {
	w, h := f.cfg.Width, f.cfg.Height
	f.internal = make([]entity.Body, max(f.cfg.NumInternal, 0))
	for i := range f.internal {
		f.internal[i] = entity.Body{
			Pos:   geometry.Vector2D{X: entity.Uniform(f.rng, 0, w), Y: entity.Uniform(f.rng, 0, h)},
			Dir:   geometry.Vector2D{X: entity.Uniform(f.rng, -1, 1), Y: entity.Uniform(f.rng, -1, 1)},
			Speed: entity.Uniform(f.rng, f.cfg.SpeedMin, f.cfg.SpeedMax),
		}
	}
	f.edge = make([]geometry.Vector2D, 0, 4*max(f.cfg.NumEdge, 0))
	for i := 0; i < f.cfg.NumEdge; i++ {
		f.edge = append(f.edge,
			geometry.Vector2D{X: entity.Uniform(f.rng, 1, w-1), Y: 1},
			geometry.Vector2D{X: entity.Uniform(f.rng, 1, w-1), Y: h - 1},
			geometry.Vector2D{X: 1, Y: entity.Uniform(f.rng, 1, h-1)},
			geometry.Vector2D{X: w - 1, Y: entity.Uniform(f.rng, 1, h-1)},
		)
	}
}

// Step moves the internal points. They bounce when they touch or pass an edge.
func (f *Field) Step() {
	for i := range f.internal {
		f.internal[i].Advance()
		f.internal[i].BounceInclusive(f.cfg.Width, f.cfg.Height, 0)
	}
	f.frames++
}

// Internal exposes the moving points.
func (f *Field) Internal() []entity.Body { return f.internal }

// Edge exposes the static points on the window border.
func (f *Field) Edge() []geometry.Vector2D { return f.edge }

func (f *Field) Config() Config { return f.cfg }

// Settings exposes the live configuration. Edits apply from the next Step.
func (f *Field) Settings() *Config { return &f.cfg }

// Links joins every pair of internal points.
func (f *Field) Links() []Segment {
	n := len(f.internal)
	out := make([]Segment, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Segment{f.internal[i].Pos, f.internal[j].Pos})
		}
	}
	return out
}

// Nearest joins each edge point to its closest internal point.
func (f *Field) Nearest() []Segment {
	if len(f.internal) == 0 {
		return nil
	}
	out := make([]Segment, 0, len(f.edge))
	for _, e := range f.edge {
		best := f.internal[0].Pos
		bestD := math.MaxFloat64
		for _, p := range f.internal {
			if d := e.DistanceSquaredTo(p.Pos); d < bestD {
				bestD, best = d, p.Pos
			}
		}
		out = append(out, Segment{e, best})
	}
	return out
}

// EdgeRing joins edge point i to edge point (i+1) mod n.
func (f *Field) EdgeRing() []Segment {
	n := len(f.edge)
	if n < 2 {
		return nil
	}
	out := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Segment{f.edge[i], f.edge[(i+1)%n]})
	}
	return out
}

// EdgeMesh joins every pair of edge points.
func (f *Field) EdgeMesh() []Segment {
	n := len(f.edge)
	out := make([]Segment, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Segment{f.edge[i], f.edge[j]})
		}
	}
	return out
}

// Triangles lists every i<j<k triple of internal points. A triple keeps the
// color drawn the first time it was listed.
func (f *Field) Triangles() []Triangle {
	n := len(f.internal)
	out := make([]Triangle, 0, n*(n-1)*(n-2)/6)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				key := i*n*n + j*n + k
				c, ok := f.colors[key]
				if !ok {
					c = entity.RandomColor(f.rng)
					f.colors[key] = c
				}
				out = append(out, Triangle{A: f.internal[i].Pos, B: f.internal[j].Pos, C: f.internal[k].Pos, Color: c})
			}
		}
	}
	return out
}

// Stats reports point, link and triangle counts.
func (f *Field) Stats() map[string]float64 {
	n := float64(len(f.internal))
	return map[string]float64{
		"frame":     float64(f.frames),
		"internal":  n,
		"edge":      float64(len(f.edge)),
		"links":     n * (n - 1) / 2,
		"triangles": n * (n - 1) * (n - 2) / 6,
	}
}
