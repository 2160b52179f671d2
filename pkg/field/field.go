// Package field is the particle field: a grid of circles that collide, slow
// down through friction and bounce off the window edges.
package field

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/entity"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

type Field struct {
	cfg       Config
	rng       *rand.Rand
	particles []entity.Body
	grid      *geometry.Grid
	hits      int
	frames    int
}

// New lays the particles out on a rows x cols grid. They start at rest.
func New(cfg Config, seed int64) *Field {
	f := &Field{cfg: cfg}
	f.Reset(seed)
	return f
}

// Name is the registry key of the particle field.
func (f *Field) Name() string { return "field" }

// Reset lays the particles out on the rows x cols grid, at rest, with fresh colors.
func (f *Field) Reset(seed int64) {
	f.rng = entity.NewRand(seed)
	f.grid = geometry.NewGrid(2 * f.cfg.Radius)
	f.hits, f.frames = 0, 0
	if f.cfg.Rows <= 0 || f.cfg.Cols <= 0 {
		f.particles = nil
		return
	}
	f.particles = make([]entity.Body, 0, f.cfg.Rows*f.cfg.Cols)
	cellW := f.cfg.Width / float64(f.cfg.Cols)
	cellH := f.cfg.Height / float64(f.cfg.Rows)
	for row := 0; row < f.cfg.Rows; row++ {
		for col := 0; col < f.cfg.Cols; col++ {
			f.particles = append(f.particles, entity.Body{
				Pos:   geometry.Vector2D{X: float64(col)*cellW + f.cfg.Radius, Y: float64(row)*cellH + f.cfg.Radius},
				Color: entity.RandomColor(f.rng),
			})
		}
	}
}

// Step resolves collisions then moves every particle one frame.
func (f *Field) Step() {
	if f.cfg.Mode == ModeDeviation {
		f.hits = ResolveDeviation(f.particles, f.cfg.Radius, f.cfg.DevAngle)
	} else {
		f.hits = Resolve(f.particles, f.cfg.Radius, f.cfg.TransferRate)
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.Advance()
		p.ApplyFriction(f.cfg.Friction)
		p.BounceInside(f.cfg.Width, f.cfg.Height, f.cfg.Radius)
	}
	f.frames++
}

// Click launches every particle under the cursor in a random direction.
func (f *Field) Click(at geometry.Vector2D) int {
	return f.underCursor(at, func(p *entity.Body) { p.Randomize(f.rng, f.cfg.MaxSpeed) })
}

// Hover kicks the particles under the cursor when MouseMove is enabled.
func (f *Field) Hover(at geometry.Vector2D) int {
	if !f.cfg.MouseMove {
		return 0
	}
	return f.underCursor(at, func(p *entity.Body) { p.Kick(f.rng, f.cfg.MaxSpeed) })
}

func (f *Field) underCursor(at geometry.Vector2D, fn func(*entity.Body)) int {
	f.index()
	r2 := f.cfg.Radius * f.cfg.Radius
	n := 0
	f.grid.Near(at, f.cfg.Radius, func(i int) {
		if f.particles[i].Pos.DistanceSquaredTo(at) < r2 {
			fn(&f.particles[i])
			n++
		}
	})
	return n
}

// index files the current particle positions in the grid.
func (f *Field) index() {
	f.grid.Rebuild(len(f.particles), func(i int) geometry.Vector2D { return f.particles[i].Pos })
}

// Overlaps counts the pairs still closer than one diameter.
func (f *Field) Overlaps() int {
	f.index()
	d := 2 * f.cfg.Radius
	n := 0
	for i := range f.particles {
		f.grid.Near(f.particles[i].Pos, d, func(j int) {
			if j > i && f.particles[i].Pos.DistanceTo(f.particles[j].Pos) < d-geometry.Epsilon {
				n++
			}
		})
	}
	return n
}

// Particles exposes the live slice for rendering.
func (f *Field) Particles() []entity.Body { return f.particles }

// Config returns a copy of the current settings.
func (f *Field) Config() Config { return f.cfg }

// Settings exposes the live configuration. Edits apply from the next Step.
func (f *Field) Settings() *Config { return &f.cfg }

// TraceLine lists the segments linking consecutive particles, or nil when the
// option is off.
func (f *Field) TraceLine() [][2]geometry.Vector2D {
	if !f.cfg.TraceLine || len(f.particles) < 2 {
		return nil
	}
	out := make([][2]geometry.Vector2D, 0, len(f.particles)-1)
	for i := 0; i+1 < len(f.particles); i++ {
		out = append(out, [2]geometry.Vector2D{f.particles[i].Pos, f.particles[i+1].Pos})
	}
	return out
}

// Stats reports particle count, collisions, overlaps and kinetic energy.
func (f *Field) Stats() map[string]float64 {
	energy := 0.0
	for _, p := range f.particles {
		energy += p.Velocity().LenSqr()
	}
	return map[string]float64{
		"frame":      float64(f.frames),
		"particles":  float64(len(f.particles)),
		"collisions": float64(f.hits),
		"overlaps":   float64(f.Overlaps()),
		"energy":     energy / 2,
	}
}
