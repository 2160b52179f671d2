// Package entity holds the moving body shared by the field particles, the boids
// and the segment points, plus the per-frame rules they have in common.
package entity

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

// Body is a point moving along Dir at Speed. Per frame displacement is Dir*Speed.
// Dir is not kept normalized: collision responses write the full velocity into
// it and record its length in Speed.
type Body struct {
	Pos   geometry.Vector2D
	Dir   geometry.Vector2D
	Speed float64
	Color colorful.Color
}

// Velocity is the displacement applied by Advance.
func (b *Body) Velocity() geometry.Vector2D {
	return b.Dir.Mul(b.Speed)
}

// Advance integrates one frame.
func (b *Body) Advance() {
	b.Pos = b.Pos.Add(b.Velocity())
}

// ApplyFriction scales Speed by 1-f.
func (b *Body) ApplyFriction(f float64) {
	b.Speed *= 1 - f
}

// BounceInside negates a direction component when the body lies strictly
// beyond the margin on that axis.
func (b *Body) BounceInside(w, h, margin float64) {
	if b.Pos.X < margin || b.Pos.X > w-margin {
		b.Dir.X = -b.Dir.X
	}
	if b.Pos.Y < margin || b.Pos.Y > h-margin {
		b.Dir.Y = -b.Dir.Y
	}
}

// BounceInclusive is BounceInside with the edge itself counted as contact.
func (b *Body) BounceInclusive(w, h, margin float64) {
	if b.Pos.X <= margin || b.Pos.X >= w-margin {
		b.Dir.X = -b.Dir.X
	}
	if b.Pos.Y <= margin || b.Pos.Y >= h-margin {
		b.Dir.Y = -b.Dir.Y
	}
}

// Randomize picks a random unit direction and a speed in [0, maxSpeed).
func (b *Body) Randomize(rng *rand.Rand, maxSpeed float64) {
	b.Dir = UnitVector(rng)
	b.Speed = rng.Float64() * maxSpeed
}

// Kick adds a random unit vector scaled by impulse to Dir.
func (b *Body) Kick(rng *rand.Rand, impulse float64) {
	b.Dir = b.Dir.Add(UnitVector(rng).Mul(impulse))
}

// UnitVector returns a direction with a uniform random angle.
func UnitVector(rng *rand.Rand) geometry.Vector2D {
	return geometry.NewVectorPolar(1, rng.Float64()*2*math.Pi)
}
