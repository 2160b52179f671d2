// Package flock steers boids toward a target with a bounded turn rate, jitters
// them apart when they crowd and pushes them out of rectangular obstacles.
package flock

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/entity"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

type Boid struct {
	entity.Body
}

// Heading is the direction of travel in degrees.
func (b *Boid) Heading() float64 {
	return geometry.Degrees(b.Dir.Angle())
}

// Steer advances the boid one frame toward target.
//
// The turn toward the target is clamped to MaxAngle degrees. The difference of
// the two atan2 headings is clamped as is, so a target just across the -180/180
// seam turns the long way round. Neighbors are only considered for jitter and
// a boid that lands inside an obstacle goes back to its previous x and steps
// vertically away from the obstacle middle.
func (b *Boid) Steer(target geometry.Vector2D, neighbors []Boid, obstacles []geometry.Rect, p Params, rng *rand.Rand) {
	start := b.Pos

	desired := geometry.Degrees(b.Pos.AngleTo(target))
	current := b.Heading()
	heading := geometry.Radians(current + geometry.ClampAngle(desired-current, p.MaxAngle))

	b.Dir = geometry.Vector2D{X: math.Cos(heading), Y: math.Sin(heading)}
	b.Speed = p.Speed
	b.Advance()

	if b.Pos.X < 0 || b.Pos.X > p.Width {
		b.Dir.X = -b.Dir.X
	}
	if b.Pos.Y < 0 || b.Pos.Y > p.Height {
		b.Dir.Y = -b.Dir.Y
	}

	for i := range neighbors {
		other := neighbors[i].Pos
		if math.Abs(b.Pos.X-other.X) < p.Distance || math.Abs(b.Pos.Y-other.Y) < p.Distance {
			b.Pos.X += entity.Uniform(rng, -p.Sault, p.Sault)
			b.Pos.Y += entity.Uniform(rng, -p.Sault, p.Sault)
		}
	}

	for _, obs := range obstacles {
		if !obs.Contains(b.Pos) {
			continue
		}
		b.Pos.X = start.X
		if b.Pos.Y > obs.Y+p.ObstacleHalfHeight {
			b.Pos.Y = start.Y + p.Speed
		} else {
			b.Pos.Y = start.Y - p.Speed
		}
	}
}
