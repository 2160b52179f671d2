package field

import (
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/entity"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

// Resolve runs one pairwise collision pass over every unordered pair closer
// than 2*radius. The normal component of each direction is blended with the
// other's by transferRate (0 keeps its own, 1 swaps), the tangent component is
// kept, Speed becomes |Dir| and the pair is pushed apart along the normal by
// half the overlap each. Coincident centers give NaN and are left as is.
func Resolve(ps []entity.Body, radius, transferRate float64) int {
	hits := 0
	minDist := 2 * radius
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			a, b := &ps[i], &ps[j]
			delta := a.Pos.Sub(b.Pos)
			dist := delta.Len()
			if dist >= minDist {
				continue
			}
			hits++
			n := delta.Div(dist)
			t := n.Perp()

			v1n, v1t := a.Dir.Dot(n), a.Dir.Dot(t)
			v2n, v2t := b.Dir.Dot(n), b.Dir.Dot(t)
			n1 := transferRate*v2n + (1-transferRate)*v1n
			n2 := transferRate*v1n + (1-transferRate)*v2n

			a.Dir = n.Mul(n1).Add(t.Mul(v1t))
			b.Dir = n.Mul(n2).Add(t.Mul(v2t))
			a.Speed = a.Dir.Len()
			b.Speed = b.Dir.Len()

			separate(a, b, delta, dist, minDist)
		}
	}
	return hits
}

// ResolveDeviation is the alternate pass: colliding particles share their
// speeds equally and both directions turn by devAngle radians.
func ResolveDeviation(ps []entity.Body, radius, devAngle float64) int {
	hits := 0
	minDist := 2 * radius
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			a, b := &ps[i], &ps[j]
			delta := a.Pos.Sub(b.Pos)
			dist := delta.Len()
			if dist >= minDist {
				continue
			}
			hits++
			shared := (a.Speed + b.Speed) / 2
			a.Speed, b.Speed = shared, shared
			a.Dir = a.Dir.Rotate(devAngle)
			b.Dir = b.Dir.Rotate(devAngle)

			separate(a, b, delta, dist, minDist)
		}
	}
	return hits
}

func separate(a, b *entity.Body, delta geometry.Vector2D, dist, minDist float64) {
	push := delta.Mul((minDist - dist) / dist / 2)
	a.Pos = a.Pos.Add(push)
	b.Pos = b.Pos.Sub(push)
}
