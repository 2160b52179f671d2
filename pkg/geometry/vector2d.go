package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq and Normalize.
const Epsilon = 1e-9

// Vector2D is a point or a displacement in screen space (y grows downward).
type Vector2D struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// NewVectorPolar builds a vector from a length and an angle in radians.
// Components smaller than Epsilon are snapped to zero.
func NewVectorPolar(radius, theta float64) Vector2D {
	x := radius * math.Cos(theta)
	y := radius * math.Sin(theta)
	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}
	return Vector2D{X: x, Y: y}
}

func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Add returns v + other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales v by scalar.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Div scales the vector by 1/scalar. A zero scalar yields Inf or NaN components,
// the same as plain float division.
func (v Vector2D) Div(scalar float64) Vector2D {
	return Vector2D{v.X / scalar, v.Y / scalar}
}

// Dot returns the dot product of v and other.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Perp returns the vector rotated by +90 degrees, (-y, x).
// For a unit collision normal this is the tangent axis.
func (v Vector2D) Perp() Vector2D {
	return Vector2D{-v.Y, v.X}
}

// LenSqr avoids the square root; use it for distance comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector, or the zero vector when v is too short.
func (v Vector2D) Normalize() Vector2D {
	l := v.Len()
	if l < Epsilon {
		return Vector2D{}
	}
	return v.Mul(1 / l)
}

// DistanceTo returns the euclidean distance between v and other.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// DistanceSquaredTo avoids the square root when only comparing distances.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// Angle is atan2(y, x) in radians, in [-Pi, Pi].
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo is the heading in radians from v toward other.
func (v Vector2D) AngleTo(other Vector2D) float64 {
	return math.Atan2(other.Y-v.Y, other.X-v.X)
}

// Rotate rotates v by angle radians around the origin.
func (v Vector2D) Rotate(angle float64) Vector2D {
	sin, cos := math.Sincos(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAround rotates v by angle radians around center.
func (v Vector2D) RotateAround(angle float64, center Vector2D) Vector2D {
	return v.Sub(center).Rotate(angle).Add(center)
}

// Lerp moves from v toward target by t in [0, 1].
func (v Vector2D) Lerp(target Vector2D, t float64) Vector2D {
	return v.Add(target.Sub(v).Mul(t))
}

// Project projects v onto on.
func (v Vector2D) Project(on Vector2D) Vector2D {
	return on.Mul(v.Dot(on) / on.LenSqr())
}

// Eq compares both components within Epsilon.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}
