package geometry

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
	W float64 `json:"w" toml:"w"`
	H float64 `json:"h" toml:"h"`
}

// Contains reports whether p lies strictly inside r. Points on an edge are outside.
func (r Rect) Contains(p Vector2D) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Center returns the middle point of r.
func (r Rect) Center() Vector2D {
	return Vector2D{r.X + r.W/2, r.Y + r.H/2}
}

// InBounds reports whether p lies in the closed box [0,w]x[0,h].
func InBounds(p Vector2D, w, h float64) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
}
