package audio

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/entity"
)

type Shape int

const (
	Circle Shape = iota
	Square
	Triangle
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	default:
		return "triangle"
	}
}

// ShapeFor picks the shape from the pitch: circle under 200 Hz, square
// under 400 Hz, triangle above.
func ShapeFor(pitch float64) Shape {
	switch {
	case pitch < 200:
		return Circle
	case pitch < 400:
		return Square
	default:
		return Triangle
	}
}

// RadiusFor maps a level in dBFS to a radius in pixels. Anything at or below
// -60 dB gives 0.
func RadiusFor(db float64) float64 {
	if math.IsNaN(db) {
		return 0
	}
	return math.Max(db+60, 0) * 20
}

// recolorEvery is the number of frames between color changes.
const recolorEvery = 10

// Visualizer turns a stream of features into the shape drawn each frame. The
// radius eases toward its target through a critically damped spring.
type Visualizer struct {
	rng    *rand.Rand
	spring harmonica.Spring
	radius float64
	vel    float64
	target float64
	shape  Shape
	color  int
	frame  int
	smooth bool
}

// NewVisualizer builds a visualizer ticking at fps. With smooth off the radius
// jumps to its target every frame.
func NewVisualizer(seed int64, fps int, smooth bool) *Visualizer {
	return &Visualizer{
		rng:    entity.NewRand(seed),
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		smooth: smooth,
	}
}

// Update advances one frame with the latest feature.
func (v *Visualizer) Update(f Feature) {
	if v.frame%recolorEvery == 0 {
		v.color = v.rng.IntN(len(entity.Palette))
	}
	v.target = RadiusFor(f.Decibels)
	v.shape = ShapeFor(f.Pitch)
	if v.smooth {
		v.radius, v.vel = v.spring.Update(v.radius, v.vel, v.target)
	} else {
		v.radius = v.target
	}
	v.frame++
}

// Radius is the eased radius to draw.
func (v *Visualizer) Radius() float64 { return v.radius }

// Target is the radius the spring is heading for.
func (v *Visualizer) Target() float64 { return v.target }

func (v *Visualizer) Shape() Shape { return v.shape }

// Color is the current palette entry.
func (v *Visualizer) Color() colorful.Color { return entity.Palette[v.color] }

// ColorIndex is the position of Color in entity.Palette.
func (v *Visualizer) ColorIndex() int { return v.color }
