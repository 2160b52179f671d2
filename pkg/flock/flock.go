package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/entity"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

// Flock owns the boids, the static obstacles and the current target.
type Flock struct {
	cfg       Config
	rng       *rand.Rand
	boids     []Boid
	obstacles []geometry.Rect
	target    geometry.Vector2D
	blocked   int
	frames    int
}

// New builds a flock and resets it with seed.
func New(cfg Config, seed int64) *Flock {
	f := &Flock{cfg: cfg}
	f.Reset(seed)
	return f
}

// Name is the registry key of the flock.
func (f *Flock) Name() string { return "boids" }

// Reset scatters the boids, regenerates the obstacles and aims at the center.
func (f *Flock) Reset(seed int64) {
	f.rng = entity.NewRand(seed)
	f.frames = 0
	f.target = geometry.Vector2D{X: f.cfg.Width / 2, Y: f.cfg.Height / 2}

	f.boids = make([]Boid, max(f.cfg.NumBoids, 0))
	for i := range f.boids {
		f.boids[i].Dir = geometry.Vector2D{X: 1, Y: 1}
		f.boids[i].Speed = f.cfg.Speed
		f.boids[i].Color = entity.RandomColor(f.rng)
	}
	f.Scatter()

	f.obstacles = make([]geometry.Rect, max(f.cfg.NumObstacles, 0))
	for i := range f.obstacles {
		f.obstacles[i] = geometry.Rect{
			X: entity.Uniform(f.rng, 5, f.cfg.Width),
			Y: entity.Uniform(f.rng, 5, f.cfg.Height),
			W: entity.Uniform(f.rng, 5, f.cfg.MaxObstacleW),
			H: entity.Uniform(f.rng, 5, f.cfg.MaxObstacleH),
		}
	}
}

// Scatter moves every boid to a random position. Headings are kept.
func (f *Flock) Scatter() {
	for i := range f.boids {
		f.boids[i].Pos = geometry.Vector2D{
			X: f.rng.Float64() * f.cfg.Width,
			Y: f.rng.Float64() * f.cfg.Height,
		}
	}
}

// SetTarget changes the point every boid steers toward.
func (f *Flock) SetTarget(t geometry.Vector2D) { f.target = t }

func (f *Flock) Target() geometry.Vector2D { return f.target }

// Step steers every boid in order. Boid i only sees boids [0, i) as
// neighbors, which already moved this frame.
func (f *Flock) Step() {
	f.blocked = 0
	for i := range f.boids {
		f.boids[i].Steer(f.target, f.boids[:i], f.obstacles, f.cfg.Params, f.rng)
	}
	for i := range f.boids {
		for _, obs := range f.obstacles {
			if obs.Contains(f.boids[i].Pos) {
				f.blocked++
				break
			}
		}
	}
	f.frames++
}

// Boids exposes the live slice for rendering.
func (f *Flock) Boids() []Boid { return f.boids }

func (f *Flock) Obstacles() []geometry.Rect { return f.obstacles }

// Config returns a copy of the current settings.
func (f *Flock) Config() Config { return f.cfg }

// Settings exposes the live configuration. Edits apply from the next Step.
func (f *Flock) Settings() *Config { return &f.cfg }

// Stats reports the spread of the flock and its distance to the target.
func (f *Flock) Stats() map[string]float64 {
	mean := geometry.Vector2D{}
	for _, b := range f.boids {
		mean = mean.Add(b.Pos)
	}
	spread := 0.0
	if n := float64(len(f.boids)); n > 0 {
		mean = mean.Div(n)
		for _, b := range f.boids {
			spread += b.Pos.DistanceTo(mean)
		}
		spread /= n
	}
	return map[string]float64{
		"frame":       float64(f.frames),
		"boids":       float64(len(f.boids)),
		"obstacles":   float64(len(f.obstacles)),
		"inside_obs":  float64(f.blocked),
		"target_dist": mean.DistanceTo(f.target),
		"spread":      spread,
	}
}

// AudioTarget maps the mean absolute amplitude of a sound frame to one of four
// steering targets: above t[2] up, above t[1] down, above t[0] right, else left.
func AudioTarget(amplitude float64, t []float64, w, h float64) geometry.Vector2D {
	switch {
	case len(t) == 3 && amplitude > t[2]:
		return geometry.Vector2D{X: w / 2, Y: 50}
	case len(t) == 3 && amplitude > t[1]:
		return geometry.Vector2D{X: w / 2, Y: h - 50}
	case len(t) == 3 && amplitude > t[0]:
		return geometry.Vector2D{X: w - 50, Y: h / 2}
	default:
		return geometry.Vector2D{X: 50, Y: h / 2}
	}
}
