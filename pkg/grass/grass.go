// Package grass grows cells on a square grid. Each cell ages every step,
// seeds a nearby empty cell once mature and disappears at its death age.
package grass

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/entity"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

// Cell is one tuft of grass.
type Cell struct {
	Age      int
	DeathAge int
}

// Alive reports whether the cell survives its current age.
func (c *Cell) Alive() bool { return c.Age < c.DeathAge }

type World struct {
	cfg    Config
	rng    *rand.Rand
	seed   int64
	cells  []*Cell // column major: x*size + y
	births int
	deaths int
	frames int
}

// New builds a world and resets it with seed.
func New(cfg Config, seed int64) *World {
	w := &World{cfg: cfg}
	w.Reset(seed)
	return w
}

// Name is the registry key of the grass sketch.
func (w *World) Name() string { return "grass" }

// Reset empties the grid, or fills it from noise when Meadow is set.
func (w *World) Reset(seed int64) {
	w.rng = entity.NewRand(seed)
	w.seed = seed
	n := max(w.cfg.WorldSize, 0)
	w.cells = make([]*Cell, n*n)
	w.births, w.deaths, w.frames = 0, 0, 0
	if w.cfg.Meadow {
		w.Meadow(w.cfg.MeadowThreshold)
	}
}

// newCell draws a death age of DeathAge scaled by a factor in [0.8, 1.2].
func (w *World) newCell() *Cell {
	return &Cell{DeathAge: int(float64(w.cfg.DeathAge) * entity.Uniform(w.rng, 0.8, 1.2))}
}

func (w *World) index(x, y int) (int, bool) {
	n := w.cfg.WorldSize
	if x < 0 || y < 0 || x >= n || y >= n {
		return 0, false
	}
	return x*n + y, true
}

// Step runs one update pass, x major then y, in place: cells planted during
// the pass can be visited later in the same pass.
func (w *World) Step() {
	n := w.cfg.WorldSize
	r := max(w.cfg.ReproRadius, 0)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			i := x*n + y
			c := w.cells[i]
			if c == nil {
				continue
			}
			c.Age++
			if !c.Alive() {
				w.cells[i] = nil
				w.deaths++
				continue
			}
			if c.Age < w.cfg.ReproduceAge {
				continue
			}
			for s := 0; s < w.cfg.MaxSeeds; s++ {
				dx := w.rng.IntN(2*r+1) - r
				dy := w.rng.IntN(2*r+1) - r
				j, ok := w.index(x+dx, y+dy)
				if ok && w.cells[j] == nil {
					w.cells[j] = w.newCell()
					w.births++
					break
				}
			}
		}
	}
	w.frames++
}

// Plant puts a fresh cell under the pixel position p, replacing any cell
// already there. Clicks outside the grid are ignored.
func (w *World) Plant(p geometry.Vector2D) bool {
	if p.X < 0 || p.Y < 0 {
		return false
	}
	i, ok := w.index(int(p.X/w.cfg.CellSize), int(p.Y/w.cfg.CellSize))
	if !ok {
		return false
	}
	w.cells[i] = w.newCell()
	return true
}

// Meadow plants every empty cell where 2D Perlin noise exceeds threshold.
func (w *World) Meadow(threshold float64) int {
	noise := perlin.NewPerlin(2, 2, 3, w.seed)
	n := w.cfg.WorldSize
	planted := 0
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			i := x*n + y
			if w.cells[i] != nil {
				continue
			}
			if noise.Noise2D(float64(x)/16, float64(y)/16) > threshold {
				w.cells[i] = w.newCell()
				planted++
			}
		}
	}
	return planted
}

// Cell returns the cell at grid coordinates, nil when empty or out of range.
func (w *World) Cell(x, y int) *Cell {
	i, ok := w.index(x, y)
	if !ok {
		return nil
	}
	return w.cells[i]
}

// Mature reports whether c has reached reproduction age.
func (w *World) Mature(c *Cell) bool {
	return c.Age >= w.cfg.ReproduceAge
}

// Count returns the number of occupied cells.
func (w *World) Count() int {
	n := 0
	for _, c := range w.cells {
		if c != nil {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied cell.
func (w *World) Each(fn func(x, y int, c *Cell)) {
	n := w.cfg.WorldSize
	for i, c := range w.cells {
		if c != nil {
			fn(i/n, i%n, c)
		}
	}
}

// Config returns a copy of the current settings.
func (w *World) Config() Config { return w.cfg }

// Settings exposes the live configuration. Edits apply from the next Step.
func (w *World) Settings() *Config { return &w.cfg }

// Stats reports live cells with births and deaths since Reset.
func (w *World) Stats() map[string]float64 {
	return map[string]float64{
		"frame":  float64(w.frames),
		"cells":  float64(w.Count()),
		"births": float64(w.births),
		"deaths": float64(w.deaths),
	}
}
