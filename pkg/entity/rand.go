package entity

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// NewRand creates a deterministic PCG generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Uniform returns a float in [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandomColor returns a saturated, bright color with a random hue.
func RandomColor(rng *rand.Rand) colorful.Color {
	return colorful.Hsv(rng.Float64()*360, Uniform(rng, 0.55, 1), Uniform(rng, 0.7, 1))
}

// Palette is the fixed set of eight colors used by the spiral points and the
// audio visualizer.
var Palette = [8]colorful.Color{
	{R: 1, G: 0, B: 0},
	{R: 0, G: 1, B: 0},
	{R: 0, G: 0, B: 1},
	{R: 1, G: 1, B: 0},
	{R: 1, G: 0, B: 1},
	{R: 0, G: 1, B: 1},
	{R: 0.5, G: 0.5, B: 0.5},
	{R: 1, G: 0.5, B: 0},
}
