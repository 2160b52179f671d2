package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider edits a float64 in place while the left button is held over its bar.
type Slider struct {
	Label    string
	Min, Max float64
	X, Y     float64
	W, H     float64
	value    *float64
}

// NewSlider binds a slider to v. The current value is left untouched even
// when it lies outside [min, max].
func NewSlider(label string, min, max float64, v *float64) *Slider {
	return &Slider{Label: label, Min: min, Max: max, W: 200, H: 10, value: v}
}

// Value returns the bound value.
func (s *Slider) Value() float64 { return *s.value }

// Ratio is the position of the value along the bar, clamped to [0, 1].
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return min(max((*s.value-s.Min)/(s.Max-s.Min), 0), 1)
}

// Update moves the value under a pressed pointer.
func (s *Slider) Update(in Input) {
	if !in.Pressed || !in.Over(s.X, s.Y, s.W, s.H) {
		return
	}
	p := (in.X - s.X) / s.W
	*s.value = min(max(s.Min+p*(s.Max-s.Min), s.Min), s.Max)
}

// Draw renders the label, the track and the knob.
func (s *Slider) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %.3g", s.Label, *s.value), int(s.X), int(s.Y-15))
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}

// Height includes the label line above the bar.
func (s *Slider) Height() float64 { return s.H + 25 }

// MoveTo places the slider with its label above the track.
func (s *Slider) MoveTo(x, y float64) {
	s.X = x
	s.Y = y + 15
}
