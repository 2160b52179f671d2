package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox toggles a bool once per press.
type Checkbox struct {
	Label   string
	X, Y    float64
	Size    float64
	value   *bool
	clicked bool
}

// NewCheckbox creates a checkbox bound to v.
func NewCheckbox(label string, v *bool) *Checkbox {
	return &Checkbox{Label: label, Size: 16, value: v}
}

// Value returns the bound value.
func (c *Checkbox) Value() bool { return *c.value }

// Update toggles the value once per press inside the box.
func (c *Checkbox) Update(in Input) {
	if in.Pressed && in.Over(c.X, c.Y, c.Size, c.Size) {
		if !c.clicked {
			*c.value = !*c.value
			c.clicked = true
		}
		return
	}
	c.clicked = false
}

// Draw renders the box, filled when set, with its label.
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	if *c.value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255}, true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y))
}

// Height is the row height taken in a panel.
func (c *Checkbox) Height() float64 { return c.Size + 5 }

// MoveTo places the box at x, y.
func (c *Checkbox) MoveTo(x, y float64) {
	c.X = x
	c.Y = y
}
