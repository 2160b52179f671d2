package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button calls OnClick once per press.
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	OnClick func()

	BGColor    color.RGBA
	HoverColor color.RGBA

	clicked bool
	hover   bool
}

// NewButton creates a button calling onClick when pressed.
func NewButton(label string, onClick func()) *Button {
	return &Button{
		Label:      label,
		W:          120,
		H:          20,
		OnClick:    onClick,
		BGColor:    color.RGBA{R: 80, G: 120, B: 180, A: 255},
		HoverColor: color.RGBA{R: 100, G: 150, B: 220, A: 255},
	}
}

// Update fires the callback once per press over the button.
func (b *Button) Update(in Input) {
	b.hover = in.Over(b.X, b.Y, b.W, b.H)
	if b.hover && in.Pressed {
		if !b.clicked && b.OnClick != nil {
			b.OnClick()
		}
		b.clicked = true
		return
	}
	b.clicked = false
}

// Draw renders the button, highlighted while hovered.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BGColor
	if b.hover {
		bg = b.HoverColor
	}
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+6), int(b.Y+3))
}

// Height is the row height taken in a panel.
func (b *Button) Height() float64 { return b.H + 8 }

// MoveTo places the button at x, y.
func (b *Button) MoveTo(x, y float64) {
	b.X = x
	b.Y = y
}
