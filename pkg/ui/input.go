// Package ui holds the small immediate mode widgets drawn over the sketches.
// Widgets read an Input sampled once per frame, which keeps their hit testing
// independent of the ebiten window.
package ui

import "github.com/hajimehoshi/ebiten/v2"

// Input is the pointer state for one frame.
type Input struct {
	X, Y    float64
	Pressed bool
	Wheel   float64
}

// ReadInput samples the cursor, the left button and the vertical wheel.
func ReadInput() Input {
	mx, my := ebiten.CursorPosition()
	_, dy := ebiten.Wheel()
	return Input{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Wheel:   dy,
	}
}

// Over reports whether the pointer is inside the rectangle, edges included.
func (in Input) Over(x, y, w, h float64) bool {
	return in.X >= x && in.X <= x+w && in.Y >= y && in.Y <= y+h
}

// Widget is anything the Panel can stack.
type Widget interface {
	Update(in Input)
	Draw(screen *ebiten.Image)
	Height() float64
	MoveTo(x, y float64)
}
