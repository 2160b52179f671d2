package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	margin        = 10.0
)

// row is either a section title or a widget.
type row struct {
	title  string
	widget Widget
	y      float64 // top of the row, scroll applied
}

func (r row) height() float64 {
	if r.widget == nil {
		return sectionHeight
	}
	return r.widget.Height()
}

// Panel stacks widgets under section titles in a scrollable column.
type Panel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Visible       bool
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	rows []row
}

// NewPanel creates a hidden, empty panel anchored at x, y.
func NewPanel(title string, x, y, width, height float64) *Panel {
	return &Panel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Visible:     true,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection appends a title row.
func (p *Panel) AddSection(title string) {
	p.rows = append(p.rows, row{title: title})
	p.layout()
}

// Add appends w below the previous row. Sliders are stretched to the panel width.
func (p *Panel) Add(w Widget) {
	if s, ok := w.(*Slider); ok {
		s.W = p.Width - 2*margin
	}
	p.rows = append(p.rows, row{widget: w})
	p.layout()
}

// AddSlider appends a slider bound to v.
func (p *Panel) AddSlider(label string, min, max float64, v *float64) *Slider {
	s := NewSlider(label, min, max, v)
	p.Add(s)
	return s
}

// AddCheckbox appends a checkbox bound to v.
func (p *Panel) AddCheckbox(label string, v *bool) *Checkbox {
	c := NewCheckbox(label, v)
	p.Add(c)
	return c
}

// AddButton appends a button calling onClick.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(label, onClick)
	p.Add(b)
	return b
}

// ContentHeight is the height of the title and all rows.
func (p *Panel) ContentHeight() float64 {
	h := titleHeight
	for _, r := range p.rows {
		h += r.height()
	}
	return h
}

// Contains reports whether a visible panel covers the pointer. Sketches use it
// to ignore clicks meant for the panel.
func (p *Panel) Contains(in Input) bool {
	return p.Visible && in.Over(p.X, p.Y, p.Width, p.Height)
}

func (p *Panel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for i := range p.rows {
		p.rows[i].y = y
		if w := p.rows[i].widget; w != nil {
			w.MoveTo(p.X+margin, y)
		}
		y += p.rows[i].height()
	}
}

// visible reports whether the row lies fully inside the panel body.
func (p *Panel) visible(r row) bool {
	return r.y >= p.Y+titleHeight-1 && r.y+r.height() <= p.Y+p.Height
}

// Update scrolls with the wheel and forwards the input to every widget. It does nothing while hidden.
func (p *Panel) Update(in Input) {
	if !p.Visible {
		return
	}
	if in.Wheel != 0 && p.Contains(in) {
		p.ScrollOffset -= in.Wheel * 20
		maxScroll := max(p.ContentHeight()-p.Height+margin, 0)
		p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
		p.layout()
	}
	for _, r := range p.rows {
		if r.widget != nil && p.visible(r) {
			r.widget.Update(in)
		}
	}
}

// Draw renders the background, the title and the visible rows.
func (p *Panel) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+margin), int(p.Y+5))

	for _, r := range p.rows {
		if !p.visible(r) {
			continue
		}
		if r.widget != nil {
			r.widget.Draw(screen)
			continue
		}
		vector.FillRect(screen, float32(p.X+5), float32(r.y), float32(p.Width-10), 20, color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
		ebitenutil.DebugPrintAt(screen, r.title, int(p.X+margin), int(r.y+3))
	}
}
