// Package app holds the ebiten games that render each sketch and feed it
// mouse, keyboard and audio input.
package app

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/ui"
)

// whiteImage is the texture behind every DrawTriangles call; vertex colors
// tint it.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// fillPolygon fills a convex polygon as a triangle fan.
func fillPolygon(screen *ebiten.Image, pts []geometry.Vector2D, c colorful.Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b := float32(c.R), float32(c.G), float32(c.B)
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: 1,
		}
	}
	indices := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i+1 < len(pts); i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func strokeSegment(screen *ebiten.Image, a, b geometry.Vector2D, width float32, c color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
}

// arrowhead returns the three corners of a boid pointing along heading
// (radians).
func arrowhead(pos geometry.Vector2D, heading, size float64) []geometry.Vector2D {
	return []geometry.Vector2D{
		pos.Add(geometry.NewVectorPolar(size, heading)),
		pos.Add(geometry.NewVectorPolar(size*5/6, heading+2.5)),
		pos.Add(geometry.NewVectorPolar(size*5/6, heading-2.5)),
	}
}

// boxTriangle returns the upward triangle filling the 2r box around c: apex at
// the top center, base along the bottom edge.
func boxTriangle(c geometry.Vector2D, r float64) []geometry.Vector2D {
	return []geometry.Vector2D{
		{X: c.X, Y: c.Y - r},
		{X: c.X - r, Y: c.Y + r},
		{X: c.X + r, Y: c.Y + r},
	}
}

// hud keeps rolling timings and prints them with the sketch stats.
type hud struct {
	updateAvg float64 // ms
	drawAvg   float64 // ms
}

func rolling(avg float64, d time.Duration) float64 {
	return avg*0.95 + float64(d.Microseconds())/1000.0*0.05
}

func (h *hud) trackUpdate(start time.Time) { h.updateAvg = rolling(h.updateAvg, time.Since(start)) }

func (h *hud) trackDraw(start time.Time) { h.drawAvg = rolling(h.drawAvg, time.Since(start)) }

// Draw prints the timings and the sorted stats in the top right corner.
func (h *hud) Draw(screen *ebiten.Image, stats map[string]float64) {
	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nUpdate: %.2fms\nDraw:   %.2fms\n\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), h.updateAvg, h.drawAvg, formatStats(stats))
	ebitenutil.DebugPrintAt(screen, msg, screen.Bounds().Dx()-160, 10)
}

// formatStats prints one "key: value" line per stat in key order.
func formatStats(stats map[string]float64) string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %.4g\n", k, stats[k])
	}
	return b.String()
}

// chrome is the part every game shares: a control panel toggled with Tab, the
// hud toggled with F1 and a pause on Space.
type chrome struct {
	panel   *ui.Panel
	hud     hud
	showHUD bool
	paused  bool
}

func newChrome(title string, height float64) chrome {
	p := ui.NewPanel(title, 10, 10, 240, min(max(height-20, 100), 480))
	p.Visible = false
	return chrome{panel: p}
}

// input samples the frame input, handles the shared keys and lets the panel
// consume the pointer first.
func (c *chrome) input() ui.Input {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		c.panel.Visible = !c.panel.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		c.showHUD = !c.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		c.paused = !c.paused
	}
	in := ui.ReadInput()
	c.panel.Update(in)
	return in
}

// free reports whether the pointer is meant for the sketch rather than the panel.
func (c *chrome) free(in ui.Input) bool { return !c.panel.Contains(in) }

func (c *chrome) overlay(screen *ebiten.Image, stats map[string]float64) {
	c.panel.Draw(screen)
	if c.showHUD {
		c.hud.Draw(screen, stats)
	}
	if c.paused {
		ebitenutil.DebugPrintAt(screen, "paused", 10, screen.Bounds().Dy()-20)
	}
}

func newSeed() int64 { return time.Now().UnixNano() }

func pointer(in ui.Input) geometry.Vector2D { return geometry.Vector2D{X: in.X, Y: in.Y} }
