package geometry

import (
	"slices"
	"testing"
)

// inCell lists what a zero radius query around p finds, which is the content
// of the cell holding p.
func inCell(g *Grid, p Vector2D) []int {
	var out []int
	g.Near(p, 0, func(i int) { out = append(out, i) })
	return out
}

func TestGridRebuild(t *testing.T) {
	g := NewGrid(100)
	pts := []Vector2D{
		{X: 50, Y: 50},   // cell 0,0
		{X: 150, Y: 50},  // cell 1,0
		{X: 50, Y: 150},  // cell 0,1
		{X: 250, Y: 250}, // cell 2,2
		{X: -10, Y: 20},  // cell -1,0
	}
	g.Rebuild(len(pts), func(i int) Vector2D { return pts[i] })

	tests := []struct {
		at   Vector2D
		want []int
	}{
		{Vector2D{X: 1, Y: 1}, []int{0}},
		{Vector2D{X: 199, Y: 99}, []int{1}},
		{Vector2D{X: 0, Y: 100}, []int{2}},
		{Vector2D{X: 299, Y: 299}, []int{3}},
		{Vector2D{X: -0.5, Y: 0}, []int{4}},
		{Vector2D{X: 500, Y: 500}, nil},
	}
	for _, tt := range tests {
		if got := inCell(g, tt.at); !slices.Equal(got, tt.want) {
			t.Errorf("cell of %v = %v, want %v", tt.at, got, tt.want)
		}
	}

	// moving every point into one cell empties the others
	g.Rebuild(len(pts), func(int) Vector2D { return Vector2D{X: 10, Y: 10} })
	if got := inCell(g, Vector2D{X: 150, Y: 50}); len(got) != 0 {
		t.Errorf("stale bucket after rebuild: %v", got)
	}
	if got := inCell(g, Vector2D{}); len(got) != len(pts) {
		t.Errorf("cell after rebuild has %d indices, want %d", len(got), len(pts))
	}
}

func TestGridNear(t *testing.T) {
	g := NewGrid(10)
	pts := []Vector2D{{X: 5, Y: 5}, {X: 14, Y: 5}, {X: 40, Y: 40}, {X: -3, Y: 5}}
	g.Rebuild(len(pts), func(i int) Vector2D { return pts[i] })

	var got []int
	g.Near(Vector2D{X: 6, Y: 6}, 8, func(i int) { got = append(got, i) })
	slices.Sort(got)
	if want := []int{0, 1, 3}; !slices.Equal(got, want) {
		t.Errorf("Near() = %v, want %v", got, want)
	}

	// every point within radius must be visited
	for _, c := range []Vector2D{{X: 0, Y: 0}, {X: 39, Y: 33}, {X: 9.99, Y: 10}} {
		seen := map[int]bool{}
		g.Near(c, 12, func(i int) { seen[i] = true })
		for i, p := range pts {
			if p.DistanceTo(c) <= 12 && !seen[i] {
				t.Errorf("Near(%v) missed point %d", c, i)
			}
		}
	}
}

func TestNewGridClampsCellSize(t *testing.T) {
	if got := NewGrid(0).CellSize(); got != 1 {
		t.Errorf("CellSize() = %v, want 1", got)
	}
}
