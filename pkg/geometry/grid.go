package geometry

import "math"

type cellKey struct {
	x, y int
}

// Grid buckets point indices into square cells so radius queries only visit
// the cells overlapping the query square.
type Grid struct {
	size  float64
	cells map[cellKey][]int
}

// NewGrid returns a grid with the given cell size, clamped to at least 1.
func NewGrid(cellSize float64) *Grid {
	return &Grid{size: math.Max(cellSize, 1), cells: make(map[cellKey][]int)}
}

func (g *Grid) CellSize() float64 { return g.size }

func (g *Grid) key(p Vector2D) cellKey {
	return cellKey{x: int(math.Floor(p.X / g.size)), y: int(math.Floor(p.Y / g.size))}
}

// Rebuild files the indices [0, n) under the cell of at(i). Bucket slices keep
// their capacity between rebuilds so a steady population allocates nothing.
func (g *Grid) Rebuild(n int, at func(i int) Vector2D) {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for i := 0; i < n; i++ {
		k := g.key(at(i))
		g.cells[k] = append(g.cells[k], i)
	}
}

// Near calls fn for every index filed in a cell that overlaps the square of
// half side radius around p. Callers filter by exact distance. Cells are
// visited row by row and indices in filing order, so the visit order is
// deterministic.
func (g *Grid) Near(p Vector2D, radius float64, fn func(i int)) {
	lo := g.key(p.Sub(Vector2D{X: radius, Y: radius}))
	hi := g.key(p.Add(Vector2D{X: radius, Y: radius}))
	for gy := lo.y; gy <= hi.y; gy++ {
		for gx := lo.x; gx <= hi.x; gx++ {
			for _, i := range g.cells[cellKey{x: gx, y: gy}] {
				fn(i)
			}
		}
	}
}
