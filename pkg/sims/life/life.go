package life

import (
	"life-torus/internal/core"
)

// Offsets lists the eight neighbor displacements as (drow, dcol) pairs.
var Offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Rule applies Conway's rule: birth on 3, survival on 2 or 3.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Neighbors counts live cells among the eight toroidally wrapped neighbors of
// (row, col). On grids narrower than three cells in either dimension several
// offsets land on the same cell, possibly (row, col) itself, and each landing
// is counted. row and col may lie anywhere; they are wrapped first.
func Neighbors(g *core.Grid, row, col int) int {
	rows, cols := g.Dimensions()
	cells := g.Cells()
	row, col = g.Wrap(row, col)
	n := 0
	for _, o := range Offsets {
		r := (row + o[0] + rows) % rows
		c := (col + o[1] + cols) % cols
		n += int(cells[r*cols+c])
	}
	return n
}

// stepInto writes the generation following src into dst. Callers guarantee
// that dst has the shape of src and does not alias it.
func stepInto(dst, src *core.Grid) {
	rows, cols := src.Dimensions()
	in := src.Cells()
	out := dst.Cells()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			out[idx] = core.Dead
			if Rule(in[idx] == core.Alive, Neighbors(src, r, c)) {
				out[idx] = core.Alive
			}
		}
	}
}

// Step returns a new grid one generation after g. g is not modified.
func Step(g *core.Grid) *core.Grid {
	rows, cols := g.Dimensions()
	next := core.NewGrid(rows, cols)
	stepInto(next, g)
	return next
}

// Life implements Conway's Game of Life with toroidal wrapping using two
// buffers that swap roles every generation.
type Life struct {
	cur *core.Grid
	nxt *core.Grid
}

// New returns a Life simulation over a copy of g.
func New(g *core.Grid) *Life {
	l := &Life{}
	l.Load(g)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Load replaces the current generation with a copy of g.
func (l *Life) Load(g *core.Grid) {
	l.cur = g.Clone()
	rows, cols := g.Dimensions()
	l.nxt = core.NewGrid(rows, cols)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if !l.nxt.SameShape(l.cur) {
		rows, cols := l.cur.Dimensions()
		l.nxt = core.NewGrid(rows, cols)
	}
	stepInto(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
}

var _ core.Sim = (*Life)(nil)
