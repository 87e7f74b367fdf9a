package core

import "fmt"

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a live cell.
	Alive Cell = 1
)

// IsAlive reports whether the cell is live.
func (c Cell) IsAlive() bool { return c == Alive }

// Not returns the opposite state.
func (c Cell) Not() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Default dimensions used whenever a grid cannot be built as requested.
const (
	DefaultRows = 10
	DefaultCols = 10
)

// MaxDimension bounds the rows and columns of a requested grid.
const MaxDimension = 1024

// Coord identifies a cell position. Values are reduced modulo the grid
// dimensions before use, so any coordinate addresses some cell.
type Coord struct {
	Row int
	Col int
}

// Grid stores a toroidal 2D arrangement of cells in row-major order.
type Grid struct {
	rows, cols int
	data       []Cell
}

// NewGrid allocates an all-dead grid. A zero (or negative) dimension, or one
// above MaxDimension, yields the DefaultGrid instead.
func NewGrid(rows, cols int) *Grid {
	g, _ := NewGridChecked(rows, cols)
	return g
}

// NewGridChecked behaves like NewGrid but also reports ErrInvalidDimensions
// when the fallback grid was used. The returned grid is never nil.
func NewGridChecked(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > MaxDimension || cols > MaxDimension {
		return DefaultGrid(), fmt.Errorf("%w: %d x %d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: make([]Cell, rows*cols)}, nil
}

// DefaultGrid returns the documented fallback: a 10x10 all-dead grid.
func DefaultGrid() *Grid {
	return &Grid{rows: DefaultRows, cols: DefaultCols, data: make([]Cell, DefaultRows*DefaultCols)}
}

// FromRows builds a grid from decoded rows. Every row must be non-empty and
// of identical length.
func FromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty map", ErrMalformedMap)
	}
	cols := len(rows[0])
	g := &Grid{rows: len(rows), cols: cols, data: make([]Cell, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedMap, i, len(row), cols)
		}
		copy(g.data[i*cols:], row)
	}
	return g, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) { return g.rows, g.cols }

// Size returns the dimensions as a Size value.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Index returns the linear slice index for already wrapped coordinates.
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Get returns the state of the cell at the wrapped position.
func (g *Grid) Get(row, col int) Cell {
	row, col = g.Wrap(row, col)
	return g.data[g.Index(row, col)]
}

// Set assigns the cell at the wrapped position.
func (g *Grid) Set(row, col int, c Cell) {
	row, col = g.Wrap(row, col)
	g.data[g.Index(row, col)] = c
}

// Toggle flips the cell at the wrapped position and returns its new state.
func (g *Grid) Toggle(row, col int) Cell {
	row, col = g.Wrap(row, col)
	idx := g.Index(row, col)
	g.data[idx] = g.data[idx].Not()
	return g.data[idx]
}

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.data }

// Rows returns a deep copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.rows)
	for i := range out {
		out[i] = append([]Cell(nil), g.data[i*g.cols:(i+1)*g.cols]...)
	}
	return out
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, data: append([]Cell(nil), g.data...)}
}

// SameShape reports whether both grids have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.rows == o.rows && g.cols == o.cols
}

// Equal reports whether both grids have identical dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameShape(o) {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// Alive lists the coordinates of every live cell in row-major order.
func (g *Grid) Alive() []Coord {
	var out []Coord
	for i, c := range g.data {
		if c == Alive {
			out = append(out, Coord{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}
