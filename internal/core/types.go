package core

// Size describes the dimensions of a grid.
type Size struct {
	Rows int
	Cols int
}

// Sim defines the minimal contract a generation stepper must implement.
type Sim interface {
	Name() string
	Size() Size
	// Grid returns the current generation. The pointer stays valid until
	// the next call to Step or Load.
	Grid() *Grid
	// Load replaces the current generation with a copy of g.
	Load(g *Grid)
	Step()
}
