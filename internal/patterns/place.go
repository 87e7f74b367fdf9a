package patterns

import "life-torus/internal/core"

// Place sets alive every cell of p anchored at origin, wrapping coordinates
// around the grid. Cells that are already alive stay alive.
func Place(g *core.Grid, p Pattern, origin core.Coord) *core.Grid {
	for _, pt := range p.points {
		g.Set(origin.Row+pt.Row, origin.Col+pt.Col, core.Alive)
	}
	return g
}

// PlaceKind places the catalog entry k. Unknown kinds leave g untouched.
func PlaceKind(g *core.Grid, k Kind, origin core.Coord) *core.Grid {
	p, ok := catalog[k]
	if !ok {
		return g
	}
	return Place(g, p, origin)
}
