package render

import (
	"fmt"
	"io"

	"life-torus/internal/core"
	"life-torus/internal/game"
)

const (
	clearSequence = "\x1b[2J\x1b[1;1H"
	homeSequence  = "\x1b[0;0H"
)

// ClearScreen erases an ANSI terminal and moves the cursor to the top left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, clearSequence)
}

// StatusLine formats the run progress shown under the grid.
func StatusLine(st game.Status) string {
	if st.Infinite {
		return fmt.Sprintf("Generation %d", st.Generation)
	}
	return fmt.Sprintf("Generation %d of %d", st.Generation, st.MaxGenerations)
}

// Console is a game.Display that redraws in place on an ANSI terminal or
// appends frames to any other writer.
type Console struct {
	W     io.Writer
	Title string
	Opts  Options
	// Plain disables cursor control so frames are appended.
	Plain bool
}

// Show draws one generation.
func (c *Console) Show(g *core.Grid, st game.Status) {
	if !c.Plain {
		io.WriteString(c.W, homeSequence)
	}
	title := c.Title
	if title == "" {
		title = "Game of Life"
	}
	WriteHeader(c.W, title)
	WriteGrid(c.W, g, c.Opts)
	fmt.Fprintln(c.W, StatusLine(st))
}

var _ game.Display = (*Console)(nil)
