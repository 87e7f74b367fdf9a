// Package render draws grids as text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"life-torus/internal/core"
)

// Glyphs used for cells.
const (
	AliveGlyph = "■"
	DeadGlyph  = " "
)

const headerWidth = 70

// Options controls the text layout of a grid.
type Options struct {
	// Brackets wraps every cell as "[c ]" instead of " c  ".
	Brackets bool
	// Headers prints row and column indices.
	Headers bool
}

// WriteGrid renders g to w. Every cell occupies four columns and a four
// column gutter precedes each row.
func WriteGrid(w io.Writer, g *core.Grid, opts Options) error {
	bw := bufio.NewWriter(w)
	rows, cols := g.Dimensions()

	bw.WriteString("    ")
	for c := 0; c < cols; c++ {
		bw.WriteString(label(c, opts.Headers))
	}
	bw.WriteByte('\n')

	for r := 0; r < rows; r++ {
		bw.WriteString(label(r, opts.Headers))
		for c := 0; c < cols; c++ {
			glyph := DeadGlyph
			if g.Get(r, c) == core.Alive {
				glyph = AliveGlyph
			}
			if opts.Brackets {
				bw.WriteString("[" + glyph + " ]")
				continue
			}
			bw.WriteString(" " + glyph + "  ")
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteHeader prints a title framed by rules.
func WriteHeader(w io.Writer, parts ...string) error {
	rule := strings.Repeat("=", headerWidth)
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, strings.Join(parts, " "), rule)
	return err
}

func label(i int, headers bool) string {
	if !headers {
		return "    "
	}
	return fmt.Sprintf("[%2d]", i)
}
