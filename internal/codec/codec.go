// Package codec reads and writes grids in the bracketed text map format:
// every cell is the token "[x]" (alive) or "[ ]" (dead), rows are joined by
// CR LF and the last row has no trailing separator.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"life-torus/internal/core"
)

const (
	// AliveToken encodes a live cell.
	AliveToken = "[x]"
	// DeadToken encodes a dead cell.
	DeadToken = "[ ]"
	// RowSeparator joins consecutive rows.
	RowSeparator = "\r\n"

	tokenWidth = 3
)

var (
	// ErrUnreadableSource is returned when the map source cannot be read.
	ErrUnreadableSource = errors.New("codec: unreadable source")
	// ErrUnwritableTarget is returned when the map cannot be written.
	ErrUnwritableTarget = errors.New("codec: unwritable target")
	// ErrMalformedEncoding is returned when the text contains anything other
	// than whole cell tokens and row separators.
	ErrMalformedEncoding = errors.New("codec: malformed encoding")
)

// Encode renders g in the text map format.
func Encode(g *core.Grid) []byte {
	rows, cols := g.Dimensions()
	var buf bytes.Buffer
	buf.Grow(rows*cols*tokenWidth + (rows-1)*len(RowSeparator))
	for r := 0; r < rows; r++ {
		if r > 0 {
			buf.WriteString(RowSeparator)
		}
		for c := 0; c < cols; c++ {
			if g.Get(r, c) == core.Alive {
				buf.WriteString(AliveToken)
				continue
			}
			buf.WriteString(DeadToken)
		}
	}
	return buf.Bytes()
}

// Write encodes g to w.
func Write(w io.Writer, g *core.Grid) error {
	if _, err := w.Write(Encode(g)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnwritableTarget, err)
	}
	return nil
}

// DecodeRows parses the text map format into rows of cells. Rows are not
// checked against each other; see Decode.
func DecodeRows(r io.Reader) ([][]core.Cell, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}
	lines := bytes.Split(data, []byte(RowSeparator))
	rows := make([][]core.Cell, 0, len(lines))
	for i, line := range lines {
		row, err := decodeRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeRow(line []byte) ([]core.Cell, error) {
	if rem := len(line) % tokenWidth; rem != 0 {
		return nil, fmt.Errorf("%w: trailing %q", ErrMalformedEncoding, line[len(line)-rem:])
	}
	row := make([]core.Cell, 0, len(line)/tokenWidth)
	for off := 0; off < len(line); off += tokenWidth {
		switch tok := string(line[off : off+tokenWidth]); tok {
		case AliveToken:
			row = append(row, core.Alive)
		case DeadToken:
			row = append(row, core.Dead)
		default:
			return nil, fmt.Errorf("%w: unexpected token %q at byte %d", ErrMalformedEncoding, tok, off)
		}
	}
	return row, nil
}

// Decode parses the text map format into a grid. Rows of differing length
// or an empty map yield core.ErrMalformedMap.
func Decode(r io.Reader) (*core.Grid, error) {
	rows, err := DecodeRows(r)
	if err != nil {
		return nil, err
	}
	return core.FromRows(rows)
}

// Save writes g to the file at path, replacing any previous content.
func Save(path string, g *core.Grid) error {
	if err := os.WriteFile(path, Encode(g), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrUnwritableTarget, err)
	}
	return nil
}

// Load reads the grid stored at path.
func Load(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}
	defer f.Close()
	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// LoadOrDefault reads the grid stored at path. On failure it returns
// core.DefaultGrid together with the error.
func LoadOrDefault(path string) (*core.Grid, error) {
	g, err := Load(path)
	if err != nil {
		return core.DefaultGrid(), err
	}
	return g, nil
}
