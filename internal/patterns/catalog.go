// Package patterns holds the catalog of named multi-cell templates and the
// operator that stamps them onto a grid.
package patterns

import (
	"fmt"
	"strings"

	"life-torus/internal/core"
)

// Kind enumerates the catalog entries.
type Kind int

const (
	Glider Kind = iota
	LightweightSpaceship
	FifteenBentPaperclip
	Block
	Beehive
	Blinker
	Toad
)

// Family groups patterns by behavior.
type Family string

const (
	Spaceship  Family = "spaceship"
	StillLife  Family = "still life"
	Oscillator Family = "oscillator"
)

// Pattern is an immutable list of live-cell offsets relative to (0, 0).
type Pattern struct {
	Name   string
	Family Family
	points []core.Coord
}

// Points returns a copy of the pattern's relative coordinates.
func (p Pattern) Points() []core.Coord {
	return append([]core.Coord(nil), p.points...)
}

// Len returns the number of live cells in the pattern.
func (p Pattern) Len() int { return len(p.points) }

// Bounds returns the height and width of the pattern's bounding box measured
// from the origin.
func (p Pattern) Bounds() (rows, cols int) {
	for _, pt := range p.points {
		if pt.Row+1 > rows {
			rows = pt.Row + 1
		}
		if pt.Col+1 > cols {
			cols = pt.Col + 1
		}
	}
	return rows, cols
}

var catalog = map[Kind]Pattern{
	Glider: {
		Name:   "glider",
		Family: Spaceship,
		points: []core.Coord{
			{Row: 0, Col: 0},
			{Row: 1, Col: 0}, {Row: 1, Col: 2},
			{Row: 2, Col: 0}, {Row: 2, Col: 1},
		},
	},
	LightweightSpaceship: {
		Name:   "lightweight spaceship",
		Family: Spaceship,
		points: []core.Coord{
			{Row: 0, Col: 1}, {Row: 0, Col: 4},
			{Row: 1, Col: 0},
			{Row: 2, Col: 0}, {Row: 2, Col: 4},
			{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
		},
	},
	FifteenBentPaperclip: {
		Name:   "15-bent-paperclip",
		Family: StillLife,
		points: []core.Coord{
			{Row: 0, Col: 2}, {Row: 0, Col: 3},
			{Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 1, Col: 5},
			{Row: 2, Col: 0}, {Row: 2, Col: 6},
			{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 6},
			{Row: 4, Col: 3}, {Row: 4, Col: 5},
		},
	},
	Block: {
		Name:   "block",
		Family: StillLife,
		points: []core.Coord{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
			{Row: 1, Col: 0}, {Row: 1, Col: 1},
		},
	},
	Beehive: {
		Name:   "beehive",
		Family: StillLife,
		points: []core.Coord{
			{Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 1, Col: 0}, {Row: 1, Col: 3},
			{Row: 2, Col: 1}, {Row: 2, Col: 2},
		},
	},
	Blinker: {
		Name:   "blinker",
		Family: Oscillator,
		points: []core.Coord{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		},
	},
	Toad: {
		Name:   "toad",
		Family: Oscillator,
		points: []core.Coord{
			{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
			{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
		},
	},
}

// Kinds returns every catalog entry in declaration order.
func Kinds() []Kind {
	return []Kind{Glider, LightweightSpaceship, FifteenBentPaperclip, Block, Beehive, Blinker, Toad}
}

// Get returns the pattern for k.
func Get(k Kind) (Pattern, bool) {
	p, ok := catalog[k]
	return p, ok
}

// Lookup finds a pattern by name, ignoring case. Spaces and dashes in the
// name are interchangeable.
func Lookup(name string) (Kind, Pattern, error) {
	want := normalize(name)
	for _, k := range Kinds() {
		if normalize(catalog[k].Name) == want {
			return k, catalog[k], nil
		}
	}
	return 0, Pattern{}, fmt.Errorf("patterns: unknown pattern %q", name)
}

// String returns the pattern name.
func (k Kind) String() string {
	if p, ok := catalog[k]; ok {
		return p.Name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
