package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGridAllDead(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {3, 1}, {2, 2}, {10, 10}, {17, 5}} {
		g := NewGrid(dims[0], dims[1])
		rows, cols := g.Dimensions()
		require.Equal(t, dims[0], rows)
		require.Equal(t, dims[1], cols)
		require.Zero(t, g.Population(), "grid %dx%d must start empty", rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				require.Equal(t, Dead, g.Get(r, c))
			}
		}
	}
}

func TestNewGridFallsBackToDefault(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}, {MaxDimension + 1, 4}, {4, 1<<31 - 1}} {
		g, err := NewGridChecked(dims[0], dims[1])
		require.ErrorIs(t, err, ErrInvalidDimensions)
		require.True(t, g.Equal(DefaultGrid()), "fallback for %v must be the default grid", dims)

		rows, cols := NewGrid(dims[0], dims[1]).Dimensions()
		require.Equal(t, DefaultRows, rows)
		require.Equal(t, DefaultCols, cols)
	}

	_, err := NewGridChecked(3, 4)
	require.NoError(t, err)
	g, err := NewGridChecked(MaxDimension, 1)
	require.NoError(t, err)
	rows, _ := g.Dimensions()
	require.Equal(t, MaxDimension, rows)
}

func TestToggleWraps(t *testing.T) {
	g := NewGrid(3, 4)

	require.Equal(t, Alive, g.Toggle(4, 9)) // (1, 1)
	require.Equal(t, Alive, g.Get(1, 1))
	require.Equal(t, Alive, g.Get(-2, -3))
	require.Equal(t, 1, g.Population())

	require.Equal(t, Dead, g.Toggle(1, 1))
	require.Zero(t, g.Population())
}

func TestWrapStaysInRange(t *testing.T) {
	g := NewGrid(3, 5)
	for r := -7; r < 12; r++ {
		for c := -11; c < 16; c++ {
			wr, wc := g.Wrap(r, c)
			require.GreaterOrEqual(t, wr, 0)
			require.Less(t, wr, 3)
			require.GreaterOrEqual(t, wc, 0)
			require.Less(t, wc, 5)
		}
	}
	r, c := g.Wrap(-1, -1)
	require.Equal(t, 2, r)
	require.Equal(t, 4, c)
	r, c = g.Wrap(3, 5)
	require.Zero(t, r)
	require.Zero(t, c)
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]Cell{
		{Alive, Dead, Dead},
		{Dead, Dead, Alive},
	})
	require.NoError(t, err)
	rows, cols := g.Dimensions()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, []Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}}, g.Alive())

	_, err = FromRows([][]Cell{{Alive, Dead}, {Dead}})
	require.ErrorIs(t, err, ErrMalformedMap)

	_, err = FromRows(nil)
	require.True(t, errors.Is(err, ErrMalformedMap))

	_, err = FromRows([][]Cell{{}})
	require.ErrorIs(t, err, ErrMalformedMap)
}

func TestCloneAndRowsDoNotAlias(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 1, Alive)

	c := g.Clone()
	require.True(t, g.Equal(c))
	c.Toggle(1, 1)
	require.False(t, g.Equal(c))
	require.Equal(t, Dead, g.Get(1, 1))

	rows := g.Rows()
	rows[0][1] = Dead
	require.Equal(t, Alive, g.Get(0, 1))

	require.False(t, g.Equal(NewGrid(2, 3)))
	require.False(t, g.Equal(nil))
}

func TestClear(t *testing.T) {
	g := NewGrid(4, 4)
	for i := 0; i < 4; i++ {
		g.Set(i, i, Alive)
	}
	require.Equal(t, 4, g.Population())
	g.Clear()
	require.Zero(t, g.Population())
}
