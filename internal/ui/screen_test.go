package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"life-torus/internal/core"
	"life-torus/internal/game"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(100, 30)
	s := NewScreen(sim, "Test")
	t.Cleanup(s.Close)
	return sim, s
}

func TestAbortedOnEscape(t *testing.T) {
	sim, s := newSimScreen(t)
	require.False(t, s.Aborted())

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	require.False(t, s.Aborted())

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	require.True(t, s.Aborted())
	require.False(t, s.Aborted(), "Esc must be consumed")
}

func TestShowDrawsLiveCells(t *testing.T) {
	sim, s := newSimScreen(t)
	g := core.NewGrid(2, 2)
	g.Set(1, 0, core.Alive)
	s.Show(g, game.Status{Generation: 4, Infinite: true})

	cells, width, _ := sim.GetContents()
	at := func(x, y int) rune {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			return ' '
		}
		return runes[0]
	}

	// Title occupies rows 0-2, the column gutter row 3, grid rows 4-5.
	require.Equal(t, 'T', at(0, 1))
	require.Equal(t, '■', at(5, 5))
	require.Equal(t, ' ', at(5, 4))
	require.Equal(t, 'G', at(0, 6))
}
