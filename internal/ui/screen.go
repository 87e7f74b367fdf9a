// Package ui shows a running game full-screen in a terminal and reports
// the Esc key as the abort signal.
package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"life-torus/internal/core"
	"life-torus/internal/game"
	"life-torus/internal/render"
)

// Screen implements game.Display and game.Abort on top of a tcell screen.
type Screen struct {
	scr   tcell.Screen
	title string
	opts  render.Options

	text  tcell.Style
	alive tcell.Style
}

// Open initializes the terminal. Call Close to restore it.
func Open(title string) (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return NewScreen(scr, title), nil
}

// NewScreen wraps an already initialized tcell screen.
func NewScreen(scr tcell.Screen, title string) *Screen {
	scr.Clear()
	return &Screen{
		scr:   scr,
		title: title,
		text:  tcell.StyleDefault,
		alive: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// Show draws one generation and flushes it to the terminal.
func (s *Screen) Show(g *core.Grid, st game.Status) {
	var buf bytes.Buffer
	render.WriteHeader(&buf, s.title)
	render.WriteGrid(&buf, g, s.opts)
	buf.WriteString(render.StatusLine(st))
	buf.WriteString("\n")
	buf.WriteString("Esc to stop")

	s.scr.Clear()
	for y, line := range strings.Split(buf.String(), "\n") {
		s.drawLine(y, line)
	}
	s.scr.Show()
}

func (s *Screen) drawLine(y int, line string) {
	alive := []rune(render.AliveGlyph)[0]
	x := 0
	for _, r := range line {
		style := s.text
		if r == alive {
			style = s.alive
		}
		s.scr.SetContent(x, y, r, nil, style)
		x++
	}
}

// Aborted drains pending terminal events and reports whether Esc was
// pressed since the last call. It never blocks.
func (s *Screen) Aborted() bool {
	aborted := false
	for s.scr.HasPendingEvent() {
		switch ev := s.scr.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				aborted = true
			}
		case *tcell.EventResize:
			s.scr.Sync()
		case nil:
			return aborted
		}
	}
	return aborted
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.scr.Fini()
}

var (
	_ game.Display = (*Screen)(nil)
	_ game.Abort   = (*Screen)(nil)
)
