// Package app implements the interactive menu front end.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"life-torus/internal/core"
	"life-torus/internal/game"
	"life-torus/internal/patterns"
	"life-torus/internal/render"
)

const title = "Game of Life"

// Viewport is where a running game is shown. Close is called when the run
// ends.
type Viewport interface {
	game.Display
	game.Abort
	Close()
}

// Opener creates a Viewport for a single run.
type Opener func() (Viewport, error)

// App adapts a game session to a menu-driven terminal dialogue.
type App struct {
	session *game.Session
	prompt  *Prompter
	out     io.Writer
	open    Opener
	message string
}

// New constructs an App. When open is nil or fails, runs are drawn on out
// and cannot be aborted from the keyboard.
func New(s *game.Session, in io.Reader, out io.Writer, open Opener) *App {
	return &App{
		session: s,
		prompt:  NewPrompter(in, out),
		out:     out,
		open:    open,
		message: "Welcome.",
	}
}

// Message returns the status line shown above the menu.
func (a *App) Message() string { return a.message }

// Run shows the main menu until the user exits or the input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		a.redraw(true)
		fmt.Fprintln(a.out, "1. Set/Clear cell | 2. Generate pattern | 3. Play | 4. Save map | 5. Load map | 6. Configuration | 99. Exit")
		opt, _, err := a.prompt.Uint("Option: ", false)
		if err != nil {
			return endOfInput(err)
		}
		switch opt {
		case 1:
			err = a.editCells()
		case 2:
			err = a.generatePattern()
		case 3:
			err = a.play(ctx)
		case 4:
			a.save()
		case 5:
			a.load()
		case 6:
			err = a.configure()
		case 99:
			return nil
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *App) redraw(headers bool) {
	render.ClearScreen(a.out)
	render.WriteHeader(a.out, title, "|", a.session.Describe())
	render.WriteGrid(a.out, a.session.Grid(), render.Options{Brackets: true, Headers: headers})
	fmt.Fprintln(a.out, a.message)
}

func (a *App) editCells() error {
	a.message = "Set/Clear Cells"
	edited := false
	for {
		a.redraw(true)
		fmt.Fprintln(a.out, "Enter Row and Column")
		row, aborted, err := a.prompt.Uint("Row:", true)
		if err != nil {
			return err
		}
		if aborted {
			break
		}
		col, aborted, err := a.prompt.Uint("Col:", true)
		if err != nil {
			return err
		}
		if aborted {
			break
		}
		state := a.session.Toggle(row, col)
		r, c := a.session.Grid().Wrap(row, col)
		glyph := render.DeadGlyph
		if state.IsAlive() {
			glyph = render.AliveGlyph
		}
		a.message = fmt.Sprintf("[%s ] %s cell at [%2d][%2d]", glyph, capitalize(state.String()), r, c)
		edited = true
	}
	if edited {
		a.message = "Map edited successfully."
	} else {
		a.message = "Aborted"
	}
	return nil
}

func (a *App) generatePattern() error {
	kinds := patterns.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = fmt.Sprintf("%d. %s", i+1, k)
	}
	a.message = "Generate pattern. Choose a pattern."
	a.redraw(true)
	fmt.Fprintln(a.out, strings.Join(names, " | "))
	choice, aborted, err := a.prompt.Uint("Pattern:", true)
	if err != nil {
		return err
	}
	if aborted {
		a.message = "Aborted"
		return nil
	}
	if choice < 1 || choice > len(kinds) {
		a.message = fmt.Sprintf("[-] Unknown pattern %d.", choice)
		return nil
	}
	kind := kinds[choice-1]

	a.message = fmt.Sprintf("Generate %s. Set origin.", kind)
	for {
		a.redraw(true)
		row, aborted, err := a.prompt.Uint("Row", true)
		if err != nil {
			return err
		}
		if aborted {
			break
		}
		col, aborted, err := a.prompt.Uint("Col", true)
		if err != nil {
			return err
		}
		if aborted {
			break
		}
		a.session.Place(kind, core.Coord{Row: row, Col: col})
		r, c := a.session.Grid().Wrap(row, col)
		a.message = fmt.Sprintf("[+] %s placed at [%2d][%2d].", capitalize(kind.String()), r, c)
	}
	a.message = "[+] Pattern generation finished."
	return nil
}

func (a *App) play(ctx context.Context) error {
	var (
		display game.Display = &render.Console{W: a.out, Title: title}
		abort   game.Abort   = game.Never
	)
	render.ClearScreen(a.out)
	if a.open != nil {
		if vp, err := a.open(); err == nil {
			defer vp.Close()
			display, abort = vp, vp
		}
	}
	res, err := a.session.Run(ctx, display, abort)
	switch {
	case err != nil:
		a.message = fmt.Sprintf("Game stopped after %d generations: %v", res.Generations, err)
	case res.Aborted:
		a.message = "Game aborted."
	default:
		a.message = "Game finished."
	}
	return nil
}

func (a *App) save() {
	path := a.session.Config().MapPath
	if err := a.session.Save(path); err != nil {
		a.message = "[-] Failed to save map."
		return
	}
	a.message = "[+] Map saved."
}

func (a *App) load() {
	path := a.session.Config().MapPath
	if err := a.session.Load(path); err != nil {
		rows, cols := a.session.Grid().Dimensions()
		a.message = fmt.Sprintf("[-] Failed to load map. %d x %d map created.", rows, cols)
		return
	}
	a.message = "[+] Map was loaded."
}

func (a *App) configure() error {
	a.message = "Game configuration"
	for {
		a.redraw(true)
		a.writeParameters()
		fmt.Fprintln(a.out, "1. Set Tick Rate | 2. Infinite game | 3. Set Max Generations | 4. Set Map Size | 99. Exit")
		opt, _, err := a.prompt.Uint("Option: ", false)
		if err != nil {
			return err
		}
		switch opt {
		case 1:
			ms, _, err := a.prompt.Uint("Tick rate (ms): ", false)
			if err != nil {
				return err
			}
			a.session.SetTickInterval(time.Duration(ms) * time.Millisecond)
			a.message = fmt.Sprintf("Tick rate = %d ms", ms)
		case 2:
			if a.session.ToggleInfinite() {
				a.message = "Infinite game Enabled"
			} else {
				a.message = "Infinite game Disabled"
			}
		case 3:
			gens, _, err := a.prompt.Uint("Generations: ", false)
			if err != nil {
				return err
			}
			a.session.SetMaxGenerations(gens)
			a.message = fmt.Sprintf("Generations = %d", gens)
		case 4:
			if err := a.resize(); err != nil {
				return err
			}
		case 99:
			return nil
		}
	}
}

func (a *App) resize() error {
	fmt.Fprintln(a.out, "Generate your map.")
	rows, _, err := a.prompt.Uint("Rows:", false)
	if err != nil {
		return err
	}
	cols, _, err := a.prompt.Uint("Cols:", false)
	if err != nil {
		return err
	}
	if err := a.session.NewGrid(rows, cols); err != nil {
		a.message = fmt.Sprintf("[-] Invalid dimensions. %d x %d map created.", core.DefaultRows, core.DefaultCols)
		return nil
	}
	a.message = fmt.Sprintf("[+] %d x %d map created.", rows, cols)
	return nil
}

func (a *App) writeParameters() {
	for _, g := range a.session.Config().Parameters().Groups {
		fields := make([]string, len(g.Params))
		for i, p := range g.Params {
			fields[i] = p.Label + " = " + p.Value
		}
		fmt.Fprintf(a.out, "%s: %s\n", g.Name, strings.Join(fields, ", "))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
