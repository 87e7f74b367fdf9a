// Package game owns the current grid and configuration and drives the
// generation loop on behalf of a front end.
package game

import (
	"context"
	"fmt"
	"time"

	"life-torus/internal/codec"
	"life-torus/internal/core"
	"life-torus/internal/patterns"
	pcore "life-torus/pkg/core"
	"life-torus/pkg/sims/life"
)

// Status accompanies every displayed generation.
type Status struct {
	Generation     int
	MaxGenerations int
	Infinite       bool
}

// Display renders a generation. Implementations must not retain or modify
// the grid.
type Display interface {
	Show(g *core.Grid, st Status)
}

// Abort is polled once per generation boundary.
type Abort interface {
	Aborted() bool
}

// AbortFunc adapts a function to the Abort interface.
type AbortFunc func() bool

// Aborted calls f.
func (f AbortFunc) Aborted() bool { return f() }

// Never is an Abort source that never fires.
var Never Abort = AbortFunc(func() bool { return false })

// RunResult reports how a run ended.
type RunResult struct {
	// Generations is the number of transitions applied.
	Generations int
	Aborted     bool
}

// Session holds the live grid and the configuration of a game.
type Session struct {
	cfg  Config
	sim  core.Sim
	pace *core.FixedStep
}

// NewSession creates a session with an all-dead grid sized from cfg. When
// cfg.Density is positive the grid is filled randomly from cfg.Seed.
func NewSession(cfg Config) *Session {
	s := &Session{
		cfg:  cfg,
		sim:  life.New(core.NewGrid(cfg.Rows, cfg.Cols)),
		pace: core.NewFixedStep(cfg.TickInterval),
	}
	if cfg.Density > 0 {
		s.Fill(cfg.Seed, cfg.Density)
	}
	return s
}

// Config returns a copy of the current configuration.
func (s *Session) Config() Config { return s.cfg }

// Describe names the simulation and its grid size, e.g. "life 10 x 10".
func (s *Session) Describe() string {
	size := s.sim.Size()
	return fmt.Sprintf("%s %d x %d", s.sim.Name(), size.Rows, size.Cols)
}

// Grid exposes the current generation.
func (s *Session) Grid() *core.Grid { return s.sim.Grid() }

// NewGrid replaces the grid with an all-dead one. Zero dimensions install
// core.DefaultGrid and report core.ErrInvalidDimensions.
func (s *Session) NewGrid(rows, cols int) error {
	g, err := core.NewGridChecked(rows, cols)
	s.sim.Load(g)
	s.cfg.Rows, s.cfg.Cols = g.Dimensions()
	return err
}

// Toggle flips a cell and returns its new state.
func (s *Session) Toggle(row, col int) core.Cell {
	return s.sim.Grid().Toggle(row, col)
}

// Place stamps a catalog pattern at origin.
func (s *Session) Place(k patterns.Kind, origin core.Coord) {
	patterns.PlaceKind(s.sim.Grid(), k, origin)
}

// Fill randomizes the grid, setting each cell alive with the given
// probability.
func (s *Session) Fill(seed int64, density float64) {
	pcore.FillDensity(pcore.NewRNG(seed), s.sim.Grid().Cells(), density)
}

// Save writes the grid to path. The session is left unchanged on failure.
func (s *Session) Save(path string) error {
	return codec.Save(path, s.sim.Grid())
}

// Load replaces the grid with the one stored at path. On failure the
// session falls back to core.DefaultGrid and the error is returned.
func (s *Session) Load(path string) error {
	g, err := codec.LoadOrDefault(path)
	s.sim.Load(g)
	s.cfg.Rows, s.cfg.Cols = g.Dimensions()
	return err
}

// SetTickInterval changes the delay between generations.
func (s *Session) SetTickInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.cfg.TickInterval = d
	s.pace.SetInterval(d)
}

// ToggleInfinite flips between bounded and unbounded runs and returns the
// new setting.
func (s *Session) ToggleInfinite() bool {
	s.cfg.Infinite = !s.cfg.Infinite
	return s.cfg.Infinite
}

// SetMaxGenerations sets the ceiling used by bounded runs.
func (s *Session) SetMaxGenerations(n int) {
	if n < 0 {
		n = 0
	}
	s.cfg.MaxGenerations = n
}

// Advance applies n transitions without display or pacing.
func (s *Session) Advance(n int) {
	for i := 0; i < n; i++ {
		s.sim.Step()
	}
}

// Run displays the grid and advances it once per tick until the generation
// ceiling is reached (bounded runs), abort fires or ctx is done. Abort and
// ctx are checked only between transitions, so the grid always holds a
// complete generation. A run stopped by ctx returns ctx's error.
func (s *Session) Run(ctx context.Context, d Display, abort Abort) (RunResult, error) {
	if abort == nil {
		abort = Never
	}
	var res RunResult
	s.pace.Reset()
	for {
		d.Show(s.sim.Grid(), Status{
			Generation:     res.Generations,
			MaxGenerations: s.cfg.MaxGenerations,
			Infinite:       s.cfg.Infinite,
		})
		if err := s.pace.Wait(ctx); err != nil {
			res.Aborted = true
			return res, err
		}
		if !s.cfg.Infinite && res.Generations >= s.cfg.MaxGenerations {
			return res, nil
		}
		if abort.Aborted() {
			res.Aborted = true
			return res, nil
		}
		s.sim.Step()
		res.Generations++
	}
}
