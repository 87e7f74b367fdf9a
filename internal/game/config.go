package game

import (
	"flag"
	"strconv"
	"time"

	"life-torus/internal/core"
)

// Config holds the run-loop settings and the initial map parameters.
type Config struct {
	// TickInterval is the pause between displayed generations.
	TickInterval time.Duration
	// Infinite selects an unbounded run; MaxGenerations is ignored then.
	Infinite       bool
	MaxGenerations int

	Rows int
	Cols int

	MapPath string

	Seed    int64
	Density float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		TickInterval:   250 * time.Millisecond,
		Infinite:       true,
		MaxGenerations: 50,
		Rows:           core.DefaultRows,
		Cols:           core.DefaultCols,
		MapPath:        "map.txt",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Missing or unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["tick"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.TickInterval = parsed
		} else if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			c.TickInterval = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := cfg["infinite"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Infinite = parsed
		}
	}
	if v, ok := cfg["gens"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxGenerations = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["map"]; ok && v != "" {
		c.MapPath = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Bind registers command-line flags that write into c.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "delay between generations")
	fs.BoolVar(&c.Infinite, "infinite", c.Infinite, "run until aborted instead of stopping at -gens")
	fs.IntVar(&c.MaxGenerations, "gens", c.MaxGenerations, "generation ceiling for bounded runs")
	fs.IntVar(&c.Rows, "rows", c.Rows, "initial map rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "initial map columns")
	fs.StringVar(&c.MapPath, "map", c.MapPath, "map file used by save and load")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells set alive by the random fill (0 disables)")
}

// Parameters describes the configuration for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "tick", Label: "Tick rate", Type: core.ParamTypeDuration, Value: c.TickInterval.String()},
				{Key: "infinite", Label: "Infinite game", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.Infinite)},
				{Key: "gens", Label: "Max generations", Type: core.ParamTypeInt, Value: strconv.Itoa(c.MaxGenerations),
					Description: "used only when the infinite game is disabled"},
			},
		},
		{
			Name: "Map",
			Params: []core.Parameter{
				{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Value: strconv.Itoa(c.Rows)},
				{Key: "cols", Label: "Cols", Type: core.ParamTypeInt, Value: strconv.Itoa(c.Cols)},
				{Key: "map", Label: "Map file", Type: core.ParamTypeString, Value: c.MapPath},
			},
		},
	}}
}
