package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"life-torus/internal/app"
	"life-torus/internal/core"
	"life-torus/internal/game"
	"life-torus/internal/patterns"
	"life-torus/internal/render"
	"life-torus/internal/ui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := game.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	batch := flag.Bool("batch", false, "run without the menu: seed, advance -gens generations, print")
	watch := flag.Bool("watch", false, "in batch mode, draw every generation at -tick pace")
	load := flag.Bool("load", false, "start from the map stored at -map")
	pattern := flag.String("pattern", "", "catalog pattern to place before running")
	row := flag.Int("row", 0, "pattern origin row")
	col := flag.Int("col", 0, "pattern origin column")
	out := flag.String("out", "", "in batch mode, save the final map to this file")
	list := flag.Bool("list", false, "list the pattern catalog and exit")
	flag.Parse()

	if *list {
		for _, k := range patterns.Kinds() {
			p, _ := patterns.Get(k)
			h, w := p.Bounds()
			fmt.Printf("%-24s %-11s %2d cells %dx%d\n", p.Name, p.Family, p.Len(), h, w)
		}
		return
	}

	if err := checkSeeding(*load, cfg); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := game.NewSession(cfg)
	if *load {
		if err := session.Load(cfg.MapPath); err != nil {
			if *batch {
				log.Fatalf("load %s: %v", cfg.MapPath, err)
			}
			log.Printf("load %s: %v (starting with the default map)", cfg.MapPath, err)
		}
	}
	if *pattern != "" {
		kind, _, err := patterns.Lookup(*pattern)
		if err != nil {
			log.Fatal(err)
		}
		session.Place(kind, core.Coord{Row: *row, Col: *col})
	}

	if !*batch {
		a := app.New(session, os.Stdin, os.Stdout, func() (app.Viewport, error) {
			scr, err := ui.Open("Game of Life")
			if err != nil {
				return nil, err
			}
			return scr, nil
		})
		if err := a.Run(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *watch {
		if session.Config().Infinite {
			session.ToggleInfinite()
		}
		res, err := session.Run(ctx, &render.Console{W: os.Stdout, Plain: true}, game.Never)
		if err != nil {
			log.Printf("stopped after %d generations: %v", res.Generations, err)
		}
	} else {
		session.Advance(cfg.MaxGenerations)
		if err := render.WriteGrid(os.Stdout, session.Grid(), render.Options{Headers: true}); err != nil {
			log.Fatal(err)
		}
	}

	if *out != "" {
		if err := session.Save(*out); err != nil {
			log.Fatalf("save %s: %v", *out, err)
		}
	}
}

// checkSeeding rejects a random fill together with a loaded map: the loaded
// map would replace the fill.
func checkSeeding(load bool, cfg game.Config) error {
	if load && cfg.Density > 0 {
		return errors.New("-load and -density cannot be combined")
	}
	return nil
}
