package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"reactor-sim/internal/app"
	"reactor-sim/internal/sims/reactorsim"
	"reactor-sim/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	tps := flag.Int("tps", 20, "simulation ticks per second")
	seed := flag.Int64("seed", 1337, "seed for generated layouts")
	layoutFile := flag.String("layout", "", "read the reactor layout from this file")
	mute := flag.Bool("mute", false, "disable the hazard alarm")
	var overrides app.KVList
	flag.Var(&overrides, "set", "sim option in key=value form (repeatable)")
	flag.Parse()

	opts := overrides.Map()
	if _, ok := opts["seed"]; !ok {
		opts["seed"] = fmt.Sprint(*seed)
	}
	cfg := reactorsim.FromMap(opts)
	if *layoutFile != "" {
		src, err := os.ReadFile(*layoutFile)
		if err != nil {
			log.Fatalf("read layout: %v", err)
		}
		cfg.Layout = string(src)
	}

	sim, err := reactorsim.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	alarm := &tui.Alarm{}
	if !*mute {
		if err := alarm.Init(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		}
	}
	defer alarm.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	defer screen.Fini()

	tui.NewViewer(screen, sim, *tps, alarm).Run()
}
