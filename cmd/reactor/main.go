//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"reactor-sim/internal/app"
	"reactor-sim/internal/core"
	_ "reactor-sim/internal/sims/reactorsim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := factory(cfg.Overrides())
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg)
	w, h := app.WindowSize(sim.Size(), cfg.Scale, cfg.Panel)

	ebiten.SetWindowTitle("reactor-sim: " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
