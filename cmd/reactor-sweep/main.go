package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"reactor-sim/internal/app"
	"reactor-sim/internal/sims/reactorsim"
	"reactor-sim/internal/sweep"
)

func main() {
	steps := flag.Int("steps", 1200, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 8, "generated layouts per density/vent combination")
	seedBase := flag.Int64("seed", 1337, "first seed of the sweep")
	densities := flag.String("density", "0.1,0.2,0.3,0.4", "comma-separated fuel densities")
	ventRatios := flag.String("vent-ratio", "0,0.5,1", "comma-separated vent ratios")
	top := flag.Int("top", 5, "results to print")
	manualOnly := flag.Bool("manual", false, "skip sweeping and only evaluate the configured reactor")
	layoutFile := flag.String("layout", "", "layout file for -manual runs")
	var overrides app.KVList
	flag.Var(&overrides, "set", "sim option in key=value form (repeatable)")
	flag.Parse()

	base := reactorsim.FromMap(overrides.Map())
	if *layoutFile != "" {
		src, err := os.ReadFile(*layoutFile)
		if err != nil {
			log.Fatalf("read layout: %v", err)
		}
		base.Layout = string(src)
	}

	if *manualOnly {
		res := sweep.Run(sweep.Scenario{Name: "manual", Config: base}, *steps)
		if res.Err != nil {
			log.Fatal(res.Err)
		}
		fmt.Println(res)
		fmt.Print(res.Layout)
		return
	}

	ds, err := parseFloats(*densities)
	if err != nil {
		log.Fatalf("-density: %v", err)
	}
	vs, err := parseFloats(*ventRatios)
	if err != nil {
		log.Fatalf("-vent-ratio: %v", err)
	}
	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = *seedBase + int64(i)
	}

	scenarios := sweep.Grid(base, ds, vs, seedList)
	fmt.Printf("Sweeping %d layouts (%d workers, %d steps)\n", len(scenarios), *workers, *steps)

	start := time.Now()
	ranked := sweep.Rank(sweep.RunAll(scenarios, *steps, *workers))
	elapsed := time.Since(start)

	melted := 0
	for _, res := range ranked {
		if res.MeltdownTick > 0 {
			melted++
		}
	}
	fmt.Printf("%d of %d layouts melted down\n", melted, len(ranked))

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(ranked)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(ranked) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, ranked[i])
	}
	if len(ranked) > 0 {
		fmt.Printf("\nBest layout:\n%s", ranked[0].Layout)
	}
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("%g outside [0,1]", v)
		}
		out = append(out, v)
	}
	return out, nil
}
