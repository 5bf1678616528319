// Package sweep runs batches of reactor sims in parallel and ranks the
// layouts by sustained output.
package sweep

import (
	"fmt"
	"sort"
	"sync"

	"reactor-sim/internal/layout"
	"reactor-sim/internal/sims/reactorsim"
)

// Scenario is one reactor configuration to evaluate.
type Scenario struct {
	Name   string
	Config reactorsim.Config
}

// Result summarises a scenario run. Tick fields are zero when the event never
// happened.
type Result struct {
	Scenario Scenario
	Layout   layout.Layout
	Err      error

	Ticks         int
	TotalEnergy   int64
	PeakHullHeat  int64
	FinalHullHeat int64
	FirstHazard   int
	MeltdownTick  int
	Explosion     int
}

// EnergyPerTick is the mean output over the ticks actually run.
func (r Result) EnergyPerTick() float64 {
	if r.Ticks == 0 {
		return 0
	}
	return float64(r.TotalEnergy) / float64(r.Ticks)
}

// Stable reports whether the run finished without a hazard.
func (r Result) Stable() bool { return r.Err == nil && r.FirstHazard == 0 }

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", r.Scenario.Name, r.Err)
	}
	line := fmt.Sprintf("%s: EU/t=%.1f ticks=%d peakHull=%d finalHull=%d",
		r.Scenario.Name, r.EnergyPerTick(), r.Ticks, r.PeakHullHeat, r.FinalHullHeat)
	if r.FirstHazard > 0 {
		line += fmt.Sprintf(" firstHazard=%d", r.FirstHazard)
	}
	if r.MeltdownTick > 0 {
		line += fmt.Sprintf(" meltdown=%d force=%d", r.MeltdownTick, r.Explosion)
	}
	return line
}

// Run simulates one scenario for up to steps ticks. A meltdown ends the run
// early.
func Run(sc Scenario, steps int) Result {
	res := Result{Scenario: sc}
	sim, err := reactorsim.New(sc.Config)
	if err != nil {
		res.Err = err
		return res
	}
	res.Layout = sim.Layout()
	for step := 1; step <= steps; step++ {
		sim.Step()
		if err := sim.Err(); err != nil {
			res.Err = err
			break
		}
		last := sim.Last()
		res.Ticks = step
		if res.FirstHazard == 0 && last.Tier() > 0 {
			res.FirstHazard = step
		}
		if last.Meltdown {
			res.MeltdownTick = step
			res.Explosion = last.ExplosionForce
			break
		}
	}
	res.TotalEnergy = sim.TotalEnergy()
	res.PeakHullHeat = sim.PeakHullHeat()
	res.FinalHullHeat = sim.Reactor().HullHeat()
	return res
}

// RunAll evaluates every scenario on a pool of workers. Results keep the
// order of scenarios.
func RunAll(scenarios []Scenario, steps, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}
	type job struct {
		idx int
		sc  Scenario
	}
	jobs := make(chan job)
	results := make([]Result, len(scenarios))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.idx] = Run(j.sc, steps)
			}
		}()
	}

	for i, sc := range scenarios {
		jobs <- job{idx: i, sc: sc}
	}
	close(jobs)
	wg.Wait()
	return results
}

// Rank orders results best first: stable runs before hazardous ones, then by
// output, then by lower peak hull heat.
func Rank(results []Result) []Result {
	out := append([]Result(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Err == nil) != (b.Err == nil) {
			return a.Err == nil
		}
		if a.Stable() != b.Stable() {
			return a.Stable()
		}
		if a.EnergyPerTick() != b.EnergyPerTick() {
			return a.EnergyPerTick() > b.EnergyPerTick()
		}
		return a.PeakHullHeat < b.PeakHullHeat
	})
	return out
}

// Grid builds one generated-layout scenario per density, vent ratio and seed.
func Grid(base reactorsim.Config, densities, ventRatios []float64, seeds []int64) []Scenario {
	var out []Scenario
	for _, d := range densities {
		for _, v := range ventRatios {
			for _, seed := range seeds {
				cfg := base
				cfg.Layout = ""
				cfg.Seed = seed
				cfg.Gen.Density = d
				cfg.Gen.VentRatio = v
				out = append(out, Scenario{
					Name:   fmt.Sprintf("density=%.2f vents=%.2f seed=%d", d, v, seed),
					Config: cfg,
				})
			}
		}
	}
	return out
}
