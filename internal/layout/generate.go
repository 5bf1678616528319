package layout

import (
	"math"
	"sort"

	"github.com/aquilax/go-perlin"

	"reactor-sim/internal/reactor"
	"reactor-sim/pkg/core"
)

// GenParams tunes procedural layout generation.
type GenParams struct {
	// Density is the share of slots that receive a fuel cell.
	Density float64
	// VentRatio is the chance a slot bordering fuel receives a vent.
	VentRatio float64
	// Scale stretches slot coordinates before sampling noise. Larger values
	// break fuel into smaller clusters.
	Scale float64

	Alpha   float64
	Beta    float64
	Octaves int32
}

// DefaultGenParams returns the standard generator tuning.
func DefaultGenParams() GenParams {
	return GenParams{
		Density:   0.2,
		VentRatio: 0.5,
		Scale:     0.35,
		Alpha:     2,
		Beta:      2,
		Octaves:   3,
	}
}

// vent mix for slots bordering fuel, by cumulative weight out of 20.
var ventMix = []struct {
	kind   reactor.Kind
	weight int
}{
	{reactor.KindReactorHeatVent, 12},
	{reactor.KindOverclockedHeatVent, 5},
	{reactor.KindHeatVent, 3},
}

// Generate builds a layout whose fuel cells cluster along perlin-noise
// ridges. The same seed and params always produce the same layout.
func Generate(seed int64, p GenParams) Layout {
	var l Layout
	density := min(max(p.Density, 0), 1)
	fuel := int(math.Round(density * reactor.SlotCount))
	if fuel == 0 {
		return l
	}
	scale := p.Scale
	if scale <= 0 {
		scale = DefaultGenParams().Scale
	}
	octaves := p.Octaves
	if octaves <= 0 {
		octaves = 1
	}

	noise := perlin.NewPerlin(p.Alpha, p.Beta, octaves, seed)
	type sample struct {
		slot  int
		value float64
	}
	samples := make([]sample, reactor.SlotCount)
	for i := range samples {
		row, col, _ := reactor.Grid.SlotToCoords(i)
		x := (float64(col) + 0.5) * scale
		y := (float64(row) + 0.5) * scale
		samples[i] = sample{slot: i, value: noise.Noise2D(x, y)}
	}
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].value > samples[j].value })
	for _, s := range samples[:fuel] {
		l[s.slot] = reactor.KindUraniumCell
	}

	rng := core.NewRNG(seed)
	total := 0
	for _, v := range ventMix {
		total += v.weight
	}
	for i := range l {
		if l[i] != reactor.KindNone || !bordersFuel(&l, i) {
			continue
		}
		if !rng.Chance(p.VentRatio) {
			continue
		}
		roll := rng.Pick(total)
		for _, v := range ventMix {
			if roll < v.weight {
				l[i] = v.kind
				break
			}
			roll -= v.weight
		}
	}
	return l
}

func bordersFuel(l *Layout, slot int) bool {
	adj, _ := reactor.Grid.Adjacent(slot)
	for _, n := range adj {
		if l[n] == reactor.KindUraniumCell {
			return true
		}
	}
	return false
}
