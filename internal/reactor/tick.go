package reactor

import (
	"fmt"
	"math"
)

// TickResult is the outcome of one simulation step.
type TickResult struct {
	Tick     uint64
	Energy   int
	Heat     int
	HullHeat int64
	Hazards
	// ExplosionForce is non-zero only when Meltdown is set.
	ExplosionForce int
}

// Extension adjusts the working grid after vents have drained heat and before
// hull heat is clamped and evaluated. Component-to-component transfer (heat
// exchangers) and durability wear belong here. Apply receives the pending
// slots and hull heat and returns the new hull heat; an error aborts the tick
// without committing anything.
type Extension interface {
	Apply(slots *[SlotCount]Component, hullHeat int64) (int64, error)
}

// ExtensionFunc adapts a function to the Extension interface.
type ExtensionFunc func(slots *[SlotCount]Component, hullHeat int64) (int64, error)

// Apply calls f.
func (f ExtensionFunc) Apply(slots *[SlotCount]Component, hullHeat int64) (int64, error) {
	return f(slots, hullHeat)
}

// Tick advances the reactor by one step. Adjacency is counted against the
// grid as it was before the tick, so every fuel cell sees the same snapshot.
// The reactor is only mutated when Tick returns a nil error.
func (r *Reactor) Tick() (TickResult, error) {
	if r.destroyed {
		return TickResult{}, ErrDestroyed
	}

	snapshot := r.slots
	work := r.slots

	energy, heat := 0, 0
	for i, c := range snapshot {
		if !c.kind.IsFuel() {
			continue
		}
		n := 0
		for _, j := range neighbors[i] {
			if snapshot[j].kind.IsFuel() {
				n++
			}
		}
		energy += EnergyPerCell(n)
		heat += HeatPerCell(n)
	}

	hull := r.hullHeat
	if hull > math.MaxInt64-int64(heat) {
		return TickResult{}, fmt.Errorf("tick %d: adding %d to %d: %w", r.ticks+1, heat, hull, ErrHeatOverflow)
	}
	hull += int64(heat)

	for i, c := range work {
		if c.Empty() {
			continue
		}
		spec := catalog[c.kind]
		switch spec.Source {
		case SourceHull:
			hull -= int64(spec.Removal)
		case SourceSelf:
			work[i].heat = max(0, c.heat-spec.Removal)
		}
	}

	for _, ext := range r.extensions {
		next, err := ext.Apply(&work, hull)
		if err != nil {
			return TickResult{}, fmt.Errorf("tick %d extension: %w", r.ticks+1, err)
		}
		hull = next
	}

	hull = max(hull, 0)
	res := TickResult{
		Tick:     r.ticks + 1,
		Energy:   energy,
		Heat:     heat,
		HullHeat: hull,
		Hazards:  EvaluateHazards(hull),
	}
	if res.Meltdown {
		res.ExplosionForce = countFuel(&work) * ExplosionForcePerCell
	}

	r.slots = work
	r.hullHeat = hull
	r.ticks++
	return res, nil
}

// Ticks returns the number of completed ticks.
func (r *Reactor) Ticks() uint64 { return r.ticks }
