// Package reactor implements a deterministic grid fission-reactor simulation.
//
// A Reactor owns a 6x9 grid of component slots and a hull heat value. Each
// Tick sums fuel-cell energy and heat from a snapshot of the grid, drains heat
// through vents, evaluates the hazard thresholds and returns a TickResult.
// Turning hazard flags into world effects is the caller's job.
package reactor

import (
	"fmt"

	"reactor-sim/internal/core"
)

const (
	Rows      = 6
	Cols      = 9
	SlotCount = Rows * Cols
)

// Grid is the reactor slot topology.
var Grid = core.NewSlotGrid(Rows, Cols)

var neighbors = Grid.NeighborTable()

// Location identifies a reactor instance for the integration layer. The
// simulation never interprets it.
type Location struct {
	Dimension string
	X, Y, Z   int
}

func (l Location) String() string {
	if l.Dimension == "" {
		return fmt.Sprintf("(%d,%d,%d)", l.X, l.Y, l.Z)
	}
	return fmt.Sprintf("%s(%d,%d,%d)", l.Dimension, l.X, l.Y, l.Z)
}

// Snapshot is a read-only copy of reactor state.
type Snapshot struct {
	Location Location
	HullHeat int64
	Ticks    uint64
	Slots    [SlotCount]Component
}

// Reactor is the mutable simulation state. It is not safe for concurrent use;
// independent reactors may be advanced from different goroutines.
type Reactor struct {
	loc        Location
	slots      [SlotCount]Component
	hullHeat   int64
	ticks      uint64
	extensions []Extension
	destroyed  bool
}

// New returns a reactor with every slot empty and zero hull heat.
func New(loc Location) *Reactor {
	return &Reactor{loc: loc}
}

// Location returns the identity token the reactor was created with.
func (r *Reactor) Location() Location { return r.loc }

// SetSlot replaces the contents of a slot. Pass Empty to clear it.
func (r *Reactor) SetSlot(index int, c Component) error {
	if r.destroyed {
		return ErrDestroyed
	}
	if !Grid.Valid(index) {
		return fmt.Errorf("set slot %d: %w", index, ErrSlotOutOfRange)
	}
	r.slots[index] = c
	return nil
}

// Slot returns the contents of a slot.
func (r *Reactor) Slot(index int) (Component, error) {
	if r.destroyed {
		return Empty, ErrDestroyed
	}
	if !Grid.Valid(index) {
		return Empty, fmt.Errorf("get slot %d: %w", index, ErrSlotOutOfRange)
	}
	return r.slots[index], nil
}

// State returns a copy of every slot plus hull heat.
func (r *Reactor) State() (Snapshot, error) {
	if r.destroyed {
		return Snapshot{}, ErrDestroyed
	}
	return Snapshot{
		Location: r.loc,
		HullHeat: r.hullHeat,
		Ticks:    r.ticks,
		Slots:    r.slots,
	}, nil
}

// HullHeat returns the current hull heat.
func (r *Reactor) HullHeat() int64 { return r.hullHeat }

// SetHullHeat assigns hull heat directly, bypassing accumulation.
func (r *Reactor) SetHullHeat(v int64) error {
	if r.destroyed {
		return ErrDestroyed
	}
	if v < 0 {
		return fmt.Errorf("set hull heat %d: %w", v, ErrNegativeHeat)
	}
	r.hullHeat = v
	return nil
}

// UraniumCells counts the fuel cells currently placed.
func (r *Reactor) UraniumCells() int {
	if r.destroyed {
		return 0
	}
	return countFuel(&r.slots)
}

// Use registers an extension that runs on every subsequent tick, in
// registration order.
func (r *Reactor) Use(ext Extension) error {
	if r.destroyed {
		return ErrDestroyed
	}
	if ext != nil {
		r.extensions = append(r.extensions, ext)
	}
	return nil
}

// Destroy releases the grid. Every later operation returns ErrDestroyed.
func (r *Reactor) Destroy() {
	if r.destroyed {
		return
	}
	r.slots = [SlotCount]Component{}
	r.hullHeat = 0
	r.extensions = nil
	r.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (r *Reactor) Destroyed() bool { return r.destroyed }

func countFuel(slots *[SlotCount]Component) int {
	n := 0
	for _, c := range slots {
		if c.kind.IsFuel() {
			n++
		}
	}
	return n
}
