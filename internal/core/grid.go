package core

import (
	"errors"
	"fmt"
)

// ErrSlotOutOfRange reports a slot index or coordinate outside the grid.
var ErrSlotOutOfRange = errors.New("slot out of range")

// SlotGrid describes a bounded rows x cols grid of slots in row-major order.
// Unlike a toroidal automaton grid, neighbors are clipped at the edges.
type SlotGrid struct {
	Rows, Cols int
}

// NewSlotGrid returns a grid with the given dimensions.
func NewSlotGrid(rows, cols int) SlotGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return SlotGrid{Rows: rows, Cols: cols}
}

// Total returns the number of slots.
func (g SlotGrid) Total() int { return g.Rows * g.Cols }

// Valid reports whether slot addresses a cell inside the grid.
func (g SlotGrid) Valid(slot int) bool { return slot >= 0 && slot < g.Total() }

// SlotToCoords maps a linear slot index to its row and column.
func (g SlotGrid) SlotToCoords(slot int) (row, col int, err error) {
	if !g.Valid(slot) {
		return 0, 0, fmt.Errorf("slot %d not in [0,%d): %w", slot, g.Total(), ErrSlotOutOfRange)
	}
	return slot / g.Cols, slot % g.Cols, nil
}

// CoordsToSlot maps a row and column back to the linear slot index.
func (g SlotGrid) CoordsToSlot(row, col int) (int, error) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return 0, fmt.Errorf("coords (%d,%d) outside %dx%d: %w", row, col, g.Rows, g.Cols, ErrSlotOutOfRange)
	}
	return row*g.Cols + col, nil
}

// Adjacent returns the orthogonal neighbors of slot that lie inside the grid,
// in up, down, left, right order.
func (g SlotGrid) Adjacent(slot int) ([]int, error) {
	row, col, err := g.SlotToCoords(slot)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, 4)
	if row > 0 {
		out = append(out, slot-g.Cols)
	}
	if row < g.Rows-1 {
		out = append(out, slot+g.Cols)
	}
	if col > 0 {
		out = append(out, slot-1)
	}
	if col < g.Cols-1 {
		out = append(out, slot+1)
	}
	return out, nil
}

// NeighborTable precomputes Adjacent for every slot. Slot i's neighbors are
// table[i].
func (g SlotGrid) NeighborTable() [][]int {
	table := make([][]int, g.Total())
	for i := range table {
		table[i], _ = g.Adjacent(i)
	}
	return table
}
