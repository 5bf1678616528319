package core

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the GUI and terminal front-ends drive. Cells returns one
// display code per grid cell in row-major order.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider maps display codes from Cells to colors.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// StatusProvider reports a one-line summary of the current state.
type StatusProvider interface {
	Status() string
}

// Factory constructs a Sim from flag-style key/value overrides.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	if f, ok := sims[name]; ok {
		return f, nil
	}
	known := make([]string, 0, len(sims))
	for k := range sims {
		known = append(known, k)
	}
	sort.Strings(known)
	return nil, fmt.Errorf("unknown sim %q (have %s)", name, strings.Join(known, ", "))
}
