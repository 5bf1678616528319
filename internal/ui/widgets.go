package ui

import (
	"math"

	"reactor-sim/internal/core"
)

// adjustedValue steps value once in direction and clamps it to the control's
// bounds. ok is false when the value already sits on the bound.
func adjustedValue(ctrl core.ParameterControl, value, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.HasMin {
		lo := int(math.Round(ctrl.Min))
		if direction < 0 && value <= lo {
			return value, false
		}
		target = max(target, lo)
	}
	if ctrl.HasMax {
		hi := int(math.Round(ctrl.Max))
		if direction > 0 && value >= hi {
			return value, false
		}
		target = min(target, hi)
	}
	return target, true
}

// gaugeFill returns how many of width pixels a gauge at frac fills.
func gaugeFill(frac float64, width int) int {
	frac = min(max(frac, 0), 1)
	return int(math.Round(frac * float64(width)))
}
