package app

import "reactor-sim/internal/core"

// minPanelHeight keeps the HUD readouts visible on short grids.
const minPanelHeight = 360

// WindowSize returns the logical window size for a grid drawn at scale with a
// parameter panel of the given width beside it.
func WindowSize(size core.Size, scale, panel int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	w := size.W*scale + max(panel, 0)
	h := size.H * scale
	if panel > 0 {
		h = max(h, minPanelHeight)
	}
	return w, h
}
