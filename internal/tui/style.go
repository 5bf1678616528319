package tui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// slotStyle paints a slot with bg and picks a readable glyph color.
func slotStyle(bg color.RGBA) tcell.Style {
	fg := tcell.NewRGBColor(240, 240, 240)
	if luma(bg) > 140 {
		fg = tcell.NewRGBColor(16, 16, 16)
	}
	return tcell.StyleDefault.Background(toTcell(bg)).Foreground(fg)
}

func luma(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
