package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// heatStops runs from a cold hull to meltdown. Blends happen in Lab space so
// the ramp brightens evenly.
var heatStops = []colorful.Color{
	mustHex("#1d3b5a"),
	mustHex("#2e8b57"),
	mustHex("#f2c14e"),
	mustHex("#f26b38"),
	mustHex("#e0202a"),
	mustHex("#ffffff"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HeatColor maps frac in [0,1] onto the heat ramp. Values outside the range
// are clamped.
func HeatColor(frac float64) color.RGBA {
	frac = min(max(frac, 0), 1)
	span := frac * float64(len(heatStops)-1)
	i := int(span)
	if i >= len(heatStops)-1 {
		return toRGBA(heatStops[len(heatStops)-1])
	}
	return toRGBA(heatStops[i].BlendLab(heatStops[i+1], span-float64(i)))
}

// Blend mixes a toward b by t in Lab space.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	out := toRGBA(ca.BlendLab(cb, t))
	out.A = uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t)
	return out
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
