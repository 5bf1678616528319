//go:build ebiten

package ui

import (
	"image/color"

	"reactor-sim/internal/core"
	"reactor-sim/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type heatGauge interface {
	HeatFraction() float64
}

// Overlay draws the hull heat gauge, slot outlines and status line on top of
// the grid. Keys 1-3 toggle each layer.
type Overlay struct {
	sim        core.Sim
	scale      int
	showGauge  bool
	showSlots  bool
	showStatus bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, showGauge: true, showSlots: true, showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the layer toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGauge = !o.showGauge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSlots = !o.showSlots
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	width := size.W * o.scale
	height := size.H * o.scale

	if o.showSlots {
		edge := color.RGBA{R: 0, G: 0, B: 0, A: 160}
		for x := 1; x < size.W; x++ {
			o.fillRect(screen, float64(x*o.scale), 0, 1, float64(height), edge)
		}
		for y := 1; y < size.H; y++ {
			o.fillRect(screen, 0, float64(y*o.scale), float64(width), 1, edge)
		}
	}

	if gauge, ok := o.sim.(heatGauge); ok && o.showGauge {
		const gaugeHeight = 6
		frac := gauge.HeatFraction()
		o.fillRect(screen, 0, 0, float64(width), gaugeHeight, color.RGBA{R: 0, G: 0, B: 0, A: 180})
		o.fillRect(screen, 0, 0, float64(gaugeFill(frac, width)), gaugeHeight, render.HeatColor(frac))
	}

	if status, ok := o.sim.(core.StatusProvider); ok && o.showStatus {
		const bannerHeight = 18
		o.fillRect(screen, 0, float64(height-bannerHeight), float64(width), bannerHeight, color.RGBA{R: 0, G: 0, B: 0, A: 170})
		text.Draw(screen, status.Status(), basicfont.Face7x13, 6, height-5, color.RGBA{R: 235, G: 235, B: 240, A: 255})
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
