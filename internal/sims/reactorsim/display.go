package reactorsim

import (
	"image/color"

	"reactor-sim/internal/reactor"
	"reactor-sim/internal/render"
)

// kindCodes is the number of display codes reserved per hazard tier.
const kindCodes = 8

var kindColors = [kindCodes]color.RGBA{
	reactor.KindNone:                {R: 28, G: 30, B: 34, A: 255},
	reactor.KindUraniumCell:         {R: 60, G: 210, B: 70, A: 255},
	reactor.KindHeatVent:            {R: 150, G: 155, B: 165, A: 255},
	reactor.KindReactorHeatVent:     {R: 90, G: 120, B: 200, A: 255},
	reactor.KindOverclockedHeatVent: {R: 200, G: 170, B: 60, A: 255},
	reactor.KindHeatExchanger:       {R: 170, G: 90, B: 60, A: 255},
	reactor.KindCoolantCell:         {R: 70, G: 190, B: 220, A: 255},
	reactor.KindDepletedUraniumCell: {R: 40, G: 90, B: 45, A: 255},
}

var reactorPalette = buildPalette()

// Palette exposes the colors for every display code.
func (s *Sim) Palette() []color.RGBA { return reactorPalette }

// buildPalette tints each kind color toward the hull heat ramp, one block of
// kindCodes entries per hazard tier.
func buildPalette() []color.RGBA {
	tiers := int(reactor.TierMeltdown) + 1
	palette := make([]color.RGBA, 0, tiers*kindCodes)
	for t := 0; t < tiers; t++ {
		frac := float64(t) / float64(tiers-1)
		tint := render.HeatColor(frac)
		for _, base := range kindColors {
			palette = append(palette, render.Blend(base, tint, 0.5*frac))
		}
	}
	return palette
}

// DisplayCode returns the palette index for a slot kind under a hazard tier.
func DisplayCode(kind reactor.Kind, tier reactor.Tier) uint8 {
	return uint8(tier)*kindCodes + uint8(kind)
}

func (s *Sim) refreshDisplay() {
	st, err := s.r.State()
	if err != nil {
		return
	}
	tier := s.last.Tier()
	for i, c := range st.Slots {
		s.display[i] = DisplayCode(c.Kind(), tier)
	}
}
