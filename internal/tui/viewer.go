// Package tui is a terminal front-end for the reactor sim built on tcell.
package tui

import (
	"fmt"
	"time"

	"reactor-sim/internal/core"
	"reactor-sim/internal/layout"
	"reactor-sim/internal/reactor"
	"reactor-sim/internal/render"
	"reactor-sim/internal/sims/reactorsim"

	"github.com/gdamore/tcell/v2"
)

const (
	gridX     = 2
	gridY     = 2
	slotWidth = 3
	panelX    = gridX + reactor.Cols*slotWidth + 4
	gaugeLen  = reactor.Cols * slotWidth

	frameInterval = 16 * time.Millisecond
	maxCatchUp    = 4
	heatStep      = 500
)

// Viewer draws a reactor sim into a tcell screen and drives it at a fixed
// tick rate.
type Viewer struct {
	screen tcell.Screen
	sim    *reactorsim.Sim
	timer  *core.FixedStep
	alarm  *Alarm

	paused bool
	seed   int64
	tier   reactor.Tier
}

// NewViewer wires a viewer to an initialised screen. alarm may be nil.
func NewViewer(screen tcell.Screen, sim *reactorsim.Sim, tps int, alarm *Alarm) *Viewer {
	return &Viewer{
		screen: screen,
		sim:    sim,
		timer:  core.NewFixedStep(tps),
		alarm:  alarm,
		tier:   sim.Last().Tier(),
	}
}

// Run polls input and redraws until the user quits.
func (v *Viewer) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	v.Draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.HandleKey(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-ticker.C:
			due := v.timer.Due(maxCatchUp)
			if !v.paused {
				v.Advance(due)
			}
			v.Draw()
		}
	}
}

// HandleKey applies one key press. It returns false when the viewer should
// exit.
func (v *Viewer) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch r {
	case 'q':
		return false
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.Advance(1)
	case 'r':
		v.reset(v.seed)
	case 's':
		v.reset(time.Now().UnixNano())
	case '+', '=':
		v.adjustHeat(heatStep)
	case '-':
		v.adjustHeat(-heatStep)
	}
	return true
}

// Paused reports whether automatic ticking is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Advance steps the sim n times and sounds the alarm when the hazard tier
// rises.
func (v *Viewer) Advance(n int) {
	for i := 0; i < n; i++ {
		v.sim.Step()
		v.noteTier()
	}
}

func (v *Viewer) reset(seed int64) {
	v.seed = seed
	v.sim.Reset(seed)
	v.tier = v.sim.Last().Tier()
}

func (v *Viewer) adjustHeat(delta int) {
	next := max(v.sim.Reactor().HullHeat()+int64(delta), 0)
	if v.sim.SetIntParameter("hull_heat", int(next)) {
		v.noteTier()
	}
}

func (v *Viewer) noteTier() {
	tier := v.sim.Last().Tier()
	if tier > v.tier {
		v.alarm.Sound(tier)
	}
	v.tier = tier
}

// Draw renders the grid, heat gauge, readout panel and key help.
func (v *Viewer) Draw() {
	s := v.screen
	s.Clear()
	base := tcell.StyleDefault
	dim := base.Foreground(tcell.NewRGBColor(140, 140, 150))

	title := fmt.Sprintf("reactor %s", v.sim.Reactor().Location())
	if v.paused {
		title += "  [paused]"
	}
	drawText(s, gridX, 0, title, base.Bold(true))

	palette := v.sim.Palette()
	cells := v.sim.Cells()
	if st, err := v.sim.Reactor().State(); err == nil {
		for i, c := range st.Slots {
			row, col := i/reactor.Cols, i%reactor.Cols
			style := slotStyle(palette[cells[i]])
			x := gridX + col*slotWidth
			y := gridY + row
			s.SetContent(x, y, ' ', nil, style)
			s.SetContent(x+1, y, layout.Glyph(c.Kind()), nil, style)
			s.SetContent(x+2, y, ' ', nil, style)
		}
	}

	frac := v.sim.HeatFraction()
	gaugeY := gridY + reactor.Rows + 1
	filled := int(frac * gaugeLen)
	heat := base.Foreground(toTcell(render.HeatColor(frac)))
	for i := 0; i < gaugeLen; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		s.SetContent(gridX+i, gaugeY, r, nil, heat)
	}
	drawText(s, gridX, gaugeY+1, v.sim.Status(), heat)

	y := gridY
	for _, g := range v.sim.Parameters().Groups {
		drawText(s, panelX, y, g.Name, base.Bold(true))
		y++
		for _, p := range g.Params {
			x := drawText(s, panelX+1, y, p.Label+": ", dim)
			style := base
			if p.Type == core.ParamTypeBool && p.Value == "true" {
				style = base.Foreground(tcell.NewRGBColor(255, 110, 80))
			}
			drawText(s, x, y, p.Value, style)
			y++
		}
	}

	_, h := s.Size()
	drawText(s, gridX, h-1, "space pause  n step  r reset  s reseed  +/- hull heat  q quit", dim)
	s.Show()
}
