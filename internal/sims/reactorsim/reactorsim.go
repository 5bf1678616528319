// Package reactorsim adapts a reactor.Reactor to the core.Sim contract so the
// GUI, terminal viewer and sweep tool can drive it.
package reactorsim

import (
	"fmt"
	"strings"

	"reactor-sim/internal/core"
	"reactor-sim/internal/layout"
	"reactor-sim/internal/reactor"
)

// Sim runs one reactor and keeps running totals for display.
type Sim struct {
	cfg   Config
	fixed *layout.Layout
	place []layout.Assignment

	layout  layout.Layout
	r       *reactor.Reactor
	last    reactor.TickResult
	total   int64
	peak    int64
	melted  bool
	err     error
	display []uint8
}

// New builds a sim from cfg and seeds it with cfg.Seed.
func New(cfg Config) (*Sim, error) {
	s := &Sim{cfg: cfg, display: make([]uint8, reactor.SlotCount)}
	if strings.TrimSpace(cfg.Layout) != "" {
		l, err := layout.Parse(cfg.Layout)
		if err != nil {
			return nil, fmt.Errorf("reactor layout: %w", err)
		}
		s.fixed = &l
	}
	if cfg.Place != "" {
		as, err := layout.ParseAssignments(cfg.Place)
		if err != nil {
			return nil, fmt.Errorf("reactor placement: %w", err)
		}
		s.place = as
	}
	s.Reset(0)
	if s.err != nil {
		return nil, s.err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "reactor" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: reactor.Cols, H: reactor.Rows} }

// Cells exposes the display buffer, one palette code per slot.
func (s *Sim) Cells() []uint8 { return s.display }

// Reset rebuilds the reactor. A zero seed reuses the configured seed; a fixed
// layout ignores the seed entirely.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	if s.r != nil {
		s.r.Destroy()
	}
	s.r = reactor.New(reactor.Location{Dimension: "sim", X: int(effective)})
	s.last = reactor.TickResult{}
	s.total, s.peak, s.melted, s.err = 0, 0, false, nil

	if s.fixed != nil {
		s.layout = *s.fixed
	} else {
		s.layout = layout.Generate(effective, s.cfg.Gen)
	}
	s.layout = s.layout.With(s.place)
	if err := s.layout.Apply(s.r); err != nil {
		s.err = err
		return
	}
	if err := s.r.SetHullHeat(s.cfg.HullHeat); err != nil {
		s.err = err
		return
	}
	s.last.HullHeat = s.cfg.HullHeat
	s.last.Hazards = reactor.EvaluateHazards(s.cfg.HullHeat)
	s.peak = s.cfg.HullHeat
	s.refreshDisplay()
}

// Step advances the reactor one tick. After a meltdown or a tick error the
// sim halts until Reset.
func (s *Sim) Step() {
	if s.Halted() {
		return
	}
	res, err := s.r.Tick()
	if err != nil {
		s.err = err
		return
	}
	s.last = res
	s.total += int64(res.Energy)
	s.peak = max(s.peak, res.HullHeat)
	s.melted = res.Meltdown
	s.refreshDisplay()
}

// Halted reports whether Step has stopped advancing.
func (s *Sim) Halted() bool { return s.err != nil || s.melted }

// Err returns the error that halted the sim, if any.
func (s *Sim) Err() error { return s.err }

// Last returns the most recent tick result.
func (s *Sim) Last() reactor.TickResult { return s.last }

// Reactor exposes the underlying reactor state.
func (s *Sim) Reactor() *reactor.Reactor { return s.r }

// Layout returns the layout the current reactor was seeded with.
func (s *Sim) Layout() layout.Layout { return s.layout }

// TotalEnergy returns the EU produced since the last reset.
func (s *Sim) TotalEnergy() int64 { return s.total }

// PeakHullHeat returns the highest hull heat seen since the last reset.
func (s *Sim) PeakHullHeat() int64 { return s.peak }

// Status summarises the last tick on one line.
func (s *Sim) Status() string {
	if s.err != nil {
		return fmt.Sprintf("halted: %v", s.err)
	}
	line := fmt.Sprintf("tick %d  EU/t %d  heat/t %d  hull %d  %s",
		s.last.Tick, s.last.Energy, s.last.Heat, s.last.HullHeat, s.last.Tier())
	if s.last.Meltdown {
		line += fmt.Sprintf("  explosion %d", s.last.ExplosionForce)
	}
	return line
}

// SetIntParameter applies HUD adjustments. Only hull_heat is adjustable.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != "hull_heat" || s.Halted() {
		return false
	}
	if err := s.r.SetHullHeat(int64(value)); err != nil {
		return false
	}
	s.last.HullHeat = int64(value)
	s.last.Hazards = reactor.EvaluateHazards(int64(value))
	s.peak = max(s.peak, int64(value))
	s.refreshDisplay()
	return true
}

// ParameterControls exposes the hull heat control.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "hull_heat",
		Label:  "Hull heat",
		Type:   core.ParamTypeInt,
		Step:   500,
		Min:    0,
		Max:    float64(reactor.MeltdownThreshold + 5000),
		HasMin: true,
		HasMax: true,
	}}
}

func init() {
	core.Register("reactor", func(cfg map[string]string) (core.Sim, error) {
		s, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// HeatFraction reports hull heat as a fraction of the meltdown threshold,
// clamped to [0,1].
func (s *Sim) HeatFraction() float64 {
	frac := float64(s.last.HullHeat) / float64(reactor.MeltdownThreshold)
	return min(max(frac, 0), 1)
}
