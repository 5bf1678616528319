package reactorsim

import (
	"errors"
	"strings"
	"testing"

	"reactor-sim/internal/core"
	"reactor-sim/internal/layout"
	"reactor-sim/internal/reactor"
)

const singleCell = "U......../........./........./........./........./........."

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"layout":     singleCell,
		"hull_heat":  "4500",
		"seed":       "9",
		"density":    "0.4",
		"vent_ratio": "2",
		"place":      "3=vent",
	})
	if !strings.HasPrefix(c.Layout, "U........\n") {
		t.Fatalf("layout rows not split: %q", c.Layout)
	}
	if c.HullHeat != 4500 || c.Seed != 9 || c.Gen.Density != 0.4 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Gen.VentRatio != DefaultConfig().Gen.VentRatio {
		t.Fatalf("out of range vent ratio should be ignored, got %f", c.Gen.VentRatio)
	}
	if c.Place != "3=vent" {
		t.Fatalf("place not copied: %q", c.Place)
	}
	if FromMap(map[string]string{"hull_heat": "-4"}).HullHeat != 0 {
		t.Fatal("negative hull heat should be ignored")
	}
}

func TestStepSingleCell(t *testing.T) {
	s, err := New(FromMap(map[string]string{"layout": singleCell}))
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Cells()[0]; got != DisplayCode(reactor.KindUraniumCell, reactor.TierNone) {
		t.Fatalf("unexpected display code %d", got)
	}
	s.Step()
	last := s.Last()
	if last.Energy != 5 || last.Heat != 4 || last.HullHeat != 4 {
		t.Fatalf("unexpected tick %+v", last)
	}
	s.Step()
	if s.TotalEnergy() != 10 || s.PeakHullHeat() != 8 {
		t.Fatalf("totals %d/%d", s.TotalEnergy(), s.PeakHullHeat())
	}
	p, ok := s.Parameters().Find("energy")
	if !ok || p.Value != "5" {
		t.Fatalf("energy readout %+v", p)
	}
	if !strings.Contains(s.Status(), "tick 2") {
		t.Fatalf("status %q", s.Status())
	}
}

func TestMeltdownHalts(t *testing.T) {
	s, err := New(FromMap(map[string]string{"layout": singleCell, "hull_heat": "12000"}))
	if err != nil {
		t.Fatal(err)
	}
	s.Step()
	if !s.Last().Meltdown || !s.Halted() {
		t.Fatalf("expected meltdown, got %+v", s.Last())
	}
	if s.Last().ExplosionForce != 10 {
		t.Fatalf("expected force 10, got %d", s.Last().ExplosionForce)
	}
	if got := s.Cells()[0]; got != DisplayCode(reactor.KindUraniumCell, reactor.TierMeltdown) {
		t.Fatalf("expected meltdown tint, got %d", got)
	}
	tick := s.Last().Tick
	s.Step()
	if s.Last().Tick != tick {
		t.Fatal("halted sim must not tick")
	}
	if !strings.Contains(s.Status(), "explosion 10") {
		t.Fatalf("status %q", s.Status())
	}
	if s.SetIntParameter("hull_heat", 0) {
		t.Fatal("halted sim must reject adjustments")
	}

	s.Reset(0)
	if s.Halted() || s.Reactor().HullHeat() != 12000 {
		t.Fatalf("reset should restore configured state")
	}
}

func TestSetIntParameter(t *testing.T) {
	s, err := New(FromMap(map[string]string{"layout": singleCell}))
	if err != nil {
		t.Fatal(err)
	}
	if !s.SetIntParameter("hull_heat", 7500) {
		t.Fatal("expected hull heat to be adjustable")
	}
	if s.Reactor().HullHeat() != 7500 || s.Last().Tier() != reactor.TierEvaporate {
		t.Fatalf("unexpected state %d %s", s.Reactor().HullHeat(), s.Last().Tier())
	}
	if s.SetIntParameter("hull_heat", -1) {
		t.Fatal("negative heat must be rejected")
	}
	if s.SetIntParameter("seed", 3) {
		t.Fatal("unknown key must be rejected")
	}
}

func TestGeneratedResetDeterministic(t *testing.T) {
	s, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	first := s.Layout()
	for i := 0; i < 20; i++ {
		s.Step()
	}
	firstLast := s.Last()

	s.Reset(0)
	if s.Layout() != first {
		t.Fatal("reset with config seed changed the layout")
	}
	for i := 0; i < 20; i++ {
		s.Step()
	}
	if s.Last() != firstLast {
		t.Fatalf("replay diverged: %+v vs %+v", s.Last(), firstLast)
	}
	if s.Layout().Count(reactor.KindUraniumCell) != s.Reactor().UraniumCells() {
		t.Fatal("layout and reactor disagree on fuel count")
	}
}

func TestPlaceOverridesLayout(t *testing.T) {
	s, err := New(FromMap(map[string]string{"layout": singleCell, "place": "0=empty,1=overclocked"}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Layout()[0] != reactor.KindNone || s.Layout()[1] != reactor.KindOverclockedHeatVent {
		t.Fatalf("placement not applied:\n%s", s.Layout())
	}
}

func TestBadConfig(t *testing.T) {
	if _, err := New(FromMap(map[string]string{"layout": "UUU"})); !errors.Is(err, layout.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if _, err := New(FromMap(map[string]string{"place": "0=uranium_cel"})); !errors.Is(err, reactor.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRegistered(t *testing.T) {
	f, err := core.Lookup("reactor")
	if err != nil {
		t.Fatal(err)
	}
	sim, err := f(map[string]string{"layout": singleCell})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 9, H: 6}) || len(sim.Cells()) != 54 {
		t.Fatalf("unexpected size %+v", sim.Size())
	}
	pp, ok := sim.(core.PaletteProvider)
	if !ok || len(pp.Palette()) != 5*kindCodes {
		t.Fatal("expected a palette covering every tier")
	}
}
