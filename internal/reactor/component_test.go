package reactor

import (
	"errors"
	"testing"
)

func TestCatalogValues(t *testing.T) {
	cases := []struct {
		kind     Kind
		removal  int
		source   HeatSource
		dur      int
		required int
	}{
		{KindHeatVent, 6, SourceSelf, 1000, 0},
		{KindReactorHeatVent, 5, SourceHull, 1000, 0},
		{KindOverclockedHeatVent, 20, SourceHull, 1000, 36},
		{KindHeatExchanger, 0, SourceNone, 1000, 0},
	}
	for _, tc := range cases {
		spec, err := SpecFor(tc.kind)
		if err != nil {
			t.Fatalf("%s: %v", tc.kind, err)
		}
		if spec.Removal != tc.removal || spec.Source != tc.source || spec.Durability != tc.dur || spec.RequiredInput != tc.required {
			t.Fatalf("%s: unexpected spec %+v", tc.kind, spec)
		}
	}
}

func TestSpecForUnknownKind(t *testing.T) {
	for _, k := range []Kind{KindNone, Kind(200)} {
		if _, err := SpecFor(k); !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("kind %d: expected ErrUnknownKind, got %v", k, err)
		}
		if _, err := NewComponent(k); !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("NewComponent(%d): expected ErrUnknownKind, got %v", k, err)
		}
	}
}

func TestFactoriesCreateUndamaged(t *testing.T) {
	for _, kind := range Kinds() {
		c, err := NewComponent(kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if c.Kind() != kind || c.Empty() {
			t.Fatalf("%s: wrong kind %s", kind, c.Kind())
		}
		if c.Heat() != 0 {
			t.Fatalf("%s: expected zero heat, got %d", kind, c.Heat())
		}
		if c.Durability() <= 0 || c.Durability() != c.MaxDurability() {
			t.Fatalf("%s: durability %d/%d", kind, c.Durability(), c.MaxDurability())
		}
	}
	named := map[Kind]Component{
		KindUraniumCell:         NewUraniumCell(),
		KindHeatVent:            NewHeatVent(),
		KindReactorHeatVent:     NewReactorHeatVent(),
		KindOverclockedHeatVent: NewOverclockedHeatVent(),
		KindHeatExchanger:       NewHeatExchanger(),
		KindCoolantCell:         NewCoolantCell(),
		KindDepletedUraniumCell: NewDepletedUraniumCell(),
	}
	for kind, c := range named {
		if c.Kind() != kind {
			t.Fatalf("constructor for %s built %s", kind, c.Kind())
		}
	}
}

func TestOnlyUraniumIsFuel(t *testing.T) {
	for _, kind := range Kinds() {
		if kind.IsFuel() != (kind == KindUraniumCell) {
			t.Fatalf("%s: IsFuel=%v", kind, kind.IsFuel())
		}
	}
	if KindNone.IsFuel() {
		t.Fatal("empty slot must not be fuel")
	}
}

func TestComponentCopiesClamp(t *testing.T) {
	v := NewHeatVent().WithHeat(-5)
	if v.Heat() != 0 {
		t.Fatalf("expected heat floored at 0, got %d", v.Heat())
	}
	v = v.WithDurability(5000)
	if v.Durability() != v.MaxDurability() {
		t.Fatalf("durability must not exceed max, got %d", v.Durability())
	}
	v = v.WithDurability(-1)
	if v.Durability() != 0 || v.MaxDurability() != 1000 {
		t.Fatalf("unexpected durability %d/%d", v.Durability(), v.MaxDurability())
	}
	if !Empty.WithHeat(10).Empty() || Empty.WithHeat(10).Heat() != 0 {
		t.Fatal("empty slot must stay empty")
	}
}

func TestKindString(t *testing.T) {
	if KindReactorHeatVent.String() != "reactor_heat_vent" {
		t.Fatalf("got %q", KindReactorHeatVent.String())
	}
	if KindNone.String() != "empty" {
		t.Fatalf("got %q", KindNone.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Fatalf("got %q", Kind(99).String())
	}
}
