package layout

import (
	"errors"
	"strings"
	"testing"

	"reactor-sim/internal/reactor"
)

const sample = `
# corner cluster with hull vents
UUR......
UUR......
RR.......
....V.X..
.......OC
D........
`

func TestParseAndFormat(t *testing.T) {
	l, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Count(reactor.KindUraniumCell); got != 4 {
		t.Fatalf("expected 4 fuel cells, got %d", got)
	}
	if got := l.Count(reactor.KindReactorHeatVent); got != 4 {
		t.Fatalf("expected 4 hull vents, got %d", got)
	}
	if l[43] != reactor.KindOverclockedHeatVent || l[44] != reactor.KindCoolantCell || l[45] != reactor.KindDepletedUraniumCell {
		t.Fatalf("unexpected kinds at 43..45: %s %s %s", l[43], l[44], l[45])
	}

	again, err := Parse(l.String())
	if err != nil {
		t.Fatal(err)
	}
	if again != l {
		t.Fatalf("format round trip changed layout:\n%s", again)
	}
}

func TestParseAllowsSpacedRows(t *testing.T) {
	src := strings.Repeat("U . . . . . . . .\n", 6)
	l, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if l.Count(reactor.KindUraniumCell) != 6 {
		t.Fatalf("expected 6 cells, got %d", l.Count(reactor.KindUraniumCell))
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"too few rows":  strings.Repeat(".........\n", 5),
		"too many rows": strings.Repeat(".........\n", 7),
		"short row":     strings.Repeat(".........\n", 5) + "........\n",
		"long row":      strings.Repeat(".........\n", 5) + "..........\n",
		"bad glyph":     strings.Repeat(".........\n", 5) + "....Z....\n",
	}
	for name, src := range cases {
		if _, err := Parse(src); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
	_, err := Parse(strings.Repeat(".........\n", 2) + "..Q......\n")
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestApplyAndCapture(t *testing.T) {
	l, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	r := reactor.New(reactor.Location{})
	if err := r.SetSlot(53, reactor.NewUraniumCell()); err != nil {
		t.Fatal(err)
	}
	if err := l.Apply(r); err != nil {
		t.Fatal(err)
	}
	if r.UraniumCells() != 4 {
		t.Fatalf("expected 4 fuel cells after apply, got %d", r.UraniumCells())
	}
	st, _ := r.State()
	if FromSnapshot(st) != l {
		t.Fatal("captured layout differs from applied layout")
	}
	for i, c := range st.Slots {
		if !c.Empty() && c.Durability() != c.MaxDurability() {
			t.Fatalf("slot %d not fresh", i)
		}
	}
}

func TestLookupKind(t *testing.T) {
	cases := map[string]reactor.Kind{
		"uranium_cell":          reactor.KindUraniumCell,
		"Uranium Cell":          reactor.KindUraniumCell,
		"u":                     reactor.KindUraniumCell,
		"hull-heat-vent":        reactor.KindReactorHeatVent,
		"reactor_heat_vent":     reactor.KindReactorHeatVent,
		"overclocked_heat_vent": reactor.KindOverclockedHeatVent,
		"vent":                  reactor.KindHeatVent,
		"exchanger":             reactor.KindHeatExchanger,
		".":                     reactor.KindNone,
	}
	for name, want := range cases {
		got, err := LookupKind(name)
		if err != nil {
			t.Fatalf("%q: %v", name, err)
		}
		if got != want {
			t.Fatalf("%q: got %s, want %s", name, got, want)
		}
	}
}

func TestLookupKindSuggests(t *testing.T) {
	_, err := LookupKind("uranium_cel")
	if !errors.Is(err, reactor.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "uranium_cell"`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
	_, err = LookupKind("plutonium_rod_assembly")
	if !errors.Is(err, reactor.ErrUnknownKind) || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("expected plain unknown error, got %v", err)
	}
}

func TestParseAssignments(t *testing.T) {
	as, err := ParseAssignments("0=uranium_cell, 1=hull_vent,53=O")
	if err != nil {
		t.Fatal(err)
	}
	want := []Assignment{
		{0, reactor.KindUraniumCell},
		{1, reactor.KindReactorHeatVent},
		{53, reactor.KindOverclockedHeatVent},
	}
	if len(as) != len(want) {
		t.Fatalf("got %v", as)
	}
	for i := range want {
		if as[i] != want[i] {
			t.Fatalf("assignment %d: got %+v, want %+v", i, as[i], want[i])
		}
	}
	var l Layout
	l = l.With(as)
	if l[0] != reactor.KindUraniumCell || l[53] != reactor.KindOverclockedHeatVent {
		t.Fatalf("With did not apply assignments:\n%s", l)
	}

	for _, bad := range []string{"54=uranium", "x=uranium", "3", "2=unobtainium"} {
		if _, err := ParseAssignments(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
