package layout

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"reactor-sim/internal/reactor"
)

var aliases = map[string]reactor.Kind{
	"uranium":          reactor.KindUraniumCell,
	"fuel":             reactor.KindUraniumCell,
	"vent":             reactor.KindHeatVent,
	"basic_vent":       reactor.KindHeatVent,
	"basic_heat_vent":  reactor.KindHeatVent,
	"hull_vent":        reactor.KindReactorHeatVent,
	"hull_heat_vent":   reactor.KindReactorHeatVent,
	"reactor_vent":     reactor.KindReactorHeatVent,
	"overclocked":      reactor.KindOverclockedHeatVent,
	"overclocked_vent": reactor.KindOverclockedHeatVent,
	"exchanger":        reactor.KindHeatExchanger,
	"heat_exchanger":   reactor.KindHeatExchanger,
	"coolant":          reactor.KindCoolantCell,
	"depleted":         reactor.KindDepletedUraniumCell,
	"depleted_uranium": reactor.KindDepletedUraniumCell,
	"empty":            reactor.KindNone,
	"none":             reactor.KindNone,
}

type namedKind struct {
	name string
	kind reactor.Kind
}

var names = func() []namedKind {
	out := make([]namedKind, 0, len(aliases)+len(reactor.Kinds()))
	for _, k := range reactor.Kinds() {
		out = append(out, namedKind{name: k.String(), kind: k})
	}
	for a, k := range aliases {
		out = append(out, namedKind{name: a, kind: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}()

func normaliseName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}

// LookupKind resolves a catalog name, alias or single glyph to a kind.
// Unknown names fail with reactor.ErrUnknownKind and, when a close match
// exists, a suggestion.
func LookupKind(name string) (reactor.Kind, error) {
	n := normaliseName(name)
	if len([]rune(n)) == 1 {
		if k, ok := glyphKinds[[]rune(strings.ToUpper(n))[0]]; ok {
			return k, nil
		}
	}
	for _, nk := range names {
		if nk.name == n {
			return nk.kind, nil
		}
	}
	if s := Suggest(name); len(s) > 0 {
		return reactor.KindNone, fmt.Errorf("component %q (did you mean %q?): %w", name, s[0], reactor.ErrUnknownKind)
	}
	return reactor.KindNone, fmt.Errorf("component %q: %w", name, reactor.ErrUnknownKind)
}

// Suggest returns known names within edit distance of name, closest first.
func Suggest(name string) []string {
	n := normaliseName(name)
	if len(n) < 3 {
		return nil
	}
	type cand struct {
		name string
		dist int
	}
	var cands []cand
	for _, nk := range names {
		d := levenshtein.ComputeDistance(n, nk.name)
		if d > levenshteinLimit(len(nk.name)) {
			continue
		}
		cands = append(cands, cand{nk.name, d})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.name)
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Assignment places one kind into one slot.
type Assignment struct {
	Slot int
	Kind reactor.Kind
}

// ParseAssignments reads a comma separated list of slot=name pairs, for
// example "0=uranium_cell,1=hull_vent".
func ParseAssignments(s string) ([]Assignment, error) {
	var out []Assignment
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		slotStr, name, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("assignment %q: want slot=name: %w", part, ErrMalformed)
		}
		slot, err := strconv.Atoi(strings.TrimSpace(slotStr))
		if err != nil {
			return nil, fmt.Errorf("assignment %q: %w", part, err)
		}
		if !reactor.Grid.Valid(slot) {
			return nil, fmt.Errorf("assignment %q: %w", part, reactor.ErrSlotOutOfRange)
		}
		kind, err := LookupKind(name)
		if err != nil {
			return nil, fmt.Errorf("assignment %q: %w", part, err)
		}
		out = append(out, Assignment{Slot: slot, Kind: kind})
	}
	return out, nil
}

// With returns a copy of the layout with the assignments applied in order.
func (l Layout) With(as []Assignment) Layout {
	for _, a := range as {
		if reactor.Grid.Valid(a.Slot) {
			l[a.Slot] = a.Kind
		}
	}
	return l
}
