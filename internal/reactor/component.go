package reactor

import "fmt"

// Kind enumerates the component catalog.
type Kind uint8

const (
	KindNone Kind = iota
	KindUraniumCell
	KindHeatVent
	KindReactorHeatVent
	KindOverclockedHeatVent
	KindHeatExchanger
	KindCoolantCell
	KindDepletedUraniumCell
)

// HeatSource identifies where a component draws the heat it removes.
type HeatSource uint8

const (
	SourceNone HeatSource = iota
	SourceSelf
	SourceHull
)

// Spec is the static configuration of a component kind.
type Spec struct {
	Name          string
	Removal       int
	Source        HeatSource
	Durability    int
	RequiredInput int
	Fuel          bool
}

var catalog = map[Kind]Spec{
	KindUraniumCell:         {Name: "uranium_cell", Durability: 20000, Fuel: true},
	KindHeatVent:            {Name: "heat_vent", Removal: 6, Source: SourceSelf, Durability: 1000},
	KindReactorHeatVent:     {Name: "reactor_heat_vent", Removal: 5, Source: SourceHull, Durability: 1000},
	KindOverclockedHeatVent: {Name: "overclocked_heat_vent", Removal: 20, Source: SourceHull, Durability: 1000, RequiredInput: 36},
	KindHeatExchanger:       {Name: "component_heat_exchanger", Durability: 1000},
	KindCoolantCell:         {Name: "coolant_cell", Durability: 10000},
	KindDepletedUraniumCell: {Name: "depleted_uranium_cell", Durability: 1000},
}

// Kinds lists every catalog kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindUraniumCell,
		KindHeatVent,
		KindReactorHeatVent,
		KindOverclockedHeatVent,
		KindHeatExchanger,
		KindCoolantCell,
		KindDepletedUraniumCell,
	}
}

// SpecFor returns the catalog entry for kind.
func SpecFor(kind Kind) (Spec, error) {
	spec, ok := catalog[kind]
	if !ok {
		return Spec{}, fmt.Errorf("kind %d: %w", kind, ErrUnknownKind)
	}
	return spec, nil
}

// String returns the catalog name, or "empty" for KindNone.
func (k Kind) String() string {
	if k == KindNone {
		return "empty"
	}
	if spec, ok := catalog[k]; ok {
		return spec.Name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsFuel reports whether the kind produces energy and counts toward adjacency.
func (k Kind) IsFuel() bool { return catalog[k].Fuel }

// Component is one slot's contents. The zero value is an empty slot; non-empty
// components come only from the constructors below, so durability and
// maxDurability are always consistent.
type Component struct {
	kind          Kind
	heat          int
	durability    int
	maxDurability int
}

// Empty is the contents of an unoccupied slot.
var Empty = Component{}

// NewComponent creates an undamaged component of the given kind.
func NewComponent(kind Kind) (Component, error) {
	spec, err := SpecFor(kind)
	if err != nil {
		return Empty, err
	}
	return Component{kind: kind, durability: spec.Durability, maxDurability: spec.Durability}, nil
}

func mustComponent(kind Kind) Component {
	c, err := NewComponent(kind)
	if err != nil {
		panic(err)
	}
	return c
}

// NewUraniumCell returns a fresh uranium fuel cell.
func NewUraniumCell() Component { return mustComponent(KindUraniumCell) }

// NewHeatVent returns a fresh basic heat vent.
func NewHeatVent() Component { return mustComponent(KindHeatVent) }

// NewReactorHeatVent returns a fresh hull heat vent.
func NewReactorHeatVent() Component { return mustComponent(KindReactorHeatVent) }

// NewOverclockedHeatVent returns a fresh overclocked heat vent.
func NewOverclockedHeatVent() Component { return mustComponent(KindOverclockedHeatVent) }

// NewHeatExchanger returns a fresh component heat exchanger.
func NewHeatExchanger() Component { return mustComponent(KindHeatExchanger) }

// NewCoolantCell returns a fresh coolant cell.
func NewCoolantCell() Component { return mustComponent(KindCoolantCell) }

// NewDepletedUraniumCell returns a fresh depleted uranium cell.
func NewDepletedUraniumCell() Component { return mustComponent(KindDepletedUraniumCell) }

// Kind returns the component kind.
func (c Component) Kind() Kind { return c.kind }

// Empty reports whether the component represents an unoccupied slot.
func (c Component) Empty() bool { return c.kind == KindNone }

// Heat returns the heat stored inside the component itself.
func (c Component) Heat() int { return c.heat }

// Durability returns the remaining durability.
func (c Component) Durability() int { return c.durability }

// MaxDurability returns the durability the component was created with.
func (c Component) MaxDurability() int { return c.maxDurability }

// WithHeat returns a copy holding the given stored heat, floored at zero.
func (c Component) WithHeat(heat int) Component {
	if c.Empty() {
		return c
	}
	c.heat = max(0, heat)
	return c
}

// WithDurability returns a copy with durability clamped to [0, MaxDurability].
func (c Component) WithDurability(d int) Component {
	if c.Empty() {
		return c
	}
	c.durability = min(max(0, d), c.maxDurability)
	return c
}
