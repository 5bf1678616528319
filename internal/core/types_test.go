package core

import (
	"strings"
	"testing"
)

type nopSim struct{}

func (nopSim) Name() string   { return "nop" }
func (nopSim) Size() Size     { return Size{W: 1, H: 1} }
func (nopSim) Reset(int64)    {}
func (nopSim) Step()          {}
func (nopSim) Cells() []uint8 { return []uint8{0} }

func TestRegisterAndLookup(t *testing.T) {
	Register("nop-test", func(map[string]string) (Sim, error) { return nopSim{}, nil })
	Register("", func(map[string]string) (Sim, error) { return nopSim{}, nil })
	Register("nil-test", nil)

	f, err := Lookup("nop-test")
	if err != nil {
		t.Fatal(err)
	}
	sim, err := f(nil)
	if err != nil || sim.Name() != "nop" {
		t.Fatalf("factory returned %v, %v", sim, err)
	}
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name must not register")
	}
	if _, ok := Sims()["nil-test"]; ok {
		t.Fatal("nil factory must not register")
	}
	_, err = Lookup("missing")
	if err == nil || !strings.Contains(err.Error(), "nop-test") {
		t.Fatalf("expected error listing known sims, got %v", err)
	}
}

func TestParameterSnapshotFind(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "a", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "b", Value: "2"}}},
	}}
	if p, ok := s.Find("b"); !ok || p.Value != "2" {
		t.Fatalf("Find(b) = %+v, %v", p, ok)
	}
	if _, ok := s.Find("c"); ok {
		t.Fatal("Find(c) should miss")
	}
}
