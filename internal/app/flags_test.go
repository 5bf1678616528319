package app

import (
	"flag"
	"testing"
)

func TestBindAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("reactor", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-seed", "7",
		"-set", "hull_heat=3000",
		"-set", "layout=U......../........./........./........./........./.........",
		"-set", "junk",
		"-set", "hull_heat = 4000",
	})
	if err != nil {
		t.Fatal(err)
	}
	got := cfg.Overrides()
	if got["hull_heat"] != "4000" {
		t.Fatalf("later override should win, got %q", got["hull_heat"])
	}
	if got["seed"] != "7" {
		t.Fatalf("seed flag not forwarded, got %q", got["seed"])
	}
	if _, ok := got["junk"]; ok {
		t.Fatal("entry without '=' should be skipped")
	}
	if len(cfg.Set) != 4 {
		t.Fatalf("expected 4 raw entries, got %d", len(cfg.Set))
	}
}

func TestExplicitSeedOverride(t *testing.T) {
	cfg := NewConfig()
	cfg.Set = KVList{"seed=99"}
	if got := cfg.Overrides()["seed"]; got != "99" {
		t.Fatalf("explicit seed override lost, got %q", got)
	}
}
