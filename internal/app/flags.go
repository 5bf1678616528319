package app

import (
	"flag"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Panel int
	Set   KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "reactor", Scale: 64, TPS: 20, Seed: 1337, Panel: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per reactor slot")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Panel, "panel", c.Panel, "width of the parameter panel, 0 hides it")
	fs.Var(&c.Set, "set", "sim option in key=value form (repeatable)")
}

// Overrides returns the -set options as a map, adding the seed unless one was
// given explicitly.
func (c *Config) Overrides() map[string]string {
	out := c.Set.Map()
	if _, ok := out["seed"]; !ok {
		out["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return out
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs. Entries without '=' are skipped and later
// keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}
