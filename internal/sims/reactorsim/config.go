package reactorsim

import (
	"strconv"
	"strings"

	"reactor-sim/internal/layout"
)

// Config controls how the reactor sim seeds its grid.
type Config struct {
	// Layout is a glyph layout. Rows may be separated by newlines or '/'.
	// When empty, a layout is generated from Seed.
	Layout string
	// Place holds slot=name assignments applied on top of the layout.
	Place string

	HullHeat int64
	Seed     int64

	Gen layout.GenParams
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed: 1337,
		Gen:  layout.DefaultGenParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["layout"]; ok {
		c.Layout = strings.ReplaceAll(v, "/", "\n")
	}
	if v, ok := cfg["place"]; ok {
		c.Place = v
	}
	if v, ok := cfg["hull_heat"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed >= 0 {
			c.HullHeat = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Gen.Density = parsed
		}
	}
	if v, ok := cfg["vent_ratio"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Gen.VentRatio = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Gen.Scale = parsed
		}
	}
	return c
}
