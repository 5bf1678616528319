package reactorsim

import (
	"strconv"

	"reactor-sim/internal/core"
	"reactor-sim/internal/reactor"
)

// Parameters reports reactor readouts grouped for the HUD and terminal panel.
func (s *Sim) Parameters() core.ParameterSnapshot {
	last := s.last
	fuel := 0
	if s.r != nil {
		fuel = s.r.UraniumCells()
	}
	groups := []core.ParameterGroup{
		{
			Name: "Reactor",
			Params: []core.Parameter{
				int64Param("hull_heat", "Hull heat", last.HullHeat),
				int64Param("peak_hull_heat", "Peak hull heat", s.peak),
				intParam("fuel_cells", "Fuel cells", fuel),
				int64Param("tick", "Tick", int64(last.Tick)),
			},
		},
		{
			Name: "Output",
			Params: []core.Parameter{
				intParam("energy", "EU/t", last.Energy),
				intParam("heat", "Heat/t", last.Heat),
				int64Param("total_energy", "Total EU", s.total),
			},
		},
		{
			Name: "Hazards",
			Params: []core.Parameter{
				stringParam("tier", "Tier", last.Tier().String()),
				boolParam("fire", "Fire", last.Fire),
				boolParam("evaporate", "Evaporate", last.Evaporate),
				boolParam("radiation", "Radiation", last.Radiation),
				boolParam("meltdown", "Meltdown", last.Meltdown),
				intParam("explosion_force", "Explosion", last.ExplosionForce),
			},
			Summary: "meltdown at " + strconv.FormatInt(reactor.MeltdownThreshold, 10),
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
