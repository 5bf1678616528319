package reactor

// Hull heat thresholds. Fire, evaporate and radiation trigger strictly above
// their value; meltdown triggers at or above it.
const (
	FireThreshold      int64 = 4000
	EvaporateThreshold int64 = 7000
	RadiationThreshold int64 = 8500
	MeltdownThreshold  int64 = 10000
)

// ExplosionForcePerCell scales the meltdown explosion by fuel cell count.
const ExplosionForcePerCell = 10

// Tier names the highest hazard reached.
type Tier uint8

const (
	TierNone Tier = iota
	TierFire
	TierEvaporate
	TierRadiation
	TierMeltdown
)

func (t Tier) String() string {
	switch t {
	case TierFire:
		return "fire"
	case TierEvaporate:
		return "evaporate"
	case TierRadiation:
		return "radiation"
	case TierMeltdown:
		return "meltdown"
	default:
		return "none"
	}
}

// Hazards holds one flag per threshold tier.
type Hazards struct {
	Fire      bool
	Evaporate bool
	Radiation bool
	Meltdown  bool
}

// EvaluateHazards compares hull heat against every threshold.
func EvaluateHazards(hull int64) Hazards {
	return Hazards{
		Fire:      hull > FireThreshold,
		Evaporate: hull > EvaporateThreshold,
		Radiation: hull > RadiationThreshold,
		Meltdown:  hull >= MeltdownThreshold,
	}
}

// Tier returns the highest active tier.
func (h Hazards) Tier() Tier {
	switch {
	case h.Meltdown:
		return TierMeltdown
	case h.Radiation:
		return TierRadiation
	case h.Evaporate:
		return TierEvaporate
	case h.Fire:
		return TierFire
	default:
		return TierNone
	}
}
