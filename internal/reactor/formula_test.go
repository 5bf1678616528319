package reactor

import "testing"

func TestFormulasInRange(t *testing.T) {
	wantEU := []int{5, 10, 15, 20, 25}
	wantHeat := []int{4, 12, 24, 40, 60}
	for n := 0; n <= MaxAdjacency; n++ {
		if got := EnergyPerCell(n); got != wantEU[n] {
			t.Fatalf("EnergyPerCell(%d) = %d, want %d", n, got, wantEU[n])
		}
		if got := HeatPerCell(n); got != wantHeat[n] {
			t.Fatalf("HeatPerCell(%d) = %d, want %d", n, got, wantHeat[n])
		}
	}
}

func TestFormulasClampInput(t *testing.T) {
	for _, n := range []int{-1, -5, -1 << 30} {
		if EnergyPerCell(n) != EnergyPerCell(0) || HeatPerCell(n) != HeatPerCell(0) {
			t.Fatalf("n=%d should behave like 0", n)
		}
	}
	for _, n := range []int{5, 9, 1 << 30} {
		if EnergyPerCell(n) != EnergyPerCell(4) || HeatPerCell(n) != HeatPerCell(4) {
			t.Fatalf("n=%d should behave like 4", n)
		}
	}
}

func TestHeatOutgrowsEnergy(t *testing.T) {
	for n := 1; n <= MaxAdjacency; n++ {
		energyGrowth := float64(EnergyPerCell(n)) / float64(EnergyPerCell(n-1))
		heatGrowth := float64(HeatPerCell(n)) / float64(HeatPerCell(n-1))
		if heatGrowth <= energyGrowth {
			t.Fatalf("n=%d: heat growth %.2f should exceed energy growth %.2f", n, heatGrowth, energyGrowth)
		}
	}
}
