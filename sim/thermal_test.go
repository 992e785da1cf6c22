package sim

import (
	"testing"
)

func TestThermalPassRelaxesTowardAmbient(t *testing.T) {
	w := New(20, 20, 1, WithSeed(1))
	w.Set(5, 5, "stone", 500)
	for i := 0; i < 500; i++ {
		w.thermalPass(1)
	}
	temp := w.GetTemp(5, 5)
	if temp > 400 {
		t.Fatalf("expected stone to cool toward ambient over many ticks, still at %v", temp)
	}
}

func TestThermalPassConductsBetweenNeighbors(t *testing.T) {
	w := New(20, 20, 1, WithSeed(1))
	w.Set(5, 5, "iron", 500)
	w.Set(6, 5, "iron", 20)
	for i := 0; i < 20; i++ {
		w.thermalPass(1)
	}
	if w.GetTemp(6, 5) <= 20 {
		t.Fatal("hot neighbor should have conducted heat into the cooler cell")
	}
}

func TestStateTransitionIceMeltsAboveZero(t *testing.T) {
	w := New(10, 10, 1, WithSeed(1))
	w.Set(3, 3, "ice", -5)
	w.applyStateTransition(3, 3, 5)
	if w.Get(3, 3) != "water" {
		t.Fatalf("expected ice to melt into water above 0C, got %q", w.Get(3, 3))
	}
}

func TestStateTransitionWaterBoilsAboveHundred(t *testing.T) {
	w := New(10, 10, 1, WithSeed(1))
	w.Set(3, 3, "water", 50)
	w.applyStateTransition(3, 3, 150)
	if w.Get(3, 3) != "steam" {
		t.Fatalf("expected water to boil into steam above 100C, got %q", w.Get(3, 3))
	}
}

func TestStateTransitionWoodIgnitesAboveIgnitionPoint(t *testing.T) {
	w := New(10, 10, 1, WithSeed(1))
	w.Set(3, 3, "wood", 250)
	w.applyStateTransition(3, 3, 350)
	if w.Get(3, 3) != "fire" {
		t.Fatalf("expected wood to ignite into fire above its ignition point, got %q", w.Get(3, 3))
	}
}

func TestStateTransitionClampsTemperatureToTransitionPoint(t *testing.T) {
	w := New(10, 10, 1, WithSeed(1))
	w.Set(3, 3, "ice", -5)
	w.applyStateTransition(3, 3, 300)
	if w.Get(3, 3) != "water" {
		t.Fatalf("expected ice to melt into water, got %q", w.Get(3, 3))
	}
	if w.GetTemp(3, 3) != 0 {
		t.Fatalf("transition should clamp temperature to the melting point, got %v", w.GetTemp(3, 3))
	}
}

func TestStateTransitionIgnitionRequiresCombustionNeighbor(t *testing.T) {
	w := New(10, 10, 1, WithSeed(1))
	w.Fill(2, 2, 4, 4, "stone")
	w.Set(3, 3, "wood", 250)
	w.applyStateTransition(3, 3, 350)
	if w.Get(3, 3) != "wood" {
		t.Fatalf("wood fully embedded in stone should not ignite, got %q", w.Get(3, 3))
	}
}
