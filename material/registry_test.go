package material

import "testing"

func TestNewRegistryHasAirAtZero(t *testing.T) {
	r := NewRegistry()
	if r.Count() != 1 {
		t.Fatalf("expected 1 material (air), got %d", r.Count())
	}
	if r.IDOf("air") != AirID {
		t.Fatalf("expected air id %d, got %d", AirID, r.IDOf("air"))
	}
	if r.GetByID(AirID).Name != "air" {
		t.Fatalf("expected air record at id 0, got %q", r.GetByID(AirID).Name)
	}
}

func TestRegisterAssignsStableIDsAndUpdatesInPlace(t *testing.T) {
	r := NewRegistry()

	id1 := r.Register(Material{Name: "sand", Density: 1600})
	if id1 == AirID {
		t.Fatal("sand should not reuse the air id")
	}

	id2 := r.Register(Material{Name: "sand", Density: 1700})
	if id1 != id2 {
		t.Fatalf("re-registering an existing name must preserve its id: got %d and %d", id1, id2)
	}

	got := r.GetByID(id1)
	if got.Density != 1700 {
		t.Fatalf("expected updated density 1700, got %v", got.Density)
	}
}

func TestGetByIDUnknownReturnsAir(t *testing.T) {
	r := NewRegistry()
	m := r.GetByID(ID(250))
	if m.Name != "air" {
		t.Fatalf("unknown id must resolve to air, got %q", m.Name)
	}
}

func TestIDOfUnknownNameReturnsAir(t *testing.T) {
	r := NewRegistry()
	if id := r.IDOf("nonexistent"); id != AirID {
		t.Fatalf("unknown name must resolve to air id, got %d", id)
	}
}

func TestDefaultCatalogueIncludesMinimumSet(t *testing.T) {
	r := NewDefaultRegistry()
	required := []string{
		"air", "water", "ice", "steam", "sand", "glass", "stone", "lava",
		"obsidian", "dirt", "mud", "clay", "iron", "wood", "coal", "oil",
		"gunpowder", "fire", "smoke", "oxygen", "hydrogen", "methane",
		"co2", "acid", "salt", "sulfur",
	}
	for _, name := range required {
		if r.IDOf(name) == AirID && name != "air" {
			t.Errorf("default catalogue missing material %q", name)
		}
	}
}

func TestCatalogueEveryMaterialHasColor(t *testing.T) {
	r := NewDefaultRegistry()
	for _, name := range r.Names() {
		m := r.GetByID(r.IDOf(name))
		if len(m.Color) == 0 {
			t.Errorf("material %q has no color entries", name)
		}
	}
}

func TestWaterStoneLavaChain(t *testing.T) {
	r := NewDefaultRegistry()

	water := r.GetByID(r.IDOf("water"))
	if mp, ok := water.MeltingPointF(); !ok || mp != 0 {
		t.Errorf("water melting point must be 0, got %v ok=%v", mp, ok)
	}
	if bp, ok := water.BoilingPointF(); !ok || bp != 100 {
		t.Errorf("water boiling point must be 100, got %v ok=%v", bp, ok)
	}

	sand := r.GetByID(r.IDOf("sand"))
	if sand.LiquidForm != "glass" {
		t.Errorf("sand must melt into glass, got %q", sand.LiquidForm)
	}

	stone := r.GetByID(r.IDOf("stone"))
	if stone.LiquidForm != "lava" || stone.Density <= sand.Density {
		t.Errorf("stone must melt into lava and be denser than sand")
	}
}
