package sim

import "testing"

func TestIgniteTurnsCellToFireAndHeatsNeighbors(t *testing.T) {
	w := New(10, 10, 1, WithSeed(1))
	w.Set(5, 5, "wood")
	m := w.reg.GetByID(w.reg.IDOf("wood"))
	before := w.GetTemp(4, 5)
	w.ignite(5, 5, m)
	if w.Get(5, 5) != "fire" {
		t.Fatalf("expected ignited cell to become fire, got %q", w.Get(5, 5))
	}
	if w.GetTemp(4, 5) <= before {
		t.Fatal("neighbor should have been heated by combustion energy")
	}
}

func TestIgniteExplosiveDetonatesInstead(t *testing.T) {
	w := New(60, 60, 1, WithSeed(1))
	w.Set(30, 30, "gunpowder")
	m := w.reg.GetByID(w.reg.IDOf("gunpowder"))
	w.ignite(30, 30, m)
	if w.Get(30, 30) != "fire" && !w.IsEmpty(30, 30) {
		t.Fatalf("expected explosion center to be fire or cleared, got %q", w.Get(30, 30))
	}
}

func TestExplodeClearsOrIgnitesCellsNearCenter(t *testing.T) {
	w := New(100, 100, 1, WithSeed(42))
	w.Fill(30, 30, 70, 70, "stone")
	w.Explode(50, 50, 15, 100)

	var cleared, total int
	for y := 35; y <= 65; y++ {
		for x := 35; x <= 65; x++ {
			total++
			if w.IsEmpty(x, y) || w.Get(x, y) == "fire" {
				cleared++
			}
		}
	}
	if cleared == 0 {
		t.Fatal("explosion should clear or ignite some cells within its radius")
	}
}

func TestExplodeScattersDebrisOutward(t *testing.T) {
	w := New(100, 100, 1, WithSeed(7))
	w.Set(40, 50, "stone")
	w.Explode(50, 50, 20, 200)

	found := false
	for y := 20; y <= 80; y++ {
		for x := 20; x <= 80; x++ {
			if w.Get(x, y) == "stone" {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected the captured stone cell to land somewhere as scattered debris")
	}
}
