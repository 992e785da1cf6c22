package grid

import "testing"

func TestInitClearsToAirAtAmbient(t *testing.T) {
	g := New(100, 100, 10, 20)
	if g.Width() != 10 || g.Height() != 10 {
		t.Fatalf("expected 10x10 grid, got %dx%d", g.Width(), g.Height())
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.IsEmpty(x, y) {
				t.Fatalf("cell (%d,%d) should be air after init", x, y)
			}
			if g.GetTemp(x, y) != 20 {
				t.Fatalf("cell (%d,%d) should be at ambient 20, got %v", x, y, g.GetTemp(x, y))
			}
		}
	}
}

func TestInitIsIdempotent(t *testing.T) {
	g := New(40, 40, 10, 20)
	g.SetCell(1, 1, 5, 500, 2)
	g.Init(40, 40, 10, 20)
	if !g.IsEmpty(1, 1) {
		t.Fatal("second Init call must clear previously set cells")
	}
}

func TestOutOfBoundsReadsReturnSafeDefaults(t *testing.T) {
	g := New(50, 50, 10, 22)
	if !g.IsEmpty(-1, -1) {
		t.Error("OOB read should report empty")
	}
	if g.Get(100, 100) != 0 {
		t.Error("OOB read should return air id 0")
	}
	if g.GetTemp(100, 100) != 22 {
		t.Error("OOB read should return ambient temperature")
	}
}

func TestOutOfBoundsWritesAreNoOps(t *testing.T) {
	g := New(50, 50, 10, 20)
	g.SetCell(-5, -5, 9, 900, 5)
	g.SetTemp(999, 999, 500)
	// Nothing should panic, and no in-bounds state should change.
	if !g.IsEmpty(0, 0) {
		t.Error("OOB write must not affect in-bounds cells")
	}
}

func TestFillRectNormalizesCorners(t *testing.T) {
	g := New(50, 50, 10, 20)
	var visited int
	g.FillRect(3, 3, 1, 1, func(x, y int) { visited++ })
	if visited != 9 {
		t.Fatalf("expected 3x3=9 cells visited regardless of corner order, got %d", visited)
	}
}

func TestCircleIncludesOnlyCellsWithinRadius(t *testing.T) {
	g := New(100, 100, 1, 20)
	var count int
	g.Circle(50, 50, 5, func(x, y int) { count++ })
	if count == 0 {
		t.Fatal("expected at least the center cell")
	}
	// Every visited cell must satisfy the Euclidean bound.
	g.Circle(50, 50, 5, func(x, y int) {
		if DistSq(x, y, 50, 50) > 25 {
			t.Fatalf("cell (%d,%d) outside radius 5 was visited", x, y)
		}
	})
}

func TestPixelToCell(t *testing.T) {
	g := New(100, 100, 10, 20)
	x, y := g.PixelToCell(25, 35)
	if x != 2 || y != 3 {
		t.Fatalf("expected (2,3), got (%d,%d)", x, y)
	}
}
