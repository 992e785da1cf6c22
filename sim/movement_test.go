package sim

import (
	"testing"

	"github.com/pthm-cable/grainfall/material"
)

func TestTryMoveIntoAirRelocatesCell(t *testing.T) {
	w := New(50, 50, 1, WithSeed(1))
	sandID := w.reg.IDOf("sand")
	w.Set(2, 2, "sand")
	if ok := w.tryMove(2, 2, 0, 1); !ok {
		t.Fatal("expected move into empty cell below to succeed")
	}
	if material.ID(w.grid.Get(2, 3)) != sandID {
		t.Fatal("sand should have relocated to (2,3)")
	}
	if !w.grid.IsEmpty(2, 2) {
		t.Fatal("source cell should now be air")
	}
}

func TestTryMoveDeniedAgainstImmovable(t *testing.T) {
	w := New(50, 50, 1, WithSeed(1))
	w.Set(2, 2, "sand")
	w.Set(2, 3, "stone")
	if w.tryMove(2, 2, 0, 1) {
		t.Fatal("sand must not move into immovable stone")
	}
}

func TestTryMoveSwapsByDensity(t *testing.T) {
	w := New(50, 50, 1, WithSeed(1))
	w.Set(2, 2, "water")
	w.Set(2, 3, "oil")
	if !w.tryMove(2, 2, 0, 1) {
		t.Fatal("denser water should swap below less dense oil")
	}
	if w.reg.GetByID(material.ID(w.grid.Get(2, 3))).Name != "water" {
		t.Fatal("water should now occupy the lower cell")
	}
	if w.reg.GetByID(material.ID(w.grid.Get(2, 2))).Name != "oil" {
		t.Fatal("oil should have floated up to the former water cell")
	}
}

func TestTryMoveDeniedWhenNotDenser(t *testing.T) {
	w := New(50, 50, 1, WithSeed(1))
	w.Set(2, 2, "oil")
	w.Set(2, 3, "water")
	if w.tryMove(2, 2, 0, 1) {
		t.Fatal("less dense oil must not swap below denser water")
	}
}

func TestStepPowderSettlesToBottom(t *testing.T) {
	w := New(10, 60, 1, WithSeed(7))
	w.Set(5, 0, "sand")
	m := w.reg.GetByID(w.reg.IDOf("sand"))
	for i := 0; i < 200; i++ {
		for y := w.Height() - 2; y >= 0; y-- {
			for x := 0; x < w.Width(); x++ {
				if material.ID(w.grid.Get(x, y)) == w.reg.IDOf("sand") {
					w.stepPowder(x, y, m)
				}
			}
		}
	}
	foundOnFloor := false
	for x := 0; x < w.Width(); x++ {
		if material.ID(w.grid.Get(x, w.Height()-1)) == w.reg.IDOf("sand") {
			foundOnFloor = true
		}
	}
	if !foundOnFloor {
		t.Fatal("sand grain should have settled to the floor after many steps")
	}
}

func TestStepGasRisesWhenLighterThanAir(t *testing.T) {
	w := New(10, 60, 1, WithSeed(3))
	w.Set(5, 50, "smoke")
	m := w.reg.GetByID(w.reg.IDOf("smoke"))
	y := 50
	rose := false
	for i := 0; i < 100; i++ {
		var x int
		for gx := 0; gx < w.Width(); gx++ {
			if material.ID(w.grid.Get(gx, y)) == w.reg.IDOf("smoke") {
				x = gx
				break
			}
		}
		if w.stepGas(x, y, m) {
			// find new row
			for ny := 0; ny < w.Height(); ny++ {
				for nx := 0; nx < w.Width(); nx++ {
					if material.ID(w.grid.Get(nx, ny)) == w.reg.IDOf("smoke") {
						if ny < y {
							rose = true
						}
						y = ny
					}
				}
			}
		}
	}
	if !rose {
		t.Fatal("smoke should rise above its starting row at least once")
	}
}

func TestRefreshHeatSourceTracksThreshold(t *testing.T) {
	w := New(20, 20, 1, WithSeed(1))
	idx := w.grid.Index(1, 1)
	w.refreshHeatSource(idx, w.params.Ambient+100)
	if _, ok := w.heatSources[idx]; !ok {
		t.Fatal("hot cell should be tracked as a heat source")
	}
	w.refreshHeatSource(idx, w.params.Ambient)
	if _, ok := w.heatSources[idx]; ok {
		t.Fatal("cooled cell should be removed from heat sources")
	}
}
