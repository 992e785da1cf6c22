package sim

import "github.com/pthm-cable/grainfall/material"

// randDir returns -1 or +1 with equal probability.
func (w *World) randDir() int {
	if w.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// tryMove attempts to move or swap the cell at (sx,sy) into
// (sx+dx,sy+dy), per spec.md §4.3's "Move primitive". Returns whether
// the attempt succeeded. Exactly one cell's contents relocate on
// success — no field is ever duplicated.
func (w *World) tryMove(sx, sy, dx, dy int) bool {
	tx, ty := sx+dx, sy+dy
	if !w.grid.InBounds(tx, ty) {
		return false
	}

	srcID := material.ID(w.grid.Get(sx, sy))
	dstID := material.ID(w.grid.Get(tx, ty))

	if dstID == material.AirID {
		temp := w.grid.GetTemp(sx, sy)
		life := w.grid.GetLifetime(sx, sy)
		w.grid.SetCell(tx, ty, uint8(srcID), temp, life)
		w.grid.Clear(sx, sy)
		w.refreshHeatSource(w.grid.Index(tx, ty), temp)
		w.refreshHeatSource(w.grid.Index(sx, sy), w.params.Ambient)
		return true
	}

	dstMat := w.reg.GetByID(dstID)
	if dstMat.Immovable {
		return false
	}

	srcMat := w.reg.GetByID(srcID)
	if srcMat.Density <= dstMat.Density {
		return false
	}

	srcTemp, srcLife := w.grid.GetTemp(sx, sy), w.grid.GetLifetime(sx, sy)
	dstTemp, dstLife := w.grid.GetTemp(tx, ty), w.grid.GetLifetime(tx, ty)
	w.grid.SetCell(sx, sy, uint8(dstID), dstTemp, dstLife)
	w.grid.SetCell(tx, ty, uint8(srcID), srcTemp, srcLife)
	w.refreshHeatSource(w.grid.Index(sx, sy), dstTemp)
	w.refreshHeatSource(w.grid.Index(tx, ty), srcTemp)
	return true
}

// refreshHeatSource re-evaluates whether idx belongs in the working
// heat-source set after a mutation. Entry uses the Glossary's ambient
// + 50 °C threshold (spec.md §4.2's `set`/§4.4 step 2); once a member,
// the cell is only pruned once it cools below the looser ambient + 30
// °C working-set bound (spec.md §4.4), so a cell cooling through the
// 30-50 °C band stays in the set rather than flickering in and out.
func (w *World) refreshHeatSource(idx int, temp float32) {
	switch {
	case temp > w.params.Ambient+w.params.SeedSourceDelta:
		w.heatSources[idx] = struct{}{}
	case temp <= w.params.Ambient+w.params.HeatSourceDelta:
		delete(w.heatSources, idx)
	}
}

// stepPowder runs the powder kernel for (x,y), per spec.md §4.3.
func (w *World) stepPowder(x, y int, m *material.Material) bool {
	if w.tryMove(x, y, 0, 1) {
		return true
	}
	if w.rng.Float32() < 1-m.Friction {
		d := w.randDir()
		if w.tryMove(x, y, d, 1) {
			return true
		}
		return w.tryMove(x, y, -d, 1)
	}
	return false
}

// stepLiquid runs the liquid kernel for (x,y), per spec.md §4.3.
func (w *World) stepLiquid(x, y int, m *material.Material) bool {
	if w.tryMove(x, y, 0, 1) {
		return true
	}
	d := w.randDir()
	if w.tryMove(x, y, d, 1) {
		return true
	}
	if w.tryMove(x, y, -d, 1) {
		return true
	}
	if w.rng.Float32() < 1-m.Viscosity {
		d2 := w.randDir()
		if w.tryMove(x, y, d2, 0) {
			return true
		}
		return w.tryMove(x, y, -d2, 0)
	}
	return false
}

// stepGas runs the gas kernel for (x,y), per spec.md §4.3.
func (w *World) stepGas(x, y int, m *material.Material) bool {
	moved := false
	if m.Density < 0 {
		if w.tryMove(x, y, 0, -1) {
			moved = true
		} else {
			d := w.randDir()
			if w.tryMove(x, y, d, -1) {
				moved = true
			} else if w.tryMove(x, y, -d, -1) {
				moved = true
			}
		}
	} else {
		if w.tryMove(x, y, 0, 1) {
			moved = true
		}
	}
	if !moved && w.rng.Float32() < 0.4 {
		d := w.randDir()
		moved = w.tryMove(x, y, d, 0)
	}
	return moved
}

// stepMovement dispatches (x,y) to the kernel matching its material's
// state. Solids never move here (spec.md §4.7c).
func (w *World) stepMovement(x, y int, m *material.Material) bool {
	switch m.State {
	case material.Powder:
		return w.stepPowder(x, y, m)
	case material.Liquid:
		return w.stepLiquid(x, y, m)
	case material.Gas:
		return w.stepGas(x, y, m)
	default:
		return false
	}
}
