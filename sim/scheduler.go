package sim

import "github.com/pthm-cable/grainfall/material"

// Update advances the simulation by one tick, per spec.md §4.7:
//
//  1. Run the thermal pass (diffusion + state transitions).
//  2. Scan rows bottom-to-top; within a row, alternate scan direction
//     every tick to avoid a left/right movement bias.
//  3. For each non-air cell: decay lifetime and despawn/produce on
//     expiry; otherwise dispatch to its movement kernel (solids skip
//     movement but still run the reaction engine against neighbors).
//  4. Flip the scan direction for next tick.
func (w *World) Update(dt float32) {
	w.thermalPass(dt)

	height := w.grid.Height()
	width := w.grid.Width()

	start, step := 0, 1
	if w.scanDir < 0 {
		start, step = width-1, -1
	}

	for y := height - 1; y >= 0; y-- {
		for i, x := 0, start; i < width; i, x = i+1, x+step {
			id := material.ID(w.grid.Get(x, y))
			if id == material.AirID {
				continue
			}
			m := w.reg.GetByID(id)

			if m.HasLifetime() {
				if w.stepLifetime(x, y, m, dt) {
					continue
				}
			}

			w.stepMovement(x, y, m)
			w.reactionStep(x, y)
		}
	}

	w.scanDir = -w.scanDir
	w.tick++
}

// stepLifetime decays a cell's remaining lifetime and, on expiry,
// either produces its successor material or despawns to air, per
// spec.md §4.4's lifetime field / §3's Produces. Returns true if the
// cell was consumed this tick (movement should be skipped).
func (w *World) stepLifetime(x, y int, m *material.Material, dt float32) bool {
	remaining := w.grid.GetLifetime(x, y) - dt
	if remaining > 0 {
		w.grid.SetLifetime(x, y, remaining)
		return false
	}
	if m.Produces != "" {
		id := w.resolveID(m.Produces)
		w.setCell(x, y, id, w.grid.GetTemp(x, y))
	} else {
		w.clearCellGrid(x, y)
	}
	return true
}
