package sim

import "github.com/pthm-cable/grainfall/material"

// reactionStep inspects the 4-neighbors of (x,y) for the property-driven
// reactions spec.md §4.6 names explicitly: acid dissolving metal, and
// hydrogen igniting near heat. Rules fire from inside the movement pass
// for moving cells and from the solid-skip branch for solids, per §4.7c.
func (w *World) reactionStep(x, y int) {
	id := material.ID(w.grid.Get(x, y))
	if id == material.AirID {
		return
	}
	m := w.reg.GetByID(id)

	width, height := w.grid.Width(), w.grid.Height()
	for _, n := range neighbors4(x, y, width, height) {
		nx, ny := n%width, n/width
		nid := material.ID(w.grid.Get(nx, ny))
		nm := w.reg.GetByID(nid)
		w.tryAcidMetal(x, y, m, nx, ny, nm)
		w.tryHydrogenIgnite(x, y, m, nx, ny, nm)
	}
}

// tryAcidMetal replaces an acid cell adjacent to metal with hydrogen,
// releasing heat at the acid's own cell, per spec.md §4.6: "with 5%
// probability per adjacency-check, replace the acid cell with
// hydrogen; add +10 °C to it."
func (w *World) tryAcidMetal(ax, ay int, a *material.Material, bx, by int, b *material.Material) {
	if a.PH == nil || *a.PH >= 3 || !b.Metal {
		return
	}
	if w.rng.Float32() >= w.params.AcidMetalProb {
		return
	}
	w.events.AcidMetal++
	temp := w.grid.GetTemp(ax, ay) + w.params.AcidMetalHeat
	w.setCell(ax, ay, w.resolveID("hydrogen"), temp)
}

// tryHydrogenIgnite detonates hydrogen adjacent to a combustion-
// supporting neighbor once either side is hot enough, per spec.md
// §4.6: "one side is hydrogen, the other supports combustion, and at
// least one side exceeds 500 °C... trigger an explosion... and leave
// steam at 100 °C."
func (w *World) tryHydrogenIgnite(ax, ay int, a *material.Material, bx, by int, b *material.Material) {
	if a.Name != "hydrogen" || !b.SupportsCombustion {
		return
	}
	hotEnough := w.grid.GetTemp(ax, ay) >= w.params.HydrogenIgniteTemp || w.grid.GetTemp(bx, by) >= w.params.HydrogenIgniteTemp
	if !hotEnough {
		return
	}
	if w.rng.Float32() >= w.params.HydrogenIgniteProb {
		return
	}
	w.events.HydrogenIgnitions++
	w.Explode(ax*w.grid.CellSize(), ay*w.grid.CellSize(), int(w.params.HydrogenExplosionRadius), w.params.HydrogenExplosionPower)
	w.setCell(ax, ay, w.resolveID("steam"), 100)
}
