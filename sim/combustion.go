package sim

import (
	"math"

	"github.com/pthm-cable/grainfall/grid"
	"github.com/pthm-cable/grainfall/material"
)

// ignite turns (x,y) into fire and propagates combustion energy to its
// four neighbors, per spec.md §4.5. If the material is explosive, it
// detonates instead of burning.
func (w *World) ignite(x, y int, m *material.Material) {
	if m.Explosive {
		w.Explode(x*w.grid.CellSize(), y*w.grid.CellSize(), int(m.ExplosionRadius), m.ExplosionPower)
		return
	}

	w.events.Ignitions++
	fireID := w.resolveID("fire")
	fireLife := w.lifetimeFor(fireID)
	w.grid.SetCell(x, y, uint8(fireID), w.params.FireTemperature, fireLife)
	w.refreshHeatSource(w.grid.Index(x, y), w.params.FireTemperature)

	energy := m.CombustionEnergy
	width, height := w.grid.Width(), w.grid.Height()
	for _, n := range neighbors4(x, y, width, height) {
		nx, ny := n%width, n/width
		cur := w.grid.GetTemp(nx, ny)
		added := cur + energy*w.params.CombustionToNeighborScale
		w.grid.SetTemp(nx, ny, added)
		w.refreshHeatSource(n, added)
	}
}

// lifetimeFor seeds a lifetime from a material's [min,max] range, or 0
// if it has none.
func (w *World) lifetimeFor(id material.ID) float32 {
	mm := w.reg.GetByID(id)
	if mm.Lifetime == nil {
		return 0
	}
	return mm.Lifetime.Min + w.rng.Float32()*(mm.Lifetime.Max-mm.Lifetime.Min)
}

// debris is one cell captured by an explosion's outward eject sweep,
// per spec.md §4.5 step 1, before the disk is cleared.
type debris struct {
	id         material.ID
	temp, life float32
	tx, ty     int
}

// Explode detonates at world pixel (cx,cy) with the given radius (in
// pixels) and power, per spec.md §4.5. Order of operations matters:
// collect every debris cell and its outward target first, then clear
// and reheat the whole disk, then scatter the collected debris onto
// their targets (overwriting), and finally fill the inner fire disk —
// this prevents debris from being re-collected within the same blast.
func (w *World) Explode(cx, cy, radius int, power float32) {
	w.events.Explosions++
	gcx, gcy := w.grid.PixelToCell(cx, cy)
	gr := radius / w.grid.CellSize()
	if gr < 1 {
		gr = 1
	}

	var scattered []debris
	w.grid.Circle(gcx, gcy, gr, func(x, y int) {
		id := material.ID(w.grid.Get(x, y))
		if id == material.AirID {
			return
		}
		dist := grid.Dist(x, y, gcx, gcy)
		frac := 1 - dist/float64(gr)
		if frac < 0 {
			frac = 0
		}
		velocity := float32(frac) * power * w.params.ExplosionVelocityScale
		angle := math.Atan2(float64(y-gcy), float64(x-gcx))
		tx := x + int(math.Round(math.Cos(angle)*float64(velocity)))
		ty := y + int(math.Round(math.Sin(angle)*float64(velocity)))
		scattered = append(scattered, debris{
			id:   id,
			temp: w.grid.GetTemp(x, y),
			life: w.grid.GetLifetime(x, y),
			tx:   tx,
			ty:   ty,
		})
	})

	w.grid.Circle(gcx, gcy, gr, func(x, y int) {
		w.grid.Clear(x, y)
		temp := w.params.ExplosionMinTemp + w.rng.Float32()*(w.params.ExplosionMaxTemp-w.params.ExplosionMinTemp)
		w.grid.SetTemp(x, y, temp)
		w.refreshHeatSource(w.grid.Index(x, y), temp)
	})

	for _, d := range scattered {
		if !w.grid.InBounds(d.tx, d.ty) {
			continue
		}
		w.grid.SetCell(d.tx, d.ty, uint8(d.id), d.temp, d.life)
		w.refreshHeatSource(w.grid.Index(d.tx, d.ty), d.temp)
	}

	fireR := int(float32(gr) * w.params.ExplosionFireFraction)
	fireID := w.resolveID("fire")
	w.grid.Circle(gcx, gcy, fireR, func(x, y int) {
		w.grid.SetCell(x, y, uint8(fireID), w.params.FireTemperature, w.lifetimeFor(fireID))
		w.refreshHeatSource(w.grid.Index(x, y), w.params.FireTemperature)
	})
}

