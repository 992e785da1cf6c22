package sim

import "github.com/pthm-cable/grainfall/material"

// thermalPass runs one tick of heat diffusion and state-transition
// dispatch, per spec.md §4.4. It only touches cells in the heat-source
// working set and the 5×5 neighborhood around each, widening the set
// as heat spreads.
func (w *World) thermalPass(dt float32) {
	width, height := w.grid.Width(), w.grid.Height()
	if len(w.tempBuf) != width*height {
		w.tempBuf = make([]float32, width*height)
	}
	for i := range w.tempBuf {
		w.tempBuf[i] = w.grid.GetTempAt(i)
	}

	active := make(map[int]struct{}, len(w.heatSources)*24)
	for idx := range w.heatSources {
		active[idx] = struct{}{}
		x, y := idx%width, idx/width
		for _, n := range neighbors24(x, y, width, height) {
			active[n] = struct{}{}
		}
	}

	type delta struct {
		idx int
		val float32
	}
	var deltas []delta

	for idx := range active {
		x, y := idx%width, idx/width
		id := material.ID(w.grid.Get(x, y))
		m := w.reg.GetByID(id)
		temp := w.tempBuf[idx]

		var d float32
		if m.HeatEmission != 0 {
			d += m.HeatEmission * w.params.HeatEmissionRate * dt
		}
		for _, n := range neighbors4(x, y, width, height) {
			nx, ny := n%width, n/width
			nid := material.ID(w.grid.Get(nx, ny))
			nm := w.reg.GetByID(nid)
			nTemp := w.tempBuf[n]
			avgK := (m.ThermalConductivity + nm.ThermalConductivity) / 2
			d += (nTemp - temp) * avgK * w.params.ConductionFactor * dt
		}
		d += -(temp - w.params.Ambient) * w.params.AmbientRelaxRate * dt

		deltas = append(deltas, delta{idx, d})
	}

	for _, dl := range deltas {
		newTemp := w.tempBuf[dl.idx] + dl.val
		x, y := dl.idx%width, dl.idx/width
		w.grid.SetTempAt(dl.idx, newTemp)
		w.refreshHeatSource(dl.idx, newTemp)
		w.applyStateTransition(x, y, newTemp)
	}
}

// applyStateTransition dispatches the state-change order from
// spec.md §4.4: boil, melt, freeze, condense, then ignite, or leave
// alone. First match wins.
func (w *World) applyStateTransition(x, y int, temp float32) {
	id := material.ID(w.grid.Get(x, y))
	if id == material.AirID {
		return
	}
	m := w.reg.GetByID(id)

	if bp, ok := m.BoilingPointF(); ok && temp >= bp && m.GasForm != "" {
		w.transitionTo(x, y, m.GasForm, bp)
		return
	}
	if mp, ok := m.MeltingPointF(); ok && temp >= mp && m.LiquidForm != "" {
		w.transitionTo(x, y, m.LiquidForm, mp)
		return
	}
	if mp, ok := m.MeltingPointF(); ok && temp < mp && m.SolidForm != "" && m.State != material.Solid {
		w.transitionTo(x, y, m.SolidForm, mp)
		return
	}
	if bp, ok := m.BoilingPointF(); ok && temp < bp && m.LiquidForm != "" && m.State == material.Gas {
		w.transitionTo(x, y, m.LiquidForm, bp)
		return
	}
	if ip, ok := m.IgnitionPointF(); ok && temp >= ip && m.Flammability > 0 && w.hasCombustionNeighbor(x, y) {
		w.ignite(x, y, m)
	}
}

// hasCombustionNeighbor reports whether a 4-neighbor of (x,y) is air,
// oxygen, or supportsCombustion, per spec.md §4.5's ignition gate.
func (w *World) hasCombustionNeighbor(x, y int) bool {
	width, height := w.grid.Width(), w.grid.Height()
	for _, n := range neighbors4(x, y, width, height) {
		nid := material.ID(w.grid.Get(n%width, n/width))
		if nid == material.AirID {
			return true
		}
		nm := w.reg.GetByID(nid)
		if nm.Name == "oxygen" || nm.SupportsCombustion {
			return true
		}
	}
	return false
}

// transitionTo replaces the material at (x,y) with name, carrying its
// lifetime forward and clamping its temperature to the transition
// point the caller passes in, per spec.md §4.4's "clamp temp to
// boilingPoint/meltingPoint".
func (w *World) transitionTo(x, y int, name string, temp float32) {
	id := w.resolveID(name)
	life := w.grid.GetLifetime(x, y)
	w.grid.SetCell(x, y, uint8(id), temp, life)
	w.refreshHeatSource(w.grid.Index(x, y), temp)
}

func neighbors4(x, y, width, height int) []int {
	out := make([]int, 0, 4)
	pts := [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}}
	for _, p := range pts {
		if p[0] >= 0 && p[0] < width && p[1] >= 0 && p[1] < height {
			out = append(out, p[1]*width+p[0])
		}
	}
	return out
}

// neighbors24 lists the 5×5 neighborhood around (x,y), excluding the
// center, per spec.md §4.4 step 1's to-process seeding.
func neighbors24(x, y, width, height int) []int {
	out := make([]int, 0, 24)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < width && ny >= 0 && ny < height {
				out = append(out, ny*width+nx)
			}
		}
	}
	return out
}
