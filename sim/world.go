// Package sim implements the falling-sand simulation core: the grid
// store, the powder/liquid/gas movement kernels, heat diffusion and
// state transitions, combustion and explosions, the property-driven
// reaction engine, and the per-tick scheduler described in spec.md.
//
// World is the single owned value a host embeds (spec.md §9 "Mutable
// global grid" — replace any implicit globals by an owned simulator
// value"), grounded on systems.TerrainSystem's single-constructor,
// owns-its-grid shape.
package sim

import (
	"math/rand"

	"github.com/pthm-cable/grainfall/grid"
	"github.com/pthm-cable/grainfall/material"
)

// World is the simulator: material registry, grid store, heat-source
// tracking, and a seeded random source for every probabilistic choice
// spec.md §5 asks to be reproducible.
type World struct {
	reg  *material.Registry
	grid *grid.Grid
	rng  *rand.Rand

	params Params

	heatSources map[int]struct{}
	tempBuf     []float32 // double buffer for the thermal pass

	scanDir  int8 // +1 or -1, alternates every tick (§4.7)
	heatView bool // consumed by the render collaborator only

	tick   int64
	warned map[string]bool
	events EventCounts
}

// Option configures a World at construction time.
type Option func(*World)

// WithSeed fixes the pseudo-random source for reproducible ticks
// (spec.md §5). Without it, New uses the fixed seed 1.
func WithSeed(seed int64) Option {
	return func(w *World) { w.rng = rand.New(rand.NewSource(seed)) }
}

// WithParams overrides the default tunable constants (spec.md §4,
// normally supplied by the config package's loaded YAML).
func WithParams(p Params) Option {
	return func(w *World) { w.params = p }
}

// WithRegistry supplies a pre-populated material registry instead of
// the built-in default catalogue (spec.md §4.1).
func WithRegistry(r *material.Registry) Option {
	return func(w *World) { w.reg = r }
}

// New constructs a simulator over a widthPx x heightPx grid at the
// given cell size (pixels per cell), with the default material
// catalogue unless WithRegistry overrides it.
func New(widthPx, heightPx, cellSize int, opts ...Option) *World {
	w := &World{
		reg:         material.NewDefaultRegistry(),
		params:      DefaultParams(),
		scanDir:     1,
		heatSources: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(1))
	}
	w.grid = grid.New(widthPx, heightPx, cellSize, w.params.Ambient)
	w.tempBuf = make([]float32, w.grid.Width()*w.grid.Height())
	return w
}

// Init (re)allocates the grid to new dimensions, clearing to air at
// ambient, per spec.md §4.2. It prints no diagnostics, per §6.
func (w *World) Init(widthPx, heightPx, cellSize int) {
	w.grid.Init(widthPx, heightPx, cellSize, w.params.Ambient)
	w.tempBuf = make([]float32, w.grid.Width()*w.grid.Height())
	w.heatSources = make(map[int]struct{})
	w.warned = nil
	w.tick = 0
}

// Material registers or updates a material and returns its stable id
// (spec.md §4.1). Subsequent calls with the same name update the
// property record in place without reassigning the id.
func (w *World) Material(name string, props material.Material) material.ID {
	props.Name = name
	return w.reg.Register(props)
}

// Registry exposes the material registry for read-only inspection
// (e.g. a render collaborator mapping ids to color tables).
func (w *World) Registry() *material.Registry { return w.reg }

// Grid exposes the underlying lattice for read-only inspection by the
// render collaborator named in spec.md §1/§5.
func (w *World) Grid() *grid.Grid { return w.grid }

// Width and Height return the grid dimensions in cells.
func (w *World) Width() int  { return w.grid.Width() }
func (w *World) Height() int { return w.grid.Height() }

// Get returns the material name at world pixel (x,y); "air" if empty
// or out of bounds (spec.md §6).
func (w *World) Get(x, y int) string {
	gx, gy := w.grid.PixelToCell(x, y)
	return w.reg.GetByID(material.ID(w.grid.Get(gx, gy))).Name
}

// GetTemp returns the temperature at world pixel (x,y); ambient if OOB.
func (w *World) GetTemp(x, y int) float32 {
	gx, gy := w.grid.PixelToCell(x, y)
	return w.grid.GetTemp(gx, gy)
}

// IsEmpty reports whether the cell at world pixel (x,y) is air.
func (w *World) IsEmpty(x, y int) bool {
	gx, gy := w.grid.PixelToCell(x, y)
	return w.grid.IsEmpty(gx, gy)
}

// Set places one cell by material name at world pixel (x,y). No-op if
// out of bounds (logged once per Init). temp is optional; when omitted the material's default
// equilibrium temperature is used. Lifetime is seeded uniformly from
// the material's [min,max] range when it defines one. The cell is
// registered as a heat source if its temperature exceeds
// Ambient+SeedSourceDelta, per spec.md §4.2.
func (w *World) Set(x, y int, name string, temp ...float32) {
	gx, gy := w.grid.PixelToCell(x, y)
	if !w.grid.InBounds(gx, gy) {
		w.warnOnce("oob-write", "write at (%d,%d) is outside the grid, ignored", x, y)
		return
	}
	w.setCell(gx, gy, w.resolveID(name), temp...)
}

// resolveID looks up a material id, warning once per unknown name.
func (w *World) resolveID(name string) material.ID {
	id := w.reg.IDOf(name)
	if id == material.AirID && name != "air" {
		w.warnOnce("unknown-material:"+name, "unknown material %q, treating as air", name)
	}
	return id
}

// setCell is the grid-coordinate internal form of Set, shared with the
// movement/combustion/reaction passes that place materials directly.
func (w *World) setCell(gx, gy int, id material.ID, temp ...float32) {
	m := w.reg.GetByID(id)
	t := m.Temperature
	if len(temp) > 0 {
		t = temp[0]
	}
	var life float32
	if m.Lifetime != nil {
		life = m.Lifetime.Min + w.rng.Float32()*(m.Lifetime.Max-m.Lifetime.Min)
	}
	w.grid.SetCell(gx, gy, uint8(id), t, life)
	idx := w.grid.Index(gx, gy)
	if t > w.params.Ambient+w.params.SeedSourceDelta {
		w.heatSources[idx] = struct{}{}
	} else {
		delete(w.heatSources, idx)
	}
}

// Clear sets the cell at world pixel (x,y) to air.
func (w *World) Clear(x, y int) {
	gx, gy := w.grid.PixelToCell(x, y)
	if !w.grid.InBounds(gx, gy) {
		return
	}
	w.clearCellGrid(gx, gy)
}

func (w *World) clearCellGrid(gx, gy int) {
	w.grid.Clear(gx, gy)
	delete(w.heatSources, w.grid.Index(gx, gy))
}

// ClearArea sets every cell in the inclusive rectangle to air.
func (w *World) ClearArea(x1, y1, x2, y2 int) {
	w.Fill(x1, y1, x2, y2, "air")
}

// Fill bulk-sets an inclusive rectangle (world pixel coordinates) to a
// single material, per spec.md §4.2.
func (w *World) Fill(x1, y1, x2, y2 int, name string) {
	gx1, gy1 := w.grid.PixelToCell(x1, y1)
	gx2, gy2 := w.grid.PixelToCell(x2, y2)
	id := w.resolveID(name)
	w.grid.FillRect(gx1, gy1, gx2, gy2, func(x, y int) {
		w.setCell(x, y, id)
	})
}

// Circle fills every cell whose grid-center lies within Euclidean
// radius r (in pixels, divided down to cells) of world pixel (cx,cy),
// per spec.md §4.2.
func (w *World) Circle(cx, cy, r int, name string) {
	gcx, gcy := w.grid.PixelToCell(cx, cy)
	gr := r / w.grid.CellSize()
	id := w.resolveID(name)
	w.grid.Circle(gcx, gcy, gr, func(x, y int) {
		w.setCell(x, y, id)
	})
}

// ToggleHeatView flips the rendering-intent flag a render collaborator
// may read; the core itself never interprets it (spec.md §6).
func (w *World) ToggleHeatView() bool {
	w.heatView = !w.heatView
	return w.heatView
}

// HeatView reports the current heat-view flag, for the render
// collaborator (spec.md §1/§6 boundary — read-only from outside).
func (w *World) HeatView() bool { return w.heatView }

// Tick returns the number of completed Update calls.
func (w *World) Tick() int64 { return w.tick }

// Rand exposes the world's seeded random source to the reaction engine
// and movement kernels within this package.
func (w *World) Rand() *rand.Rand { return w.rng }
