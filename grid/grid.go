// Package grid implements the falling-sand lattice store: three
// parallel flat arrays (material id, temperature, lifetime) indexed by
// y*width+x, plus bounds-safe accessors and bulk-region helpers.
//
// Grounded on systems.ResourceField's flat []float32 grids and
// systems.TerrainSystem's allocate-once-clamp-bounds idiom, generalized
// from a single float channel to the cell's three parallel channels.
package grid

import "math"

// Grid owns the lattice's three parallel arrays.
type Grid struct {
	ids       []uint8
	temps     []float32
	lifetimes []float32

	width, height int
	cellSize      int
	ambient       float32
}

// New allocates a grid of widthPx x heightPx pixels at the given cell
// size, with every cell set to air at ambient temperature. Panics if
// cellSize < 1 (a construction-time programmer error, not a runtime
// condition spec.md asks the simulator to recover from).
func New(widthPx, heightPx, cellSize int, ambient float32) *Grid {
	if cellSize < 1 {
		panic("grid: cellSize must be >= 1")
	}
	g := &Grid{cellSize: cellSize, ambient: ambient}
	g.Init(widthPx, heightPx, cellSize, ambient)
	return g
}

// Init (re)allocates the grid. Idempotent: a second call reinitializes
// every cell, matching spec.md §4.2's init contract.
func (g *Grid) Init(widthPx, heightPx, cellSize int, ambient float32) {
	if cellSize < 1 {
		cellSize = 1
	}
	g.cellSize = cellSize
	g.ambient = ambient
	g.width = widthPx / cellSize
	g.height = heightPx / cellSize
	if g.width < 1 {
		g.width = 1
	}
	if g.height < 1 {
		g.height = 1
	}

	size := g.width * g.height
	g.ids = make([]uint8, size)
	g.temps = make([]float32, size)
	g.lifetimes = make([]float32, size)
	for i := range g.temps {
		g.temps[i] = ambient
	}
}

// Width and Height are the grid dimensions in cells.
func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// CellSize returns the pixel size of one cell.
func (g *Grid) CellSize() int { return g.cellSize }

// Ambient returns the relaxation target temperature.
func (g *Grid) Ambient() float32 { return g.ambient }

// PixelToCell converts a world pixel coordinate to a grid coordinate.
func (g *Grid) PixelToCell(px, py int) (x, y int) {
	return px / g.cellSize, py / g.cellSize
}

// InBounds reports whether (x,y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index returns the flat array index for (x,y). Caller must check
// InBounds first; Index itself does not bounds-check (hot path).
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Get returns the material id at (x,y), or air (0) if out of bounds.
func (g *Grid) Get(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.ids[g.Index(x, y)]
}

// GetTemp returns the temperature at (x,y), or ambient if out of bounds.
func (g *Grid) GetTemp(x, y int) float32 {
	if !g.InBounds(x, y) {
		return g.ambient
	}
	return g.temps[g.Index(x, y)]
}

// GetLifetime returns the remaining lifetime at (x,y), or 0 if OOB.
func (g *Grid) GetLifetime(x, y int) float32 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.lifetimes[g.Index(x, y)]
}

// GetAt, GetTempAt and SetTempAt address a cell by its flat index
// directly (idx = y*Width()+x), for passes that iterate a working set
// of indices rather than (x,y) pairs. No bounds checking.
func (g *Grid) GetAt(idx int) uint8        { return g.ids[idx] }
func (g *Grid) GetTempAt(idx int) float32  { return g.temps[idx] }
func (g *Grid) SetTempAt(idx int, t float32) { g.temps[idx] = t }

// IsEmpty reports whether (x,y) holds air; true for out-of-bounds too.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.Get(x, y) == 0
}

// SetCell writes all three channels for (x,y) directly. No-op if out
// of bounds. Used by the simulator layer, which resolves property
// defaults (temperature, lifetime) before calling this.
func (g *Grid) SetCell(x, y int, id uint8, temp, lifetime float32) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.Index(x, y)
	g.ids[i] = id
	g.temps[i] = temp
	g.lifetimes[i] = lifetime
}

// SetTemp writes only the temperature channel. No-op if OOB.
func (g *Grid) SetTemp(x, y int, temp float32) {
	if !g.InBounds(x, y) {
		return
	}
	g.temps[g.Index(x, y)] = temp
}

// SetLifetime writes only the lifetime channel. No-op if OOB.
func (g *Grid) SetLifetime(x, y int, lifetime float32) {
	if !g.InBounds(x, y) {
		return
	}
	g.lifetimes[g.Index(x, y)] = lifetime
}

// Clear resets (x,y) to air at ambient temperature with zero lifetime.
func (g *Grid) Clear(x, y int) {
	g.SetCell(x, y, 0, g.ambient, 0)
}

// FillRect iterates the inclusive rectangle [x1,y1]-[x2,y2], calling fn
// for every in-bounds cell. Coordinates are normalized so either corner
// order works, matching spec.md §4.2's "fill(x1,y1,x2,y2,name)".
func (g *Grid) FillRect(x1, y1, x2, y2 int, fn func(x, y int)) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if g.InBounds(x, y) {
				fn(x, y)
			}
		}
	}
}

// Circle iterates every cell whose grid-center lies within Euclidean
// radius r of (cx,cy), calling fn for each, per spec.md §4.2.
func (g *Grid) Circle(cx, cy, r int, fn func(x, y int)) {
	if r < 0 {
		return
	}
	r2 := float64(r) * float64(r)
	minX, maxX := cx-r, cx+r
	minY, maxY := cy-r, cy+r
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !g.InBounds(x, y) {
				continue
			}
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx*dx+dy*dy <= r2 {
				fn(x, y)
			}
		}
	}
}

// DistSq is an exported Euclidean-distance-squared helper shared by
// the circle/explode geometry in the sim package.
func DistSq(x1, y1, x2, y2 int) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return dx*dx + dy*dy
}

// Dist is math.Sqrt(DistSq(...)).
func Dist(x1, y1, x2, y2 int) float64 {
	return math.Sqrt(DistSq(x1, y1, x2, y2))
}
