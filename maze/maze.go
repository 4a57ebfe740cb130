package maze

import (
	"strings"

	"github.com/gridwire/maze/cellstate"
)

// New allocates a w×h Grid of Empty cells. Passing w <= 0 or h <= 0 is the
// caller's responsibility to avoid; New performs no validation, mirroring
// spec.md §4.2 ("Error: none").
func New(w, h int) *Grid {
	return &Grid{
		width:  w,
		height: h,
		cells:  make([]cellstate.State, w*h),
	}
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state at (x, y).
func (g *Grid) Get(x, y int) cellstate.State {
	return g.cells[g.index(x, y)]
}

// checkRect panics with ErrOutOfBounds unless both corners of the
// inclusive rectangle [x1,x2]×[y1,y2] lie within the grid.
func (g *Grid) checkRect(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		panic(ErrOutOfBounds)
	}
}

// Fill sets every cell in the inclusive rectangle [x1,x2]×[y1,y2] to
// Blocked. Panics (ErrOutOfBounds) if the rectangle exceeds the grid.
func (g *Grid) Fill(x1, y1, x2, y2 int) {
	g.checkRect(x1, y1, x2, y2)
	g.rect(x1, y1, x2, y2, cellstate.Blocked)
}

// Clean sets every cell in the inclusive rectangle [x1,x2]×[y1,y2] to
// Empty. Panics (ErrOutOfBounds) if the rectangle exceeds the grid.
func (g *Grid) Clean(x1, y1, x2, y2 int) {
	g.checkRect(x1, y1, x2, y2)
	g.rect(x1, y1, x2, y2, cellstate.Empty)
}

// rect writes state s to every cell of the normalized inclusive
// rectangle [x1,x2]×[y1,y2]; x1/x2 and y1/y2 need not be ordered.
func (g *Grid) rect(x1, y1, x2, y2 int, s cellstate.State) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.cells[g.index(x, y)] = s
		}
	}
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cellstate.Empty
	}
}

// Apply writes every Edit in cs, in order, to the grid. Duplicate
// addresses are allowed; later Edits overwrite earlier ones.
func (g *Grid) Apply(cs ChangeSet) {
	for _, e := range cs {
		g.cells[g.index(e.X, e.Y)] = e.State
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]cellstate.State, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}

// FillPure returns a clone of g with the rectangle filled, leaving g
// untouched. Panics (ErrOutOfBounds) under the same condition as Fill.
func (g *Grid) FillPure(x1, y1, x2, y2 int) *Grid {
	clone := g.Clone()
	clone.Fill(x1, y1, x2, y2)

	return clone
}

// CleanPure returns a clone of g with the rectangle cleaned, leaving g
// untouched. Panics (ErrOutOfBounds) under the same condition as Clean.
func (g *Grid) CleanPure(x1, y1, x2, y2 int) *Grid {
	clone := g.Clone()
	clone.Clean(x1, y1, x2, y2)

	return clone
}

// ClearPure returns a fresh all-Empty clone of g's dimensions, leaving g
// untouched.
func (g *Grid) ClearPure() *Grid {
	return New(g.width, g.height)
}

// ApplyPure returns a clone of g with cs applied, leaving g untouched.
func (g *Grid) ApplyPure(cs ChangeSet) *Grid {
	clone := g.Clone()
	clone.Apply(cs)

	return clone
}

// Verify decides the global edge-consistency invariant: for every
// non-Empty, non-Blocked cell c and every edge bit set in c's mask, the
// neighbor in that direction must exist and have the opposite edge bit
// set. Blocked cells do not participate. Verify is required to hold after
// every successful Apply of an engine's change-set.
func (g *Grid) Verify() bool {
	dirs := [4]cellstate.Direction{cellstate.L, cellstate.R, cellstate.U, cellstate.D}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			s := g.Get(x, y)
			if s == cellstate.Empty || s == cellstate.Blocked {
				continue
			}
			for _, d := range dirs {
				if !hasEdge(s, d) {
					continue
				}
				dx, dy := d.Offset()
				nx, ny := x+dx, y+dy
				if !g.InBounds(nx, ny) {
					return false
				}
				ns := g.Get(nx, ny)
				if ns == cellstate.Blocked {
					// Blocked neighbors (obstacles, wire endpoints) do
					// not participate in consistency checks: a wire may
					// terminate into one without carrying the opposite edge.
					continue
				}
				if !hasEdge(ns, d.Opposite()) {
					return false
				}
			}
		}
	}

	return true
}

// hasEdge reports whether state s carries wire on its d edge.
func hasEdge(s cellstate.State, d cellstate.Direction) bool {
	switch s {
	case cellstate.LR:
		return d == cellstate.L || d == cellstate.R
	case cellstate.UD:
		return d == cellstate.U || d == cellstate.D
	case cellstate.LU:
		return d == cellstate.L || d == cellstate.U
	case cellstate.RU:
		return d == cellstate.R || d == cellstate.U
	case cellstate.LD:
		return d == cellstate.L || d == cellstate.D
	case cellstate.RD:
		return d == cellstate.R || d == cellstate.D
	case cellstate.LUR:
		return d == cellstate.L || d == cellstate.U || d == cellstate.R
	case cellstate.URD:
		return d == cellstate.U || d == cellstate.R || d == cellstate.D
	case cellstate.RDL:
		return d == cellstate.R || d == cellstate.D || d == cellstate.L
	case cellstate.DLU:
		return d == cellstate.D || d == cellstate.L || d == cellstate.U
	case cellstate.Cross:
		return true
	default:
		return false
	}
}

// glyphs renders each State as the single diagnostic character named in
// spec.md §6.
var glyphs = map[cellstate.State]rune{
	cellstate.Empty:   '.',
	cellstate.Blocked: 'x',
	cellstate.Cross:   '╋',
	cellstate.LR:      '━',
	cellstate.UD:      '┃',
	cellstate.LU:      '┛',
	cellstate.RU:      '┗',
	cellstate.LD:      '┓',
	cellstate.RD:      '┏',
	cellstate.LUR:     '┻',
	cellstate.URD:     '┣',
	cellstate.RDL:     '┳',
	cellstate.DLU:     '┫',
}

// String renders the grid as a diagnostic string: one line per row, rows
// printed from the highest y to the lowest, columns left-to-right.
func (g *Grid) String() string {
	var b strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			r, ok := glyphs[g.Get(x, y)]
			if !ok {
				r = '?'
			}
			b.WriteRune(r)
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
