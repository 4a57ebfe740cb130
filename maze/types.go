package maze

import "github.com/gridwire/maze/cellstate"

// Grid is a fixed-size, dense W×H array of cell states. Coordinates are
// (x, y) with x in [0, Width) and y in [0, Height). A freshly-created
// Grid is all-Empty; size is fixed for the Grid's lifetime. Engines treat
// a Grid as read-only and return a ChangeSet describing the edits they
// would make; only Apply (and the other mutators) ever change a Grid's
// contents.
type Grid struct {
	width, height int
	cells         []cellstate.State
}

// index maps (x, y) to its row-major offset into cells.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// Edit is one (x, y, state) write in a ChangeSet.
type Edit struct {
	X, Y  int
	State cellstate.State
}

// ChangeSet is an ordered list of Edits: the atomic unit of routing
// output. Applying a ChangeSet writes each Edit in order; duplicate
// addresses are allowed and later entries win.
type ChangeSet []Edit

// Point is one (x, y) coordinate in a Points multiset.
type Point struct {
	X, Y int
}

// Points is a multiset of coordinates. Multi-terminal engines consume the
// canonical view returned by Sorted.
type Points []Point
