package stst

import "errors"

// Sentinel errors returned by STST.
var (
	// ErrTerminalNotEmpty indicates a terminal is not Empty on entry.
	ErrTerminalNotEmpty = errors.New("stst: terminal is not empty")
	// ErrNoFeasibleTrunk indicates every trunk candidate was infeasible.
	ErrNoFeasibleTrunk = errors.New("stst: no feasible trunk")
)

// boundingBox is the smallest axis-aligned rectangle containing every
// terminal.
type boundingBox struct {
	minX, maxX int
	minY, maxY int
}

func boundingBoxOf(pts []terminal) boundingBox {
	b := boundingBox{minX: pts[0].x, maxX: pts[0].x, minY: pts[0].y, maxY: pts[0].y}
	for _, p := range pts[1:] {
		if p.x < b.minX {
			b.minX = p.x
		}
		if p.x > b.maxX {
			b.maxX = p.x
		}
		if p.y < b.minY {
			b.minY = p.y
		}
		if p.y > b.maxY {
			b.maxY = p.y
		}
	}

	return b
}

// terminal is a (x, y) pair local to this package, kept distinct from
// maze.Point so the branch-classification helpers read naturally.
type terminal struct{ x, y int }

// edgeCount counts how many of the four edge flags are set.
func edgeCount(l, r, u, d bool) int {
	n := 0
	for _, e := range [4]bool{l, r, u, d} {
		if e {
			n++
		}
	}

	return n
}
