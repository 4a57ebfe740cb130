package mikami

import (
	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// sameCell short-circuits a zero-length request into a one-cell Blocked
// change-set.
func sameCell(x1, y1, x2, y2 int) (maze.ChangeSet, bool) {
	if x1 == x2 && y1 == y2 {
		return maze.ChangeSet{{X: x1, Y: y1, State: cellstate.Blocked}}, true
	}

	return nil, false
}

// validEndpoints reports whether both endpoints are currently Empty.
func validEndpoints(g *maze.Grid, x1, y1, x2, y2 int) bool {
	return g.Get(x1, y1) == cellstate.Empty && g.Get(x2, y2) == cellstate.Empty
}

// traceback walks parentDir from (x2,y2) back to (x1,y1), emitting a
// ChangeSet: both endpoints become Blocked, and every intermediate cell
// is reclassified via cellstate.Merge using the direction it exits
// toward (x2,y2) and the direction it was entered from (x1,y1).
func traceback(g *maze.Grid, w, x1, y1, x2, y2 int, parentDir []cellstate.Direction) maze.ChangeSet {
	type coord struct{ x, y int }

	rev := []coord{{x2, y2}}
	cx, cy := x2, y2
	for cx != x1 || cy != y1 {
		dx, dy := parentDir[cy*w+cx].Offset()
		cx, cy = cx+dx, cy+dy
		rev = append(rev, coord{cx, cy})
	}

	path := make([]coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	cs := make(maze.ChangeSet, 0, len(path))
	cs = append(cs, maze.Edit{X: path[0].x, Y: path[0].y, State: cellstate.Blocked})
	for i := 1; i < len(path)-1; i++ {
		prevDir := stepDir(path[i-1], path[i])
		exitDir := stepDir(path[i], path[i+1])
		old := g.Get(path[i].x, path[i].y)
		cs = append(cs, maze.Edit{X: path[i].x, Y: path[i].y, State: cellstate.Merge(old, exitDir, prevDir)})
	}
	if len(path) > 1 {
		last := path[len(path)-1]
		cs = append(cs, maze.Edit{X: last.x, Y: last.y, State: cellstate.Blocked})
	}

	return cs
}

// stepDir returns the compass direction of travel from a to b, which
// must be unit-adjacent.
func stepDir(a, b struct{ x, y int }) cellstate.Direction {
	switch {
	case b.x == a.x+1:
		return cellstate.R
	case b.x == a.x-1:
		return cellstate.L
	case b.y == a.y+1:
		return cellstate.U
	case b.y == a.y-1:
		return cellstate.D
	default:
		panic("mikami: non-adjacent traceback step")
	}
}
