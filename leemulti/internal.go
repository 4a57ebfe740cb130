package leemulti

import (
	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// tracebackUntilBlocked walks parentDir backward from (tx, ty) until it
// reaches a cell that is already Blocked in work — not necessarily the
// original seed — emitting edits for every cell in between and a final
// Blocked edit for (tx, ty) itself. The already-blocked anchor cell is
// left untouched.
func tracebackUntilBlocked(work *maze.Grid, w, tx, ty int, parentDir []cellstate.Direction) maze.ChangeSet {
	type coord struct{ x, y int }

	rev := []coord{{tx, ty}}
	cx, cy := tx, ty
	for work.Get(cx, cy) != cellstate.Blocked {
		dx, dy := parentDir[cy*w+cx].Offset()
		cx, cy = cx+dx, cy+dy
		rev = append(rev, coord{cx, cy})
	}

	path := make([]coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	cs := make(maze.ChangeSet, 0, len(path))
	for i := 1; i < len(path)-1; i++ {
		prevDir := stepDir(path[i-1], path[i])
		exitDir := stepDir(path[i], path[i+1])
		old := work.Get(path[i].x, path[i].y)
		cs = append(cs, maze.Edit{X: path[i].x, Y: path[i].y, State: cellstate.Merge(old, exitDir, prevDir)})
	}
	last := path[len(path)-1]
	cs = append(cs, maze.Edit{X: last.x, Y: last.y, State: cellstate.Blocked})

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
		panic("leemulti: non-adjacent traceback step")
	}
}
