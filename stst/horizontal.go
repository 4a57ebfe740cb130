package stst

import (
	"sort"

	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// columnBranch records, for one column of a horizontal trunk, whether a
// terminal sits on the trunk row at that column and whether any
// terminal above or below it needs a vertical stub.
type columnBranch struct {
	on, up, down bool
}

// horizontalCandidate builds the trunk-plus-stubs change-set for a
// horizontal trunk at row trunkY spanning [b.minX, b.maxX]. Returns
// (nil, false) if the candidate is infeasible.
func horizontalCandidate(g *maze.Grid, terms []terminal, trunkY int, b boundingBox) (maze.ChangeSet, bool) {
	branches := make(map[int]*columnBranch, len(terms))
	var offTrunk []terminal

	for _, p := range terms {
		cb, ok := branches[p.x]
		if !ok {
			cb = &columnBranch{}
			branches[p.x] = cb
		}
		switch {
		case p.y == trunkY:
			cb.on = true
		case p.y > trunkY:
			cb.up = true
			offTrunk = append(offTrunk, p)
		default:
			cb.down = true
			offTrunk = append(offTrunk, p)
		}
	}

	work := g.Clone()
	cs := make(maze.ChangeSet, 0, b.maxX-b.minX+1+len(offTrunk)+len(terms))

	for x := b.minX; x <= b.maxX; x++ {
		cb := branches[x]
		hasLeft := x > b.minX
		hasRight := x < b.maxX
		up, down := false, false
		if cb != nil {
			up, down = cb.up, cb.down
		}
		if edgeCount(hasLeft, hasRight, up, down) < 2 {
			// This column carries no representable trunk geometry of its
			// own — it is only present because a terminal sits here
			// exactly on the trunk row, and that terminal's Blocked edit
			// supersedes it.
			continue
		}
		if work.Get(x, trunkY) != cellstate.Empty {
			return nil, false
		}

		state := cellstate.FromEdges(hasLeft, hasRight, up, down)
		edit := maze.Edit{X: x, Y: trunkY, State: state}
		cs = append(cs, edit)
		work.Apply(maze.ChangeSet{edit})
	}

	sort.Slice(offTrunk, func(i, j int) bool {
		if offTrunk[i].x != offTrunk[j].x {
			return offTrunk[i].x < offTrunk[j].x
		}
		return offTrunk[i].y < offTrunk[j].y
	})

	for _, p := range offTrunk {
		step := -1
		if p.y > trunkY {
			step = 1
		}
		for y := trunkY + step; y != p.y; y += step {
			edit, ok := stubEdit(work, p.x, y, cellstate.UD)
			if !ok {
				return nil, false
			}
			cs = append(cs, edit)
			work.Apply(maze.ChangeSet{edit})
		}
	}

	for _, p := range terms {
		cs = append(cs, maze.Edit{X: p.x, Y: p.y, State: cellstate.Blocked})
	}

	return cs.Dedup(), true
}

// stubEdit computes the edit for one stub cell at (x, y), promoting an
// existing perpendicular straight to Cross. want is the stub's own
// orientation (UD for a horizontal trunk's stubs, LR for a vertical
// trunk's). Returns ok=false if the cell holds anything else non-Empty.
func stubEdit(work *maze.Grid, x, y int, want cellstate.State) (maze.Edit, bool) {
	perp := cellstate.LR
	if want == cellstate.LR {
		perp = cellstate.UD
	}

	switch work.Get(x, y) {
	case cellstate.Empty:
		return maze.Edit{X: x, Y: y, State: want}, true
	case perp:
		return maze.Edit{X: x, Y: y, State: cellstate.Cross}, true
	default:
		return maze.Edit{}, false
	}
}
