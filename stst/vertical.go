package stst

import (
	"sort"

	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// rowBranch records, for one row of a vertical trunk, whether a
// terminal sits on the trunk column at that row and whether any
// terminal to its left or right needs a horizontal stub.
type rowBranch struct {
	on, right, left bool
}

// verticalCandidate builds the trunk-plus-stubs change-set for a
// vertical trunk at column trunkX spanning [b.minY, b.maxY]. Returns
// (nil, false) if the candidate is infeasible.
func verticalCandidate(g *maze.Grid, terms []terminal, trunkX int, b boundingBox) (maze.ChangeSet, bool) {
	branches := make(map[int]*rowBranch, len(terms))
	var offTrunk []terminal

	for _, p := range terms {
		rb, ok := branches[p.y]
		if !ok {
			rb = &rowBranch{}
			branches[p.y] = rb
		}
		switch {
		case p.x == trunkX:
			rb.on = true
		case p.x > trunkX:
			rb.right = true
			offTrunk = append(offTrunk, p)
		default:
			rb.left = true
			offTrunk = append(offTrunk, p)
		}
	}

	work := g.Clone()
	cs := make(maze.ChangeSet, 0, b.maxY-b.minY+1+len(offTrunk)+len(terms))

	for y := b.minY; y <= b.maxY; y++ {
		rb := branches[y]
		hasDown := y > b.minY
		hasUp := y < b.maxY
		left, right := false, false
		if rb != nil {
			left, right = rb.left, rb.right
		}
		if edgeCount(left, right, hasUp, hasDown) < 2 {
			continue
		}
		if work.Get(trunkX, y) != cellstate.Empty {
			return nil, false
		}

		state := cellstate.FromEdges(left, right, hasUp, hasDown)
		edit := maze.Edit{X: trunkX, Y: y, State: state}
		cs = append(cs, edit)
		work.Apply(maze.ChangeSet{edit})
	}

	sort.Slice(offTrunk, func(i, j int) bool {
		if offTrunk[i].y != offTrunk[j].y {
			return offTrunk[i].y < offTrunk[j].y
		}
		return offTrunk[i].x < offTrunk[j].x
	})

	for _, p := range offTrunk {
		step := -1
		if p.x > trunkX {
			step = 1
		}
		for x := trunkX + step; x != p.x; x += step {
			edit, ok := stubEdit(work, x, p.y, cellstate.LR)
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
