package leemulti

import (
	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// LeeMulti computes a Steiner-like tree connecting every point in pts
// by one breadth-first wave that absorbs terminals as it reaches them.
// Does not mutate g.
//
// Zero terminals returns an empty, successful change-set. One terminal
// returns a single Blocked cell. Returns ErrTerminalNotEmpty if any
// terminal is not Empty, or ErrNoRoute if the wave exhausts before
// every terminal is reached.
func LeeMulti(g *maze.Grid, pts maze.Points) (maze.ChangeSet, error) {
	terms := pts.Sorted()
	if len(terms) == 0 {
		return maze.ChangeSet{}, nil
	}
	for _, p := range terms {
		if g.Get(p.X, p.Y) != cellstate.Empty {
			return nil, ErrTerminalNotEmpty
		}
	}

	result := make(maze.ChangeSet, 0, len(terms))
	first := terms[0]
	result = append(result, maze.Edit{X: first.X, Y: first.Y, State: cellstate.Blocked})

	if len(terms) == 1 {
		return result, nil
	}

	work := g.Clone()
	work.Apply(maze.ChangeSet{{X: first.X, Y: first.Y, State: cellstate.Blocked}})

	w, h := g.Width(), g.Height()
	discovered := make([]bool, w*h)
	parentDir := make([]cellstate.Direction, w*h)
	discovered[first.Y*w+first.X] = true

	remaining := make(map[maze.Point]bool, len(terms)-1)
	for _, p := range terms[1:] {
		remaining[p] = true
	}

	queue := make([]int, 0, w*h)
	queue = append(queue, first.Y*w+first.X)

	for len(remaining) > 0 {
		if len(queue) == 0 {
			return nil, ErrNoRoute
		}

		u := queue[0]
		queue = queue[1:]
		ux, uy := u%w, u/w

		if remaining[maze.Point{X: ux, Y: uy}] {
			cs := tracebackUntilBlocked(work, w, ux, uy, parentDir)
			work.Apply(cs)
			result = append(result, cs...)
			delete(remaining, maze.Point{X: ux, Y: uy})

			continue
		}

		for _, d := range neighborOrder {
			dx, dy := d.Offset()
			nx, ny := ux+dx, uy+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			nIdx := ny*w + nx
			if discovered[nIdx] {
				continue
			}
			if !cellstate.CanCross(d, work.Get(nx, ny)) {
				continue
			}
			discovered[nIdx] = true
			parentDir[nIdx] = d.Opposite()
			queue = append(queue, nIdx)
		}
	}

	return result, nil
}

// LeeMultiMut computes the tree via LeeMulti and, on success, applies
// it to g.
func LeeMultiMut(g *maze.Grid, pts maze.Points) (bool, error) {
	cs, err := LeeMulti(g, pts)
	if err != nil {
		return false, err
	}
	g.Apply(cs)

	return true, nil
}
