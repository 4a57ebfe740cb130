package lee

import (
	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// Lee computes the shortest path between (x1,y1) and (x2,y2) by plain
// breadth-first wave expansion: first reachability equals the minimum
// Manhattan-step count through admissible cells.
//
// Returns ErrEndpointNotEmpty if either endpoint is not Empty (unless the
// endpoints coincide), or ErrNoRoute if the wave exhausts without
// reaching the target. Does not mutate g.
func Lee(g *maze.Grid, x1, y1, x2, y2 int) (maze.ChangeSet, error) {
	if cs, ok := sameCell(x1, y1, x2, y2); ok {
		return cs, nil
	}
	if !validEndpoints(g, x1, y1, x2, y2) {
		return nil, ErrEndpointNotEmpty
	}

	w, h := g.Width(), g.Height()
	visited := make([]bool, w*h)
	parentDir := make([]cellstate.Direction, w*h)

	startIdx := y1*w + x1
	targetIdx := y2*w + x2
	visited[startIdx] = true

	queue := make([]int, 0, w*h)
	queue = append(queue, startIdx)
	found := false

	for len(queue) > 0 && !found {
		u := queue[0]
		queue = queue[1:]
		ux, uy := u%w, u/w

		for _, d := range neighborOrder {
			dx, dy := d.Offset()
			nx, ny := ux+dx, uy+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			nIdx := ny*w + nx
			if visited[nIdx] {
				continue
			}
			if !cellstate.CanCross(d, g.Get(nx, ny)) {
				continue
			}
			visited[nIdx] = true
			parentDir[nIdx] = d.Opposite()
			queue = append(queue, nIdx)
			if nIdx == targetIdx {
				found = true
				break
			}
		}
	}

	if !visited[targetIdx] {
		return nil, ErrNoRoute
	}

	return traceback(g, w, x1, y1, x2, y2, parentDir), nil
}

// LeeMut computes the route via Lee and, on success, applies it to g.
// Returns (true, nil) on success, (false, err) otherwise. g is left
// untouched on failure.
func LeeMut(g *maze.Grid, x1, y1, x2, y2 int) (bool, error) {
	cs, err := Lee(g, x1, y1, x2, y2)
	if err != nil {
		return false, err
	}
	g.Apply(cs)

	return true, nil
}
