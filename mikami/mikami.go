package mikami

import (
	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// neighborOrder fixes the order in which the four initial probes are
// enqueued from the source.
var neighborOrder = [4]cellstate.Direction{cellstate.L, cellstate.R, cellstate.U, cellstate.D}

// MikamiTabuchi computes a route between (x1,y1) and (x2,y2) by
// line-probe search: rays are cast from every newly discovered cell in
// the two directions perpendicular to the ray that discovered it. The
// search is fast but not guaranteed to find the shortest route; it is
// guaranteed to find a route whenever one exists.
//
// Returns ErrEndpointNotEmpty if either endpoint is not Empty (unless
// the endpoints coincide), or ErrNoRoute if the probe queue exhausts
// without reaching the target. Does not mutate g.
func MikamiTabuchi(g *maze.Grid, x1, y1, x2, y2 int) (maze.ChangeSet, error) {
	if cs, ok := sameCell(x1, y1, x2, y2); ok {
		return cs, nil
	}
	if !validEndpoints(g, x1, y1, x2, y2) {
		return nil, ErrEndpointNotEmpty
	}

	w, h := g.Width(), g.Height()
	hasParent := make([]bool, w*h)
	parentDir := make([]cellstate.Direction, w*h)
	hasParent[y1*w+x1] = true

	queue := make([]probe, 0, w*h)
	for _, d := range neighborOrder {
		queue = append(queue, probe{x: x1, y: y1, dir: d})
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.x == x2 && p.y == y2 {
			return traceback(g, w, x1, y1, x2, y2, parentDir), nil
		}

		queue = fireRay(g, hasParent, parentDir, w, p.x, p.y, p.dir, queue)
	}

	return nil, ErrNoRoute
}

// MikamiTabuchiMut computes the route via MikamiTabuchi and, on
// success, applies it to g.
func MikamiTabuchiMut(g *maze.Grid, x1, y1, x2, y2 int) (bool, error) {
	cs, err := MikamiTabuchi(g, x1, y1, x2, y2)
	if err != nil {
		return false, err
	}
	g.Apply(cs)

	return true, nil
}

// fireRay walks from (x, y) in direction dir, starting one cell beyond
// the source so the ray never revisits it. Every unclaimed cell that
// admits the crossing is claimed (its parent direction recorded as
// opposite(dir)) and spawns two new probes in the directions
// perpendicular to dir. The ray stops at the first cell that is
// out of bounds, already claimed, or does not admit the crossing.
func fireRay(g *maze.Grid, hasParent []bool, parentDir []cellstate.Direction, w, x, y int, dir cellstate.Direction, queue []probe) []probe {
	dx, dy := dir.Offset()
	cx, cy := x+dx, y+dy
	perp := perpendicular(dir)

	for g.InBounds(cx, cy) {
		idx := cy*w + cx
		if hasParent[idx] {
			return queue
		}
		if !cellstate.CanCross(dir, g.Get(cx, cy)) {
			return queue
		}

		hasParent[idx] = true
		parentDir[idx] = dir.Opposite()
		queue = append(queue, probe{x: cx, y: cy, dir: perp[0]}, probe{x: cx, y: cy, dir: perp[1]})

		cx, cy = cx+dx, cy+dy
	}

	return queue
}
