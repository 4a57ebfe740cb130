package lee

import (
	"container/heap"

	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// LeeMinCrossing computes a route between (x1,y1) and (x2,y2) by
// wave expansion popped in order of (crossing count, step count, x, y),
// so that among equal-crossing routes the shortest wins, and ties break
// deterministically. A step crosses iff cellstate.WillCross reports true
// for the direction taken into the already-wired target cell.
//
// Discover-once semantics: a cell's parent is fixed the first time it is
// reached and never revised, even if a later pop would have offered a
// lower crossing count (spec.md §4.4).
func LeeMinCrossing(g *maze.Grid, x1, y1, x2, y2 int) (maze.ChangeSet, error) {
	if cs, ok := sameCell(x1, y1, x2, y2); ok {
		return cs, nil
	}
	if !validEndpoints(g, x1, y1, x2, y2) {
		return nil, ErrEndpointNotEmpty
	}

	w, h := g.Width(), g.Height()
	discovered := make([]bool, w*h)
	parentDir := make([]cellstate.Direction, w*h)

	startIdx := y1*w + x1
	targetIdx := y2*w + x2
	discovered[startIdx] = true

	pq := make(crossingPQ, 0, w*h)
	heap.Init(&pq)
	heap.Push(&pq, &crossingItem{x: x1, y: y1, crosses: 0, steps: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*crossingItem)
		if it.x == x2 && it.y == y2 {
			break
		}

		for _, d := range neighborOrder {
			dx, dy := d.Offset()
			nx, ny := it.x+dx, it.y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			nIdx := ny*w + nx
			if discovered[nIdx] {
				continue
			}
			target := g.Get(nx, ny)
			if !cellstate.CanCross(d, target) {
				continue
			}
			crosses := it.crosses
			if cellstate.WillCross(d, target) {
				crosses++
			}
			discovered[nIdx] = true
			parentDir[nIdx] = d.Opposite()
			heap.Push(&pq, &crossingItem{x: nx, y: ny, crosses: crosses, steps: it.steps + 1})
		}
	}

	if !discovered[targetIdx] {
		return nil, ErrNoRoute
	}

	return traceback(g, w, x1, y1, x2, y2, parentDir), nil
}

// LeeMinCrossingMut computes the route via LeeMinCrossing and, on
// success, applies it to g.
func LeeMinCrossingMut(g *maze.Grid, x1, y1, x2, y2 int) (bool, error) {
	cs, err := LeeMinCrossing(g, x1, y1, x2, y2)
	if err != nil {
		return false, err
	}
	g.Apply(cs)

	return true, nil
}

// crossingItem is one entry in crossingPQ: a discovered cell keyed by
// (crosses, steps, x, y) ascending.
type crossingItem struct {
	x, y    int
	crosses int
	steps   int
}

// crossingPQ is a min-heap of *crossingItem ordered by (crosses, steps,
// x, y) ascending, giving a deterministic tie-break.
type crossingPQ []*crossingItem

func (pq crossingPQ) Len() int { return len(pq) }

func (pq crossingPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.crosses != b.crosses {
		return a.crosses < b.crosses
	}
	if a.steps != b.steps {
		return a.steps < b.steps
	}
	if a.x != b.x {
		return a.x < b.x
	}

	return a.y < b.y
}

func (pq crossingPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *crossingPQ) Push(x interface{}) { *pq = append(*pq, x.(*crossingItem)) }

func (pq *crossingPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
