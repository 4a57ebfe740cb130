package hadlock

import (
	"container/heap"

	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// Hadlock computes a route between (x1,y1) and (x2,y2) by wave
// expansion popped in order of (manhattan distance to target +
// detours, detours, x, y). A step is a detour iff it does not reduce
// Manhattan distance to the target. On obstacle-free grids the result
// has the same length as plain Lee.
//
// Returns ErrEndpointNotEmpty if either endpoint is not Empty (unless
// the endpoints coincide), or ErrNoRoute if the wave exhausts without
// reaching the target. Does not mutate g.
func Hadlock(g *maze.Grid, x1, y1, x2, y2 int) (maze.ChangeSet, error) {
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

	pq := make(hadlockPQ, 0, w*h)
	heap.Init(&pq)
	heap.Push(&pq, &hadlockItem{x: x1, y: y1, key: manhattan(x1, y1, x2, y2), detours: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*hadlockItem)
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
			if !cellstate.CanCross(d, g.Get(nx, ny)) {
				continue
			}
			detours := it.detours
			if !towards(d, it.x, it.y, x2, y2) {
				detours++
			}
			discovered[nIdx] = true
			parentDir[nIdx] = d.Opposite()
			key := manhattan(nx, ny, x2, y2) + detours
			heap.Push(&pq, &hadlockItem{x: nx, y: ny, key: key, detours: detours})
		}
	}

	if !discovered[targetIdx] {
		return nil, ErrNoRoute
	}

	return traceback(g, w, x1, y1, x2, y2, parentDir), nil
}

// HadlockMut computes the route via Hadlock and, on success, applies
// it to g.
func HadlockMut(g *maze.Grid, x1, y1, x2, y2 int) (bool, error) {
	cs, err := Hadlock(g, x1, y1, x2, y2)
	if err != nil {
		return false, err
	}
	g.Apply(cs)

	return true, nil
}

// hadlockItem is one entry in hadlockPQ: a discovered cell keyed by
// (key, detours, x, y) ascending.
type hadlockItem struct {
	x, y    int
	key     int
	detours int
}

// hadlockPQ is a min-heap of *hadlockItem ordered by (key, detours, x,
// y) ascending, giving a deterministic tie-break.
type hadlockPQ []*hadlockItem

func (pq hadlockPQ) Len() int { return len(pq) }

func (pq hadlockPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if a.detours != b.detours {
		return a.detours < b.detours
	}
	if a.x != b.x {
		return a.x < b.x
	}

	return a.y < b.y
}

func (pq hadlockPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *hadlockPQ) Push(x interface{}) { *pq = append(*pq, x.(*hadlockItem)) }

func (pq *hadlockPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
