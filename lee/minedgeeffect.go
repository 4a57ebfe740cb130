package lee

import (
	"container/heap"

	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// LeeMinEdgeEffect computes a route between (x1,y1) and (x2,y2) by wave
// expansion popped in order of (accumulated congestion, step count, x, y).
// A cell's congestion is the number of its in-bounds neighbors whose
// state is not in {Empty, LR, UD} — a proxy for how crowded the
// surrounding neighborhood already is (spec.md §4.4). A frontier entry's
// key is the sum of the congestion of every cell on its path from the
// source, the reached cell included.
func LeeMinEdgeEffect(g *maze.Grid, x1, y1, x2, y2 int) (maze.ChangeSet, error) {
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

	pq := make(edgeEffectPQ, 0, w*h)
	heap.Init(&pq)
	heap.Push(&pq, &edgeEffectItem{x: x1, y: y1, edges: 0, steps: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*edgeEffectItem)
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
			discovered[nIdx] = true
			parentDir[nIdx] = d.Opposite()
			heap.Push(&pq, &edgeEffectItem{x: nx, y: ny, edges: it.edges + congestion(g, nx, ny), steps: it.steps + 1})
		}
	}

	if !discovered[targetIdx] {
		return nil, ErrNoRoute
	}

	return traceback(g, w, x1, y1, x2, y2, parentDir), nil
}

// LeeMinEdgeEffectMut computes the route via LeeMinEdgeEffect and, on
// success, applies it to g.
func LeeMinEdgeEffectMut(g *maze.Grid, x1, y1, x2, y2 int) (bool, error) {
	cs, err := LeeMinEdgeEffect(g, x1, y1, x2, y2)
	if err != nil {
		return false, err
	}
	g.Apply(cs)

	return true, nil
}

// congestion counts (x,y)'s in-bounds neighbors whose state is not in
// {Empty, LR, UD}.
func congestion(g *maze.Grid, x, y int) int {
	count := 0
	for _, d := range neighborOrder {
		dx, dy := d.Offset()
		nx, ny := x+dx, y+dy
		if !g.InBounds(nx, ny) {
			continue
		}
		switch g.Get(nx, ny) {
		case cellstate.Empty, cellstate.LR, cellstate.UD:
		default:
			count++
		}
	}

	return count
}

// edgeEffectItem is one entry in edgeEffectPQ: a discovered cell keyed
// by (edges, steps, x, y) ascending.
type edgeEffectItem struct {
	x, y  int
	edges int
	steps int
}

// edgeEffectPQ is a min-heap of *edgeEffectItem ordered by (edges,
// steps, x, y) ascending, giving a deterministic tie-break.
type edgeEffectPQ []*edgeEffectItem

func (pq edgeEffectPQ) Len() int { return len(pq) }

func (pq edgeEffectPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.edges != b.edges {
		return a.edges < b.edges
	}
	if a.steps != b.steps {
		return a.steps < b.steps
	}
	if a.x != b.x {
		return a.x < b.x
	}

	return a.y < b.y
}

func (pq edgeEffectPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgeEffectPQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeEffectItem)) }

func (pq *edgeEffectPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
