package stst

import (
	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
)

// STST computes a single-trunk rectilinear Steiner tree connecting
// every point in pts. Of the 2*k trunk candidates (horizontal and
// vertical, one pair per terminal), the feasible candidate with the
// shortest change-set is returned. Does not mutate g.
//
// Zero terminals returns an empty, successful change-set. One terminal
// returns a single Blocked cell. Returns ErrTerminalNotEmpty if any
// terminal is not Empty, or ErrNoFeasibleTrunk if every candidate is
// infeasible.
func STST(g *maze.Grid, pts maze.Points) (maze.ChangeSet, error) {
	sorted := pts.Sorted()
	if len(sorted) == 0 {
		return maze.ChangeSet{}, nil
	}
	for _, p := range sorted {
		if g.Get(p.X, p.Y) != cellstate.Empty {
			return nil, ErrTerminalNotEmpty
		}
	}
	if len(sorted) == 1 {
		return maze.ChangeSet{{X: sorted[0].X, Y: sorted[0].Y, State: cellstate.Blocked}}, nil
	}

	terms := make([]terminal, len(sorted))
	for i, p := range sorted {
		terms[i] = terminal{x: p.X, y: p.Y}
	}
	b := boundingBoxOf(terms)

	var best maze.ChangeSet
	found := false
	consider := func(cs maze.ChangeSet, ok bool) {
		if !ok {
			return
		}
		if !found || len(cs) < len(best) {
			best, found = cs, true
		}
	}

	for _, p := range terms {
		consider(horizontalCandidate(g, terms, p.y, b))
		consider(verticalCandidate(g, terms, p.x, b))
	}

	if !found {
		return nil, ErrNoFeasibleTrunk
	}

	return best, nil
}

// STSTMut computes the tree via STST and, on success, applies it to g.
func STSTMut(g *maze.Grid, pts maze.Points) (bool, error) {
	cs, err := STST(g, pts)
	if err != nil {
		return false, err
	}
	g.Apply(cs)

	return true, nil
}
