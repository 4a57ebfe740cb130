package mikami

import (
	"errors"

	"github.com/gridwire/maze/cellstate"
)

// Sentinel errors returned by MikamiTabuchi.
var (
	// ErrEndpointNotEmpty indicates the source or sink cell is already
	// wired or blocked.
	ErrEndpointNotEmpty = errors.New("mikami: endpoint is not empty")
	// ErrNoRoute indicates the probe queue exhausted without reaching
	// the target.
	ErrNoRoute = errors.New("mikami: no route found")
)

// probe is one entry in the FIFO probe queue: a cell and the direction
// a ray should be fired in from it. The direction field is carried for
// symmetry with the probe-enqueue discipline; it is unused once a
// probe's (x, y) matches the target, since the parent-direction map
// already carries everything traceback needs.
type probe struct {
	x, y int
	dir  cellstate.Direction
}

// perpendicular returns the two directions perpendicular to d: {U, D}
// for a horizontal ray, {L, R} for a vertical one.
func perpendicular(d cellstate.Direction) [2]cellstate.Direction {
	switch d {
	case cellstate.L, cellstate.R:
		return [2]cellstate.Direction{cellstate.U, cellstate.D}
	case cellstate.U, cellstate.D:
		return [2]cellstate.Direction{cellstate.L, cellstate.R}
	default:
		panic("mikami: invalid probe direction")
	}
}
