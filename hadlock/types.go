package hadlock

import (
	"errors"

	"github.com/gridwire/maze/cellstate"
)

// Sentinel errors returned by Hadlock.
var (
	// ErrEndpointNotEmpty indicates the source or sink cell is already
	// wired or blocked.
	ErrEndpointNotEmpty = errors.New("hadlock: endpoint is not empty")
	// ErrNoRoute indicates the wave exhausted without reaching the target.
	ErrNoRoute = errors.New("hadlock: no route found")
)

// neighborOrder fixes a deterministic exploration order over the four
// compass directions.
var neighborOrder = [4]cellstate.Direction{cellstate.L, cellstate.R, cellstate.U, cellstate.D}
