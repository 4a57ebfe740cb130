package lee

import (
	"errors"

	"github.com/gridwire/maze/cellstate"
)

// Sentinel errors returned by every Lee variant in this package.
var (
	// ErrEndpointNotEmpty indicates the source or sink cell is already
	// wired or blocked.
	ErrEndpointNotEmpty = errors.New("lee: endpoint is not empty")
	// ErrNoRoute indicates the wave exhausted without reaching the target.
	ErrNoRoute = errors.New("lee: no route found")
)

// neighborOrder fixes a deterministic exploration order over the four
// compass directions, used by every variant in this package.
var neighborOrder = [4]cellstate.Direction{cellstate.L, cellstate.R, cellstate.U, cellstate.D}
