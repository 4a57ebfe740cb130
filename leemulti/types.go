package leemulti

import (
	"errors"

	"github.com/gridwire/maze/cellstate"
)

// Sentinel errors returned by LeeMulti.
var (
	// ErrTerminalNotEmpty indicates a terminal is not Empty on entry.
	ErrTerminalNotEmpty = errors.New("leemulti: terminal is not empty")
	// ErrNoRoute indicates the wave exhausted before every terminal was
	// reached.
	ErrNoRoute = errors.New("leemulti: no route found")
)

// neighborOrder fixes a deterministic exploration order over the four
// compass directions.
var neighborOrder = [4]cellstate.Direction{cellstate.L, cellstate.R, cellstate.U, cellstate.D}
