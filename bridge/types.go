package bridge

import (
	"errors"

	"github.com/gridwire/maze/maze"
)

// Engine names one of the seven routing engines Route can dispatch to.
type Engine string

// The seven dispatchable engines, per spec.md §2/§4.
const (
	Lee              Engine = "lee"
	LeeMinCrossing   Engine = "lee-min-crossing"
	LeeMinEdgeEffect Engine = "lee-min-edge-effect"
	Hadlock          Engine = "hadlock"
	MikamiTabuchi    Engine = "mikami-tabuchi"
	LeeMulti         Engine = "lee-multi"
	STST             Engine = "stst"
)

// ErrUnknownEngine indicates req.Engine does not name a dispatchable
// engine.
var ErrUnknownEngine = errors.New("bridge: unknown engine")

// Request bundles one routing call's arguments, independent of which
// engine serves it. Two-terminal engines (Lee, LeeMinCrossing,
// LeeMinEdgeEffect, Hadlock, MikamiTabuchi) read X1/Y1/X2/Y2;
// multi-terminal engines (LeeMulti, STST) read Points.
type Request struct {
	Engine Engine
	X1, Y1 int
	X2, Y2 int
	Points maze.Points
}
