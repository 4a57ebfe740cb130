// Package gridwire is the root of a library of maze routing algorithms
// over a rectangular grid in the style of VLSI/PCB auto-routers.
//
// Given a grid of obstacles and previously-routed wire segments, the
// library finds two-terminal shortest paths or multi-terminal
// rectilinear Steiner trees, returning an atomic change-set the caller
// may apply or discard. Seven routing engines share one cell-state
// algebra:
//
//	cellstate/ — the State/Direction sum types and edge-mask algebra
//	maze/      — Grid, ChangeSet, Points, and the mutators that own them
//	lee/       — Lee, LeeMinCrossing, LeeMinEdgeEffect (wave expansion)
//	hadlock/   — Hadlock (detour-count A*)
//	mikami/    — MikamiTabuchi (line-probe search)
//	leemulti/  — LeeMulti (iterative BFS Steiner tree)
//	stst/      — STST (single-trunk Steiner tree)
//	bridge/    — named-engine dispatch and serialization for embedding hosts
//
// Engine packages depend only on cellstate and maze, and never on one
// another; bridge composes all of them behind one import for a host
// that wants a single entry point.
//
//	go get github.com/gridwire/maze
package gridwire
