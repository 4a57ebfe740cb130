// Package hadlock implements the Hadlock detour-count router: an
// A*-style variant of the Lee wave that orders its frontier by
// manhattan distance to the target plus accumulated detour count,
// reaching the target via the fewest wrong-way bends among shortest
// paths.
//
// What: same wave-expansion frame as package lee's basic variant —
// dense parent-direction map, discover-once frontier, traceback via
// cellstate.Merge — but the frontier is a priority queue keyed by
// (manhattan distance to target + detours, detours, x, y) ascending.
// A step is a detour iff it does not reduce Manhattan distance to the
// target.
//
// Errors:
//
//   - ErrEndpointNotEmpty: either endpoint already carries wire or is blocked.
//   - ErrNoRoute: the wave exhausted without reaching the target.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory per call.
package hadlock
