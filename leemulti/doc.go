// Package leemulti implements a Steiner-like multi-terminal router: one
// breadth-first wave that absorbs each terminal as it is reached,
// instead of routing every terminal pair independently.
//
// What: the first terminal seeds the wave as Blocked. The wave then
// proceeds exactly like package lee's basic variant against a working
// copy of the grid. Whenever the wave dequeues a cell that is one of
// the remaining terminals, traceback walks the parent-direction map
// backward until it meets a cell that is already Blocked in the working
// copy, and the resulting edits are applied to that working copy before
// the wave continues. Reached terminals are never expanded, so every
// parent chain leads back to the first terminal; where a chain runs over
// wire laid for an earlier terminal, Merge keeps that wire's edges and
// adds the new branch's, so the branch joins the tree at that cell (a
// straight becomes a T-junction). The wave's frontier and
// parent-direction map are never reset between terminals.
//
// Degenerate inputs: zero terminals produce an empty, successful
// change-set; one terminal produces a single Blocked cell.
//
// Errors:
//
//   - ErrTerminalNotEmpty: a terminal is not Empty on entry.
//   - ErrNoRoute: the wave exhausted before every terminal was reached.
package leemulti
