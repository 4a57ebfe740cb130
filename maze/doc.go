// Package maze owns the routing grid: a fixed-size dense array of
// cellstate.State values, the ordered change-set routers emit, and the
// point sets multi-terminal engines consume.
//
// What:
//
//   - Grid is a W×H array of cellstate.State, created all-Empty.
//   - ChangeSet is an ordered (x, y, state) edit list; applying it is how
//     a routing result reaches a Grid. Fill, Clean and Clear are the only
//     other mutators.
//   - Points is a multiset of (x, y) coordinates with a canonical
//     sorted/deduplicated view for multi-terminal engines.
//
// Why:
//
//   - Every routing engine reads a Grid but never mutates it directly;
//     this package is the sole owner of mutation, so Verify's invariant
//     can be checked in exactly one place.
//
// Complexity:
//
//   - New, Fill, Clean, Clear, Apply: O(W×H) or O(edit count).
//   - Verify: O(W×H).
//   - Get, InBounds: O(1).
//
// Errors:
//
//   - Fill/Clean panic on an out-of-bounds rectangle (spec.md §7: fatal,
//     caller-bug, never recoverable).
package maze
