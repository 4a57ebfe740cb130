// Package cellstate classifies a single grid cell by the subset of its
// four edges (Left, Right, Up, Down) that carry wire, and implements the
// incremental update rule a router applies when it lays a new segment
// through a cell.
//
// What:
//
//   - State is a closed 13-way classification: Empty, Blocked, the two
//     180° straights (LR, UD), the four 90° elbows (LU, RU, LD, RD), the
//     four T-junctions (LUR, URD, RDL, DLU), and Cross.
//   - Direction is the four-way {L, R, U, D} compass used for traversal
//     and edge masks.
//   - Merge folds one new entry/exit edge pair into an existing State.
//
// Why:
//
//   - Every routing engine in this module shares exactly this algebra;
//     getting it right once here means no engine re-implements it.
//
// Complexity: every operation in this package is O(1).
package cellstate
