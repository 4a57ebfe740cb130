// Package stst implements the Single-Trunk Steiner Tree engine: a
// rectilinear Steiner tree constrained to one straight backbone, with
// perpendicular stubs dropping to any terminal not on the backbone.
//
// What: let B be the bounding box of the terminals. The engine tries
// 2*k trunk candidates — for each terminal p, a horizontal trunk
// spanning [B.MinX, B.MaxX] at row p.Y, and a vertical trunk spanning
// [B.MinY, B.MaxY] at column p.X. A candidate lays its trunk cells
// first (classifying each trunk cell by whether it is an end or
// interior column/row, and by which terminals branch off it), then
// drops a UD (horizontal trunk) or LR (vertical trunk) stub from the
// trunk to every terminal not sitting on the trunk itself. A stub
// overlapping an existing perpendicular straight promotes to Cross; a
// stub overlapping anything else (and not Empty) makes the candidate
// infeasible. Every terminal is finally marked Blocked, and the
// resulting change-set is normalized with maze.ChangeSet.Dedup so
// terminal blocks win over any trunk or stub classification written to
// the same address. The shortest feasible candidate's change-set is
// returned.
//
// Degenerate inputs: zero terminals produce an empty, successful
// change-set; one terminal produces a single Blocked cell.
//
// Errors:
//
//   - ErrTerminalNotEmpty: a terminal is not Empty on entry.
//   - ErrNoFeasibleTrunk: every one of the 2*k candidates was infeasible.
package stst
