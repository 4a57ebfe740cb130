// Package mikami implements the Mikami-Tabuchi line-probe router: a
// ray-casting search that trades optimality for speed by shooting
// straight probes from every discovered cell instead of expanding one
// step at a time.
//
// What: the open set holds (x, y, probe direction) quadruples. Each
// popped quadruple fires a ray from (x, y) in its direction; every
// cell the ray crosses that has no recorded parent and admits the
// crossing direction is claimed, and two new probes are enqueued from
// it in the two directions perpendicular to the ray. A popped
// quadruple whose coordinates match the target triggers traceback,
// identical to package lee's. The target-match test happens at
// dequeue time, not while a ray is in flight, and a ray never
// re-visits its own source cell.
//
// Ordering: FIFO over probes. Not optimal in path length, but finds a
// route whenever one exists.
//
// Errors:
//
//   - ErrEndpointNotEmpty: either endpoint already carries wire or is blocked.
//   - ErrNoRoute: the probe queue exhausted without reaching the target.
package mikami
