// Package lee implements the Lee wave-expansion router and its two
// priority-ordered variants: minimum-crossing and minimum-edge-effect.
//
// What:
//
//   - Lee: plain breadth-first wave expansion; first reachability equals
//     the minimum Manhattan-step count through admissible cells.
//   - LeeMinCrossing: same wave, but popped in order of
//     (crossing count, step count) so routes prefer fewer wire crossings.
//   - LeeMinEdgeEffect: same wave, popped in order of
//     (congestion, step count) so routes prefer less-congested neighborhoods.
//
// All three share one skeleton: a frontier of cells, a dense
// parent-direction map recording how each cell was first reached, and a
// traceback from target to source that classifies each intermediate cell
// via cellstate.Merge. They differ only in the open-set discipline (FIFO
// queue vs. two differently-keyed priority queues), mirroring how
// spec.md §4.4 describes the family.
//
// Errors:
//
//   - ErrEndpointNotEmpty: either endpoint already carries wire or is blocked.
//   - ErrNoRoute: the wave exhausted without reaching the target.
//
// Complexity: O(W×H) memory per call; O(W×H) time for Lee and
// O(W×H log(W×H)) time for the two priority-queue variants.
package lee
