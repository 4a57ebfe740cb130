// Package bridge is the host-facing façade over the seven routing
// engines: a single named-dispatch entry point plus the tuple/JSON
// serialization and diagnostic rendering an embedding host needs,
// without importing lee/hadlock/mikami/leemulti/stst individually.
//
// What:
//
//   - Engine names one of the seven engines by string tag.
//   - Request bundles a grid-independent argument set: two-terminal
//     engines read X1/Y1/X2/Y2, multi-terminal engines read Points.
//   - Route dispatches a Request to its engine and returns the
//     resulting change-set, pure with respect to the grid.
//   - RouteMut applies the change-set on success, mirroring every
//     engine's own *Mut convention.
//   - ChangeSetToTuples/PointsToTuples and Render expose the wire and
//     diagnostic-string forms spec.md §6 specifies, without requiring
//     the host to reach into the maze package's JSON machinery itself.
//
// Why: an embedding host (a CLI, a service, a test harness) wants one
// import and one switch-free call site; this mirrors the teacher
// library's top-level graph package, which composes core/matrix/
// algorithms behind a single surface (see the teacher's doc.go).
//
// Complexity: Route itself is O(1) dispatch; the engine call dominates.
//
// Errors:
//
//   - ErrUnknownEngine: req.Engine does not name one of the seven engines.
//   - Otherwise, whatever sentinel the dispatched engine returns.
package bridge
