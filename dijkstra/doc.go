// Package dijkstra records Dijkstra's single-source shortest-path algorithm as
// an ordered, replayable log of algorithm states.
//
// Overview:
//
//   - Build consumes an immutable core.Snapshot and returns a *Log of Steps.
//   - Every Step is a full snapshot of per-node distance/visited/predecessor
//     state, so any step can be rendered without looking at its neighbours.
//   - Step kinds: Init, Visit, Update, Finish. Finish carries the
//     reconstructed shortest path (empty when the target is unreachable).
//
// Algorithm:
//
//	The frontier is selected by a linear scan over the unvisited nodes in
//	creation order; the first node with the strictly smallest tentative
//	distance wins ties. Edges of the frontier node are relaxed in edge
//	creation order, each successful relaxation producing its own Update step.
//	When the smallest tentative distance is Unreached, the remaining nodes are
//	unreachable and the loop stops.
//
// Complexity:
//
//   - Time:  O(V² + V·E) for the scan and relaxation, plus O(S·V) to copy
//     state into S steps.
//   - Space: O(S·V) for the per-step snapshots.
//
// Edge cases:
//
//   - A snapshot with zero nodes yields an empty log and no error.
//   - source == target yields the single-node path [source] with distance 0.
//
// Errors (sentinel):
//
//   - ErrNilSnapshot  if the snapshot pointer is nil.
//   - ErrEmptySource  if no source is designated.
//   - ErrEmptyTarget  if no target is designated.
//   - core.ErrUnknownNode   (wrapped) if source or target is not in the snapshot.
//   - core.ErrInvalidReference (wrapped) if an edge endpoint is missing.
//   - core.ErrInvalidWeight (wrapped) if an edge carries a negative weight.
//
// Determinism:
//
//	Build is pure. Two calls on equal snapshots and terminals return
//	structurally equal logs.
package dijkstra
