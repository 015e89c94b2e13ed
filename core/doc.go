// Package core provides the graph model shared by the authoring layer and the
// step-recording shortest-path engine.
//
// A Graph G = (V,E) here is small, undirected for traversal and authored one
// action at a time:
//
//   - Nodes receive ids from the graph's own counter ("node-0", "node-1", …).
//     Ids are never reused, so two independent graphs never share a sequence.
//   - Labels are "count+1" at allocation time and are not renumbered on removal.
//   - Edges keep a directional Source/Target label for display, but the engine
//     traverses them from either endpoint.
//   - The edge id is derived from the ordered pair ("node-0->node-1"); adding the
//     same pair again overwrites the weight of the earlier edge.
//   - Weights are non-negative int64 values.
//
// Algorithm-derived fields:
//
//	Node.Distance, Node.Visited and Node.Previous mirror the step the engine is
//	currently presenting. They are written through ApplyStates and cleared with
//	ClearAlgorithmState; authoring never touches them.
//
// Revision:
//
//	Every topology or source/target change bumps Revision(). A step log built
//	from Snapshot() records the revision it saw, so a stale log can be detected
//	and discarded by the playback layer.
//
// Errors:
//
//	ErrInvalidReference - edge endpoint is not a node of this graph.
//	ErrInvalidWeight    - negative edge weight.
//	ErrUnknownNode      - source/target/removal references a missing node.
//	ErrEdgeNotFound     - removal references a missing edge.
//
// Determinism:
//
//	Nodes() and Edges() enumerate in creation order. The shortest-path engine
//	relies on this order for its tie-break rule.
//
// Concurrency:
//
//	A single sync.RWMutex guards the whole graph. Queries take the read lock,
//	mutations the write lock; returned values are copies.
package core
