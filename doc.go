// Package pathstep records Dijkstra's shortest-path algorithm one step at a
// time and plays the recording back, so every intermediate state of a run
// can be shown, stepped through and inspected.
//
// 🚀 What is pathstep?
//
//	An authoring + playback engine for weighted undirected graphs:
//		• Graph model: nodes with stable ids and labels, weighted edges,
//		  a designated start and end node
//		• Step recorder: INIT / VISIT / UPDATE / FINISH snapshots with
//		  human-readable messages
//		• Player: a cursor over the recording (advance, retreat, jump)
//		• Session: authoring locked while a run is presented, derived
//		  highlight / visited / path sets for renderers
//		• Service: HTTP sessions, YAML presets, Prometheus metrics
//
// Packages:
//
//	core/      Graph, Node, Edge, Distance and snapshots
//	dijkstra/  Build: snapshot → step log
//	playback/  Player cursor state machine
//	session/   authoring/playback controller and View
//	preset/    YAML example graphs and a name registry
//	config/    service configuration with hot reload
//	logging/   slog construction with file rotation
//	metrics/   Prometheus collectors
//	server/    Fiber HTTP API over sessions
//	cmd/       pathstepd (server) and pathstep (CLI replay)
//
// Quick ASCII example (preset "diamond", start 1, end 4):
//
//	(1)──4──(2)
//	 │      / │
//	 3    6   5
//	 │  /     │
//	(3)──2──(4)
//
// Shortest path 1 → 3 → 4 with distance 5, recorded in nine steps.
//
//	go install github.com/katalvlaran/pathstep/cmd/pathstep@latest
package pathstep
