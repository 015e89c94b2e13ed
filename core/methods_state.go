// File: methods_state.go
// Role: Source/target designation, revision, algorithm-derived state,
//       snapshots and Clear.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// SetSource designates the run's source node. The empty id clears it.
//
// Errors:
//   - ErrUnknownNode if id is non-empty and absent.
//
// A change bumps Revision(); setting the same value again does not.
func (g *Graph) SetSource(id NodeID) error {
	return g.setTerminal(&g.source, id)
}

// SetTarget designates the run's target node. The empty id clears it.
//
// Errors:
//   - ErrUnknownNode if id is non-empty and absent.
func (g *Graph) SetTarget(id NodeID) error {
	return g.setTerminal(&g.target, id)
}

func (g *Graph) setTerminal(slot *NodeID, id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id != "" {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	if *slot != id {
		*slot = id
		g.revision++
	}

	return nil
}

// Source returns the designated source, or "" when unset.
func (g *Graph) Source() NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.source
}

// Target returns the designated target, or "" when unset.
func (g *Graph) Target() NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.target
}

// Revision returns a counter bumped by every topology or terminal change.
// Algorithm-state writes (ApplyStates, ClearAlgorithmState) leave it untouched.
func (g *Graph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revision
}

// ApplyStates writes distance/visited/predecessor for every listed node.
// States for ids that are not in the graph are ignored, since a log may
// outlive a node removal until the playback layer notices.
func (g *Graph) ApplyStates(states []NodeState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, s := range states {
		n, ok := g.nodes[s.ID]
		if !ok {
			continue
		}
		n.Distance = s.Distance
		n.Visited = s.Visited
		n.Previous = s.Previous
	}
}

// ClearAlgorithmState returns every node to Unreached, unvisited, no predecessor.
// Topology and terminals are preserved.
// Complexity: O(V).
func (g *Graph) ClearAlgorithmState() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, n := range g.nodes {
		n.Distance = Unreached
		n.Visited = false
		n.Previous = ""
	}
}

// Clear drops every node, edge and terminal and restarts the id counter.
// The revision keeps increasing so logs built before Clear stay stale.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = make(map[NodeID]*Node)
	g.nodeOrder = nil
	g.edges = make(map[EdgeID]*Edge)
	g.edgeOrder = nil
	g.source, g.target = "", ""
	g.nextID = 0
	g.revision++
}

// Snapshot is an immutable, deep copy of a Graph at one revision.
// Nodes and Edges are in creation order.
type Snapshot struct {
	Nodes    []Node
	Edges    []Edge
	Source   NodeID
	Target   NodeID
	Revision uint64
}

// Snapshot copies the graph under the read lock.
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Snapshot{
		Nodes:    g.nodesLocked(),
		Edges:    g.edgesLocked(),
		Source:   g.source,
		Target:   g.target,
		Revision: g.revision,
	}
}

// HasNode reports whether the snapshot contains id.
func (s *Snapshot) HasNode(id NodeID) bool {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return true
		}
	}

	return false
}

// Label returns the label of id, or "" when absent.
func (s *Snapshot) Label(id NodeID) string {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return s.Nodes[i].Label
		}
	}

	return ""
}
