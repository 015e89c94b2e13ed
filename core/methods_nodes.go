// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/RemoveNode/HasNode/Node/Nodes/NodeCount.
// Determinism:
//   - Nodes() returns nodes in creation order.
//   - Node ids come from the graph's own monotonic counter and are never reused.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"strconv"
)

// AddNode allocates a fresh node and returns its id.
//
// Implementation:
//   - Stage 1: Under the write lock, take the next id from the per-graph counter.
//   - Stage 2: Label the node with the current node count + 1.
//   - Stage 3: Apply options, register the node and bump the revision.
//
// Behavior highlights:
//   - Distance starts at Unreached, Visited at false, no predecessor.
//   - Labels are not renumbered on removal, so labels may repeat after a
//     RemoveNode; ids never do.
//
// Errors:
//   - None.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(opts ...NodeOption) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(g.idPrefix + strconv.FormatUint(g.nextID, 10))
	g.nextID++

	n := &Node{
		ID:       id,
		Label:    strconv.Itoa(len(g.nodeOrder) + 1),
		Distance: Unreached,
	}
	for _, opt := range opts {
		opt(n)
	}

	g.nodes[id] = n
	g.nodeOrder = append(g.nodeOrder, id)
	g.revision++

	return id
}

// RemoveNode deletes a node and every edge that references it.
// If the node was the source or target, that designation is cleared.
//
// Errors:
//   - ErrUnknownNode if id is not in the graph (nothing changes).
//
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	// Cascade: drop incident edges, preserving the order of the survivors.
	kept := g.edgeOrder[:0]
	for _, eid := range g.edgeOrder {
		if g.edges[eid].Touches(id) {
			delete(g.edges, eid)
			continue
		}
		kept = append(kept, eid)
	}
	g.edgeOrder = kept

	delete(g.nodes, id)
	g.nodeOrder = removeID(g.nodeOrder, id)

	if g.source == id {
		g.source = ""
	}
	if g.target == id {
		g.target = ""
	}
	g.revision++

	return nil
}

// HasNode reports whether id exists (empty id ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given id.
//
// Errors:
//   - ErrUnknownNode if the id is not present.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return n.clone(), nil
}

// Nodes returns copies of all nodes in creation order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodesLocked()
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodeOrder)
}

// nodesLocked assumes mu is held (read or write).
func (g *Graph) nodesLocked() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id].clone())
	}

	return out
}

// removeID deletes the first occurrence of id from ids, in place.
func removeID(ids []NodeID, id NodeID) []NodeID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
