// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount/IncidentEdges.
// Determinism:
//   - Edges() and IncidentEdges() return edges in creation order.
//   - Overwriting an existing (source,target) pair keeps its original slot.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge creates (or overwrites) the edge for the ordered pair (source, target).
//
// Steps:
//  1. Validate both endpoints exist (ErrInvalidReference).
//  2. Validate weight >= 0 (ErrInvalidWeight).
//  3. Derive the id from the pair; if it exists, overwrite the weight in place,
//     otherwise append a new edge.
//
// The graph is unchanged when an error is returned.
// Self-loops are stored; traversal never follows them because the far end is
// the node being processed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, target NodeID, weight int64) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[source]; !ok {
		return "", fmt.Errorf("%w: source %q", ErrInvalidReference, source)
	}
	if _, ok := g.nodes[target]; !ok {
		return "", fmt.Errorf("%w: target %q", ErrInvalidReference, target)
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %s->%s weight=%d", ErrInvalidWeight, source, target, weight)
	}

	eid := MakeEdgeID(source, target)
	if e, exists := g.edges[eid]; exists {
		e.Weight = weight
	} else {
		g.edges[eid] = &Edge{ID: eid, Source: source, Target: target, Weight: weight}
		g.edgeOrder = append(g.edgeOrder, eid)
	}
	g.revision++

	return eid, nil
}

// RemoveEdge deletes one edge.
//
// Errors:
//   - ErrEdgeNotFound if the id is not present.
//
// Complexity: O(E) to keep the creation order compact.
func (g *Graph) RemoveEdge(eid EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[eid]; !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, eid)
	}
	delete(g.edges, eid)
	for i, v := range g.edgeOrder {
		if v == eid {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)
			break
		}
	}
	g.revision++

	return nil
}

// HasEdge reports whether the ordered pair (source, target) has an edge.
// The reverse pair is a different edge id.
func (g *Graph) HasEdge(source, target NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[MakeEdgeID(source, target)]

	return ok
}

// Edge returns a copy of the edge with the given id, or ErrEdgeNotFound.
func (g *Graph) Edge(eid EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrEdgeNotFound, eid)
	}

	return *e, nil
}

// Edges returns copies of all edges in creation order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}

// IncidentEdges returns, in creation order, every edge that touches id.
//
// Errors:
//   - ErrUnknownNode if id is not in the graph.
func (g *Graph) IncidentEdges(id NodeID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	var out []Edge
	for _, eid := range g.edgeOrder {
		if e := g.edges[eid]; e.Touches(id) {
			out = append(out, *e)
		}
	}

	return out, nil
}

// edgesLocked assumes mu is held.
func (g *Graph) edgesLocked() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, *g.edges[eid])
	}

	return out
}
