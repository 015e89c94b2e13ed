package dijkstra

import "github.com/katalvlaran/pathstep/core"

// Analysis summarizes one step against the graph it was recorded on.
//
//	PathLength       – number of nodes on Path (0 before Finish).
//	TotalDistance    – sum of the weights of the path edges.
//	VisitedNodes     – nodes marked visited in the step.
//	TotalNodes       – nodes in the step.
//	Coverage         – VisitedNodes / TotalNodes as a percentage.
//	AverageDistance  – mean distance over visited nodes, Unreached counted as 0.
//	EdgeCount        – edges in the graph.
type Analysis struct {
	PathLength      int     `json:"path_length"`
	TotalDistance   int64   `json:"total_distance"`
	VisitedNodes    int     `json:"visited_nodes"`
	TotalNodes      int     `json:"total_nodes"`
	Coverage        float64 `json:"coverage"`
	AverageDistance float64 `json:"average_distance"`
	EdgeCount       int     `json:"edge_count"`
}

// Summarize computes the Analysis of s over edges.
//
// Path edges are resolved through each node's Via. A hand-built step
// without Via falls back to the first edge joining consecutive path nodes
// in either direction.
//
// Complexity: O(V + E + P·V) where P is the path length.
func Summarize(s Step, edges []core.Edge) Analysis {
	a := Analysis{
		PathLength: len(s.Path),
		TotalNodes: len(s.Nodes),
		EdgeCount:  len(edges),
	}

	weights := make(map[core.EdgeID]int64, len(edges))
	for _, e := range edges {
		weights[e.ID] = e.Weight
	}
	for i := 1; i < len(s.Path); i++ {
		if st, ok := s.State(s.Path[i]); ok && st.Via != "" {
			if w, ok := weights[st.Via]; ok {
				a.TotalDistance += w
				continue
			}
		}
		for _, e := range edges {
			if other, ok := e.Other(s.Path[i-1]); ok && other == s.Path[i] {
				a.TotalDistance += e.Weight
				break
			}
		}
	}

	var sum float64
	for _, n := range s.Nodes {
		if !n.Visited {
			continue
		}
		a.VisitedNodes++
		if n.Distance.Reached() {
			sum += float64(n.Distance)
		}
	}
	if a.VisitedNodes > 0 {
		a.AverageDistance = sum / float64(a.VisitedNodes)
	}
	if a.TotalNodes > 0 {
		a.Coverage = float64(a.VisitedNodes) / float64(a.TotalNodes) * 100
	}

	return a
}
