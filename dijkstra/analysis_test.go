package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
)

func TestSummarize(t *testing.T) {
	g, ids := buildGraph(t, 4, diamond)
	log := run(t, g, ids, 1, 4)

	sparse, sids := buildGraph(t, 3, []edgeSpec{{1, 2, 1}})
	unreachable := run(t, sparse, sids, 1, 3)

	cases := []struct {
		name  string
		step  dijkstra.Step
		edges []core.Edge
		want  dijkstra.Analysis
	}{
		{
			name:  "init",
			step:  mustAt(t, log, 0),
			edges: g.Edges(),
			want:  dijkstra.Analysis{TotalNodes: 4, EdgeCount: 5},
		},
		{
			name:  "mid run",
			step:  mustAt(t, log, 4),
			edges: g.Edges(),
			want: dijkstra.Analysis{
				VisitedNodes: 2, TotalNodes: 4, Coverage: 50, AverageDistance: 1.5, EdgeCount: 5,
			},
		},
		{
			name:  "finish",
			step:  finalStep(t, log),
			edges: g.Edges(),
			want: dijkstra.Analysis{
				PathLength: 3, TotalDistance: 5, VisitedNodes: 4, TotalNodes: 4,
				Coverage: 100, AverageDistance: 3, EdgeCount: 5,
			},
		},
		{
			name:  "unreachable target counts as zero",
			step:  finalStep(t, unreachable),
			edges: sparse.Edges(),
			want: dijkstra.Analysis{
				VisitedNodes: 3, TotalNodes: 3, Coverage: 100, AverageDistance: 1.0 / 3, EdgeCount: 1,
			},
		},
		{
			name: "path without via",
			step: dijkstra.Step{
				Kind: dijkstra.Finish,
				Nodes: []dijkstra.NodeState{
					{ID: "a", Distance: 0, Visited: true},
					{ID: "b", Distance: 7, Visited: true},
				},
				Path: []core.NodeID{"a", "b"},
			},
			edges: []core.Edge{{ID: "b->a", Source: "b", Target: "a", Weight: 7}},
			want: dijkstra.Analysis{
				PathLength: 2, TotalDistance: 7, VisitedNodes: 2, TotalNodes: 2,
				Coverage: 100, AverageDistance: 3.5, EdgeCount: 1,
			},
		},
		{
			name: "empty step",
			want: dijkstra.Analysis{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := dijkstra.Summarize(tc.step, tc.edges)
			assert.InDelta(t, tc.want.AverageDistance, got.AverageDistance, 1e-9)
			assert.InDelta(t, tc.want.Coverage, got.Coverage, 1e-9)
			got.AverageDistance, got.Coverage = tc.want.AverageDistance, tc.want.Coverage
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSummarize_UsesRelaxedEdge(t *testing.T) {
	// Both directions exist; only the lighter reverse edge sets node 2.
	g, ids := buildGraph(t, 2, []edgeSpec{{1, 2, 9}, {2, 1, 1}})
	log := run(t, g, ids, 1, 2)

	a := dijkstra.Summarize(finalStep(t, log), g.Edges())
	assert.Equal(t, int64(1), a.TotalDistance)
	assert.Equal(t, 2, a.PathLength)
}

func mustAt(t *testing.T, log *dijkstra.Log, i int) dijkstra.Step {
	t.Helper()
	s, ok := log.At(i)
	require.True(t, ok)

	return s
}
