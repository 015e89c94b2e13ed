package session_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/session"
)

func TestView_EmptyGraph(t *testing.T) {
	v := session.New().View()

	assert.Equal(t, "empty", v.State)
	assert.Equal(t, -1, v.Cursor)
	assert.Zero(t, v.Total)
	assert.Equal(t, session.PromptBoth, v.Prompt)
	assert.False(t, v.CanAdvance)
	assert.False(t, v.CanRetreat)
	assert.Empty(t, v.Nodes)
	assert.Empty(t, v.Edges)
}

func TestView_Authoring(t *testing.T) {
	s := session.New()
	ids := fourNodes(t, s)
	v := s.View()

	assert.Equal(t, "empty", v.State)
	assert.Empty(t, v.Kind)
	assert.Empty(t, v.Prompt)
	require.Len(t, v.Nodes, 4)
	assert.True(t, v.Nodes[0].IsSource)
	assert.True(t, v.Nodes[3].IsTarget)
	assert.Equal(t, "1", v.Nodes[0].Label)
	require.NotNil(t, v.Nodes[1].Position)
	assert.Equal(t, 100.0, v.Nodes[1].Position.X)
	for _, n := range v.Nodes {
		assert.False(t, n.IsCurrent)
		assert.False(t, n.IsHighlighted)
		assert.False(t, n.IsOnShortestPath)
	}
	assert.Equal(t, ids[0], v.Edges[0].Source)
}

func TestView_Playback(t *testing.T) {
	s := session.New()
	ids := fourNodes(t, s)
	require.NoError(t, s.Run())

	v := s.View()
	assert.Equal(t, "playing", v.State)
	assert.Equal(t, 0, v.Cursor)
	assert.Equal(t, 9, v.Total)
	assert.Equal(t, "INIT", v.Kind)
	assert.Equal(t, "Initializing distances: start node = 0, others = ∞", v.Message)
	assert.True(t, v.CanAdvance)
	assert.False(t, v.CanRetreat)
	for _, n := range v.Nodes {
		assert.False(t, n.IsHighlighted, "nothing is highlighted on init")
	}

	// Step 2: update node 2 while visiting node 1.
	require.NoError(t, s.Jump(2))
	v = s.View()
	assert.Equal(t, "UPDATE", v.Kind)
	assert.True(t, v.Nodes[0].IsCurrent)
	assert.True(t, v.Nodes[0].IsHighlighted)
	assert.True(t, v.Nodes[1].IsHighlighted)
	assert.False(t, v.Nodes[1].IsCurrent)
	assert.Equal(t, core.Distance(4), v.Nodes[1].Distance)
	assert.Empty(t, v.Path)

	require.NoError(t, s.Last())
	v = s.View()
	assert.Equal(t, "FINISH", v.Kind)
	assert.Equal(t, "Found shortest path with distance 5", v.Message)
	assert.Equal(t, []core.NodeID{ids[0], ids[2], ids[3]}, v.Path)
	assert.False(t, v.CanAdvance)

	onPath := map[core.NodeID]bool{}
	for _, n := range v.Nodes {
		onPath[n.ID] = n.IsOnShortestPath
		assert.True(t, n.Visited)
	}
	assert.Equal(t, map[core.NodeID]bool{ids[0]: true, ids[1]: false, ids[2]: true, ids[3]: true}, onPath)

	pathEdges := map[core.EdgeID]bool{}
	for _, e := range v.Edges {
		pathEdges[e.ID] = e.IsOnShortestPath
	}
	assert.True(t, pathEdges[core.MakeEdgeID(ids[0], ids[2])])
	assert.True(t, pathEdges[core.MakeEdgeID(ids[2], ids[3])])
	assert.False(t, pathEdges[core.MakeEdgeID(ids[0], ids[1])])
	assert.False(t, pathEdges[core.MakeEdgeID(ids[1], ids[3])])
}

func TestView_PathEdgeReversed(t *testing.T) {
	s := session.New()
	a, _ := s.AddNode()
	b, _ := s.AddNode()
	// Authored target→source; traversed source→target.
	_, err := s.AddEdge(b, a, 7)
	require.NoError(t, err)
	require.NoError(t, s.SetSource(a))
	require.NoError(t, s.SetTarget(b))
	require.NoError(t, s.Run())
	require.NoError(t, s.Last())

	v := s.View()
	require.Len(t, v.Edges, 1)
	assert.True(t, v.Edges[0].IsOnShortestPath)
}

func TestView_Unreachable(t *testing.T) {
	s := session.New()
	a, _ := s.AddNode()
	b, _ := s.AddNode()
	require.NoError(t, s.SetSource(a))
	require.NoError(t, s.SetTarget(b))
	require.NoError(t, s.Run())
	require.NoError(t, s.Last())

	v := s.View()
	assert.Equal(t, "FINISH", v.Kind)
	assert.Equal(t, "No path from node 1 to node 2", v.Message)
	assert.Empty(t, v.Path)
	for _, n := range v.Nodes {
		assert.False(t, n.IsOnShortestPath)
	}
}

func TestView_JSON(t *testing.T) {
	s := session.New()
	fourNodes(t, s)
	require.NoError(t, s.Run())

	raw, err := json.Marshal(s.View())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "playing", decoded["state"])
	nodes := decoded["nodes"].([]any)
	require.Len(t, nodes, 4)
	assert.Nil(t, nodes[1].(map[string]any)["distance"], "unreached distances encode as null")
	assert.EqualValues(t, 0, nodes[0].(map[string]any)["distance"])
}

func TestView_ReversedPairFlagsRelaxedEdgeOnly(t *testing.T) {
	s := session.New()
	a, _ := s.AddNode()
	b, _ := s.AddNode()
	_, err := s.AddEdge(a, b, 9)
	require.NoError(t, err)
	_, err = s.AddEdge(b, a, 1)
	require.NoError(t, err)
	require.NoError(t, s.SetSource(a))
	require.NoError(t, s.SetTarget(b))
	require.NoError(t, s.Run())
	require.NoError(t, s.Last())

	v := s.View()
	assert.Equal(t, "Found shortest path with distance 1", v.Message)
	flags := map[core.EdgeID]bool{}
	for _, e := range v.Edges {
		flags[e.ID] = e.IsOnShortestPath
	}
	assert.Equal(t, map[core.EdgeID]bool{
		core.MakeEdgeID(a, b): false,
		core.MakeEdgeID(b, a): true,
	}, flags)
}

func TestView_Analysis(t *testing.T) {
	s := session.New()
	fourNodes(t, s)
	assert.Nil(t, s.View().Analysis)

	require.NoError(t, s.Run())
	require.NoError(t, s.Last())
	v := s.View()
	require.NotNil(t, v.Analysis)
	assert.Equal(t, 3, v.Analysis.PathLength)
	assert.Equal(t, int64(5), v.Analysis.TotalDistance)
	assert.Equal(t, 4, v.Analysis.VisitedNodes)
	assert.InDelta(t, 100.0, v.Analysis.Coverage, 1e-9)
	assert.InDelta(t, 3.0, v.Analysis.AverageDistance, 1e-9)
	assert.Equal(t, 5, v.Analysis.EdgeCount)
}
