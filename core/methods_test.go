// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight2 = 2
	Weight3 = 3
	Weight4 = 4
)

// newLine builds 1 -w- 2 -w- 3 and returns the ids in creation order.
func newLine(t *testing.T, w int64) (*core.Graph, []core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ids := []core.NodeID{g.AddNode(), g.AddNode(), g.AddNode()}
	_, err := g.AddEdge(ids[0], ids[1], w)
	require.NoError(t, err)
	_, err = g.AddEdge(ids[1], ids[2], w)
	require.NoError(t, err)

	return g, ids
}

func TestGraph_AddNode_IDsAndLabels(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(core.AtPosition(10, 20))
	b := g.AddNode()

	assert.Equal(t, core.NodeID("node-0"), a)
	assert.Equal(t, core.NodeID("node-1"), b)

	na, err := g.Node(a)
	require.NoError(t, err)
	assert.Equal(t, "1", na.Label)
	assert.Equal(t, core.Unreached, na.Distance)
	assert.False(t, na.Visited)
	assert.Empty(t, na.Previous)
	require.NotNil(t, na.Position)
	assert.Equal(t, core.Position{X: 10, Y: 20}, *na.Position)

	nb, err := g.Node(b)
	require.NoError(t, err)
	assert.Equal(t, "2", nb.Label)
	assert.Nil(t, nb.Position)
}

func TestGraph_LabelsNotRenumberedAndIDsNotReused(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode()
	b := g.AddNode()
	require.NoError(t, g.RemoveNode(a))

	c := g.AddNode()
	assert.Equal(t, core.NodeID("node-2"), c, "ids are never reused")

	nb, _ := g.Node(b)
	nc, _ := g.Node(c)
	assert.Equal(t, "2", nb.Label, "labels are not renumbered")
	assert.Equal(t, "2", nc.Label, "label is count+1 at allocation time")
}

func TestGraph_IndependentIDSequences(t *testing.T) {
	g1 := core.NewGraph()
	g2 := core.NewGraph(core.WithNodeIDPrefix("n"))
	g1.AddNode()
	g1.AddNode()

	assert.Equal(t, core.NodeID("n0"), g2.AddNode())
	assert.Equal(t, core.NodeID("node-2"), g1.AddNode())
}

func TestGraph_AddEdge_InvalidReferenceIsAtomic(t *testing.T) {
	g, ids := newLine(t, Weight2)
	before := g.Snapshot()

	_, err := g.AddEdge(ids[0], "node-99", Weight3)
	require.ErrorIs(t, err, core.ErrInvalidReference)
	_, err = g.AddEdge("node-99", ids[0], Weight3)
	require.ErrorIs(t, err, core.ErrInvalidReference)

	after := g.Snapshot()
	assert.Equal(t, before, after, "node/edge collections are unchanged")
}

func TestGraph_AddEdge_NegativeWeight(t *testing.T) {
	g, ids := newLine(t, Weight2)
	rev := g.Revision()

	_, err := g.AddEdge(ids[0], ids[2], -1)
	require.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, rev, g.Revision())
}

func TestGraph_AddEdge_DuplicatePairOverwrites(t *testing.T) {
	g, ids := newLine(t, Weight2)

	eid, err := g.AddEdge(ids[0], ids[1], Weight4)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeID("node-0->node-1"), eid)
	assert.Equal(t, 2, g.EdgeCount())

	edges := g.Edges()
	assert.Equal(t, eid, edges[0].ID, "overwrite keeps the original slot")
	assert.Equal(t, int64(Weight4), edges[0].Weight)

	// Reverse pair is a distinct edge.
	rid, err := g.AddEdge(ids[1], ids[0], Weight0)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeID("node-1->node-0"), rid)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(ids[1], ids[0]))
}

func TestGraph_RemoveNode_Cascades(t *testing.T) {
	g, ids := newLine(t, Weight2)
	require.NoError(t, g.SetSource(ids[1]))
	require.NoError(t, g.SetTarget(ids[2]))

	require.NoError(t, g.RemoveNode(ids[1]))
	assert.False(t, g.HasNode(ids[1]))
	assert.Zero(t, g.EdgeCount(), "both edges touched the removed node")
	assert.Empty(t, g.Source(), "source designation is cleared")
	assert.Equal(t, ids[2], g.Target())

	require.ErrorIs(t, g.RemoveNode(ids[1]), core.ErrUnknownNode)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g, ids := newLine(t, Weight2)
	require.NoError(t, g.RemoveEdge(core.MakeEdgeID(ids[0], ids[1])))
	assert.Equal(t, 1, g.EdgeCount())
	require.ErrorIs(t, g.RemoveEdge("nope"), core.ErrEdgeNotFound)

	_, err := g.Edge(core.MakeEdgeID(ids[1], ids[2]))
	require.NoError(t, err)
}

func TestGraph_IncidentEdges(t *testing.T) {
	g, ids := newLine(t, Weight2)
	in, err := g.IncidentEdges(ids[1])
	require.NoError(t, err)
	require.Len(t, in, 2)
	assert.Equal(t, core.MakeEdgeID(ids[0], ids[1]), in[0].ID)

	_, err = g.IncidentEdges("missing")
	require.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestGraph_SetTerminals(t *testing.T) {
	g, ids := newLine(t, Weight2)

	require.ErrorIs(t, g.SetSource("ghost"), core.ErrUnknownNode)
	require.ErrorIs(t, g.SetTarget("ghost"), core.ErrUnknownNode)

	rev := g.Revision()
	require.NoError(t, g.SetSource(ids[0]))
	assert.Greater(t, g.Revision(), rev)

	rev = g.Revision()
	require.NoError(t, g.SetSource(ids[0]))
	assert.Equal(t, rev, g.Revision(), "re-setting the same source is not a change")

	require.NoError(t, g.SetSource(""))
	assert.Empty(t, g.Source())
}

func TestGraph_StateRoundTrip(t *testing.T) {
	g, ids := newLine(t, Weight2)
	rev := g.Revision()

	g.ApplyStates([]core.NodeState{
		{ID: ids[0], Distance: 0, Visited: true},
		{ID: ids[1], Distance: 2, Previous: ids[0]},
		{ID: "gone", Distance: 7},
	})
	n1, _ := g.Node(ids[1])
	assert.Equal(t, core.Distance(2), n1.Distance)
	assert.Equal(t, ids[0], n1.Previous)
	assert.Equal(t, rev, g.Revision(), "algorithm state does not bump the revision")

	g.ClearAlgorithmState()
	for _, n := range g.Nodes() {
		assert.Equal(t, core.Unreached, n.Distance)
		assert.False(t, n.Visited)
		assert.Empty(t, n.Previous)
	}
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_SnapshotIsIndependent(t *testing.T) {
	g := core.NewGraph()
	id := g.AddNode(core.AtPosition(1, 1))
	snap := g.Snapshot()

	snap.Nodes[0].Position.X = 99
	snap.Nodes[0].Label = "changed"

	n, _ := g.Node(id)
	assert.Equal(t, float64(1), n.Position.X)
	assert.Equal(t, "1", n.Label)
	assert.True(t, snap.HasNode(id))
	assert.Equal(t, "changed", snap.Label(id))
	assert.Empty(t, snap.Label("x"))
}

func TestGraph_Clear(t *testing.T) {
	g, _ := newLine(t, Weight2)
	rev := g.Revision()
	g.Clear()

	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.Greater(t, g.Revision(), rev)
	assert.Equal(t, core.NodeID("node-0"), g.AddNode(), "counter restarts")
}

func TestDistance(t *testing.T) {
	assert.False(t, core.Unreached.Reached())
	assert.True(t, core.Distance(0).Reached())
	assert.Equal(t, "∞", core.Unreached.String())
	assert.Equal(t, "7", core.Distance(7).String())

	assert.Equal(t, core.Distance(5), core.Distance(2).Add(3))
	assert.Equal(t, core.Unreached, core.Unreached.Add(0))
	assert.Equal(t, core.Unreached, core.Distance(10).Add(int64(core.Unreached)-5))

	b, err := json.Marshal([]core.Distance{core.Unreached, 4})
	require.NoError(t, err)
	assert.JSONEq(t, `[null,4]`, string(b))

	var back []core.Distance
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, []core.Distance{core.Unreached, 4}, back)
}

func TestEdge_Other(t *testing.T) {
	e := core.Edge{Source: "a", Target: "b"}
	o, ok := e.Other("a")
	assert.True(t, ok)
	assert.Equal(t, core.NodeID("b"), o)
	o, ok = e.Other("b")
	assert.True(t, ok)
	assert.Equal(t, core.NodeID("a"), o)
	_, ok = e.Other("c")
	assert.False(t, ok)
}
