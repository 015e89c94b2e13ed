// Package dijkstra_test provides examples demonstrating how to record a run.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
)

// ExampleBuild records a run on the classic four-node graph and prints every
// step message.
func ExampleBuild() {
	// 1) Author the graph: four nodes labelled 1..4.
	g := core.NewGraph()
	n1, n2, n3, n4 := g.AddNode(), g.AddNode(), g.AddNode(), g.AddNode()

	// 2) Undirected weighted edges.
	g.AddEdge(n1, n2, 4)
	g.AddEdge(n1, n3, 3)
	g.AddEdge(n2, n3, 6)
	g.AddEdge(n2, n4, 5)
	g.AddEdge(n3, n4, 2)

	// 3) Designate terminals and record the run from a snapshot.
	g.SetSource(n1)
	g.SetTarget(n4)
	log, err := dijkstra.Build(g.Snapshot())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range log.Steps() {
		fmt.Printf("%-6s %s\n", s.Kind, s.Message)
	}
	// Output:
	// INIT   Initializing distances: start node = 0, others = ∞
	// VISIT  Visit node 1 (distance = 0)
	// UPDATE Update distance to node 2: 4
	// UPDATE Update distance to node 3: 3
	// VISIT  Visit node 3 (distance = 3)
	// UPDATE Update distance to node 4: 5
	// VISIT  Visit node 2 (distance = 4)
	// VISIT  Visit node 4 (distance = 5)
	// FINISH Found shortest path with distance 5
}

// ExampleLog_At shows the path carried by the terminal step.
func ExampleLog_At() {
	g := core.NewGraph()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(a, c, 5)

	log, _ := dijkstra.Build(g.Snapshot(), dijkstra.Source(a), dijkstra.Target(c))
	last, _ := log.At(log.Len() - 1)
	fmt.Println(last.Path)
	// Output: [node-0 node-1 node-2]
}
