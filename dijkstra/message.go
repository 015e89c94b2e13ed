package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

// Human-readable step messages. Renderers show them verbatim.
const (
	initMessage       = "Initializing distances: start node = 0, others = ∞"
	visitFormat       = "Visit node %s (distance = %s)"
	updateFormat      = "Update distance to node %s: %s"
	foundFormat       = "Found shortest path with distance %s"
	unreachableFormat = "No path from node %s to node %s"
)

func msgInit() string { return initMessage }

func msgVisit(label string, d core.Distance) string {
	return fmt.Sprintf(visitFormat, label, d)
}

func msgUpdate(label string, d core.Distance) string {
	return fmt.Sprintf(updateFormat, label, d)
}

func msgFound(d core.Distance) string {
	return fmt.Sprintf(foundFormat, d)
}

func msgUnreachable(from, to string) string {
	return fmt.Sprintf(unreachableFormat, from, to)
}
