// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Distance, Position, Graph, GraphOption, NodeOption,
//       sentinel errors and the NewGraph constructor.

package core

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"sync"
)

// Sentinel errors for graph model operations.
var (
	// ErrInvalidReference indicates that an edge endpoint does not exist in the graph.
	ErrInvalidReference = errors.New("core: edge endpoint not found")

	// ErrInvalidWeight indicates a negative edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrUnknownNode indicates an operation referenced a node that is not in the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// DefaultNodeIDPrefix is prepended to the per-graph counter to form node ids.
const DefaultNodeIDPrefix = "node-"

// edgeIDSeparator joins the ordered endpoint pair into an edge id.
const edgeIDSeparator = "->"

// NodeID identifies a node within its Graph.
type NodeID string

// EdgeID identifies an edge within its Graph. It is derived from the ordered
// (source, target) pair.
type EdgeID string

// Distance is a tentative or final shortest-path distance.
// Unreached is the sentinel for "no path found yet".
type Distance int64

// Unreached compares larger than every finite distance.
const Unreached Distance = math.MaxInt64

// Reached reports whether d is a finite distance.
func (d Distance) Reached() bool { return d != Unreached }

// Add returns d+w, saturating to Unreached when d is Unreached or the sum
// would overflow. w must be non-negative.
func (d Distance) Add(w int64) Distance {
	if d == Unreached || w >= int64(Unreached-d) {
		return Unreached
	}

	return d + Distance(w)
}

// String renders finite distances as decimals and Unreached as "∞".
func (d Distance) String() string {
	if d == Unreached {
		return "∞"
	}

	return strconv.FormatInt(int64(d), 10)
}

// MarshalJSON encodes Unreached as null.
func (d Distance) MarshalJSON() ([]byte, error) {
	if d == Unreached {
		return []byte("null"), nil
	}

	return strconv.AppendInt(nil, int64(d), 10), nil
}

// UnmarshalJSON decodes null as Unreached.
func (d *Distance) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Unreached
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = Distance(v)

	return nil
}

// Position is an optional 2D placement. It is presentation-only; the engine
// never reads it.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a vertex of the graph.
type Node struct {
	// ID is stable for the lifetime of the node.
	ID NodeID `json:"id"`

	// Label is "count+1" at allocation time.
	Label string `json:"label"`

	// Position is nil when the node was created without one.
	Position *Position `json:"position,omitempty"`

	// Distance, Visited and Previous are algorithm-derived.
	Distance Distance `json:"distance"`
	Visited  bool     `json:"visited"`
	Previous NodeID   `json:"previous,omitempty"`
}

// clone returns a copy that shares nothing with n.
func (n *Node) clone() Node {
	c := *n
	if n.Position != nil {
		p := *n.Position
		c.Position = &p
	}

	return c
}

// Edge is a weighted connection between two nodes, traversable from either end.
type Edge struct {
	ID     EdgeID `json:"id"`
	Source NodeID `json:"source"`
	Target NodeID `json:"target"`
	Weight int64  `json:"weight"`
}

// Other returns the endpoint of e opposite to id, and false when id is not an endpoint.
func (e Edge) Other(id NodeID) (NodeID, bool) {
	switch id {
	case e.Source:
		return e.Target, true
	case e.Target:
		return e.Source, true
	default:
		return "", false
	}
}

// Touches reports whether id is one of e's endpoints.
func (e Edge) Touches(id NodeID) bool { return e.Source == id || e.Target == id }

// MakeEdgeID derives the edge id for the ordered pair (source, target).
func MakeEdgeID(source, target NodeID) EdgeID {
	return EdgeID(string(source) + edgeIDSeparator + string(target))
}

// NodeState carries the algorithm-derived fields of one node.
type NodeState struct {
	ID       NodeID
	Distance Distance
	Visited  bool
	Previous NodeID
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithNodeIDPrefix replaces DefaultNodeIDPrefix for generated node ids.
func WithNodeIDPrefix(prefix string) GraphOption {
	return func(g *Graph) { g.idPrefix = prefix }
}

// NodeOption configures a node when added.
type NodeOption func(n *Node)

// AtPosition stores a 2D position on the new node.
func AtPosition(x, y float64) NodeOption {
	return func(n *Node) { n.Position = &Position{X: x, Y: y} }
}

// Graph is the mutable graph model.
//
// nodes/edges hold the catalogs; nodeOrder/edgeOrder record creation order,
// which is the enumeration order everywhere. nextID is the per-graph id
// counter; revision is bumped on every topology or terminal change.
type Graph struct {
	mu sync.RWMutex

	idPrefix string
	nextID   uint64
	revision uint64

	nodes     map[NodeID]*Node
	nodeOrder []NodeID
	edges     map[EdgeID]*Edge
	edgeOrder []EdgeID

	source NodeID
	target NodeID
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		idPrefix: DefaultNodeIDPrefix,
		nodes:    make(map[NodeID]*Node),
		edges:    make(map[EdgeID]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
