package dijkstra

import (
	"errors"

	"github.com/katalvlaran/pathstep/core"
)

// Sentinel errors returned by Build.
var (
	// ErrNilSnapshot indicates that a nil *core.Snapshot was passed to Build.
	ErrNilSnapshot = errors.New("dijkstra: snapshot is nil")

	// ErrEmptySource indicates that no source node was designated.
	ErrEmptySource = errors.New("dijkstra: source node is not set")

	// ErrEmptyTarget indicates that no target node was designated.
	ErrEmptyTarget = errors.New("dijkstra: target node is not set")
)

// StepKind discriminates the four kinds of recorded steps.
type StepKind int

const (
	// Init is the first step: source at 0, every other node Unreached.
	Init StepKind = iota
	// Visit marks the frontier node as processed.
	Visit
	// Update records one successful edge relaxation.
	Update
	// Finish is the terminal step carrying the shortest path.
	Finish
)

var stepKindNames = [...]string{"INIT", "VISIT", "UPDATE", "FINISH"}

// String returns the upper-case kind name ("INIT", "VISIT", …).
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepKindNames) {
		return "UNKNOWN"
	}

	return stepKindNames[k]
}

// MarshalText encodes the kind by name.
func (k StepKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// NodeState is one node's algorithm state inside a Step.
type NodeState struct {
	ID       core.NodeID   `json:"id"`
	Label    string        `json:"label"`
	Distance core.Distance `json:"distance"`
	Visited  bool          `json:"visited"`
	Previous core.NodeID   `json:"previous,omitempty"`
	// Via is the edge that set Distance, empty for the source and for
	// unreached nodes.
	Via core.EdgeID `json:"via,omitempty"`
}

// Step is a self-describing snapshot of the algorithm at one point.
//
// Nodes lists every node in creation order. Current is empty for Init and
// Finish. Updated holds the nodes changed directly by this step. Visited is
// the cumulative visited set in creation order (every id on Finish). Path is
// set only on Finish, where an unreachable target encodes as [] and every
// other kind as null.
type Step struct {
	Kind    StepKind      `json:"kind"`
	Nodes   []NodeState   `json:"nodes"`
	Current core.NodeID   `json:"current,omitempty"`
	Updated []core.NodeID `json:"updated"`
	Visited []core.NodeID `json:"visited"`
	Path    []core.NodeID `json:"path"`
	Message string        `json:"message"`
}

// State returns the state of id in this step, and false if id is absent.
func (s Step) State(id core.NodeID) (NodeState, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return NodeState{}, false
}

// PathEdges returns the edges traversed by Path, in path order. It is nil
// before Finish and empty when the target was not reached.
func (s Step) PathEdges() []core.EdgeID {
	if s.Path == nil {
		return nil
	}
	out := make([]core.EdgeID, 0, len(s.Path))
	for _, id := range s.Path[min(1, len(s.Path)):] {
		if st, ok := s.State(id); ok && st.Via != "" {
			out = append(out, st.Via)
		}
	}

	return out
}

// CoreStates converts the step's node states for core.Graph.ApplyStates.
func (s Step) CoreStates() []core.NodeState {
	out := make([]core.NodeState, len(s.Nodes))
	for i, n := range s.Nodes {
		out[i] = core.NodeState{ID: n.ID, Distance: n.Distance, Visited: n.Visited, Previous: n.Previous}
	}

	return out
}

// clone returns a deep copy so callers cannot alter a recorded step.
func (s Step) clone() Step {
	c := s
	c.Nodes = append(make([]NodeState, 0, len(s.Nodes)), s.Nodes...)
	c.Updated = cloneIDs(s.Updated)
	c.Visited = cloneIDs(s.Visited)
	c.Path = cloneIDs(s.Path)

	return c
}

// cloneIDs copies ids, keeping nil and empty distinct.
func cloneIDs(ids []core.NodeID) []core.NodeID {
	if ids == nil {
		return nil
	}

	return append(make([]core.NodeID, 0, len(ids)), ids...)
}

// Log is the ordered, immutable result of one run against one
// graph/source/target triple.
type Log struct {
	source   core.NodeID
	target   core.NodeID
	revision uint64
	steps    []Step
}

// Len returns the number of steps.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}

	return len(l.steps)
}

// At returns a copy of step i, and false when i is out of range.
func (l *Log) At(i int) (Step, bool) {
	if i < 0 || i >= l.Len() {
		return Step{}, false
	}

	return l.steps[i].clone(), true
}

// Steps returns copies of all steps.
func (l *Log) Steps() []Step {
	out := make([]Step, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		out = append(out, l.steps[i].clone())
	}

	return out
}

// Source returns the source the log was built for.
func (l *Log) Source() core.NodeID { return l.source }

// Target returns the target the log was built for.
func (l *Log) Target() core.NodeID { return l.target }

// Revision returns the graph revision of the snapshot the log was built from.
func (l *Log) Revision() uint64 { return l.revision }

// Options configures Build.
//
// Source – overrides the snapshot's designated source when non-empty.
// Target – overrides the snapshot's designated target when non-empty.
type Options struct {
	Source core.NodeID
	Target core.NodeID
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// Source sets the run's source node.
func Source(id core.NodeID) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the run's target node.
func Target(id core.NodeID) Option {
	return func(o *Options) { o.Target = id }
}

// DefaultOptions takes the terminals designated on the snapshot.
func DefaultOptions(s *core.Snapshot) Options {
	return Options{Source: s.Source, Target: s.Target}
}
