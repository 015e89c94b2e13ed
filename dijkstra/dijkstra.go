package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

// Build runs Dijkstra's algorithm over s and records every step.
//
// Preconditions and validation (in order):
//  1. s must be non-nil (ErrNilSnapshot).
//  2. A snapshot with no nodes yields an empty log and nil error.
//  3. Source must be set (ErrEmptySource) and present (core.ErrUnknownNode).
//  4. Target must be set (ErrEmptyTarget) and present (core.ErrUnknownNode).
//  5. Every edge must reference known nodes (core.ErrInvalidReference) and
//     carry a non-negative weight (core.ErrInvalidWeight).
//
// The returned log always starts with Init and ends with Finish when it is
// non-empty.
//
// Complexity:
//
//   - Time:  O(V² + V·E + S·V)
//   - Space: O(S·V)
func Build(s *core.Snapshot, opts ...Option) (*Log, error) {
	// 1) Validate snapshot
	if s == nil {
		return nil, ErrNilSnapshot
	}

	// 2) Nothing to run on an empty graph.
	if len(s.Nodes) == 0 {
		return &Log{revision: s.Revision}, nil
	}

	// 3) Resolve and validate terminals.
	cfg := DefaultOptions(s)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if !s.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", core.ErrUnknownNode, cfg.Source)
	}
	if cfg.Target == "" {
		return nil, ErrEmptyTarget
	}
	if !s.HasNode(cfg.Target) {
		return nil, fmt.Errorf("%w: target %q", core.ErrUnknownNode, cfg.Target)
	}

	// 4) Pre-scan edges. core.Graph never stores a dangling edge or a negative
	//    weight, but a snapshot can be assembled by hand.
	for _, e := range s.Edges {
		if !s.HasNode(e.Source) || !s.HasNode(e.Target) {
			return nil, fmt.Errorf("%w: edge %s", core.ErrInvalidReference, e.ID)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s weight=%d", core.ErrInvalidWeight, e.ID, e.Weight)
		}
	}

	r := newRunner(s, cfg)
	r.init()
	r.process()
	r.finish()

	return &Log{
		source:   cfg.Source,
		target:   cfg.Target,
		revision: s.Revision,
		steps:    r.steps,
	}, nil
}

// runner holds the mutable state for a single recorded execution.
// index maps a node id to its position in s.Nodes (creation order).
type runner struct {
	s       *core.Snapshot
	options Options
	index   map[core.NodeID]int
	dist    []core.Distance
	prev    []core.NodeID
	via     []core.EdgeID
	visited []bool
	steps   []Step
}

func newRunner(s *core.Snapshot, cfg Options) *runner {
	n := len(s.Nodes)
	r := &runner{
		s:       s,
		options: cfg,
		index:   make(map[core.NodeID]int, n),
		dist:    make([]core.Distance, n),
		prev:    make([]core.NodeID, n),
		via:     make([]core.EdgeID, n),
		visited: make([]bool, n),
	}
	for i, node := range s.Nodes {
		r.index[node.ID] = i
	}

	return r
}

// init seeds distances (source 0, others Unreached) and records the Init step.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = core.Unreached
	}
	r.dist[r.index[r.options.Source]] = 0

	r.record(Init, "", []core.NodeID{r.options.Source}, false, msgInit())
}

// process is the main loop: select the frontier by linear scan, record Visit,
// relax incident edges. It stops once every node is visited or the smallest
// tentative distance is Unreached.
func (r *runner) process() {
	for {
		u, ok := r.frontier()
		if !ok {
			return
		}
		r.visited[u] = true
		id := r.s.Nodes[u].ID
		r.record(Visit, id, []core.NodeID{id}, false, msgVisit(r.s.Nodes[u].Label, r.dist[u]))
		r.relax(u)
	}
}

// frontier returns the first unvisited node, in creation order, whose distance
// is strictly smaller than every node seen before it. ok is false when no
// unvisited node remains or the minimum is Unreached.
func (r *runner) frontier() (int, bool) {
	best := -1
	lowest := core.Unreached
	for i := range r.dist {
		if r.visited[i] {
			continue
		}
		if r.dist[i] < lowest {
			lowest = r.dist[i]
			best = i
		}
	}

	return best, best >= 0
}

// relax examines each edge touching u, in edge creation order, and improves
// the distance of the far endpoint when it is still unvisited.
func (r *runner) relax(u int) {
	uid := r.s.Nodes[u].ID
	for _, e := range r.s.Edges {
		other, ok := e.Other(uid)
		if !ok {
			continue
		}
		v := r.index[other]
		// Self-loops land here too: u is already visited.
		if r.visited[v] {
			continue
		}

		candidate := r.dist[u].Add(e.Weight)
		if candidate >= r.dist[v] {
			continue
		}
		r.dist[v] = candidate
		r.prev[v] = uid
		r.via[v] = e.ID

		r.record(Update, uid, []core.NodeID{other}, false, msgUpdate(r.s.Nodes[v].Label, candidate))
	}
}

// finish reconstructs the path and records the Finish step.
func (r *runner) finish() {
	path := r.path()
	target := r.index[r.options.Target]

	var msg string
	if len(path) > 0 {
		msg = msgFound(r.dist[target])
	} else {
		msg = msgUnreachable(r.s.Label(r.options.Source), r.s.Label(r.options.Target))
	}

	r.record(Finish, "", []core.NodeID{}, true, msg)
	r.steps[len(r.steps)-1].Path = path
}

// path walks predecessors from target back to source.
// It returns [source] when source == target and an empty slice when the
// target was never reached.
func (r *runner) path() []core.NodeID {
	src, dst := r.options.Source, r.options.Target
	if dst != src && r.prev[r.index[dst]] == "" {
		return []core.NodeID{}
	}

	var rev []core.NodeID
	for cur := dst; ; cur = r.prev[r.index[cur]] {
		rev = append(rev, cur)
		if cur == src {
			break
		}
	}
	out := make([]core.NodeID, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out
}

// record appends a step holding a full copy of the current state.
// allVisited renders every node as visited (the Finish display convention).
func (r *runner) record(kind StepKind, current core.NodeID, updated []core.NodeID, allVisited bool, msg string) {
	nodes := make([]NodeState, len(r.s.Nodes))
	visited := make([]core.NodeID, 0, len(r.s.Nodes))
	for i, n := range r.s.Nodes {
		seen := allVisited || r.visited[i]
		nodes[i] = NodeState{
			ID:       n.ID,
			Label:    n.Label,
			Distance: r.dist[i],
			Visited:  seen,
			Previous: r.prev[i],
			Via:      r.via[i],
		}
		if seen {
			visited = append(visited, n.ID)
		}
	}

	r.steps = append(r.steps, Step{
		Kind:    kind,
		Nodes:   nodes,
		Current: current,
		Updated: updated,
		Visited: visited,
		Message: msg,
	})
}
