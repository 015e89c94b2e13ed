package session

import (
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
	"github.com/katalvlaran/pathstep/playback"
)

// NodeView is the per-node render contract.
type NodeView struct {
	ID               core.NodeID    `json:"id"`
	Label            string         `json:"label"`
	Position         *core.Position `json:"position,omitempty"`
	Distance         core.Distance  `json:"distance"`
	Visited          bool           `json:"visited"`
	IsCurrent        bool           `json:"is_current"`
	IsHighlighted    bool           `json:"is_highlighted"`
	IsOnShortestPath bool           `json:"is_on_shortest_path"`
	IsSource         bool           `json:"is_source"`
	IsTarget         bool           `json:"is_target"`
}

// EdgeView is the per-edge render contract.
type EdgeView struct {
	ID               core.EdgeID `json:"id"`
	Source           core.NodeID `json:"source"`
	Target           core.NodeID `json:"target"`
	Weight           int64       `json:"weight"`
	IsOnShortestPath bool        `json:"is_on_shortest_path"`
}

// View is everything a renderer needs for one frame. When State is "empty"
// it describes the raw graph and carries no Analysis. Path is null until the
// Finish step and [] when the target was not reached.
type View struct {
	State      string             `json:"state"`
	Cursor     int                `json:"cursor"`
	Total      int                `json:"total"`
	Kind       string             `json:"kind,omitempty"`
	Message    string             `json:"message,omitempty"`
	Prompt     string             `json:"prompt,omitempty"`
	CanAdvance bool               `json:"can_advance"`
	CanRetreat bool               `json:"can_retreat"`
	Source     core.NodeID        `json:"source,omitempty"`
	Target     core.NodeID        `json:"target,omitempty"`
	Path       []core.NodeID      `json:"path"`
	Analysis   *dijkstra.Analysis `json:"analysis,omitempty"`
	Nodes      []NodeView         `json:"nodes"`
	Edges      []EdgeView         `json:"edges"`
}

// View derives the current frame from the graph model and the cursor.
func (s *Session) View() View {
	s.sync()

	v := View{
		State:      s.player.State().String(),
		Cursor:     s.player.Cursor(),
		Total:      s.player.Len(),
		Prompt:     s.Prompt(),
		CanAdvance: s.player.CanAdvance(),
		CanRetreat: s.player.CanRetreat(),
		Source:     s.graph.Source(),
		Target:     s.graph.Target(),
	}

	var current core.NodeID
	highlighted := map[core.NodeID]bool{}
	onPath := map[core.NodeID]bool{}
	pathEdges := map[core.EdgeID]bool{}

	if s.player.State() == playback.AtStep {
		step, _ := s.player.Current()
		v.Kind = step.Kind.String()
		v.Message = step.Message
		current = step.Current
		for _, id := range s.player.Highlighted() {
			highlighted[id] = true
		}
		if path, ok := s.player.Path(); ok {
			v.Path = path
			for _, id := range path {
				onPath[id] = true
			}
			for _, eid := range step.PathEdges() {
				pathEdges[eid] = true
			}
		}
		a := dijkstra.Summarize(step, s.graph.Edges())
		v.Analysis = &a
	}

	nodes := s.graph.Nodes()
	v.Nodes = make([]NodeView, len(nodes))
	for i, n := range nodes {
		v.Nodes[i] = NodeView{
			ID:               n.ID,
			Label:            n.Label,
			Position:         n.Position,
			Distance:         n.Distance,
			Visited:          n.Visited,
			IsCurrent:        current != "" && n.ID == current,
			IsHighlighted:    highlighted[n.ID],
			IsOnShortestPath: onPath[n.ID],
			IsSource:         n.ID == v.Source,
			IsTarget:         n.ID == v.Target,
		}
	}

	edges := s.graph.Edges()
	v.Edges = make([]EdgeView, len(edges))
	for i, e := range edges {
		v.Edges[i] = EdgeView{
			ID:               e.ID,
			Source:           e.Source,
			Target:           e.Target,
			Weight:           e.Weight,
			IsOnShortestPath: pathEdges[e.ID],
		}
	}

	return v
}
