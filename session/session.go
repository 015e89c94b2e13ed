// Package session ties the graph model, the step-log builder and the player
// together into the authoring/playback controller.
//
// A Session is in one of two modes, mirrored from its player:
//
//	Empty   authoring is allowed (AddNode, AddEdge, SetSource, …).
//	AtStep  a run is being presented; authoring returns ErrAuthoringLocked
//	        until Reset.
//
// Cursor moves copy the presented step's node states into the graph model so
// that Nodes() and View() always reflect the step on screen. Reset clears
// those fields again while keeping the topology.
//
// A Session is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
	"github.com/katalvlaran/pathstep/metrics"
	"github.com/katalvlaran/pathstep/playback"
)

// Sentinel errors for session operations.
var (
	// ErrAuthoringLocked indicates a graph mutation while a run is presented.
	ErrAuthoringLocked = errors.New("session: authoring is locked while a run is presented")

	// ErrMissingSource indicates Run without a designated source.
	ErrMissingSource = errors.New("session: no start node selected")

	// ErrMissingTarget indicates Run without a designated target.
	ErrMissingTarget = errors.New("session: no end node selected")

	// ErrGraphTooLarge indicates a mutation past the configured node or edge limit.
	ErrGraphTooLarge = errors.New("session: graph size limit reached")
)

// Prompts shown while terminals are missing.
const (
	PromptBoth   = "Select start and end nodes"
	PromptSource = "Select a start node"
	PromptTarget = "Select an end node"
)

// Session is the authoring and playback controller for one graph.
type Session struct {
	graph    *core.Graph
	player   *playback.Player
	logger   *slog.Logger
	maxNodes int
	maxEdges int
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	logger    *slog.Logger
	graphOpts []core.GraphOption
	maxNodes  int
	maxEdges  int
}

// WithLogger sets the logger used for run and authoring events.
func WithLogger(l *slog.Logger) Option {
	return func(c *sessionConfig) { c.logger = l }
}

// WithGraphOptions forwards options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *sessionConfig) { c.graphOpts = append(c.graphOpts, opts...) }
}

// WithLimits caps the number of nodes and edges; zero means unlimited.
// Overwriting an existing edge never counts against maxEdges.
func WithLimits(maxNodes, maxEdges int) Option {
	return func(c *sessionConfig) { c.maxNodes, c.maxEdges = maxNodes, maxEdges }
}

// New returns an empty session in authoring mode.
func New(opts ...Option) *Session {
	cfg := sessionConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		graph:    core.NewGraph(cfg.graphOpts...),
		player:   playback.NewPlayer(),
		logger:   cfg.logger,
		maxNodes: cfg.maxNodes,
		maxEdges: cfg.maxEdges,
	}
}

// ------------------------------------------------------------------------
// Authoring
// ------------------------------------------------------------------------

// AddNode adds a node at an optional position.
func (s *Session) AddNode(opts ...core.NodeOption) (core.NodeID, error) {
	if err := s.authoring("add node"); err != nil {
		return "", err
	}
	if s.maxNodes > 0 && s.graph.NodeCount() >= s.maxNodes {
		err := fmt.Errorf("%w: %d nodes", ErrGraphTooLarge, s.maxNodes)
		s.reject(err)
		return "", err
	}
	id := s.graph.AddNode(opts...)
	s.logger.Debug("node added", "node", id)

	return id, nil
}

// AddEdge adds or overwrites the edge for (source, target).
func (s *Session) AddEdge(source, target core.NodeID, weight int64) (core.EdgeID, error) {
	if err := s.authoring("add edge"); err != nil {
		return "", err
	}
	if s.maxEdges > 0 && s.graph.EdgeCount() >= s.maxEdges && !s.graph.HasEdge(source, target) {
		err := fmt.Errorf("%w: %d edges", ErrGraphTooLarge, s.maxEdges)
		s.reject(err)
		return "", err
	}
	eid, err := s.graph.AddEdge(source, target, weight)
	if err != nil {
		s.reject(err)
		return "", err
	}
	s.logger.Debug("edge added", "edge", eid, "weight", weight)

	return eid, nil
}

// RemoveNode deletes a node and its incident edges.
func (s *Session) RemoveNode(id core.NodeID) error {
	if err := s.authoring("remove node"); err != nil {
		return err
	}
	if err := s.graph.RemoveNode(id); err != nil {
		s.reject(err)
		return err
	}
	s.logger.Debug("node removed", "node", id)

	return nil
}

// RemoveEdge deletes one edge.
func (s *Session) RemoveEdge(id core.EdgeID) error {
	if err := s.authoring("remove edge"); err != nil {
		return err
	}
	if err := s.graph.RemoveEdge(id); err != nil {
		s.reject(err)
		return err
	}

	return nil
}

// SetSource designates the start node; the empty id clears it.
func (s *Session) SetSource(id core.NodeID) error {
	if err := s.authoring("set source"); err != nil {
		return err
	}
	if err := s.graph.SetSource(id); err != nil {
		s.reject(err)
		return err
	}

	return nil
}

// SetTarget designates the end node; the empty id clears it.
func (s *Session) SetTarget(id core.NodeID) error {
	if err := s.authoring("set target"); err != nil {
		return err
	}
	if err := s.graph.SetTarget(id); err != nil {
		s.reject(err)
		return err
	}

	return nil
}

// Clear drops the run and the whole graph, restarting node ids. It is allowed
// in every mode.
func (s *Session) Clear() {
	s.player.Reset()
	s.graph.Clear()
	s.logger.Debug("session cleared")
}

// authoring gates graph mutations on the Empty mode.
func (s *Session) authoring(op string) error {
	s.sync()
	if s.player.State() != playback.Empty {
		metrics.AuthoringRejected.WithLabelValues("locked").Inc()
		return fmt.Errorf("%w: %s", ErrAuthoringLocked, op)
	}

	return nil
}

// reject counts a failed mutation by its sentinel.
func (s *Session) reject(err error) {
	reason := "other"
	switch {
	case errors.Is(err, core.ErrInvalidReference):
		reason = "invalid_reference"
	case errors.Is(err, core.ErrInvalidWeight):
		reason = "invalid_weight"
	case errors.Is(err, core.ErrUnknownNode):
		reason = "unknown_node"
	case errors.Is(err, core.ErrEdgeNotFound):
		reason = "edge_not_found"
	case errors.Is(err, ErrGraphTooLarge):
		reason = "too_large"
	}
	metrics.AuthoringRejected.WithLabelValues(reason).Inc()
	s.logger.Debug("authoring rejected", "reason", reason, "err", err)
}

// ------------------------------------------------------------------------
// Playback
// ------------------------------------------------------------------------

// Run records a fresh step log for the current graph and terminals and
// presents its first step. Any previous log is replaced.
//
// Errors:
//   - ErrMissingSource / ErrMissingTarget when a terminal is not designated.
//   - errors from dijkstra.Build (wrapped sentinels).
func (s *Session) Run() error {
	snap := s.graph.Snapshot()
	switch {
	case snap.Source == "":
		metrics.RunsFailed.WithLabelValues("missing_source").Inc()
		return ErrMissingSource
	case snap.Target == "":
		metrics.RunsFailed.WithLabelValues("missing_target").Inc()
		return ErrMissingTarget
	}

	start := time.Now()
	log, err := dijkstra.Build(snap)
	metrics.BuildDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RunsFailed.WithLabelValues("build").Inc()
		return fmt.Errorf("session: run: %w", err)
	}

	s.player.Run(log)
	s.apply()
	metrics.RunsBuilt.Inc()
	metrics.StepsPerRun.Observe(float64(log.Len()))
	s.logger.Info("run recorded",
		"steps", log.Len(),
		"source", log.Source(),
		"target", log.Target(),
		"revision", log.Revision(),
	)

	return nil
}

// Advance moves to the next step (no-op on the last).
func (s *Session) Advance() error { return s.move("advance", s.player.Advance) }

// Retreat moves to the previous step (no-op on the first).
func (s *Session) Retreat() error { return s.move("retreat", s.player.Retreat) }

// Jump moves to step i.
func (s *Session) Jump(i int) error {
	return s.move("jump", func() error { return s.player.Jump(i) })
}

// First moves to step 0.
func (s *Session) First() error { return s.move("first", s.player.First) }

// Last moves to the Finish step.
func (s *Session) Last() error { return s.move("last", s.player.Last) }

// Reset returns to authoring mode and clears algorithm-derived node fields.
// Topology and terminals are preserved.
func (s *Session) Reset() {
	s.player.Reset()
	s.graph.ClearAlgorithmState()
	metrics.CursorMoves.WithLabelValues("reset").Inc()
}

func (s *Session) move(op string, fn func() error) error {
	s.sync()
	if err := fn(); err != nil {
		return err
	}
	s.apply()
	metrics.CursorMoves.WithLabelValues(op).Inc()

	return nil
}

// apply mirrors the presented step into the graph model.
func (s *Session) apply() {
	step, err := s.player.Current()
	if err != nil {
		s.graph.ClearAlgorithmState()
		return
	}
	s.graph.ApplyStates(step.CoreStates())
}

// sync discards a log built against an older graph revision.
func (s *Session) sync() {
	if s.player.Sync(s.graph.Revision()) {
		s.graph.ClearAlgorithmState()
		s.logger.Debug("stale run discarded", "revision", s.graph.Revision())
	}
}

// ------------------------------------------------------------------------
// Queries
// ------------------------------------------------------------------------

// State reports the player state.
func (s *Session) State() playback.State { return s.player.State() }

// Cursor returns the current step index or playback.NoCursor.
func (s *Session) Cursor() int { return s.player.Cursor() }

// Len returns the number of recorded steps.
func (s *Session) Len() int { return s.player.Len() }

// Current returns the presented step.
func (s *Session) Current() (dijkstra.Step, error) { return s.player.Current() }

// Steps returns every recorded step, or nil when Empty.
func (s *Session) Steps() []dijkstra.Step {
	if s.player.State() == playback.Empty {
		return nil
	}

	return s.player.Log().Steps()
}

// Analysis summarizes the presented step; playback.ErrNoRunAvailable when Empty.
func (s *Session) Analysis() (dijkstra.Analysis, error) {
	s.sync()
	step, err := s.player.Current()
	if err != nil {
		return dijkstra.Analysis{}, err
	}

	return dijkstra.Summarize(step, s.graph.Edges()), nil
}

// Nodes returns the graph's nodes with the presented algorithm state.
func (s *Session) Nodes() []core.Node { return s.graph.Nodes() }

// Edges returns the graph's edges.
func (s *Session) Edges() []core.Edge { return s.graph.Edges() }

// Source returns the designated start node.
func (s *Session) Source() core.NodeID { return s.graph.Source() }

// Target returns the designated end node.
func (s *Session) Target() core.NodeID { return s.graph.Target() }

// Snapshot copies the graph model.
func (s *Session) Snapshot() *core.Snapshot { return s.graph.Snapshot() }

// Prompt returns the hint for missing terminals, or "" when both are set.
func (s *Session) Prompt() string {
	src, dst := s.graph.Source(), s.graph.Target()
	switch {
	case src == "" && dst == "":
		return PromptBoth
	case src == "":
		return PromptSource
	case dst == "":
		return PromptTarget
	default:
		return ""
	}
}
