package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/playback"
	"github.com/katalvlaran/pathstep/preset"
	"github.com/katalvlaran/pathstep/session"
)

// Request bodies.
type (
	createRequest struct {
		Preset    string `json:"preset"`
		Generate  string `json:"generate"`
		Seed      *int64 `json:"seed"`
		MaxWeight int64  `json:"max_weight"`
	}
	nodeRequest struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}
	edgeRequest struct {
		Source core.NodeID `json:"source"`
		Target core.NodeID `json:"target"`
		Weight int64       `json:"weight"`
	}
	terminalRequest struct {
		Node core.NodeID `json:"node"`
	}
	jumpRequest struct {
		Step *int `json:"step"`
	}
)

// Response bodies.
type (
	createResponse struct {
		ID   string       `json:"id"`
		View session.View `json:"view"`
	}
	nodeResponse struct {
		ID   core.NodeID  `json:"id"`
		View session.View `json:"view"`
	}
	edgeResponse struct {
		ID   core.EdgeID  `json:"id"`
		View session.View `json:"view"`
	}
)

// sessionHandler runs with the session's lock held.
type sessionHandler func(c fiber.Ctx, s *session.Session) error

func (s *Server) withSession(h sessionHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		e, err := s.lookup(c.Params("id"))
		if err != nil {
			return err
		}
		e.mu.Lock()
		defer e.mu.Unlock()

		return h(c, e.s)
	}
}

// bind decodes an optional JSON body; an empty body leaves v untouched.
func bind(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.Bind().JSON(v); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}

	return nil
}

func (s *Server) listPresets(c fiber.Ctx) error {
	list := s.Presets().List()
	if list == nil {
		list = []preset.Graph{}
	}

	return c.JSON(fiber.Map{"presets": list})
}

func (s *Server) createSession(c fiber.Ctx) error {
	var req createRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if s.full() {
		return ErrTooManySessions
	}

	p, err := s.initialGraph(req)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	ss := s.newSession(id)
	if p != nil {
		if _, err := preset.Apply(p, ss); err != nil {
			return err
		}
	}
	view := ss.View()
	if err := s.register(id, ss); err != nil {
		return err
	}
	s.logger.Info("session created", "session", id, "preset", req.Preset, "generate", req.Generate)

	return c.Status(http.StatusCreated).JSON(createResponse{ID: id, View: view})
}

// initialGraph resolves the optional preset or generator of a create request
// and checks it against the size limits.
func (s *Server) initialGraph(req createRequest) (*preset.Graph, error) {
	var (
		p   *preset.Graph
		err error
	)
	switch {
	case req.Preset != "" && req.Generate != "":
		return nil, fmt.Errorf("%w: preset and generate are exclusive", errBadBody)
	case req.Preset != "":
		p, err = s.Presets().Get(req.Preset)
	case req.Generate != "":
		p, err = s.generate(req)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, s.checkSize(p)
}

// generate builds a graph from a generator spec, refusing specs whose node
// count exceeds the limit before any work is done.
func (s *Server) generate(req createRequest) (*preset.Graph, error) {
	n, err := builder.NodeCount(req.Generate)
	if err != nil {
		return nil, err
	}
	if s.maxNodes > 0 && n > s.maxNodes {
		return nil, fmt.Errorf("%w: %d nodes, limit %d", session.ErrGraphTooLarge, n, s.maxNodes)
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	opts := []builder.Option{builder.WithSeed(seed)}
	if req.MaxWeight > 1 {
		opts = append(opts, builder.WithUniformWeight(1, req.MaxWeight))
	}

	return builder.Generate(req.Generate, opts...)
}

func (s *Server) listSessions(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"sessions": s.ids()})
}

func (s *Server) deleteSession(c fiber.Ctx) error {
	if err := s.remove(c.Params("id")); err != nil {
		return err
	}
	s.logger.Info("session deleted", "session", c.Params("id"))

	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) getView(c fiber.Ctx, ss *session.Session) error {
	return c.JSON(ss.View())
}

func (s *Server) addNode(c fiber.Ctx, ss *session.Session) error {
	var req nodeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	var opts []core.NodeOption
	if req.X != nil && req.Y != nil {
		opts = append(opts, core.AtPosition(*req.X, *req.Y))
	}
	id, err := ss.AddNode(opts...)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(nodeResponse{ID: id, View: ss.View()})
}

func (s *Server) removeNode(c fiber.Ctx, ss *session.Session) error {
	if err := ss.RemoveNode(core.NodeID(c.Params("node"))); err != nil {
		return err
	}

	return c.JSON(ss.View())
}

func (s *Server) addEdge(c fiber.Ctx, ss *session.Session) error {
	var req edgeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	eid, err := ss.AddEdge(req.Source, req.Target, req.Weight)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(edgeResponse{ID: eid, View: ss.View()})
}

func (s *Server) removeEdge(c fiber.Ctx, ss *session.Session) error {
	if err := ss.RemoveEdge(core.EdgeID(c.Params("edge"))); err != nil {
		return err
	}

	return c.JSON(ss.View())
}

func (s *Server) setSource(c fiber.Ctx, ss *session.Session) error {
	var req terminalRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := ss.SetSource(req.Node); err != nil {
		return err
	}

	return c.JSON(ss.View())
}

func (s *Server) setTarget(c fiber.Ctx, ss *session.Session) error {
	var req terminalRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := ss.SetTarget(req.Node); err != nil {
		return err
	}

	return c.JSON(ss.View())
}

func (s *Server) run(c fiber.Ctx, ss *session.Session) error {
	if err := ss.Run(); err != nil {
		return err
	}

	return c.JSON(ss.View())
}

// cursor adapts a no-argument cursor method to a sessionHandler.
func cursor(move func(*session.Session) error) sessionHandler {
	return func(c fiber.Ctx, ss *session.Session) error {
		if err := move(ss); err != nil {
			return err
		}

		return c.JSON(ss.View())
	}
}

func (s *Server) jump(c fiber.Ctx, ss *session.Session) error {
	var req jumpRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Step == nil {
		return fmt.Errorf("%w: step is required", errBadBody)
	}
	if err := ss.Jump(*req.Step); err != nil {
		return err
	}

	return c.JSON(ss.View())
}

func (s *Server) reset(c fiber.Ctx, ss *session.Session) error {
	ss.Reset()

	return c.JSON(ss.View())
}

func (s *Server) clear(c fiber.Ctx, ss *session.Session) error {
	ss.Clear()

	return c.JSON(ss.View())
}

func (s *Server) steps(c fiber.Ctx, ss *session.Session) error {
	if ss.State() == playback.Empty {
		return playback.ErrNoRunAvailable
	}

	return c.JSON(fiber.Map{"cursor": ss.Cursor(), "steps": ss.Steps()})
}

func (s *Server) analysis(c fiber.Ctx, ss *session.Session) error {
	a, err := ss.Analysis()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"cursor": ss.Cursor(), "analysis": a})
}
