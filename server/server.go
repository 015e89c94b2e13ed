// Package server exposes sessions over HTTP with Fiber.
//
// Each session is an independent session.Session addressed by a UUID.
// Requests against one session are serialized; different sessions proceed
// in parallel. Presets are read from a registry that can be swapped at run
// time (config hot reload).
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathstep/config"
	"github.com/katalvlaran/pathstep/metrics"
	"github.com/katalvlaran/pathstep/preset"
	"github.com/katalvlaran/pathstep/session"
)

// Registry errors.
var (
	// ErrSessionNotFound indicates an unknown session id.
	ErrSessionNotFound = errors.New("server: session not found")

	// ErrTooManySessions indicates the MaxSessions limit was reached.
	ErrTooManySessions = errors.New("server: session limit reached")
)

// entry guards one session; session.Session is not safe for concurrent use.
type entry struct {
	mu sync.Mutex
	s  *session.Session
}

// Server owns the Fiber app, the session registry and the preset registry.
type Server struct {
	app    *fiber.App
	logger *slog.Logger

	mu          sync.RWMutex
	sessions    map[string]*entry
	maxSessions int
	maxNodes    int
	maxEdges    int

	presets atomic.Pointer[preset.Registry]
}

// New builds the server and registers every route. A nil presets registry
// serves an empty list.
func New(cfg config.ServerConfig, presets *preset.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		logger:      logger,
		sessions:    make(map[string]*entry),
		maxSessions: cfg.MaxSessions,
		maxNodes:    cfg.MaxNodes,
		maxEdges:    cfg.MaxEdges,
	}
	s.presets.Store(presets)

	s.app = fiber.New(fiber.Config{
		AppName:      "pathstepd",
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  cfg.IdleTimeout(),
		UnescapePath: true,
		ErrorHandler: s.handleError,
	})
	s.app.Use(recoverer.New())
	s.routes()

	return s
}

// App returns the Fiber app, for tests and embedding.
func (s *Server) App() *fiber.App { return s.app }

// SetPresets replaces the preset registry. Existing sessions are unaffected.
func (s *Server) SetPresets(r *preset.Registry) {
	s.presets.Store(r)
	s.logger.Info("presets swapped", "count", r.Len())
}

// Presets returns the current preset registry.
func (s *Server) Presets() *preset.Registry { return s.presets.Load() }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("server starting", "addr", addr)

	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) routes() {
	s.app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	s.app.Get("/presets", s.listPresets)

	sessions := s.app.Group("/sessions")
	sessions.Post("/", s.createSession)
	sessions.Get("/", s.listSessions)
	sessions.Get("/:id", s.withSession(s.getView))
	sessions.Delete("/:id", s.deleteSession)

	sessions.Post("/:id/nodes", s.withSession(s.addNode))
	sessions.Delete("/:id/nodes/:node", s.withSession(s.removeNode))
	sessions.Post("/:id/edges", s.withSession(s.addEdge))
	sessions.Delete("/:id/edges/:edge", s.withSession(s.removeEdge))
	sessions.Put("/:id/source", s.withSession(s.setSource))
	sessions.Put("/:id/target", s.withSession(s.setTarget))

	sessions.Post("/:id/run", s.withSession(s.run))
	sessions.Post("/:id/advance", s.withSession(cursor((*session.Session).Advance)))
	sessions.Post("/:id/retreat", s.withSession(cursor((*session.Session).Retreat)))
	sessions.Post("/:id/first", s.withSession(cursor((*session.Session).First)))
	sessions.Post("/:id/last", s.withSession(cursor((*session.Session).Last)))
	sessions.Post("/:id/jump", s.withSession(s.jump))
	sessions.Post("/:id/reset", s.withSession(s.reset))
	sessions.Post("/:id/clear", s.withSession(s.clear))
	sessions.Get("/:id/steps", s.withSession(s.steps))
	sessions.Get("/:id/analysis", s.withSession(s.analysis))
}

// newSession builds an unregistered session carrying the graph size limits.
func (s *Server) newSession(id string) *session.Session {
	return session.New(
		session.WithLogger(s.logger.With("session", id)),
		session.WithLimits(s.maxNodes, s.maxEdges),
	)
}

// full reports whether the session limit is reached.
func (s *Server) full() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.maxSessions > 0 && len(s.sessions) >= s.maxSessions
}

// register publishes a fully built session, enforcing the session limit.
func (s *Server) register(id string, ss *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return ErrTooManySessions
	}
	s.sessions[id] = &entry{s: ss}
	metrics.ActiveSessions.Inc()

	return nil
}

// checkSize rejects a preset or generated graph above the size limits
// before any of it is applied.
func (s *Server) checkSize(p *preset.Graph) error {
	if s.maxNodes > 0 && len(p.Nodes) > s.maxNodes {
		return fmt.Errorf("%w: %d nodes, limit %d", session.ErrGraphTooLarge, len(p.Nodes), s.maxNodes)
	}
	if s.maxEdges > 0 && len(p.Edges) > s.maxEdges {
		return fmt.Errorf("%w: %d edges, limit %d", session.ErrGraphTooLarge, len(p.Edges), s.maxEdges)
	}

	return nil
}

func (s *Server) lookup(id string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return e, nil
}

func (s *Server) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	metrics.ActiveSessions.Dec()

	return nil
}

func (s *Server) ids() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}
