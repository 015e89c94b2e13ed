package server

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/playback"
	"github.com/katalvlaran/pathstep/preset"
	"github.com/katalvlaran/pathstep/session"
)

// errBadBody marks a request body that could not be decoded.
var errBadBody = errors.New("server: invalid body")

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, errBadBody), builder.IsUsageError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, preset.ErrPresetNotFound),
		errors.Is(err, core.ErrEdgeNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrAuthoringLocked),
		errors.Is(err, session.ErrMissingSource),
		errors.Is(err, session.ErrMissingTarget),
		errors.Is(err, playback.ErrNoRunAvailable):
		return http.StatusConflict
	case errors.Is(err, core.ErrInvalidReference),
		errors.Is(err, core.ErrInvalidWeight),
		errors.Is(err, core.ErrUnknownNode),
		errors.Is(err, playback.ErrStepOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrGraphTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrTooManySessions):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// handleError is the app-wide fiber.ErrorHandler.
func (s *Server) handleError(c fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
	} else {
		s.logger.Debug("request rejected", "method", c.Method(), "path", c.Path(), "status", code, "err", err)
	}

	return c.Status(code).JSON(errorResponse{Error: err.Error()})
}
