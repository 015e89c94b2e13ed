// Package playback implements the cursor state machine over a recorded
// dijkstra.Log.
//
// States:
//
//	Empty      cursor == -1, no log (or an empty one).
//	AtStep(i)  0 <= i < Len().
//
// Transitions are named methods (Run, Advance, Retreat, Jump, First, Last,
// Reset). Moving past either end is a no-op; moving while Empty reports
// ErrNoRunAvailable.
package playback

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
)

// Sentinel errors for playback operations.
var (
	// ErrNoRunAvailable indicates a cursor operation while the player is Empty.
	ErrNoRunAvailable = errors.New("playback: no run available")

	// ErrStepOutOfRange indicates a Jump outside [0, Len).
	ErrStepOutOfRange = errors.New("playback: step out of range")
)

// State is the coarse player state.
type State int

const (
	// Empty means no run has occurred or the log is empty.
	Empty State = iota
	// AtStep means the cursor points at a recorded step.
	AtStep
)

// String returns "empty" or "playing".
func (s State) String() string {
	if s == AtStep {
		return "playing"
	}

	return "empty"
}

// NoCursor is the cursor value of the Empty state.
const NoCursor = -1

// Player owns one step log and a cursor into it.
// The zero value is not ready; use NewPlayer.
type Player struct {
	log    *dijkstra.Log
	cursor int
}

// NewPlayer returns an Empty player.
func NewPlayer() *Player {
	return &Player{cursor: NoCursor}
}

// Run replaces the log wholesale and moves to step 0, or stays Empty when
// the log has no steps.
func (p *Player) Run(log *dijkstra.Log) {
	if log.Len() == 0 {
		p.log = nil
		p.cursor = NoCursor
		return
	}
	p.log = log
	p.cursor = 0
}

// Reset drops the log and returns to Empty.
func (p *Player) Reset() {
	p.log = nil
	p.cursor = NoCursor
}

// Sync resets the player when revision differs from the revision the log was
// built from, and reports whether it did.
func (p *Player) Sync(revision uint64) bool {
	if p.log == nil || p.log.Revision() == revision {
		return false
	}
	p.Reset()

	return true
}

// State reports Empty or AtStep.
func (p *Player) State() State {
	if p.cursor == NoCursor {
		return Empty
	}

	return AtStep
}

// Cursor returns the current index, or NoCursor when Empty.
func (p *Player) Cursor() int { return p.cursor }

// Len returns the number of steps in the current log.
func (p *Player) Len() int { return p.log.Len() }

// Log returns the current log, or nil when Empty.
func (p *Player) Log() *dijkstra.Log { return p.log }

// Advance moves one step forward; it is a no-op on the last step.
func (p *Player) Advance() error {
	if p.State() == Empty {
		return ErrNoRunAvailable
	}
	if p.cursor+1 < p.Len() {
		p.cursor++
	}

	return nil
}

// Retreat moves one step back; it is a no-op on step 0.
func (p *Player) Retreat() error {
	if p.State() == Empty {
		return ErrNoRunAvailable
	}
	if p.cursor > 0 {
		p.cursor--
	}

	return nil
}

// Jump moves the cursor to step i.
//
// Errors:
//   - ErrNoRunAvailable when Empty.
//   - ErrStepOutOfRange when i is outside [0, Len); the cursor is unchanged.
func (p *Player) Jump(i int) error {
	if p.State() == Empty {
		return ErrNoRunAvailable
	}
	if i < 0 || i >= p.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrStepOutOfRange, i, p.Len())
	}
	p.cursor = i

	return nil
}

// First jumps to step 0.
func (p *Player) First() error { return p.Jump(0) }

// Last jumps to the final step.
func (p *Player) Last() error {
	if p.State() == Empty {
		return ErrNoRunAvailable
	}

	return p.Jump(p.Len() - 1)
}

// CanAdvance reports whether Advance would move the cursor.
func (p *Player) CanAdvance() bool { return p.State() == AtStep && p.cursor+1 < p.Len() }

// CanRetreat reports whether Retreat would move the cursor.
func (p *Player) CanRetreat() bool { return p.State() == AtStep && p.cursor > 0 }

// Current returns a copy of the step under the cursor.
func (p *Player) Current() (dijkstra.Step, error) {
	if p.State() == Empty {
		return dijkstra.Step{}, ErrNoRunAvailable
	}
	s, _ := p.log.At(p.cursor)

	return s, nil
}

// Highlighted returns {Current} ∪ Updated of the current step, without
// duplicates. It is empty for Init and when Empty.
func (p *Player) Highlighted() []core.NodeID {
	s, err := p.Current()
	if err != nil || s.Kind == dijkstra.Init {
		return nil
	}
	out := make([]core.NodeID, 0, 1+len(s.Updated))
	if s.Current != "" {
		out = append(out, s.Current)
	}
	for _, id := range s.Updated {
		if id != s.Current {
			out = append(out, id)
		}
	}

	return out
}

// Visited returns the cumulative visited set of the current step.
func (p *Player) Visited() []core.NodeID {
	s, err := p.Current()
	if err != nil {
		return nil
	}

	return s.Visited
}

// Path returns the shortest path once the cursor has reached the Finish
// step; ok is false before that and when Empty.
func (p *Player) Path() (path []core.NodeID, ok bool) {
	if p.State() == Empty {
		return nil, false
	}
	last, _ := p.log.At(p.Len() - 1)
	if last.Kind != dijkstra.Finish || p.cursor < p.Len()-1 {
		return nil, false
	}

	return last.Path, true
}
