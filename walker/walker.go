// Package walker follows a pipe loop in one direction, publishing one
// StepReport per round into its rendezvous.Slot and waiting for the
// supervisor's go-ahead before the next round.
//
// A Walker moves through three phases:
//
//	Advancing        normal traversal, one cell per round
//	ReturnedToStart  terminal: the walker stepped back onto the start cell
//	Faulted          terminal: the grid rejected a step (ErrInvalidTraversal, ErrOutOfBounds)
//
// Faults are never returned from Run; they travel to the supervisor as a
// terminal report with Err set.
package walker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/rendezvous"
)

// Phase is the walker's position in its state machine.
type Phase int

const (
	Advancing Phase = iota
	ReturnedToStart
	Faulted
)

func (p Phase) String() string {
	switch p {
	case Advancing:
		return "Advancing"
	case ReturnedToStart:
		return "ReturnedToStart"
	case Faulted:
		return "Faulted"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the walker's mutable position on the loop.
type State struct {
	Current  pipegrid.Coordinate
	Previous pipegrid.Coordinate
	// Steps is the loop distance of Current from the start cell.
	Steps int
}

// Option configures a Walker.
type Option func(*Walker)

// WithLogger sets the logger used for per-round debug output.
func WithLogger(l *zap.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.log = l
		}
	}
}

// Walker encapsulates the traversal state of one direction.
// State and phase are owned by the goroutine running Run.
type Walker struct {
	id    int
	grid  *pipegrid.PipeGrid
	start pipegrid.Coordinate
	slot  *rendezvous.Slot
	log   *zap.Logger

	state  State
	phase  Phase
	closed bool // released by Slot.Close rather than a go-ahead
}

// New returns a Walker standing on first, the neighbor of start it
// leaves through. Its step count starts at 1, the distance of first.
func New(id int, g *pipegrid.PipeGrid, start, first pipegrid.Coordinate, slot *rendezvous.Slot, opts ...Option) *Walker {
	w := &Walker{
		id:    id,
		grid:  g,
		start: start,
		slot:  slot,
		log:   zap.NewNop(),
		state: State{Current: first, Previous: start, Steps: 1},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With(zap.Int("walker", id))
	return w
}

// ID returns the walker's index.
func (w *Walker) ID() int { return w.id }

// Phase returns the current phase. Safe once Run has returned.
func (w *Walker) Phase() Phase { return w.phase }

// State returns the current traversal state. Safe once Run has returned.
func (w *Walker) State() State { return w.state }

// Released reports whether Run ended because the slot was closed.
func (w *Walker) Released() bool { return w.closed }

// Run walks the loop until the walker returns to start, faults, or the
// slot is closed by the supervisor; all three return nil.
// Returns ctx.Err() if ctx is cancelled while waiting on the slot.
func (w *Walker) Run(ctx context.Context) error {
	for w.phase == Advancing {
		next, err := pipegrid.Advance(w.grid, w.state.Previous, w.state.Current)
		if err != nil {
			w.phase = Faulted
			w.log.Debug("walker faulted", zap.Stringer("at", w.state.Current), zap.Error(err))
			return w.publish(ctx, rendezvous.StepReport{
				Position: w.state.Current,
				Steps:    w.state.Steps,
				Terminal: true,
				Err:      err,
			})
		}

		w.state = State{Current: next, Previous: w.state.Current, Steps: w.state.Steps + 1}
		r := rendezvous.StepReport{Position: next, Steps: w.state.Steps}
		if next == w.start {
			w.phase = ReturnedToStart
			r.Terminal = true
		}
		w.log.Debug("step", zap.Stringer("report", r))

		if err := w.publish(ctx, r); err != nil || w.closed {
			return err
		}
	}
	return nil
}

// publish hands r to the supervisor and waits for the go-ahead.
// A closed slot means the supervisor has finished; it is not an error.
func (w *Walker) publish(ctx context.Context, r rendezvous.StepReport) error {
	err := w.slot.Publish(ctx, r)
	if errors.Is(err, rendezvous.ErrClosed) {
		w.closed = true
		w.log.Debug("released by supervisor", zap.Int("steps", w.state.Steps))
		return nil
	}
	return err
}
