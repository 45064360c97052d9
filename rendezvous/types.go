package rendezvous

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ErrClosed is returned by Publish and Await once the slot has been closed.
var ErrClosed = errors.New("rendezvous: slot closed")

// StepReport is what a walker publishes once per round.
type StepReport struct {
	// Position is the cell the walker has just stepped onto.
	Position pipegrid.Coordinate
	// Steps is the distance of Position from the start, counted along the loop.
	Steps int
	// Terminal marks the walker's last report: it returned to start or faulted.
	Terminal bool
	// Err is set when the walker faulted; such a report is always Terminal.
	Err error
}

// Faulted reports whether r carries a walker fault.
func (r StepReport) Faulted() bool { return r.Err != nil }

func (r StepReport) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%v@%d faulted: %v", r.Position, r.Steps, r.Err)
	case r.Terminal:
		return fmt.Sprintf("%v@%d terminal", r.Position, r.Steps)
	default:
		return fmt.Sprintf("%v@%d", r.Position, r.Steps)
	}
}

// Stats is a point-in-time snapshot of a Slot's counters.
type Stats struct {
	Published uint64 // reports stored by Publish
	Cleared   uint64 // reports released by Clear
	Pending   bool   // a report is stored and not yet cleared
	Closed    bool
}
