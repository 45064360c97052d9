package supervisor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for supervisor runs.
var (
	// ErrNilGrid is returned when Run receives a nil grid.
	ErrNilGrid = errors.New("supervisor: grid is nil")
	// ErrInsufficientDirections indicates the start has fewer than two connecting pipes.
	ErrInsufficientDirections = errors.New("supervisor: start needs two connecting pipes")
	// ErrOddLoopLength indicates a walker came back to the start before the walkers met.
	ErrOddLoopLength = errors.New("supervisor: walkers cannot meet on an odd-length loop")
	// ErrWalkerFault indicates a walker reported a traversal fault.
	ErrWalkerFault = errors.New("supervisor: walker fault")
	// ErrRoundLimit indicates the configured maximum number of rounds was reached.
	ErrRoundLimit = errors.New("supervisor: round limit exceeded")
)

// Option configures a Supervisor.
// An invalid Option is recorded and surfaced by Run as ErrOptionViolation.
type Option func(*Supervisor)

// ErrOptionViolation is returned by Run when an invalid Option was supplied.
var ErrOptionViolation = errors.New("supervisor: invalid option supplied")

// WithLogger sets the structured logger. Nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Supervisor) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxRounds bounds the number of rounds a run may take.
//
//	n > 0: fail with ErrRoundLimit once n rounds completed without a result
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(s *Supervisor) {
		if n < 0 {
			s.err = fmt.Errorf("%w: max rounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		s.maxRounds = n
	}
}

// Result describes a successful run.
type Result struct {
	// Steps is the loop distance from the start to the midpoint.
	Steps int
	// Midpoint is the cell where the walkers met.
	Midpoint pipegrid.Coordinate
	// Start is the start cell.
	Start pipegrid.Coordinate
	// Rounds is the number of report exchanges performed.
	Rounds int
	// RunID tags the run's log entries.
	RunID string
}
