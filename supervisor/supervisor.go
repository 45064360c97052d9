package supervisor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/rendezvous"
	"github.com/katalvlaran/pipeloop/walker"
)

// Supervisor drives the walkers of one run at a time.
// A Supervisor holds only configuration and may be reused.
type Supervisor struct {
	log       *zap.Logger
	maxRounds int

	// error recorded during option parsing
	err error
}

// New returns a Supervisor configured by opts.
func New(opts ...Option) *Supervisor {
	s := &Supervisor{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Farthest runs a default Supervisor on g and returns the step count of
// the loop midpoint.
func Farthest(ctx context.Context, g *pipegrid.PipeGrid) (int, error) {
	return New().Run(ctx, g)
}

// Run returns the number of steps from the start to the farthest point of
// the loop in g. See RunDetailed.
func (s *Supervisor) Run(ctx context.Context, g *pipegrid.PipeGrid) (int, error) {
	res, err := s.RunDetailed(ctx, g)
	if err != nil {
		return 0, err
	}
	return res.Steps, nil
}

// RunDetailed walks the loop in g from both ends and returns where and
// after how many steps the walkers met.
//
// Behavior:
//  1. Find the start and its connecting pipes; fail before spawning
//     anything if there are fewer than two (or more than two).
//  2. Start one walker per pipe, each with its own slot.
//  3. Exchange reports round by round until the walkers agree, a walker
//     faults or returns to the start, or ctx is done.
//  4. Close every slot and join every walker.
func (s *Supervisor) RunDetailed(ctx context.Context, g *pipegrid.PipeGrid) (res Result, err error) {
	if s.err != nil {
		return Result{}, s.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}

	res.RunID = uuid.NewString()
	log := s.log.With(zap.String("run_id", res.RunID))

	start, err := g.FindStart()
	if err != nil {
		return Result{}, err
	}
	nbrs, err := g.NeighborsConnectingToStart(start)
	if err != nil {
		return Result{}, err
	}
	if len(nbrs) < 2 {
		return Result{}, fmt.Errorf("%w: %d found at %v", ErrInsufficientDirections, len(nbrs), start)
	}
	res.Start = start
	log.Info("starting walkers",
		zap.Stringer("start", start),
		zap.Int("walkers", len(nbrs)),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height))

	slots := make([]*rendezvous.Slot, len(nbrs))
	eg, gctx := errgroup.WithContext(ctx)
	for i, n := range nbrs {
		slots[i] = rendezvous.NewSlot()
		w := walker.New(i, g, start, n.Position, slots[i], walker.WithLogger(log))
		log.Debug("spawning walker",
			zap.Int("walker", i),
			zap.Stringer("direction", n.Direction),
			zap.Stringer("symbol", n.Symbol))
		eg.Go(func() error { return w.Run(gctx) })
	}
	defer func() {
		release(slots)
		if werr := eg.Wait(); werr != nil && err == nil {
			err = werr
		}
	}()

	res.Steps, res.Midpoint, res.Rounds, err = s.exchange(gctx, log, slots)
	if err != nil {
		log.Warn("run failed", zap.Int("rounds", res.Rounds), zap.Error(err))
		return Result{}, err
	}
	log.Info("walkers met",
		zap.Int("steps", res.Steps),
		zap.Stringer("midpoint", res.Midpoint),
		zap.Int("rounds", res.Rounds))

	return res, nil
}

// exchange runs the round loop over slots until a verdict is reached.
// It never closes the slots; the caller releases them.
func (s *Supervisor) exchange(ctx context.Context, log *zap.Logger, slots []*rendezvous.Slot) (steps int, mid pipegrid.Coordinate, rounds int, err error) {
	reports := make([]rendezvous.StepReport, len(slots))
	for {
		if s.maxRounds > 0 && rounds >= s.maxRounds {
			return 0, mid, rounds, fmt.Errorf("%w: %d rounds", ErrRoundLimit, rounds)
		}
		for i, slot := range slots {
			r, err := slot.Await(ctx)
			if err != nil {
				return 0, mid, rounds, err
			}
			reports[i] = r
		}
		rounds++

		v := decide(reports)
		log.Debug("round", zap.Int("round", rounds), zap.Stringer("verdict", v.kind))
		switch v.kind {
		case verdictMet:
			return v.steps, v.position, rounds, nil
		case verdictFault, verdictOdd:
			return 0, mid, rounds, v.err
		}
		for _, slot := range slots {
			slot.Clear()
		}
	}
}

// release closes every slot, freeing any walker parked on it.
func release(slots []*rendezvous.Slot) {
	for _, slot := range slots {
		if slot != nil {
			slot.Close()
		}
	}
}

type verdictKind int

const (
	verdictContinue verdictKind = iota
	verdictMet
	verdictOdd
	verdictFault
)

func (k verdictKind) String() string {
	switch k {
	case verdictContinue:
		return "continue"
	case verdictMet:
		return "met"
	case verdictOdd:
		return "odd"
	case verdictFault:
		return "fault"
	default:
		return fmt.Sprintf("verdict(%d)", int(k))
	}
}

type verdict struct {
	kind     verdictKind
	steps    int
	position pipegrid.Coordinate
	err      error
}

// decide compares one round of reports. Faults win over everything else,
// then a walker back at the start, then agreement on position and steps.
func decide(reports []rendezvous.StepReport) verdict {
	for i, r := range reports {
		if r.Faulted() {
			return verdict{kind: verdictFault, err: fmt.Errorf("%w: walker %d at %v: %w", ErrWalkerFault, i, r.Position, r.Err)}
		}
	}
	// On an odd loop both walkers step back onto the start together; that
	// agreement is not a midpoint.
	for i, r := range reports {
		if r.Terminal {
			return verdict{kind: verdictOdd, err: fmt.Errorf("%w: walker %d back at start after %d steps", ErrOddLoopLength, i, r.Steps)}
		}
	}
	if len(reports) == 0 {
		return verdict{kind: verdictContinue}
	}

	first := reports[0]
	for _, r := range reports[1:] {
		if r.Position != first.Position || r.Steps != first.Steps {
			return verdict{kind: verdictContinue}
		}
	}
	return verdict{kind: verdictMet, steps: first.Steps, position: first.Position}
}
