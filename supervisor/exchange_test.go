package supervisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/rendezvous"
)

// ringWalker publishes positions around a ring of n cells indexed 0..n-1,
// cell 0 being the start, moving dir (+1 or -1) from its first neighbor.
// Cells on a square grid loop always number an even count, so odd rings
// can only be exercised this way.
func ringWalker(ctx context.Context, slot *rendezvous.Slot, n, dir int) error {
	cell := func(i int) pipegrid.Coordinate { return pipegrid.Coordinate{X: ((i % n) + n) % n} }
	for steps := 2; steps <= n; steps++ {
		pos := cell(dir * steps)
		r := rendezvous.StepReport{Position: pos, Steps: steps, Terminal: pos == cell(0)}
		if err := slot.Publish(ctx, r); err != nil {
			if errors.Is(err, rendezvous.ErrClosed) {
				return nil
			}
			return err
		}
	}
	return nil
}

func runRing(t *testing.T, s *Supervisor, n int) (int, pipegrid.Coordinate, int, error) {
	t.Helper()
	slots := []*rendezvous.Slot{rendezvous.NewSlot(), rendezvous.NewSlot()}
	eg, ctx := errgroup.WithContext(context.Background())
	eg.Go(func() error { return ringWalker(ctx, slots[0], n, +1) })
	eg.Go(func() error { return ringWalker(ctx, slots[1], n, -1) })

	steps, mid, rounds, err := s.exchange(ctx, zap.NewNop(), slots)
	release(slots)
	require.NoError(t, eg.Wait())
	return steps, mid, rounds, err
}

// TestExchange_OddRing inserts one extra cell into the 8-loop: the walkers
// pass each other without meeting and one returns to the start.
func TestExchange_OddRing(t *testing.T) {
	_, _, rounds, err := runRing(t, New(), 9)
	require.ErrorIs(t, err, ErrOddLoopLength)
	require.Equal(t, 8, rounds)
}

func TestExchange_EvenRing(t *testing.T) {
	steps, mid, rounds, err := runRing(t, New(), 8)
	require.NoError(t, err)
	require.Equal(t, 4, steps)
	require.Equal(t, pipegrid.Coordinate{X: 4}, mid)
	require.Equal(t, 3, rounds)
}

func TestDecide(t *testing.T) {
	at := func(x, steps int) rendezvous.StepReport {
		return rendezvous.StepReport{Position: pipegrid.Coordinate{X: x}, Steps: steps}
	}
	terminal := func(r rendezvous.StepReport) rendezvous.StepReport { r.Terminal = true; return r }
	faulted := func(r rendezvous.StepReport) rendezvous.StepReport {
		r.Terminal, r.Err = true, pipegrid.ErrInvalidTraversal
		return r
	}

	cases := []struct {
		name    string
		reports []rendezvous.StepReport
		want    verdictKind
		err     error
	}{
		{"Apart", []rendezvous.StepReport{at(1, 2), at(5, 2)}, verdictContinue, nil},
		{"Met", []rendezvous.StepReport{at(3, 4), at(3, 4)}, verdictMet, nil},
		{"SamePlaceDifferentSteps", []rendezvous.StepReport{at(3, 4), at(3, 5)}, verdictContinue, nil},
		{"Terminal", []rendezvous.StepReport{terminal(at(0, 9)), at(1, 9)}, verdictOdd, ErrOddLoopLength},
		{"BothBackAtStart", []rendezvous.StepReport{terminal(at(0, 9)), terminal(at(0, 9))}, verdictOdd, ErrOddLoopLength},
		{"Fault", []rendezvous.StepReport{at(3, 4), faulted(at(3, 4))}, verdictFault, ErrWalkerFault},
		{"FaultBeatsTerminal", []rendezvous.StepReport{terminal(at(0, 4)), faulted(at(2, 3))}, verdictFault, pipegrid.ErrInvalidTraversal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := decide(tc.reports)
			require.Equal(t, tc.want, v.kind, "verdict %v", v.kind)
			if tc.err != nil {
				require.ErrorIs(t, v.err, tc.err)
			} else {
				require.NoError(t, v.err)
			}
		})
	}
}
