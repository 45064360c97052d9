package rendezvous

import (
	"context"
	"sync"
)

// Slot is a per-walker mailbox with sync.Cond blocking semantics.
//
// Thread-safety:
//   - All fields are protected by mu.
//   - Publish: called by the single producer goroutine.
//   - Await, Clear: called by the single consumer goroutine.
//   - Close, Stats: safe from any goroutine.
type Slot struct {
	mu   sync.Mutex
	cond *sync.Cond

	report  StepReport
	pending bool // report stored and not yet cleared

	published uint64
	cleared   uint64
	closed    bool
}

// NewSlot returns an empty, open Slot.
func NewSlot() *Slot {
	s := &Slot{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Publish stores r and blocks until the consumer clears it.
//
// Behavior:
//  1. Wait while an earlier report is still unread (never overwrite).
//  2. Store r and wake the consumer.
//  3. Wait until r is cleared.
//
// Returns nil once r was cleared, ErrClosed if the slot is closed first
// (before or after r was stored), or ctx.Err() if ctx is done first.
func (s *Slot) Publish(ctx context.Context, r StepReport) error {
	stop := context.AfterFunc(ctx, s.wake)
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	for s.pending && !s.closed && ctx.Err() == nil {
		s.cond.Wait()
	}
	if s.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.report = r
	s.pending = true
	s.published++
	ticket := s.published
	s.cond.Broadcast()

	// Go-ahead: the consumer has cleared this report.
	for s.cleared < ticket && !s.closed && ctx.Err() == nil {
		s.cond.Wait()
	}
	switch {
	case s.cleared >= ticket:
		return nil
	case s.closed:
		return ErrClosed
	default:
		return ctx.Err()
	}
}

// Await blocks until a report is pending and returns it without clearing it.
// A report stored before Close is still returned; afterwards Await
// returns ErrClosed. Returns ctx.Err() if ctx is done first.
func (s *Slot) Await(ctx context.Context) (StepReport, error) {
	stop := context.AfterFunc(ctx, s.wake)
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	for !s.pending && !s.closed && ctx.Err() == nil {
		s.cond.Wait()
	}
	switch {
	case s.pending:
		return s.report, nil
	case s.closed:
		return StepReport{}, ErrClosed
	default:
		return StepReport{}, ctx.Err()
	}
}

// Clear consumes the pending report and releases the blocked producer.
// It is a no-op when nothing is pending.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending {
		return
	}
	s.pending = false
	s.report = StepReport{}
	s.cleared++
	s.cond.Broadcast()
}

// Close marks the slot closed and wakes both parties.
// Idempotent: subsequent calls are no-ops.
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.cond.Broadcast()
}

// Stats returns a snapshot of the slot counters.
func (s *Slot) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Published: s.published,
		Cleared:   s.cleared,
		Pending:   s.pending,
		Closed:    s.closed,
	}
}

// wake is run by context.AfterFunc; taking mu orders the Broadcast after
// any waiter has re-checked ctx.Err() and parked.
func (s *Slot) wake() {
	s.mu.Lock()
	s.cond.Broadcast()
	s.mu.Unlock()
}
