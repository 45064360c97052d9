// Package rendezvous provides Slot, a single-slot, lock-step hand-off
// between exactly one producer (a walker) and one consumer (the supervisor).
//
// What:
//
//   - Capacity one: at most one unread StepReport exists per Slot.
//   - Publish stores a report and then blocks until the consumer Clears it,
//     so the producer cannot begin round N+1 before round N was consumed.
//   - Await blocks until a report is present and returns it without
//     clearing; Clear is the consumer's explicit go-ahead.
//   - Close releases both parties on any termination path.
//
// Why:
//
//   - Walkers and the supervisor advance in strict alternation; a report is
//     never dropped or overwritten.
//   - All suspension is a sync.Cond wait on the slot's occupancy, woken by the
//     other party's Broadcast. There is no polling and no sleeping.
//
// Cancellation:
//
//	Every blocking call takes a context.Context. Cancellation is bridged to
//	the condition variable with context.AfterFunc, so a cancelled caller
//	returns ctx.Err() promptly.
//
// Errors:
//
//   - ErrClosed: the slot was closed before the call could complete.
package rendezvous
