// Package supervisor finds the point of a pipe loop farthest from its
// start cell by walking the loop from both ends at once.
//
// What:
//
//   - Locates the start cell and the pipes connecting back to it.
//   - Spawns one walker goroutine per direction, each bound to its own
//     rendezvous.Slot, and joins them through an errgroup.
//   - Every round it awaits one report from every walker, then either
//     returns the shared step count (the walkers met), fails, or clears
//     all slots so the walkers take their next step.
//
// Termination:
//
//	On every exit path (success, failure, cancellation) all slots are
//	closed, which releases any walker parked after publishing, and all
//	walker goroutines are joined before Run returns.
//
// Errors:
//
//   - ErrNilGrid: no grid supplied.
//   - ErrInsufficientDirections: fewer than two pipes connect to the start.
//   - ErrOddLoopLength: a walker returned to the start before the walkers met.
//   - ErrWalkerFault: a walker left the loop; wraps the pipegrid cause.
//   - ErrRoundLimit: WithMaxRounds was exceeded.
//   - pipegrid.ErrNoStart, pipegrid.ErrAmbiguousStart: returned as-is from start discovery.
package supervisor
