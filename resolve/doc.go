// Package resolve orchestrates a single constraint-collapse run: it owns
// the cellgrid.Grid, drives whichever queue.Queue the caller selected,
// cascades eliminations through propagate.Propagator, and reports a
// CollapseError naming the phase and position a run failed at (spec.md
// §4.8, §6, §7).
//
// What:
//
//   - Resolver is built once from a Size and an option.Index, configured
//     with functional Options (pre-seed, subscriber, queue discipline).
//   - Generate runs the algorithm against an explicit rng.Source: validate
//     the pre-seed, cascade it to fixpoint, then repeatedly pop a position
//     from the queue, weighted-randomly choose among its live options,
//     collapse it, and (entropy queue only) cascade the result.
//   - Run is a convenience wrapper that builds the rng.Source from the
//     seed given at construction time.
//   - RetryWithSeeds re-invokes a closure with a fresh, deterministically
//     derived rng.Source per attempt until one succeeds or attempts are
//     exhausted (spec.md §7's retry-on-contradiction guidance).
//   - Subscriber lets a caller observe OnStart/OnCollapse without
//     threading a channel or callback slice through Generate's signature.
//
// Why:
//
//   - Splitting "what the algorithm does" (this package) from "how a
//     cell's possibility set is stored" (cellgrid), "how eliminations
//     cascade" (propagate), and "what order cells are visited in" (queue)
//     keeps each concern independently testable, mirroring dijkstra.go's
//     split between the algorithm's runner and its nodePQ/Options types.
//   - A pre-seed of two adjacent, mutually-incompatible tids is invisible
//     to propagate.Propagator (it only walks from collapsed cells outward
//     to uncollapsed neighbors, never checking two collapsed cells against
//     each other directly), so Generate runs a dedicated adjacency check
//     over the pre-seed before ever touching the propagator.
package resolve
