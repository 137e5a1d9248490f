// Package propagate implements the elimination cascade described in
// spec.md §4.5: given that an option was just removed at a cell, it
// decrements the enabler counts of every neighbor that relied on that
// option for support, pushing further removals onto its own frontier until
// the frontier is empty.
//
// What:
//
//   - Item is a (position, removed option) pair.
//   - Propagator.Push enqueues an Item; SeedFromPreCollapsed seeds the
//     frontier with every pre-collapsed cell's "not-me" removals.
//   - Propagator.Run drains the frontier, decrementing
//     cellgrid.CellState.DecrementWays for every enabled neighbor option
//     and cascading further removals until the frontier is empty.
//
// Why:
//
//   - Splitting this out of the resolver keeps the cascade's control flow
//     (and its single short-circuit-on-contradiction exit) testable in
//     isolation from selection policy.
//   - Propagator is always a full cascade; it is the resolver, not the
//     propagator, that decides when to invoke one. Under the position
//     queue (spec.md §4.5's non-propagating mode) the resolver never calls
//     Run outside of seed propagation — it relies on
//     cellgrid.Grid.ReconcileAgainstNeighbors instead, which re-derives a
//     cell's survivors directly from its neighbors' live possibility sets
//     rather than maintaining enabler counts incrementally. Under the
//     entropy queue the resolver calls Run after every collapse.
//
// Complexity:
//
//   - Run: O(frontier size × 4 × average enabled-list length) amortized.
package propagate
