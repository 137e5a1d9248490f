// Package queue implements the two selection policies of spec.md §4.7: a
// Position queue that visits cells in a fixed corner/axis order without
// propagating, and an Entropy queue that always pops the minimum-entropy
// uncollapsed cell and propagates every collapse to fixpoint.
//
// What:
//
//   - Queue is the common interface the resolver drives: Populate, Update,
//     Pop, Len, IsEmpty, Propagating.
//   - PositionQueue orders positions by a (Corner, Axis) pair chosen at
//     construction, mirroring the eight total orders grid_forge's
//     PositionQueue exposes.
//   - EntropyQueue is a container/heap-backed priority queue keyed by
//     (entropy, position), with lazy deletion on Update.
//
// Why:
//
//   - Go's standard library has no ordered-set type comparable to Rust's
//     BTreeSet, so the entropy queue is built directly on container/heap
//     with a per-position version map: Update pushes a fresh entry in
//     O(log n) and Pop discards superseded ones, grounded on the
//     same pattern the teacher uses in dijkstra.go's heap-based frontier.
package queue
