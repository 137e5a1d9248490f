// Package overlap implements the overlapping-pattern extractor of
// spec.md §4.6: fixed-shape windows of tids ("patterns") replace tids as
// the option alphabet, letting the constraint-collapse engine in cellgrid
// and resolve operate unmodified over pattern identifiers instead of tile
// identifiers.
//
// What:
//
//   - Pattern is a window's tid contents plus its hashed identifier (pid).
//   - Extract scans sample grids for every window position and builds both
//     a PatternSet (pid -> Pattern) and a rules.FrequencyTable keyed by pid.
//   - PatternSet.BuildAdjacency computes the pairwise, per-direction
//     compatibility predicate and returns a rules.AdjacencyTable keyed by
//     pid, ready to feed option.Build exactly like a tid-keyed table.
//   - PatternSet.AnchorGridSize shrinks a target output size down to the
//     grid of positions that can actually host a full pattern window — the
//     grid a resolve.Resolver runs over, smaller than the tid output by
//     Shape-1 in each axis.
//   - ToTidGrid converts a resolved anchor/pid grid back to a full tid grid
//     by painting every anchor's whole window onto the output.
//   - SeedFromTidGrid converts a sparse pre-seed expressed in tids into a
//     pre-seed over the anchor grid, filtering to patterns whose window
//     agrees with every pre-seeded tid it overlaps.
//
// Why:
//
//   - Reusing option.Build and the entire resolve/cellgrid/propagate/queue
//     stack for both the tile model and its overlapping variant is the
//     design goal spec.md §9 calls out: a single concrete OptionIndex
//     consumer, parameterized only by which identifier space (tid or pid)
//     feeds it.
package overlap
