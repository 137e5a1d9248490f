// Package option builds the compacted, per-run Index: a dense table mapping
// external ids (tids for the singular variant, pids for the overlapping
// variant) to contiguous option indices, together with precomputed weights
// and direction-indexed compatibility lists.
//
// What:
//
//   - Build enumerates options with weight > 0 in tid-sorted order,
//     assigns contiguous indices, translates each option's per-direction
//     neighbor-id list into a sorted index list, and precomputes each
//     option's initial "ways to be possible" per direction.
//   - An option with an empty list in any direction is globally impossible
//     (no neighbor could ever support it from that side) and is excluded
//     from the live-option count used to initialize cells.
//
// Why:
//
//   - Resolving everything to small integers once, up front, keeps the
//     propagator's hot loop (cellgrid/propagate) free of map lookups or
//     string/uint64 comparisons.
//
// Complexity:
//
//   - Build: O(N log N + N×4×D) where N is the option count and D is the
//     average out-degree per direction.
package option
