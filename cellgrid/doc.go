// Package cellgrid implements the collapsible grid: a dense Size-shaped
// array of per-cell possibility state (CellState), together with the weight
// arithmetic and invariants described in spec.md §3–§4.4.
//
// What:
//
//   - CellState tracks, per option, an enabler count per direction
//     (ways[option][dir]): how many currently-live options in the neighbor
//     on that side still permit this option here. An option is possible
//     iff all four counters are positive.
//   - Grid is a dense array of CellState plus a reference to the
//     option.Index the run was built from.
//
// Invariants maintained by every exported mutator (spec.md §4.4):
//
//	(I1) For every live option i in a cell, ways[i][dir] > 0 for all dir.
//	(I2) num_possible == |{i : live}|.
//	(I3) weight_sum == Σ_live weight[i]; weight_log_sum likewise.
//	(I4) A collapsed cell has num_possible == 0, weight_sum == 0, and
//	     exactly one recorded option.
//	(I5) num_possible == 0 with no collapse recorded is a contradiction.
//
// Why:
//
//   - Keeping the enabler-count scheme (rather than recomputing possibility
//     from scratch) is what makes propagation incremental: removing an
//     option is O(1) bookkeeping per affected neighbor entry, not a grid
//     rescan.
//
// Complexity:
//
//   - NewEmpty: O(W×H×N) to initialize every cell's counters.
//   - RemoveOption: O(1) per call.
//   - Collapse: O(N) per call (it reallocates the cell's per-option state).
package cellgrid
