// Package gridpos defines the 2D position/size/direction model shared by
// every other wavecollapse package, and the CollapsedGrid type used at the
// system's input/output boundary.
//
// What:
//
//   - Size describes a rectangular W×H domain, with an optional Z-layer
//     count carried for callers that stack 2D grids (cardinal stepping
//     stays strictly 2D; Z never participates in neighbor lookup).
//   - Position is an (X, Y[, Z]) coordinate within a Size.
//   - Direction is one of the four cardinal directions; Step moves a
//     Position one cell in a Direction, returning ok=false at the boundary.
//     There is no wraparound.
//   - CollapsedGrid is a dense grid of external tile-type ids (tids), used
//     as input (pre-seeds) and output (materialized result) at the
//     boundary between the core and everything outside it.
//
// Why:
//
//   - Every rule table, option index, and collapsible grid in this module
//     is keyed by Position and walks Direction; centralizing the model here
//     keeps that arithmetic in one deterministic place.
//
// Complexity:
//
//   - All operations are O(1) except Size.Positions, which is
//     O(W×H×Layers), and CollapsedGrid.Positions/DistinctTids, which sort
//     the n occupied entries in O(n log n).
package gridpos
