// Package rules holds the two rule tables a resolver run is built from —
// AdjacencyTable and FrequencyTable — and the analyzers that derive them
// from sample grids.
//
// What:
//
//   - AdjacencyTable maps a tid to, per Direction, the set of tids allowed
//     to sit on that side of it.
//   - FrequencyTable maps a tid to its weight (a positive integer count, or
//     a user override).
//   - IdentityAnalyze observes adjacency exactly as seen in the samples.
//   - BorderAnalyze computes border-equivalence classes over (tid,
//     direction) half-edges via union-find, then derives a more permissive
//     adjacency by pairing every tid on one side of a class with every tid
//     on the opposite side.
//   - ExtractFrequency counts tid occurrences across samples.
//
// Why:
//
//   - Keeping rule-table construction separate from the option index
//     (package option) lets callers hand-build or edit rules without ever
//     touching the compacted per-run representation.
//
// Complexity:
//
//   - IdentityAnalyze / ExtractFrequency: O(samples × W×H×4).
//   - BorderAnalyze: O(samples × W×H×4 × α(n)) for the union-find passes,
//     plus O(classes²) to materialize the permissive adjacency.
package rules
