package rules

import "github.com/katalvlaran/wavecollapse/gridpos"

// IdentityAnalyze builds an AdjacencyTable strictly from observation: for
// every sample cell and each in-bounds neighbor direction, it records that
// the neighbor's tid is allowed in that direction relative to the cell's
// tid, and the symmetric counterpart. Two tiles co-occur in the resulting
// table iff they were seen adjacent in at least one sample.
func IdentityAnalyze(samples ...*gridpos.CollapsedGrid) (*AdjacencyTable, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	adj := NewAdjacencyTable()
	for _, sample := range samples {
		size := sample.Size()
		for _, p := range sample.Positions() {
			tid, ok := sample.Get(p)
			if !ok {
				continue
			}
			for _, dir := range gridpos.AllDirections {
				np, ok := size.Step(p, dir)
				if !ok {
					continue
				}
				ntid, ok := sample.Get(np)
				if !ok {
					continue
				}
				adj.AddSymmetric(tid, dir, ntid)
			}
		}
	}
	return adj, nil
}

// ExtractFrequency counts tid occurrences across samples into a
// FrequencyTable. Callers may override any resulting weight with
// FrequencyTable.Set.
func ExtractFrequency(samples ...*gridpos.CollapsedGrid) (*FrequencyTable, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	freq := NewFrequencyTable()
	for _, sample := range samples {
		for _, p := range sample.Positions() {
			tid, ok := sample.Get(p)
			if !ok {
				continue
			}
			freq.Add(tid, 1)
		}
	}
	return freq, nil
}
