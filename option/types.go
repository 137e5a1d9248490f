package option

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/rules"
)

// ErrNoOptions indicates a FrequencyTable contributed no option with
// nonzero weight, so no resolver run could ever collapse a cell.
var ErrNoOptions = errors.New("option: no option has nonzero weight")

// Index is the compacted, per-run table mapping external ids (tids or pids)
// to contiguous option indices [0, N), with precomputed weights and
// direction-indexed compatibility lists. It is immutable once built and may
// be shared across many resolver runs.
type Index struct {
	extID       []uint64               // option index -> external id
	idToIndex   map[uint64]int         // external id -> option index
	weight      []uint32               // option index -> weight
	weightLog   []float64              // option index -> weight * log2(weight)
	enabled     [][4][]int             // option index -> dir -> sorted enabled option indices
	initialWays [][4]int               // option index -> dir -> len(enabled[i][dir])
	dead        []bool                 // option index -> initially/globally impossible
	liveCount   int                    // options with every initialWays[dir] > 0
}

// Build enumerates options with weight > 0 in tid-sorted order from freq,
// assigns contiguous indices, and translates adj's per-direction neighbor
// lists into index space. An option referenced by adj but absent (or
// zero-weight) in freq is simply not an option: it is treated as
// impossible, per spec.md §4.3's failure policy.
func Build(freq *rules.FrequencyTable, adj *rules.AdjacencyTable) (*Index, error) {
	tids := freq.Tids()
	extID := make([]uint64, 0, len(tids))
	for _, tid := range tids {
		if freq.Weight(tid) > 0 {
			extID = append(extID, tid)
		}
	}
	sort.Slice(extID, func(i, j int) bool { return extID[i] < extID[j] })
	if len(extID) == 0 {
		return nil, ErrNoOptions
	}

	idx := &Index{
		extID:       extID,
		idToIndex:   make(map[uint64]int, len(extID)),
		weight:      make([]uint32, len(extID)),
		weightLog:   make([]float64, len(extID)),
		enabled:     make([][4][]int, len(extID)),
		initialWays: make([][4]int, len(extID)),
		dead:        make([]bool, len(extID)),
	}
	for i, tid := range extID {
		idx.idToIndex[tid] = i
		w := freq.Weight(tid)
		idx.weight[i] = w
		idx.weightLog[i] = float64(w) * math.Log2(float64(w))
	}

	for i, tid := range extID {
		for _, dir := range gridpos.AllDirections {
			neighbors := adj.Allowed(tid, dir)
			enabled := make([]int, 0, len(neighbors))
			for _, n := range neighbors {
				if j, ok := idx.idToIndex[n]; ok {
					enabled = append(enabled, j)
				}
			}
			sort.Ints(enabled)
			idx.enabled[i][dir] = enabled
			idx.initialWays[i][dir] = len(enabled)
		}
	}

	idx.liveCount = len(extID)
	for i := range extID {
		for _, dir := range gridpos.AllDirections {
			if idx.initialWays[i][dir] == 0 {
				idx.dead[i] = true
				idx.liveCount--
				break
			}
		}
	}

	return idx, nil
}

// Len returns the total number of options N (dead or alive).
func (idx *Index) Len() int { return len(idx.extID) }

// LiveCount returns the number of options that are not globally impossible.
func (idx *Index) LiveCount() int { return idx.liveCount }

// ExternalID returns the tid/pid that option i represents.
func (idx *Index) ExternalID(i int) uint64 { return idx.extID[i] }

// IndexOf returns the option index for an external id, and whether it is a
// known option at all.
func (idx *Index) IndexOf(id uint64) (int, bool) {
	i, ok := idx.idToIndex[id]
	return i, ok
}

// Weight returns option i's weight.
func (idx *Index) Weight(i int) uint32 { return idx.weight[i] }

// WeightLog returns option i's precomputed weight * log2(weight).
func (idx *Index) WeightLog(i int) float64 { return idx.weightLog[i] }

// Enabled returns the sorted list of option indices allowed to appear in
// direction dir relative to option i.
func (idx *Index) Enabled(i int, dir gridpos.Direction) []int {
	return idx.enabled[i][dir]
}

// InitialWays returns the number of neighbors that could support option i
// from direction dir, before any cell-specific elimination.
func (idx *Index) InitialWays(i int, dir gridpos.Direction) int {
	return idx.initialWays[i][dir]
}

// Dead reports whether option i is globally impossible: some direction has
// no neighbor that could ever support it.
func (idx *Index) Dead(i int) bool { return idx.dead[i] }
