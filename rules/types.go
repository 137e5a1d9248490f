package rules

import (
	"errors"
	"sort"

	"github.com/katalvlaran/wavecollapse/gridpos"
)

// Sentinel errors for the rules package.
var (
	// ErrNoSamples indicates an analyzer was called with zero sample grids.
	ErrNoSamples = errors.New("rules: at least one sample grid is required")
)

// AdjacencyTable maps a tid to, per direction, the set of tids allowed to
// appear on that side of it. It is reflexively symmetric when built by
// IdentityAnalyze: if b is allowed to the right of a, a is allowed to the
// left of b.
type AdjacencyTable struct {
	byTid map[uint64]*dirSets
}

type dirSets struct {
	sets [4]map[uint64]struct{}
}

func newDirSets() *dirSets {
	d := &dirSets{}
	for i := range d.sets {
		d.sets[i] = make(map[uint64]struct{})
	}
	return d
}

// NewAdjacencyTable returns an empty AdjacencyTable.
func NewAdjacencyTable() *AdjacencyTable {
	return &AdjacencyTable{byTid: make(map[uint64]*dirSets)}
}

// Add records that neighbor is allowed in direction dir relative to tid.
// It does not add the symmetric counterpart; see AddSymmetric.
func (a *AdjacencyTable) Add(tid uint64, dir gridpos.Direction, neighbor uint64) {
	set, ok := a.byTid[tid]
	if !ok {
		set = newDirSets()
		a.byTid[tid] = set
	}
	set.sets[dir][neighbor] = struct{}{}
}

// AddSymmetric records that neighbor is allowed in direction dir relative to
// tid, and (by the invariant in spec.md §3) that tid is allowed in the
// opposite direction relative to neighbor.
func (a *AdjacencyTable) AddSymmetric(tid uint64, dir gridpos.Direction, neighbor uint64) {
	a.Add(tid, dir, neighbor)
	a.Add(neighbor, dir.Opposite(), tid)
}

// Allowed returns the sorted set of tids allowed in direction dir relative
// to tid. Returns nil if tid has no recorded adjacency at all.
func (a *AdjacencyTable) Allowed(tid uint64, dir gridpos.Direction) []uint64 {
	set, ok := a.byTid[tid]
	if !ok {
		return nil
	}
	out := make([]uint64, 0, len(set.sets[dir]))
	for n := range set.sets[dir] {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsAllowed reports whether neighbor may sit in direction dir relative to
// tid.
func (a *AdjacencyTable) IsAllowed(tid uint64, dir gridpos.Direction, neighbor uint64) bool {
	set, ok := a.byTid[tid]
	if !ok {
		return false
	}
	_, ok = set.sets[dir][neighbor]
	return ok
}

// Tids returns the sorted set of tids that have any recorded adjacency.
func (a *AdjacencyTable) Tids() []uint64 {
	out := make([]uint64, 0, len(a.byTid))
	for tid := range a.byTid {
		out = append(out, tid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FrequencyTable maps a tid to its weight. A weight of zero marks the tid
// disabled (it will not appear as an option, per spec.md §3).
type FrequencyTable struct {
	weights map[uint64]uint32
}

// NewFrequencyTable returns an empty FrequencyTable.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{weights: make(map[uint64]uint32)}
}

// Add increments tid's weight by n (an observed-occurrence count).
func (f *FrequencyTable) Add(tid uint64, n uint32) {
	f.weights[tid] += n
}

// Set overrides tid's weight outright, for user-supplied weights.
func (f *FrequencyTable) Set(tid uint64, w uint32) {
	f.weights[tid] = w
}

// Weight returns tid's current weight (zero if never observed or set).
func (f *FrequencyTable) Weight(tid uint64) uint32 {
	return f.weights[tid]
}

// Tids returns the sorted set of tids with a recorded weight entry
// (including zero-weight, i.e. disabled, entries).
func (f *FrequencyTable) Tids() []uint64 {
	out := make([]uint64, 0, len(f.weights))
	for tid := range f.weights {
		out = append(out, tid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
