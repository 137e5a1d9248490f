package cellgrid

import (
	"math"

	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/option"
	"github.com/katalvlaran/wavecollapse/rng"
)

// CellState is the per-cell possibility state described in spec.md §3: an
// enabler count per (option, direction), the live option count, running
// weight sums, a fixed entropy-noise draw, and a terminal collapsed choice.
type CellState struct {
	idx *option.Index

	ways  [][4]int // ways[i][dir]: enabler count; option i is live iff all four > 0
	alive []bool   // alive[i]: option i still possible here

	numPossible  int
	weightSum    uint64
	weightLogSum float64
	entropyNoise float64

	collapsed    bool
	collapsedIdx int
}

// NewUncollapsed initializes a fresh, uncollapsed CellState from idx: every
// globally-possible option starts live with its initial enabler counts, the
// weight sums are the totals over those options, and a single entropy-noise
// sample is drawn (0 if source is nil, for non-entropy queues).
func NewUncollapsed(idx *option.Index, source rng.Source) *CellState {
	n := idx.Len()
	c := &CellState{
		idx:   idx,
		ways:  make([][4]int, n),
		alive: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		if idx.Dead(i) {
			continue
		}
		for _, dir := range gridpos.AllDirections {
			c.ways[i][dir] = idx.InitialWays(i, dir)
		}
		c.alive[i] = true
		c.numPossible++
		c.weightSum += uint64(idx.Weight(i))
		c.weightLogSum += idx.WeightLog(i)
	}
	if source != nil {
		c.entropyNoise = source.Float64() * 1e-5
	}
	return c
}

// NewCollapsed initializes a CellState already fixed to option i (a
// pre-seed). Its possibility state is empty, per invariant I4.
func NewCollapsed(idx *option.Index, i int) *CellState {
	return &CellState{
		idx:          idx,
		ways:         make([][4]int, idx.Len()),
		alive:        make([]bool, idx.Len()),
		collapsed:    true,
		collapsedIdx: i,
	}
}

// NumPossible returns the cached count of currently-live options.
func (c *CellState) NumPossible() int { return c.numPossible }

// WeightSum returns the running sum of weights over live options.
func (c *CellState) WeightSum() uint64 { return c.weightSum }

// WeightLogSum returns the running sum of weight*log2(weight) over live
// options.
func (c *CellState) WeightLogSum() float64 { return c.weightLogSum }

// IsAlive reports whether option i is still possible in this cell.
func (c *CellState) IsAlive(i int) bool { return c.alive[i] }

// Ways returns the enabler count for option i in direction dir.
func (c *CellState) Ways(i int, dir gridpos.Direction) int { return c.ways[i][dir] }

// IsCollapsed reports whether the cell has a terminal choice.
func (c *CellState) IsCollapsed() bool { return c.collapsed }

// CollapsedOption returns the chosen option index and true, or (0, false)
// if the cell is not yet collapsed.
func (c *CellState) CollapsedOption() (int, bool) {
	if !c.collapsed {
		return 0, false
	}
	return c.collapsedIdx, true
}

// InContradiction reports invariant I5: zero possible options with no
// collapse recorded.
func (c *CellState) InContradiction() bool {
	return !c.collapsed && c.numPossible == 0
}

// Entropy computes log2(weight_sum) - weight_log_sum/weight_sum +
// entropy_noise, per spec.md §3. Calling it on a cell with weight_sum == 0
// (collapsed or contradicted) returns negative infinity, so such cells sort
// ahead of every live cell in a min-entropy ordering.
func (c *CellState) Entropy() float64 {
	if c.weightSum == 0 {
		return math.Inf(-1)
	}
	ws := float64(c.weightSum)
	return math.Log2(ws) - c.weightLogSum/ws + c.entropyNoise
}

// DecrementWays decrements the enabler count for option i in direction dir.
// If the counter reaches zero, option i is removed from this cell (per
// RemoveOption) and DecrementWays reports removed=true.
func (c *CellState) DecrementWays(i int, dir gridpos.Direction) (removed bool) {
	if c.collapsed || !c.alive[i] {
		return false
	}
	if c.ways[i][dir] == 0 {
		return false
	}
	c.ways[i][dir]--
	if c.ways[i][dir] > 0 {
		return false
	}
	c.RemoveOption(i)
	return true
}

// RemoveOption eliminates option i from this cell's possibility set: it
// decrements num_possible, subtracts the option's weight from the running
// sums, and zeroes its enabler counts so it can never be resurrected. It is
// a no-op if i is already dead. Grid.ReconcileAgainstNeighbors calls it
// directly (rather than through DecrementWays) to prune options; the
// resolver clears the non-chosen options at collapse time through Collapse.
func (c *CellState) RemoveOption(i int) {
	if c.collapsed || !c.alive[i] {
		return
	}
	c.alive[i] = false
	c.numPossible--
	c.weightSum -= uint64(c.idx.Weight(i))
	c.weightLogSum -= c.idx.WeightLog(i)
	c.ways[i] = [4]int{}
}

// LiveOptions returns the currently-live option indices in ascending
// (stable) order.
func (c *CellState) LiveOptions() []int {
	if c.collapsed {
		return nil
	}
	out := make([]int, 0, c.numPossible)
	for i, alive := range c.alive {
		if alive {
			out = append(out, i)
		}
	}
	return out
}

// Collapse fixes the cell to option i, clearing its possibility state per
// invariant I4. It is the caller's responsibility (resolve.Resolver) to
// have already chosen i from among the live options.
func (c *CellState) Collapse(i int) {
	c.collapsed = true
	c.collapsedIdx = i
	c.alive = make([]bool, len(c.alive))
	c.ways = make([][4]int, len(c.ways))
	c.numPossible = 0
	c.weightSum = 0
	c.weightLogSum = 0
}
