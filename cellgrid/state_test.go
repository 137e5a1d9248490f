package cellgrid_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/cellgrid"
	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/option"
	"github.com/katalvlaran/wavecollapse/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTileStripeIndex(t *testing.T) *option.Index {
	t.Helper()
	freq := rules.NewFrequencyTable()
	freq.Set(1, 1)
	freq.Set(2, 1)
	adj := rules.NewAdjacencyTable()
	adj.AddSymmetric(1, gridpos.Right, 2)
	adj.AddSymmetric(2, gridpos.Right, 1)
	adj.AddSymmetric(1, gridpos.Down, 1)
	adj.AddSymmetric(2, gridpos.Down, 2)
	idx, err := option.Build(freq, adj)
	require.NoError(t, err)
	return idx
}

func TestNewUncollapsedInvariants(t *testing.T) {
	idx := twoTileStripeIndex(t)
	c := cellgrid.NewUncollapsed(idx, nil)

	assert.Equal(t, idx.LiveCount(), c.NumPossible())
	var wantWeight uint64
	var wantWeightLog float64
	for i := 0; i < idx.Len(); i++ {
		if idx.Dead(i) {
			continue
		}
		wantWeight += uint64(idx.Weight(i))
		wantWeightLog += idx.WeightLog(i)
	}
	assert.Equal(t, wantWeight, c.WeightSum())
	assert.InDelta(t, wantWeightLog, c.WeightLogSum(), 1e-9)
}

func TestRemoveOptionMaintainsInvariants(t *testing.T) {
	idx := twoTileStripeIndex(t)
	c := cellgrid.NewUncollapsed(idx, nil)
	i0 := c.LiveOptions()[0]

	before := c.NumPossible()
	c.RemoveOption(i0)
	assert.Equal(t, before-1, c.NumPossible())
	assert.False(t, c.IsAlive(i0))
	for _, dir := range gridpos.AllDirections {
		assert.Equal(t, 0, c.Ways(i0, dir))
	}

	// Removing again is a no-op.
	c.RemoveOption(i0)
	assert.Equal(t, before-1, c.NumPossible())
}

func TestDecrementWaysRemovesAtZero(t *testing.T) {
	idx := twoTileStripeIndex(t)
	c := cellgrid.NewUncollapsed(idx, nil)
	i0 := c.LiveOptions()[0]

	ways := c.Ways(i0, gridpos.Up)
	for k := 0; k < ways-1; k++ {
		removed := c.DecrementWays(i0, gridpos.Up)
		assert.False(t, removed)
	}
	removed := c.DecrementWays(i0, gridpos.Up)
	assert.True(t, removed)
	assert.False(t, c.IsAlive(i0))
}

func TestCollapseClearsState(t *testing.T) {
	idx := twoTileStripeIndex(t)
	c := cellgrid.NewUncollapsed(idx, nil)
	c.Collapse(0)

	assert.True(t, c.IsCollapsed())
	got, ok := c.CollapsedOption()
	require.True(t, ok)
	assert.Equal(t, 0, got)
	assert.Equal(t, 0, c.NumPossible())
	assert.Equal(t, uint64(0), c.WeightSum())
	assert.False(t, c.InContradiction())
}

func TestContradictionInvariant(t *testing.T) {
	idx := twoTileStripeIndex(t)
	c := cellgrid.NewUncollapsed(idx, nil)
	for _, i := range c.LiveOptions() {
		c.RemoveOption(i)
	}
	assert.True(t, c.InContradiction())
}

func TestEntropyMonotonicity(t *testing.T) {
	idx := twoTileStripeIndex(t)
	c := cellgrid.NewUncollapsed(idx, nil)
	before := c.Entropy()
	c.RemoveOption(c.LiveOptions()[0])
	after := c.Entropy()
	assert.LessOrEqual(t, after, before)
}
