package cellgrid_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/cellgrid"
	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyEveryCellUncollapsed(t *testing.T) {
	idx := twoTileStripeIndex(t)
	g := cellgrid.NewEmpty(gridpos.NewSize(2, 2), idx, nil)
	for _, p := range g.AllPositions() {
		assert.False(t, g.At(p).IsCollapsed())
	}
	assert.Len(t, g.UncollapsedPositions(), 4)
}

func TestPopulateFromCollapsedSizeMismatch(t *testing.T) {
	idx := twoTileStripeIndex(t)
	g := cellgrid.NewEmpty(gridpos.NewSize(2, 2), idx, nil)
	src := gridpos.NewCollapsedGrid(gridpos.NewSize(3, 3))
	err := g.PopulateFromCollapsed(src)
	assert.ErrorIs(t, err, cellgrid.ErrSizeMismatch)
}

func TestPopulateFromCollapsedMissingIDs(t *testing.T) {
	idx := twoTileStripeIndex(t)
	g := cellgrid.NewEmpty(gridpos.NewSize(2, 2), idx, nil)
	src := gridpos.NewCollapsedGrid(gridpos.NewSize(2, 2))
	require.NoError(t, src.Insert(gridpos.At(0, 0), 999))
	err := g.PopulateFromCollapsed(src)
	assert.ErrorIs(t, err, cellgrid.ErrMissingIDs)
}

func TestPopulateFromCollapsedFixesCells(t *testing.T) {
	idx := twoTileStripeIndex(t)
	g := cellgrid.NewEmpty(gridpos.NewSize(2, 2), idx, nil)
	src := gridpos.NewCollapsedGrid(gridpos.NewSize(2, 2))
	require.NoError(t, src.Insert(gridpos.At(0, 0), 1))
	require.NoError(t, g.PopulateFromCollapsed(src))

	cell := g.At(gridpos.At(0, 0))
	require.True(t, cell.IsCollapsed())
	i, _ := cell.CollapsedOption()
	assert.Equal(t, uint64(1), g.Index().ExternalID(i))

	assert.False(t, g.At(gridpos.At(1, 0)).IsCollapsed())
}

func TestReconcileAgainstNeighborsPrunes(t *testing.T) {
	idx := twoTileStripeIndex(t)
	g := cellgrid.NewEmpty(gridpos.NewSize(2, 1), idx, nil)
	src := gridpos.NewCollapsedGrid(gridpos.NewSize(2, 1))
	require.NoError(t, src.Insert(gridpos.At(0, 0), 1))
	require.NoError(t, g.PopulateFromCollapsed(src))

	contradiction := g.ReconcileAgainstNeighbors(gridpos.At(1, 0))
	assert.False(t, contradiction)

	cell := g.At(gridpos.At(1, 0))
	// Only tid 2 survives: tid 1 is not allowed to the right of tid 1.
	assert.Equal(t, 1, cell.NumPossible())
	live := cell.LiveOptions()
	require.Len(t, live, 1)
	assert.Equal(t, uint64(2), g.Index().ExternalID(live[0]))
}

func TestToCollapsedRoundTrip(t *testing.T) {
	idx := twoTileStripeIndex(t)
	g := cellgrid.NewEmpty(gridpos.NewSize(1, 1), idx, nil)
	g.At(gridpos.At(0, 0)).Collapse(0)

	out := g.ToCollapsed()
	tid, ok := out.Get(gridpos.At(0, 0))
	require.True(t, ok)
	assert.Equal(t, idx.ExternalID(0), tid)
}
