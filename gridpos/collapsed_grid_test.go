package gridpos_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapsedGridInsertOutOfBounds(t *testing.T) {
	g := gridpos.NewCollapsedGrid(gridpos.NewSize(2, 2))
	err := g.Insert(gridpos.At(5, 5), 1)
	assert.ErrorIs(t, err, gridpos.ErrOutOfBounds)
}

func TestCollapsedGridGetMissing(t *testing.T) {
	g := gridpos.NewCollapsedGrid(gridpos.NewSize(2, 2))
	_, ok := g.Get(gridpos.At(0, 0))
	assert.False(t, ok)
}

func TestCollapsedGridDistinctTids(t *testing.T) {
	g := gridpos.NewCollapsedGrid(gridpos.NewSize(2, 2))
	require.NoError(t, g.Insert(gridpos.At(0, 0), 7))
	require.NoError(t, g.Insert(gridpos.At(1, 0), 3))
	require.NoError(t, g.Insert(gridpos.At(0, 1), 7))

	assert.Equal(t, []uint64{3, 7}, g.DistinctTids())
	assert.Equal(t, 3, g.Len())
}

func ExampleCollapsedGrid() {
	g := gridpos.NewCollapsedGrid(gridpos.NewSize(2, 1))
	_ = g.Insert(gridpos.At(0, 0), 1)
	_ = g.Insert(gridpos.At(1, 0), 2)

	for _, p := range g.Positions() {
		tid, _ := g.Get(p)
		fmt.Printf("(%d,%d)=%d ", p.X, p.Y, tid)
	}
	// Output: (0,0)=1 (1,0)=2
}
