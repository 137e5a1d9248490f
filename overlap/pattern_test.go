package overlap_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/option"
	"github.com/katalvlaran/wavecollapse/overlap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripeSample is a 4x1 row alternating land/water: L W L W.
func stripeSample(t *testing.T) *gridpos.CollapsedGrid {
	t.Helper()
	g := gridpos.NewCollapsedGrid(gridpos.NewSize(4, 1))
	tids := []uint64{1, 2, 1, 2}
	for x, tid := range tids {
		require.NoError(t, g.Insert(gridpos.At(x, 0), tid))
	}
	return g
}

func TestExtractCountsRepeatedWindows(t *testing.T) {
	set, err := overlap.Extract(gridpos.NewSize(2, 1), stripeSample(t))
	require.NoError(t, err)

	// Windows at x=0,2 are [1,2]; windows at x=1 is [2,1]. Three anchors
	// total, two distinct patterns.
	assert.Len(t, set.Pids(), 2)

	var lw, wl uint64
	for _, pid := range set.Pids() {
		p, ok := set.Pattern(pid)
		require.True(t, ok)
		if p.Tiles[0] == 1 {
			lw = pid
		} else {
			wl = pid
		}
	}
	assert.Equal(t, uint32(2), set.Frequency().Weight(lw))
	assert.Equal(t, uint32(1), set.Frequency().Weight(wl))
}

func TestExtractTooLargeShape(t *testing.T) {
	_, err := overlap.Extract(gridpos.NewSize(10, 10), stripeSample(t))
	assert.ErrorIs(t, err, overlap.ErrWindowTooLarge)
}

func TestCompatibleDegenerateSingleCell(t *testing.T) {
	a := overlap.Pattern{ID: 1, Shape: gridpos.NewSize(1, 1), Tiles: []uint64{1}}
	b := overlap.Pattern{ID: 2, Shape: gridpos.NewSize(1, 1), Tiles: []uint64{2}}
	for _, dir := range gridpos.AllDirections {
		assert.True(t, overlap.Compatible(a, b, dir))
	}
}

func TestCompatibleAgreesOnOverlapOnly(t *testing.T) {
	// a = [1 2], b = [2 3]: shifting b right by one over a, a's column 1
	// (tid 2) must equal b's column 0 (tid 2) -> compatible to the right.
	a := overlap.Pattern{ID: 1, Shape: gridpos.NewSize(2, 1), Tiles: []uint64{1, 2}}
	b := overlap.Pattern{ID: 2, Shape: gridpos.NewSize(2, 1), Tiles: []uint64{2, 3}}
	assert.True(t, overlap.Compatible(a, b, gridpos.Right))
	assert.True(t, overlap.Compatible(b, a, gridpos.Left))

	// c = [9 9] disagrees with a's column 1 (tid 2) at c's column 0.
	c := overlap.Pattern{ID: 3, Shape: gridpos.NewSize(2, 1), Tiles: []uint64{9, 9}}
	assert.False(t, overlap.Compatible(a, c, gridpos.Right))
}

func TestBuildAdjacencyFeedsOptionBuild(t *testing.T) {
	set, err := overlap.Extract(gridpos.NewSize(2, 1), stripeSample(t))
	require.NoError(t, err)

	adj := set.BuildAdjacency()
	idx, err := option.Build(set.Frequency(), adj)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
}

func TestToTidGridUsesAnchor(t *testing.T) {
	set, err := overlap.Extract(gridpos.NewSize(2, 1), stripeSample(t))
	require.NoError(t, err)

	var lwPid uint64
	for _, pid := range set.Pids() {
		p, _ := set.Pattern(pid)
		if p.Tiles[0] == 1 {
			lwPid = pid
		}
	}

	pidGrid := gridpos.NewCollapsedGrid(gridpos.NewSize(1, 1))
	require.NoError(t, pidGrid.Insert(gridpos.At(0, 0), lwPid))

	tidGrid, err := set.ToTidGrid(pidGrid)
	require.NoError(t, err)
	tid, ok := tidGrid.Get(gridpos.At(0, 0))
	require.True(t, ok)
	assert.Equal(t, uint64(1), tid)
}

func TestToTidGridUnknownPid(t *testing.T) {
	set, err := overlap.Extract(gridpos.NewSize(2, 1), stripeSample(t))
	require.NoError(t, err)

	pidGrid := gridpos.NewCollapsedGrid(gridpos.NewSize(1, 1))
	require.NoError(t, pidGrid.Insert(gridpos.At(0, 0), 999999))

	_, err = set.ToTidGrid(pidGrid)
	assert.Error(t, err)
}
