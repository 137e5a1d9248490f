package queue_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntropySource struct {
	values map[gridpos.Position]float64
}

func (f *fakeEntropySource) Entropy(p gridpos.Position) float64 { return f.values[p] }

func TestEntropyQueuePopsMinimum(t *testing.T) {
	a, b, c := gridpos.At(0, 0), gridpos.At(1, 0), gridpos.At(0, 1)
	src := &fakeEntropySource{values: map[gridpos.Position]float64{a: 2.0, b: 0.5, c: 1.0}}
	q := queue.NewEntropyQueue(src)
	q.Populate([]gridpos.Position{a, b, c})

	p, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, b, p)

	p, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, c, p)

	p, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, a, p)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestEntropyQueueTieBreaksByPosition(t *testing.T) {
	a, b := gridpos.At(1, 0), gridpos.At(0, 0)
	src := &fakeEntropySource{values: map[gridpos.Position]float64{a: 1.0, b: 1.0}}
	q := queue.NewEntropyQueue(src)
	q.Populate([]gridpos.Position{a, b})

	p, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, b, p) // (0,0) sorts before (1,0) at equal entropy
}

func TestEntropyQueueUpdateSupersedesStaleEntry(t *testing.T) {
	a, b := gridpos.At(0, 0), gridpos.At(1, 0)
	src := &fakeEntropySource{values: map[gridpos.Position]float64{a: 1.0, b: 2.0}}
	q := queue.NewEntropyQueue(src)
	q.Populate([]gridpos.Position{a, b})

	src.values[a] = 5.0
	q.Update(a)

	p, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, b, p) // a's entropy rose past b's after Update

	p, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, a, p)
}

func TestEntropyQueueLenTracksLivePositions(t *testing.T) {
	a, b := gridpos.At(0, 0), gridpos.At(1, 0)
	src := &fakeEntropySource{values: map[gridpos.Position]float64{a: 1.0, b: 2.0}}
	q := queue.NewEntropyQueue(src)
	q.Populate([]gridpos.Position{a, b})
	require.Equal(t, 2, q.Len())

	_, _ = q.Pop()
	assert.Equal(t, 1, q.Len())
	assert.False(t, q.IsEmpty())
}

func TestEntropyQueuePropagating(t *testing.T) {
	q := queue.NewEntropyQueue(&fakeEntropySource{values: map[gridpos.Position]float64{}})
	assert.True(t, q.Propagating())
}
