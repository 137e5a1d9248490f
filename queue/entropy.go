package queue

import (
	"container/heap"

	"github.com/katalvlaran/wavecollapse/gridpos"
)

// EntropySource supplies the current entropy of a position, so EntropyQueue
// stays decoupled from cellgrid.Grid's concrete type.
type EntropySource interface {
	Entropy(p gridpos.Position) float64
}

// EntropyQueue is an ordered set keyed by (entropy, position), per
// spec.md §4.7: pop yields the minimum-entropy uncollapsed position, ties
// break by position order after the noise term already folded into each
// cell's entropy value. Go has no balanced-tree ordered set, so this uses
// container/heap with the teacher's lazy-decrease-key idiom (dijkstra.go):
// Update pushes a fresh entry instead of mutating in place, and Pop discards
// stale entries it finds on top.
type EntropyQueue struct {
	source  EntropySource
	heap    entropyHeap
	version map[gridpos.Position]uint64
	live    int
}

// NewEntropyQueue constructs an empty EntropyQueue reading entropy from source.
func NewEntropyQueue(source EntropySource) *EntropyQueue {
	return &EntropyQueue{
		source:  source,
		version: make(map[gridpos.Position]uint64),
	}
}

// Populate seeds the queue with every given position at its current entropy.
func (q *EntropyQueue) Populate(positions []gridpos.Position) {
	q.heap = make(entropyHeap, 0, len(positions))
	q.version = make(map[gridpos.Position]uint64, len(positions))
	q.live = 0
	for _, p := range positions {
		q.version[p] = 1
		q.live++
		heap.Push(&q.heap, &entropyItem{pos: p, entropy: q.source.Entropy(p), version: 1})
	}
	heap.Init(&q.heap)
}

// Update re-reads p's entropy and pushes a fresh heap entry for it,
// invalidating any entry previously pushed for p.
func (q *EntropyQueue) Update(p gridpos.Position) {
	if _, tracked := q.version[p]; !tracked {
		return
	}
	q.version[p]++
	heap.Push(&q.heap, &entropyItem{pos: p, entropy: q.source.Entropy(p), version: q.version[p]})
}

// Pop returns the minimum-entropy live position, discarding stale entries.
func (q *EntropyQueue) Pop() (gridpos.Position, bool) {
	for q.heap.Len() > 0 {
		item := heap.Pop(&q.heap).(*entropyItem)
		if item.version != q.version[item.pos] {
			continue // superseded by a later Update
		}
		delete(q.version, item.pos)
		q.live--
		return item.pos, true
	}
	return gridpos.Position{}, false
}

// Len returns the number of live (non-stale) positions left to pop.
func (q *EntropyQueue) Len() int { return q.live }

// IsEmpty reports whether no live positions remain.
func (q *EntropyQueue) IsEmpty() bool { return q.live == 0 }

// Propagating always returns true for EntropyQueue.
func (q *EntropyQueue) Propagating() bool { return true }

// entropyItem is one heap entry: a position's entropy as of the version it
// was pushed under.
type entropyItem struct {
	pos     gridpos.Position
	entropy float64
	version uint64
}

// entropyHeap orders by entropy ascending, then by row-major position for a
// deterministic tie-break (spec.md §4.7).
type entropyHeap []*entropyItem

func (h entropyHeap) Len() int { return len(h) }

func (h entropyHeap) Less(i, j int) bool {
	if h[i].entropy != h[j].entropy {
		return h[i].entropy < h[j].entropy
	}
	a, b := h[i].pos, h[j].pos
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func (h entropyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entropyHeap) Push(x interface{}) { *h = append(*h, x.(*entropyItem)) }

func (h *entropyHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
