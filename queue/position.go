package queue

import (
	"sort"

	"github.com/katalvlaran/wavecollapse/gridpos"
)

// Corner picks which edge of the grid the position queue starts from.
type Corner int

const (
	UpLeft Corner = iota
	UpRight
	DownLeft
	DownRight
)

// Axis picks whether rows or columns form the primary sort key.
type Axis int

const (
	Rowwise Axis = iota
	Columnwise
)

// PositionQueue visits cells in the fixed (Corner, Axis) total order of
// spec.md §4.7: Z-layer outermost, then the chosen axis as primary key, with
// each axis's direction flipped according to the corner. It never
// propagates — the resolver must call cellgrid.Grid.ReconcileAgainstNeighbors
// before collapsing each position it pops.
type PositionQueue struct {
	corner Corner
	axis   Axis

	order []gridpos.Position
	next  int
}

// NewPositionQueue constructs an empty PositionQueue with the given corner
// and axis. Call Populate before use.
func NewPositionQueue(corner Corner, axis Axis) *PositionQueue {
	return &PositionQueue{corner: corner, axis: axis}
}

func (q *PositionQueue) less(a, b gridpos.Position) bool {
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	ax, ay := a.X, a.Y
	bx, by := b.X, b.Y
	switch q.corner {
	case UpRight:
		ax, bx = -ax, -bx
	case DownLeft:
		ay, by = -ay, -by
	case DownRight:
		ax, bx = -ax, -bx
		ay, by = -ay, -by
	}
	if q.axis == Rowwise {
		if ay != by {
			return ay < by
		}
		return ax < bx
	}
	if ax != bx {
		return ax < bx
	}
	return ay < by
}

// Populate sorts positions into this queue's total order. Any prior content
// is discarded.
func (q *PositionQueue) Populate(positions []gridpos.Position) {
	q.order = append([]gridpos.Position(nil), positions...)
	sort.Slice(q.order, func(i, j int) bool { return q.less(q.order[i], q.order[j]) })
	q.next = 0
}

// Update is a no-op: position order does not depend on possibility state.
func (q *PositionQueue) Update(gridpos.Position) {}

// Pop returns the next position in fixed order.
func (q *PositionQueue) Pop() (gridpos.Position, bool) {
	if q.next >= len(q.order) {
		return gridpos.Position{}, false
	}
	p := q.order[q.next]
	q.next++
	return p, true
}

// Len returns the number of positions not yet popped.
func (q *PositionQueue) Len() int { return len(q.order) - q.next }

// IsEmpty reports whether every position has been popped.
func (q *PositionQueue) IsEmpty() bool { return q.Len() == 0 }

// Propagating always returns false for PositionQueue.
func (q *PositionQueue) Propagating() bool { return false }
