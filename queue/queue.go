package queue

import "github.com/katalvlaran/wavecollapse/gridpos"

// Queue is the selection policy the resolver drives, per spec.md §4.7. Both
// PositionQueue and EntropyQueue implement it.
type Queue interface {
	// Populate seeds the queue with every not-yet-collapsed position.
	Populate(positions []gridpos.Position)
	// Update re-prioritizes p after its weight state changed. Queues that
	// ignore weight (PositionQueue) may implement this as a no-op.
	Update(p gridpos.Position)
	// Pop returns the next position to collapse and true, or the zero
	// Position and false if the queue is empty.
	Pop() (gridpos.Position, bool)
	// Len reports the number of live entries.
	Len() int
	// IsEmpty reports whether the queue has no positions left to visit.
	IsEmpty() bool
	// Propagating reports whether the resolver must run the propagator to
	// fixpoint after every collapse (true for EntropyQueue, false for
	// PositionQueue, which relies on pre-collapse local reconcile instead).
	Propagating() bool
}
