package resolve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wavecollapse/gridpos"
)

// Phase names which stage of a run a CollapseError occurred in.
type Phase int

const (
	// PhaseInit covers pre-seed validation and seed propagation, before any
	// selection has taken place.
	PhaseInit Phase = iota
	// PhaseCollapse covers the weighted-random choice and the non-propagating
	// queue's local reconcile step.
	PhaseCollapse
	// PhasePropagation covers the post-collapse cascade under a propagating
	// (entropy) queue.
	PhasePropagation
)

// String renders a Phase for error messages.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseCollapse:
		return "collapse"
	case PhasePropagation:
		return "propagation"
	default:
		return "phase(?)"
	}
}

// ErrSeedAdjacencyContradiction indicates two directly-adjacent
// pre-collapsed cells are mutually incompatible: a conflict propagate.Propagator
// cannot detect on its own, since it never compares two collapsed cells.
var ErrSeedAdjacencyContradiction = errors.New("resolve: pre-seeded cells are mutually incompatible")

// ErrContradiction indicates a cell reached zero live options outside of a
// propagate.Propagator cascade: either the non-propagating queue's
// ReconcileAgainstNeighbors step, or the main loop finding an
// already-emptied cell at pop time.
var ErrContradiction = errors.New("resolve: cell has no remaining live options")

// CollapseError reports the phase, position, and iteration a run failed at.
// Err is the underlying cause: a *propagate.ContradictionError, one of
// cellgrid's sentinel errors, ErrSeedAdjacencyContradiction, or
// ErrContradiction.
type CollapseError struct {
	Phase    Phase
	Position gridpos.Position
	Iter     int
	Err      error
}

func (e *CollapseError) Error() string {
	return fmt.Sprintf("resolve: %s phase failed at iter %d (pos %v): %v", e.Phase, e.Iter, e.Position, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/errors.As.
func (e *CollapseError) Unwrap() error { return e.Err }
