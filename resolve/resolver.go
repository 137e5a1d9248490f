package resolve

import (
	"github.com/katalvlaran/wavecollapse/cellgrid"
	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/option"
	"github.com/katalvlaran/wavecollapse/propagate"
	"github.com/katalvlaran/wavecollapse/queue"
	"github.com/katalvlaran/wavecollapse/rng"
)

// Resolver runs the constraint-collapse algorithm of spec.md §4.8 against a
// fixed Size and option.Index. A Resolver holds no per-run state itself —
// Generate builds a fresh cellgrid.Grid on every call — so one Resolver may
// be reused across many runs, which RetryWithSeeds relies on.
type Resolver struct {
	size gridpos.Size
	idx  *option.Index
	opts Options
}

// New constructs a Resolver for the given grid Size and option.Index.
func New(size gridpos.Size, idx *option.Index, opts ...Option) *Resolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Resolver{size: size, idx: idx, opts: o}
}

// Run builds an rng.Source from the seed given at construction time (via
// WithSeed) and calls Generate. Use Generate directly to supply an explicit
// source, as RetryWithSeeds does.
func (r *Resolver) Run() (*gridpos.CollapsedGrid, error) {
	return r.Generate(rng.New(r.opts.seed))
}

// Generate runs one full resolution against src, per spec.md §4.8:
//
//  1. Build the grid, apply the pre-seed, and check it for direct
//     adjacency contradictions the propagator cannot see on its own.
//  2. Cascade the pre-seed's eliminations to fixpoint.
//  3. Repeatedly pop a position from the configured queue, reconcile it
//     against its neighbors (non-propagating queue) or trust the running
//     enabler counts (propagating queue), weighted-randomly choose among
//     its live options, collapse it, and notify the subscriber.
//  4. Under the entropy queue, cascade the collapse's eliminations to
//     fixpoint before the next pop.
//
// Returns the collapsed grid's external ids, or a *CollapseError naming the
// phase, position, and iteration a contradiction was found at.
func (r *Resolver) Generate(src rng.Source) (*gridpos.CollapsedGrid, error) {
	var entropySource rng.Source
	if r.opts.kind == entropyQueueKind {
		entropySource = src
	}
	grid := cellgrid.NewEmpty(r.size, r.idx, entropySource)

	if r.opts.preSeed != nil {
		if err := grid.PopulateFromCollapsed(r.opts.preSeed); err != nil {
			return nil, &CollapseError{Phase: PhaseInit, Err: err}
		}
		if pos, ok := firstAdjacencyContradiction(grid); ok {
			return nil, &CollapseError{Phase: PhaseInit, Position: pos, Err: ErrSeedAdjacencyContradiction}
		}
	}

	seedProp := propagate.New()
	seedProp.SeedFromPreCollapsed(grid)
	if err := seedProp.Run(grid, nil); err != nil {
		pos := gridpos.Position{}
		if ce, ok := err.(*propagate.ContradictionError); ok {
			pos = ce.Pos
		}
		return nil, &CollapseError{Phase: PhaseInit, Position: pos, Err: err}
	}

	q := r.buildQueue(grid)
	if r.opts.subscriber != nil {
		r.opts.subscriber.OnStart(r.size)
		for _, pos := range grid.AllPositions() {
			if chosen, ok := grid.At(pos).CollapsedOption(); ok {
				r.opts.subscriber.OnCollapse(pos, r.idx.ExternalID(chosen))
			}
		}
	}

	iter := 0
	for !q.IsEmpty() {
		iter++
		pos, ok := q.Pop()
		if !ok {
			break
		}
		cell := grid.At(pos)
		if cell.IsCollapsed() {
			continue
		}

		if !q.Propagating() {
			if grid.ReconcileAgainstNeighbors(pos) {
				return nil, &CollapseError{Phase: PhaseCollapse, Position: pos, Iter: iter, Err: ErrContradiction}
			}
		}

		live := cell.LiveOptions()
		if len(live) == 0 {
			return nil, &CollapseError{Phase: PhaseCollapse, Position: pos, Iter: iter, Err: ErrContradiction}
		}

		chosen := weightedChoice(grid.Index(), cell, live, src)
		cell.Collapse(chosen)
		if r.opts.subscriber != nil {
			r.opts.subscriber.OnCollapse(pos, r.idx.ExternalID(chosen))
		}

		if q.Propagating() {
			p := propagate.New()
			for _, i := range live {
				if i == chosen {
					continue
				}
				p.Push(propagate.Item{Pos: pos, Removed: i})
			}
			if err := p.Run(grid, func(npos gridpos.Position) { q.Update(npos) }); err != nil {
				ppos := pos
				if ce, ok := err.(*propagate.ContradictionError); ok {
					ppos = ce.Pos
				}
				return nil, &CollapseError{Phase: PhasePropagation, Position: ppos, Iter: iter, Err: err}
			}
		}
	}

	return grid.ToCollapsed(), nil
}

// buildQueue constructs and populates the configured Queue over every
// uncollapsed position left after pre-seeding.
func (r *Resolver) buildQueue(grid *cellgrid.Grid) queue.Queue {
	positions := grid.UncollapsedPositions()
	var q queue.Queue
	if r.opts.kind == positionQueueKind {
		q = queue.NewPositionQueue(r.opts.corner, r.opts.axis)
	} else {
		q = queue.NewEntropyQueue(gridEntropySource{grid})
	}
	q.Populate(positions)
	return q
}

// gridEntropySource adapts cellgrid.Grid to queue.EntropySource.
type gridEntropySource struct {
	grid *cellgrid.Grid
}

func (s gridEntropySource) Entropy(p gridpos.Position) float64 {
	return s.grid.At(p).Entropy()
}

// weightedChoice draws uniformly over [0, weightSum) and returns the first
// live option whose cumulative weight exceeds the draw, per spec.md §4.8's
// weighted-random selection rule.
func weightedChoice(idx *option.Index, cell *cellgrid.CellState, live []int, src rng.Source) int {
	draw := src.Intn(int(cell.WeightSum()))
	acc := 0
	for _, i := range live {
		acc += int(idx.Weight(i))
		if draw < acc {
			return i
		}
	}
	return live[len(live)-1]
}

// firstAdjacencyContradiction scans every pre-collapsed cell against its
// collapsed neighbors for a direct incompatibility: a case
// propagate.Propagator never checks, since it only ever compares a removed
// option against a live (uncollapsed) neighbor.
func firstAdjacencyContradiction(grid *cellgrid.Grid) (gridpos.Position, bool) {
	for _, pos := range grid.AllPositions() {
		cell := grid.At(pos)
		chosen, ok := cell.CollapsedOption()
		if !ok {
			continue
		}
		for _, dir := range gridpos.AllDirections {
			neighbor, _, ok := grid.Neighbor(pos, dir)
			if !ok {
				continue
			}
			nchosen, ok := neighbor.CollapsedOption()
			if !ok {
				continue
			}
			if !containsInt(grid.Index().Enabled(chosen, dir), nchosen) {
				return pos, true
			}
		}
	}
	return gridpos.Position{}, false
}

func containsInt(sorted []int, v int) bool {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(sorted) && sorted[lo] == v
}
