package cellgrid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/option"
	"github.com/katalvlaran/wavecollapse/rng"
)

// Sentinel errors for the cellgrid package.
var (
	// ErrMissingIDs indicates a pre-seed referenced a tid/pid absent from
	// the option index.
	ErrMissingIDs = errors.New("cellgrid: pre-seed references ids absent from the option index")
	// ErrSizeMismatch indicates a pre-seed grid's Size disagrees with the
	// Grid being populated.
	ErrSizeMismatch = errors.New("cellgrid: source and destination sizes differ")
)

// Grid is a dense Size-shaped array of CellState, plus the option.Index the
// run was built from. It is exclusively owned by the resolver running
// against it (spec.md §5).
type Grid struct {
	size  gridpos.Size
	index *option.Index
	cells map[gridpos.Position]*CellState
}

// NewEmpty constructs a Grid of the given size with every cell uncollapsed,
// initialized from idx. source supplies the per-cell entropy-noise draw
// (pass nil for non-entropy queues, where it is fixed at 0).
func NewEmpty(size gridpos.Size, idx *option.Index, source rng.Source) *Grid {
	g := &Grid{
		size:  size,
		index: idx,
		cells: make(map[gridpos.Position]*CellState, size.Area()),
	}
	for _, p := range size.Positions() {
		g.cells[p] = NewUncollapsed(idx, source)
	}
	return g
}

// Size returns the grid's dimensions.
func (g *Grid) Size() gridpos.Size { return g.size }

// Index returns the option.Index this grid was built from.
func (g *Grid) Index() *option.Index { return g.index }

// At returns the CellState at p, or nil if p is out of bounds.
func (g *Grid) At(p gridpos.Position) *CellState { return g.cells[p] }

// Neighbor returns the CellState adjacent to p in direction dir, and
// whether it exists (false at the boundary).
func (g *Grid) Neighbor(p gridpos.Position, dir gridpos.Direction) (*CellState, gridpos.Position, bool) {
	np, ok := g.size.Step(p, dir)
	if !ok {
		return nil, np, false
	}
	return g.cells[np], np, true
}

// PopulateFromCollapsed pre-collapses every position present in src,
// overwriting the corresponding uncollapsed cells. Returns ErrSizeMismatch
// if src's Size differs from g's, and ErrMissingIDs if src references a tid
// absent from the option index.
func (g *Grid) PopulateFromCollapsed(src *gridpos.CollapsedGrid) error {
	if src.Size() != g.size {
		return fmt.Errorf("%w: src=%v dst=%v", ErrSizeMismatch, src.Size(), g.size)
	}
	var missing []uint64
	for _, p := range src.Positions() {
		tid, _ := src.Get(p)
		if _, ok := g.index.IndexOf(tid); !ok {
			missing = append(missing, tid)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingIDs, missing)
	}
	for _, p := range src.Positions() {
		tid, _ := src.Get(p)
		i, _ := g.index.IndexOf(tid)
		g.cells[p] = NewCollapsed(g.index, i)
	}
	return nil
}

// AllPositions returns every position in the grid, row-major.
func (g *Grid) AllPositions() []gridpos.Position { return g.size.Positions() }

// UncollapsedPositions returns every position not yet fixed to a choice.
func (g *Grid) UncollapsedPositions() []gridpos.Position {
	all := g.size.Positions()
	out := make([]gridpos.Position, 0, len(all))
	for _, p := range all {
		if !g.cells[p].IsCollapsed() {
			out = append(out, p)
		}
	}
	return out
}

// ReconcileAgainstNeighbors prunes p's live options against the current
// possibility sets of its four neighbors: an option survives only if, in
// each direction, at least one enabler remains in that neighbor. This
// implements the non-propagating queue's "local reconcile then collapse"
// step (spec.md §4.5): the position queue does not cascade eliminations
// beyond a cell's direct neighbors, so this check stands in for the
// enabler-count bookkeeping a propagating run would already have done.
//
// Returns true if p's possibility set became empty (a contradiction).
func (g *Grid) ReconcileAgainstNeighbors(p gridpos.Position) (contradiction bool) {
	cell := g.cells[p]
	if cell.IsCollapsed() {
		return false
	}
	for _, i := range cell.LiveOptions() {
		for _, dir := range gridpos.AllDirections {
			neighbor, _, ok := g.Neighbor(p, dir)
			if !ok {
				continue
			}
			if neighbor.IsCollapsed() {
				ni, _ := neighbor.CollapsedOption()
				if !containsInt(g.index.Enabled(i, dir), ni) {
					cell.RemoveOption(i)
				}
				continue
			}
			if !anyLiveEnabled(neighbor, g.index.Enabled(i, dir)) {
				cell.RemoveOption(i)
			}
		}
	}
	return cell.InContradiction()
}

func anyLiveEnabled(neighbor *CellState, enabled []int) bool {
	for _, j := range enabled {
		if neighbor.IsAlive(j) {
			return true
		}
	}
	return false
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

// ToCollapsed materializes the grid's collapsed cells into a CollapsedGrid
// of external ids. Uncollapsed cells are simply absent (gaps are allowed,
// per spec.md §3).
func (g *Grid) ToCollapsed() *gridpos.CollapsedGrid {
	out := gridpos.NewCollapsedGrid(g.size)
	for _, p := range g.size.Positions() {
		cell := g.cells[p]
		if i, ok := cell.CollapsedOption(); ok {
			_ = out.Insert(p, g.index.ExternalID(i))
		}
	}
	return out
}
