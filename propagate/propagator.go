package propagate

import (
	"fmt"

	"github.com/katalvlaran/wavecollapse/cellgrid"
	"github.com/katalvlaran/wavecollapse/gridpos"
)

// Item is a pending elimination: option Removed was just eliminated at
// Pos, and its effect on Pos's neighbors has not yet been applied.
type Item struct {
	Pos     gridpos.Position
	Removed int
}

// ContradictionError reports that propagation emptied a cell's possibility
// set before it was ever collapsed (spec.md invariant I5). The resolver
// wraps this with the run's phase and iteration count at the boundary.
type ContradictionError struct {
	Pos gridpos.Position
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("propagate: contradiction at %v", e.Pos)
}

// Propagator cascades the effect of eliminations across neighbors until its
// frontier is empty, per spec.md §4.5. It holds no reference to a grid
// between calls to Run; a single Propagator may be reused across many runs
// by simply pushing fresh items.
type Propagator struct {
	frontier []Item
}

// New returns an empty Propagator.
func New() *Propagator {
	return &Propagator{}
}

// Push enqueues item onto the propagation frontier.
func (p *Propagator) Push(item Item) {
	p.frontier = append(p.frontier, item)
}

// Len returns the number of pending items.
func (p *Propagator) Len() int { return len(p.frontier) }

// Run drains the frontier: for every (pos, removed) item, it decrements the
// enabler count that removed option contributed to each live, uncollapsed
// neighbor, cascading further removals onto the frontier as they occur. It
// stops at the first contradiction (spec.md §7's "short-circuits on first
// contradiction" policy), leaving the frontier and grid state undefined —
// callers must discard the grid on error.
//
// onChanged, if non-nil, is invoked once per (position, direction pass)
// where at least one option was removed, so a caller (typically a
// queue.Queue) can re-prioritize that position. It may be called more than
// once for the same position across a single Run.
func (p *Propagator) Run(grid *cellgrid.Grid, onChanged func(gridpos.Position)) error {
	for len(p.frontier) > 0 {
		item := p.frontier[len(p.frontier)-1]
		p.frontier = p.frontier[:len(p.frontier)-1]

		for _, d := range gridpos.AllDirections {
			neighbor, npos, ok := grid.Neighbor(item.Pos, d.Opposite())
			if !ok || neighbor.IsCollapsed() {
				continue
			}
			// j ranges over the options for which item.Removed was a
			// counted enabler at neighbor's ways[j][d]: by the
			// compatibility invariant (spec.md §3), j ∈ enabled[o][d] ⇔
			// o ∈ enabled[j][opposite(d)], so the set we want is
			// enabled[o][opposite(d)], not enabled[o][d].
			changed := false
			for _, j := range grid.Index().Enabled(item.Removed, d.Opposite()) {
				if !neighbor.IsAlive(j) {
					continue
				}
				if neighbor.DecrementWays(j, d) {
					if neighbor.InContradiction() {
						return &ContradictionError{Pos: npos}
					}
					p.frontier = append(p.frontier, Item{Pos: npos, Removed: j})
					changed = true
				}
			}
			if changed && onChanged != nil {
				onChanged(npos)
			}
		}
	}
	return nil
}

// SeedFromPreCollapsed enqueues, for every pre-collapsed cell in grid,
// every option other than its fixed choice — the "not-me" removals spec.md
// §4.5 describes seeding the propagator with so that neighbors reflect the
// pre-seed constraints before any selection begins. Call Run immediately
// after to cascade them.
func (p *Propagator) SeedFromPreCollapsed(grid *cellgrid.Grid) {
	for _, pos := range grid.AllPositions() {
		cell := grid.At(pos)
		chosen, ok := cell.CollapsedOption()
		if !ok {
			continue
		}
		for i := 0; i < grid.Index().Len(); i++ {
			if i == chosen {
				continue
			}
			p.Push(Item{Pos: pos, Removed: i})
		}
	}
}
