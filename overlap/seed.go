package overlap

import (
	"fmt"

	"github.com/katalvlaran/wavecollapse/gridpos"
)

// ErrSeedContradiction reports that no pattern in the set has a window
// agreeing with every pre-seeded tile it overlaps when anchored at Pos.
type ErrSeedContradiction struct {
	Pos gridpos.Position
}

func (e *ErrSeedContradiction) Error() string {
	return fmt.Sprintf("overlap: no pattern agrees with pre-seed at %v", e.Pos)
}

// AgreesWith reports whether every cell of p's window, when anchored at
// anchor, matches the tid already recorded in tidSeed at that cell —
// wherever tidSeed has an entry there at all. Cells tidSeed leaves empty
// are not constraints. This is the "full cross-window agreement" compatibility
// spec.md §4.6/§9 calls for, not an anchor-tid-only check.
func (p Pattern) AgreesWith(tidSeed *gridpos.CollapsedGrid, anchor gridpos.Position) bool {
	for y := 0; y < p.Shape.H; y++ {
		for x := 0; x < p.Shape.W; x++ {
			pos := gridpos.At(anchor.X+x, anchor.Y+y)
			tid, ok := tidSeed.Get(pos)
			if !ok {
				continue
			}
			if p.at(x, y) != tid {
				return false
			}
		}
	}
	return true
}

// SeedFromTidGrid converts a sparse pre-seed expressed in tids into a
// pre-seed expressed in pids over the pattern set's anchor grid (spec.md
// §4.6's retrieval/pre-seed requirement): for every anchor position, it
// keeps only the patterns whose window, anchored there, agrees with every
// pre-seeded tile it overlaps (cells tidSeed leaves empty impose no
// constraint, per Pattern.AgreesWith).
//
// An anchor position collapses to a pid only when exactly one pattern
// survives the filter; zero surviving patterns at an anchor some seeded tile
// actually overlaps is a contradiction, reported as *ErrSeedContradiction.
// More than one surviving pattern — including every pattern, when no seeded
// tile overlaps that anchor at all — leaves the position unseeded in the
// returned grid, for the normal resolver run to narrow down during
// propagation instead.
func SeedFromTidGrid(tidSeed *gridpos.CollapsedGrid, patterns *PatternSet) (*gridpos.CollapsedGrid, error) {
	anchorSize, err := patterns.AnchorGridSize(tidSeed.Size())
	if err != nil {
		return nil, err
	}
	pidSeed := gridpos.NewCollapsedGrid(anchorSize)
	pids := patterns.Pids()

	for _, anchor := range anchorSize.Positions() {
		var candidates []uint64
		for _, pid := range pids {
			pattern := patterns.byID[pid]
			if pattern.AgreesWith(tidSeed, anchor) {
				candidates = append(candidates, pid)
			}
		}
		switch len(candidates) {
		case 0:
			return nil, &ErrSeedContradiction{Pos: anchor}
		case 1:
			if err := pidSeed.Insert(anchor, candidates[0]); err != nil {
				return nil, err
			}
		default:
			// Ambiguous, or no pre-seeded tile overlaps this anchor at all:
			// leave unseeded, let normal resolution narrow it down.
		}
	}
	return pidSeed, nil
}
