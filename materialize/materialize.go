package materialize

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wavecollapse/gridpos"
)

// CheckMissing reports an *ErrMissingCoverage naming every distinct id in
// grid that builder cannot produce, or nil if builder covers the grid
// completely. Materialize always runs this before building anything, so a
// coverage gap fails fast rather than partway through a large grid.
func CheckMissing[T any](grid *gridpos.CollapsedGrid, builder Builder[T]) error {
	supported := make(map[uint64]struct{}, len(builder.Tids()))
	for _, id := range builder.Tids() {
		supported[id] = struct{}{}
	}

	var missing []uint64
	for _, id := range grid.DistinctTids() {
		if _, ok := supported[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return &ErrMissingCoverage{Missing: missing}
	}
	return nil
}

// Materialize converts every occupied position in grid into a T via
// builder, after first validating full coverage with CheckMissing. Build
// errors are wrapped with the offending position.
func Materialize[T any](grid *gridpos.CollapsedGrid, builder Builder[T]) (map[gridpos.Position]T, error) {
	if err := CheckMissing(grid, builder); err != nil {
		return nil, err
	}

	out := make(map[gridpos.Position]T, grid.Len())
	for _, pos := range grid.Positions() {
		id, _ := grid.Get(pos)
		v, err := builder.Build(id)
		if err != nil {
			return nil, fmt.Errorf("materialize: building %v: %w", pos, err)
		}
		out[pos] = v
	}
	return out, nil
}
