package propagate_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/cellgrid"
	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/option"
	"github.com/katalvlaran/wavecollapse/propagate"
	"github.com/katalvlaran/wavecollapse/rules"
)

// BenchmarkPropagatorCascadeRow measures the cost of cascading a single
// pre-seed across a 1x200 successor-ring row, the worst case for this
// direction (every cell narrows exactly one option per step).
// Complexity: O(W) options eliminated, one frontier pop per elimination.
func BenchmarkPropagatorCascadeRow(b *testing.B) {
	const n = 200

	freq := rules.NewFrequencyTable()
	freq.Set(1, 1)
	freq.Set(2, 1)
	freq.Set(3, 1)

	adj := rules.NewAdjacencyTable()
	adj.AddSymmetric(1, gridpos.Right, 2)
	adj.AddSymmetric(2, gridpos.Right, 3)
	adj.AddSymmetric(3, gridpos.Right, 1)
	adj.AddSymmetric(1, gridpos.Down, 1)
	adj.AddSymmetric(2, gridpos.Down, 2)
	adj.AddSymmetric(3, gridpos.Down, 3)

	idx, err := option.Build(freq, adj)
	if err != nil {
		b.Fatalf("setup option.Build failed: %v", err)
	}
	size := gridpos.NewSize(n, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		grid := cellgrid.NewEmpty(size, idx, nil)
		grid.At(gridpos.At(0, 0)).Collapse(0)
		p := propagate.New()
		p.SeedFromPreCollapsed(grid)
		b.StartTimer()

		if err := p.Run(grid, nil); err != nil {
			b.Fatalf("unexpected contradiction: %v", err)
		}
	}
}
