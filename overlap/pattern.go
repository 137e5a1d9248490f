package overlap

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/rules"
)

// ErrWindowTooLarge indicates a pattern shape that does not fit inside any
// sample grid at all.
var ErrWindowTooLarge = errors.New("overlap: pattern shape does not fit any sample")

// Pattern is a fixed-shape window of tids, identified by a hash of its
// contents (spec.md §4.6). Two patterns with the same contents always
// produce the same pid, so repeated windows across samples collapse onto
// one Pattern with an accumulated frequency.
type Pattern struct {
	ID    uint64
	Shape gridpos.Size
	Tiles []uint64 // row-major, len == Shape.W*Shape.H
}

// at returns the tid at local (x, y) within the pattern's window.
func (p Pattern) at(x, y int) uint64 {
	return p.Tiles[y*p.Shape.W+x]
}

// AnchorTid returns the tid at the window's local origin. ToTidGrid does not
// use it: it paints each anchor's whole window instead.
func (p Pattern) AnchorTid() uint64 {
	return p.Tiles[0]
}

func hashWindow(tiles []uint64) uint64 {
	buf := make([]byte, 8*len(tiles))
	for i, tid := range tiles {
		binary.LittleEndian.PutUint64(buf[i*8:], tid)
	}
	return xxhash.Sum64(buf)
}

// PatternSet is the result of Extract: every distinct pattern observed
// across the sample grids, plus its accumulated frequency.
type PatternSet struct {
	shape gridpos.Size
	byID  map[uint64]Pattern
	freq  *rules.FrequencyTable
}

// Shape returns the window shape patterns in this set share.
func (s *PatternSet) Shape() gridpos.Size { return s.shape }

// Pattern returns the pattern for pid, and whether it exists.
func (s *PatternSet) Pattern(pid uint64) (Pattern, bool) {
	p, ok := s.byID[pid]
	return p, ok
}

// Frequency returns the pid-keyed weight table, ready to feed option.Build.
func (s *PatternSet) Frequency() *rules.FrequencyTable { return s.freq }

// Pids returns every distinct pattern id observed, in the FrequencyTable's
// deterministic sorted order.
func (s *PatternSet) Pids() []uint64 { return s.freq.Tids() }

// AnchorGridSize returns the shape of the grid that resolve.Resolver must
// run over to fill an outSize tid grid with this pattern set: one anchor
// position per distinct window offset a shape-sized pattern can occupy
// inside outSize. A pattern can only anchor where its full window still
// fits, so the anchor grid is outSize shrunk by Shape-1 in each axis
// (grid_forge's OverlappingPatternGrid::generate_pattern_positions border
// check, applied to the output grid instead of a sample). Returns
// ErrWindowTooLarge if the shape does not fit inside outSize at all.
func (s *PatternSet) AnchorGridSize(outSize gridpos.Size) (gridpos.Size, error) {
	w := outSize.W - s.shape.W + 1
	h := outSize.H - s.shape.H + 1
	if w <= 0 || h <= 0 {
		return gridpos.Size{}, ErrWindowTooLarge
	}
	return gridpos.NewSize(w, h), nil
}

// Extract scans every sample grid for each anchor position where a
// shape-sized window fits entirely within the grid and every cell in it is
// present, records the window's contents as a Pattern keyed by its content
// hash, and increments that pattern's frequency (spec.md §4.6 "Extraction").
func Extract(shape gridpos.Size, samples ...*gridpos.CollapsedGrid) (*PatternSet, error) {
	if !shape.Valid() {
		return nil, gridpos.ErrEmptySize
	}
	if len(samples) == 0 {
		return nil, rules.ErrNoSamples
	}

	set := &PatternSet{
		shape: shape,
		byID:  make(map[uint64]Pattern),
		freq:  rules.NewFrequencyTable(),
	}

	fit := false
	for _, sample := range samples {
		size := sample.Size()
		if shape.W > size.W || shape.H > size.H {
			continue
		}
		for ay := 0; ay+shape.H <= size.H; ay++ {
			for ax := 0; ax+shape.W <= size.W; ax++ {
				tiles, ok := window(sample, shape, ax, ay)
				if !ok {
					continue
				}
				fit = true
				pid := hashWindow(tiles)
				if _, seen := set.byID[pid]; !seen {
					set.byID[pid] = Pattern{ID: pid, Shape: shape, Tiles: tiles}
				}
				set.freq.Add(pid, 1)
			}
		}
	}
	if !fit {
		return nil, ErrWindowTooLarge
	}
	return set, nil
}

// window reads the shape-sized block anchored at (ax, ay) out of sample,
// row-major, returning ok=false if any cell in the block is absent.
func window(sample *gridpos.CollapsedGrid, shape gridpos.Size, ax, ay int) ([]uint64, bool) {
	tiles := make([]uint64, 0, shape.Area())
	for y := 0; y < shape.H; y++ {
		for x := 0; x < shape.W; x++ {
			tid, ok := sample.Get(gridpos.At(ax+x, ay+y))
			if !ok {
				return nil, false
			}
			tiles = append(tiles, tid)
		}
	}
	return tiles, true
}

// Compatible reports whether b may sit in direction dir relative to a: the
// region of a's window that overlaps b's window once b is shifted one cell
// in dir must agree cell-by-cell (spec.md §4.6 "Compatibility predicate").
// For a 1x1 shape the overlap is always empty in every direction, so every
// pair is trivially compatible — the degenerate case spec.md calls out.
func Compatible(a, b Pattern, dir gridpos.Direction) bool {
	w, h := a.Shape.W, a.Shape.H
	switch dir {
	case gridpos.Right:
		for y := 0; y < h; y++ {
			for x := 1; x < w; x++ {
				if a.at(x, y) != b.at(x-1, y) {
					return false
				}
			}
		}
	case gridpos.Left:
		for y := 0; y < h; y++ {
			for x := 0; x < w-1; x++ {
				if a.at(x, y) != b.at(x+1, y) {
					return false
				}
			}
		}
	case gridpos.Down:
		for y := 1; y < h; y++ {
			for x := 0; x < w; x++ {
				if a.at(x, y) != b.at(x, y-1) {
					return false
				}
			}
		}
	case gridpos.Up:
		for y := 0; y < h-1; y++ {
			for x := 0; x < w; x++ {
				if a.at(x, y) != b.at(x, y+1) {
					return false
				}
			}
		}
	}
	return true
}

// BuildAdjacency computes Compatible across every ordered pair of patterns
// in the set and every direction, returning a pid-keyed rules.AdjacencyTable
// ready to feed option.Build exactly like a tid-keyed one.
func (s *PatternSet) BuildAdjacency() *rules.AdjacencyTable {
	pids := s.Pids()
	adj := rules.NewAdjacencyTable()
	for _, pa := range pids {
		a := s.byID[pa]
		for _, pb := range pids {
			b := s.byID[pb]
			for _, dir := range gridpos.AllDirections {
				if Compatible(a, b, dir) {
					adj.Add(pa, dir, pb)
				}
			}
		}
	}
	return adj
}

// ToTidGrid converts a resolved pid grid back to a tid grid by painting each
// occupied anchor position's full pattern window onto the output (spec.md
// §4.6 "Retrieval"; grid_forge's OverlappingPatternGrid::from_map, minus the
// WithPattern/OnlyId split: here every output cell is covered by at least
// one anchor's window by construction of AnchorGridSize, so there is no
// border cell left over to carry as OnlyId). pidGrid is expected to be sized
// like an AnchorGridSize result; the returned grid is sized
// pidGrid.Size()+Shape-1 in each axis. Adjacent anchors are guaranteed to
// agree on their shared cells by Compatible, but anchors that overlap
// diagonally are not checked by BuildAdjacency, so a genuine disagreement
// there is reported as an error rather than silently overwritten.
func (s *PatternSet) ToTidGrid(pidGrid *gridpos.CollapsedGrid) (*gridpos.CollapsedGrid, error) {
	anchorSize := pidGrid.Size()
	outSize := gridpos.NewSize(anchorSize.W+s.shape.W-1, anchorSize.H+s.shape.H-1)
	out := gridpos.NewCollapsedGrid(outSize)
	for _, anchor := range pidGrid.Positions() {
		pid, _ := pidGrid.Get(anchor)
		pattern, ok := s.byID[pid]
		if !ok {
			return nil, fmt.Errorf("overlap: unknown pattern id %d at %v", pid, anchor)
		}
		for dy := 0; dy < s.shape.H; dy++ {
			for dx := 0; dx < s.shape.W; dx++ {
				pos := gridpos.At(anchor.X+dx, anchor.Y+dy)
				tid := pattern.at(dx, dy)
				if existing, ok := out.Get(pos); ok {
					if existing != tid {
						return nil, fmt.Errorf("overlap: conflicting tid at %v: %d vs %d", pos, existing, tid)
					}
					continue
				}
				if err := out.Insert(pos, tid); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}
