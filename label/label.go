// Package label implements 6-connected connected-component labeling
// over a voxelgrid.Matrix: a two-pass algorithm over a disjoint-set of
// provisional labels, producing a dense Label matrix plus a Label->T
// map of each component's source value.
//
// What & Why:
//
//	The first pass assigns a provisional label to every non-empty cell
//	by looking only at its three already-visited back-neighbors
//	(-x, -y, -z), unioning labels that turn out to belong to the same
//	component. The second pass compacts the resulting disjoint forest
//	into a dense range 1..=K, rewriting the matrix and rebuilding the
//	value map. This is the textbook two-pass union-find labeling
//	algorithm, generalized from 4- to 6-connectivity.
//
// Complexity:
//
//	O(volume * alpha(volume)) time, O(volume) memory, where alpha is the
//	inverse Ackermann function from the disjoint-set's path compression.
package label

import (
	"github.com/hashalon/logic-circuit/voxelgrid"
)

// Label identifies a 6-connected component. 0 means "empty". After
// Label6 returns, labels form a dense range 1..=K.
type Label uint32

// IsEmpty is a predicate over source cell values: true means the cell
// holds no material and should not be labeled.
type IsEmpty[T any] func(T) bool

// Label6 runs 6-connected component labeling over m, treating cells
// for which isEmpty returns true as empty (label 0). Two non-empty
// cells end up with the same label iff they are connected by a
// 6-connected path of cells sharing the same value.
func Label6[T comparable](m *voxelgrid.Matrix[T], isEmpty IsEmpty[T]) (*voxelgrid.Matrix[Label], map[Label]T) {
	labels := voxelgrid.New[Label](m.Size, 0)
	disjoint := newDisjointSet(m.Size.IndexRange()/6 + 1)
	tmpValues := make(map[Label]T, m.Size.IndexRange()/6+1)

	var current Label = 1

	// First pass: canonical order, only back-neighbors considered.
	m.ForEach(func(x, y, z int) {
		v := m.Get(x, y, z)
		if isEmpty(v) {
			return
		}

		i := m.Idx(x, y, z)

		var ix, iy, iz int
		mask := 0

		if x > 0 {
			ix = m.Idx(x-1, y, z)
			if v == m.Get(x-1, y, z) {
				mask |= 0b001
			}
		}
		if y > 0 {
			iy = m.Idx(x, y-1, z)
			if v == m.Get(x, y-1, z) {
				mask |= 0b010
			}
		}
		if z > 0 {
			iz = m.Idx(x, y, z-1)
			if v == m.Get(x, y, z-1) {
				mask |= 0b100
			}
		}

		switch mask {
		case 0b000:
			labels.Data[i] = current
			disjoint.insert(current)
			tmpValues[current] = v
			current++
		case 0b001:
			labels.Data[i] = labels.Data[ix]
		case 0b010:
			labels.Data[i] = labels.Data[iy]
		case 0b100:
			labels.Data[i] = labels.Data[iz]
		case 0b011:
			la, lb := labels.Data[ix], labels.Data[iy]
			labels.Data[i] = min(la, lb)
			disjoint.link(la, lb)
		case 0b101:
			la, lb := labels.Data[ix], labels.Data[iz]
			labels.Data[i] = min(la, lb)
			disjoint.link(la, lb)
		case 0b110:
			la, lb := labels.Data[iy], labels.Data[iz]
			labels.Data[i] = min(la, lb)
			disjoint.link(la, lb)
		case 0b111:
			lx, ly, lz := labels.Data[ix], labels.Data[iy], labels.Data[iz]
			labels.Data[i] = min(lx, min(ly, lz))
			disjoint.link(lx, ly)
			disjoint.link(lx, lz)
		}
	})

	// Second pass: compact the disjoint forest into dense labels,
	// visiting representatives in increasing provisional-label order so
	// the mapping is deterministic across runs.
	remap := make(map[Label]Label, current)
	var next Label = 1
	for l := Label(1); l < current; l++ {
		rep := disjoint.find(l)
		if _, ok := remap[rep]; !ok {
			remap[rep] = next
			next++
		}
		remap[l] = remap[rep]
	}

	for i, l := range labels.Data {
		if l != 0 {
			labels.Data[i] = remap[l]
		}
	}

	values := make(map[Label]T, next-1)
	for old, v := range tmpValues {
		values[remap[old]] = v
	}

	return labels, values
}

// Count returns the number of distinct labels K produced by Label6,
// given the Label->T map it returned.
func Count[T any](values map[Label]T) int { return len(values) }
