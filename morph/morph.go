// Package morph computes, for each labeled component, its bounding
// box, volume, and a 64-bit shape signature — a deterministic hash of
// the box's size and its occupancy bitmap. Two components with
// identical shape and orientation share a signature; the schema
// builder uses this to deduplicate models.
//
// What & Why:
//
//	Grounded on original_source's matrix/morphology.rs: the bounding
//	box for each label starts as an inverted box (begin = matrix size,
//	end = origin) and is widened to min/max as cells of that label are
//	found. The signature absorbs the box's size followed by an
//	occupancy bit per cell in ForEachInBox order, so two components are
//	shape-equal in a position-independent sense (only their size and
//	internal occupancy pattern matter). It is not rotation-independent:
//	a rotated copy of a shape generally has a different signature.
//
// Complexity:
//
//	BoundingBoxes: O(volume of the whole matrix).
//	Generate: O(volume of the component's bounding box).
package morph

import (
	"hash/fnv"

	"github.com/hashalon/logic-circuit/label"
	"github.com/hashalon/logic-circuit/vec3"
	"github.com/hashalon/logic-circuit/voxelgrid"
)

// Signature is a 64-bit hash of a component's shape: its bounding-box
// size plus its occupancy bitmap within that box.
type Signature uint64

// Element is a per-label record produced once morphology has run.
type Element[T any] struct {
	Label     label.Label
	Value     T
	Position  vec3.Vec3
	Volume    int
	Signature Signature
}

// BoundingBoxes scans m and returns, for each label 1..=k, the minimal
// Box3 (end exclusive) containing every cell with that label.
func BoundingBoxes(m *voxelgrid.Matrix[label.Label], k int) []vec3.Box3 {
	boxes := make([]vec3.Box3, k)
	for i := range boxes {
		// Inverted box: begin = size (max possible), end = 0 (min
		// possible), so the first cell seen pulls both bounds in.
		boxes[i] = vec3.NewBox(m.Size, vec3.New(0, 0, 0))
	}

	m.ForEach(func(x, y, z int) {
		l := m.Get(x, y, z)
		if l == 0 {
			return
		}
		i := int(l) - 1
		cur := vec3.New(x, y, z)
		boxes[i] = vec3.NewBox(
			boxes[i].Begin.Min(cur),
			boxes[i].End.Max(cur.Add(vec3.New(1, 1, 1))),
		)
	})

	return boxes
}

// Generate computes the signature and volume of label l within its
// bounding box. The occupancy bitmap is iterated in ForEachInBox order
// (z outermost, y, then x fastest) so the hash is reproducible for
// identical occupancy regardless of how the box was discovered.
func Generate(m *voxelgrid.Matrix[label.Label], l label.Label, box vec3.Box3) (Signature, int) {
	sig, volume, _ := GenerateModel(m, l, box)
	return sig, volume
}

// GenerateModel is Generate plus the raw packed occupancy bitmap, for
// callers (the schema builder) that need to keep the bitmap itself as
// a component's geometric model rather than only its hash.
func GenerateModel(m *voxelgrid.Matrix[label.Label], l label.Label, box vec3.Box3) (Signature, int, []byte) {
	size := box.Size()
	bits := newBitset(size.IndexRange())

	index := 0
	volume := 0
	m.ForEachInBox(box, func(x, y, z int) {
		if m.Get(x, y, z) == l {
			bits.set(index)
			volume++
		}
		index++
	})

	h := fnv.New64a()
	writeVec3(h, size)
	bits.writeTo(h)

	return Signature(h.Sum64()), volume, bits.bytes()
}

// Elements builds the per-label records for all labels found by
// label.Label6, given the matrix of labels, their source values, and
// their bounding boxes (index i corresponds to label i+1).
func Elements[T any](m *voxelgrid.Matrix[label.Label], values map[label.Label]T, boxes []vec3.Box3) []Element[T] {
	elements := make([]Element[T], 0, len(boxes))
	for i, box := range boxes {
		l := label.Label(i + 1)
		sig, volume := Generate(m, l, box)
		elements = append(elements, Element[T]{
			Label:     l,
			Value:     values[l],
			Position:  box.Begin,
			Volume:    volume,
			Signature: sig,
		})
	}
	return elements
}
