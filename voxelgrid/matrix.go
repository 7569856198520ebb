// Package voxelgrid defines the dense 3-D array that every later stage
// of the compiler reads: a flat, row-major buffer indexed x-fastest,
// z-slowest, plus the iteration and neighbor-lookup helpers the
// labeler, morphology, and connectivity passes share.
//
// What & Why:
//
//	A Matrix[T] is the single source of truth for cell data. It never
//	reshapes or resizes after construction; cells are mutated only
//	through Set. Iteration order is part of the contract, not an
//	implementation detail: ForEach and ForEachInBox always visit z
//	outermost, then y, then x fastest, because the labeler's two-pass
//	algorithm depends on that order for determinism.
//
// Complexity:
//
//	Get, Set, Idx: O(1). ForEach, ForEachInBox: O(volume) of the region.
//	Neighbors6: O(1).
package voxelgrid

import "github.com/hashalon/logic-circuit/vec3"

// Matrix is a dense 3-D array of T, row-major with x changing fastest.
type Matrix[T any] struct {
	Size vec3.Vec3
	Data []T
}

// New allocates a Matrix of the given size, every cell set to fill.
func New[T any](size vec3.Vec3, fill T) *Matrix[T] {
	data := make([]T, size.IndexRange())
	for i := range data {
		data[i] = fill
	}
	return &Matrix[T]{Size: size, Data: data}
}

// Idx computes the linear index of (x, y, z): x + (y + z*Sy)*Sx.
func (m *Matrix[T]) Idx(x, y, z int) int {
	return x + (y+z*m.Size.Y)*m.Size.X
}

// Get returns the cell at (x, y, z).
func (m *Matrix[T]) Get(x, y, z int) T {
	return m.Data[m.Idx(x, y, z)]
}

// Set writes value into the cell at (x, y, z).
func (m *Matrix[T]) Set(x, y, z int, value T) {
	m.Data[m.Idx(x, y, z)] = value
}

// ForEach calls fn(x, y, z) for every cell, z outermost, then y, then x
// fastest. Tests and the labeler depend on this exact order.
func (m *Matrix[T]) ForEach(fn func(x, y, z int)) {
	for z := 0; z < m.Size.Z; z++ {
		for y := 0; y < m.Size.Y; y++ {
			for x := 0; x < m.Size.X; x++ {
				fn(x, y, z)
			}
		}
	}
}

// ForEachInBox calls fn(x, y, z) for every cell within box, in the same
// z-outermost, y, x-fastest order as ForEach.
func (m *Matrix[T]) ForEachInBox(box vec3.Box3, fn func(x, y, z int)) {
	for z := box.Begin.Z; z < box.End.Z; z++ {
		for y := box.Begin.Y; y < box.End.Y; y++ {
			for x := box.Begin.X; x < box.End.X; x++ {
				fn(x, y, z)
			}
		}
	}
}

// Neighbors6 returns the 6 face-adjacent cells in fixed order
// (-x, +x, -y, +y, -z, +z), substituting oob where a neighbor would
// fall outside the matrix bounds.
func (m *Matrix[T]) Neighbors6(x, y, z int, oob T) [6]T {
	var out [6]T

	if x > 0 {
		out[0] = m.Get(x-1, y, z)
	} else {
		out[0] = oob
	}
	if x < m.Size.X-1 {
		out[1] = m.Get(x+1, y, z)
	} else {
		out[1] = oob
	}
	if y > 0 {
		out[2] = m.Get(x, y-1, z)
	} else {
		out[2] = oob
	}
	if y < m.Size.Y-1 {
		out[3] = m.Get(x, y+1, z)
	} else {
		out[3] = oob
	}
	if z > 0 {
		out[4] = m.Get(x, y, z-1)
	} else {
		out[4] = oob
	}
	if z < m.Size.Z-1 {
		out[5] = m.Get(x, y, z+1)
	} else {
		out[5] = oob
	}

	return out
}
