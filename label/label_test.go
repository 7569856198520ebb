package label

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashalon/logic-circuit/vec3"
	"github.com/hashalon/logic-circuit/voxelgrid"
)

func isZero(v int) bool { return v == 0 }

func TestLabel6SingleComponent(t *testing.T) {
	m := voxelgrid.New(vec3.New(3, 1, 1), 0)
	m.Set(0, 0, 0, 5)
	m.Set(1, 0, 0, 5)
	m.Set(2, 0, 0, 5)

	labels, values := Label6(m, isZero)

	l0 := labels.Get(0, 0, 0)
	require.NotZero(t, l0)
	require.Equal(t, l0, labels.Get(1, 0, 0))
	require.Equal(t, l0, labels.Get(2, 0, 0))
	require.Len(t, values, 1)
	require.Equal(t, 5, values[l0])
}

func TestLabel6TwoSeparateComponents(t *testing.T) {
	m := voxelgrid.New(vec3.New(3, 1, 1), 0)
	m.Set(0, 0, 0, 1)
	m.Set(2, 0, 0, 1)
	// cell (1,0,0) stays empty, so the two are not 6-connected.

	labels, values := Label6(m, isZero)

	require.Len(t, values, 2)
	require.NotEqual(t, labels.Get(0, 0, 0), labels.Get(2, 0, 0))
}

func TestLabel6DifferentValuesNotMerged(t *testing.T) {
	m := voxelgrid.New(vec3.New(2, 1, 1), 0)
	m.Set(0, 0, 0, 1)
	m.Set(1, 0, 0, 2)

	labels, values := Label6(m, isZero)

	require.Len(t, values, 2)
	require.NotEqual(t, labels.Get(0, 0, 0), labels.Get(1, 0, 0))
}

func TestLabel6DenseRangeNoGaps(t *testing.T) {
	// A corner of four cells (one cell plus an arm along each axis) and
	// an isolated cell, all sharing value 1: two components, so the
	// labels must be exactly {1, 2}.
	m := voxelgrid.New(vec3.New(2, 2, 2), 0)
	m.Set(0, 0, 0, 1)
	m.Set(1, 0, 0, 1)
	m.Set(0, 1, 0, 1)
	m.Set(0, 0, 1, 1)
	m.Set(1, 1, 1, 1) // isolated, shares no face with the others

	labels, values := Label6(m, isZero)

	require.Len(t, values, 2)
	seen := map[Label]bool{}
	for _, l := range labels.Data {
		if l != 0 {
			seen[l] = true
		}
	}
	require.Equal(t, map[Label]bool{1: true, 2: true}, seen)
}

// TestLabel6ConnectivityIffPath checks property 1 from the spec: two
// non-empty cells share a label iff a 6-connected equal-valued path
// joins them.
func TestLabel6ConnectivityIffPath(t *testing.T) {
	m := voxelgrid.New(vec3.New(4, 3, 1), 0)
	// A zig-zag path of value 9 from (0,0,0) to (2,2,0).
	m.Set(0, 0, 0, 9)
	m.Set(1, 0, 0, 9)
	m.Set(1, 1, 0, 9)
	m.Set(1, 2, 0, 9)
	m.Set(2, 2, 0, 9)
	// a cell of the same value that shares no face with the path
	m.Set(3, 0, 0, 9)

	labels, _ := Label6(m, isZero)

	path := labels.Get(0, 0, 0)
	require.Equal(t, path, labels.Get(1, 0, 0))
	require.Equal(t, path, labels.Get(1, 1, 0))
	require.Equal(t, path, labels.Get(1, 2, 0))
	require.Equal(t, path, labels.Get(2, 2, 0))
	require.NotEqual(t, path, labels.Get(3, 0, 0))
}
