package voxelgrid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashalon/logic-circuit/vec3"
)

func TestMatrixGetSet(t *testing.T) {
	m := New(vec3.New(2, 2, 2), 0)
	m.Set(1, 0, 1, 7)

	require.Equal(t, 7, m.Get(1, 0, 1))
	require.Equal(t, 0, m.Get(0, 0, 0))
	require.Len(t, m.Data, 8)
}

func TestMatrixIdxIsXFastest(t *testing.T) {
	m := New(vec3.New(3, 2, 2), 0)

	require.Equal(t, 0, m.Idx(0, 0, 0))
	require.Equal(t, 1, m.Idx(1, 0, 0))
	require.Equal(t, 3, m.Idx(0, 1, 0))
	require.Equal(t, 6, m.Idx(0, 0, 1))
}

func TestForEachOrder(t *testing.T) {
	m := New(vec3.New(2, 2, 2), 0)

	var visited [][3]int
	m.ForEach(func(x, y, z int) {
		visited = append(visited, [3]int{x, y, z})
	})

	want := [][3]int{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
	require.Equal(t, want, visited)
}

func TestForEachInBox(t *testing.T) {
	m := New(vec3.New(4, 4, 4), 0)
	box := vec3.NewBox(vec3.New(1, 1, 1), vec3.New(3, 3, 2))

	count := 0
	m.ForEachInBox(box, func(x, y, z int) {
		count++
		require.True(t, box.Contains(vec3.New(x, y, z)))
	})
	require.Equal(t, box.Size().IndexRange(), count)
}

func TestNeighbors6(t *testing.T) {
	m := New(vec3.New(3, 3, 3), 0)
	for i := range m.Data {
		m.Data[i] = i
	}

	n := m.Neighbors6(1, 1, 1, -1)
	require.Equal(t, m.Get(0, 1, 1), n[0])
	require.Equal(t, m.Get(2, 1, 1), n[1])
	require.Equal(t, m.Get(1, 0, 1), n[2])
	require.Equal(t, m.Get(1, 2, 1), n[3])
	require.Equal(t, m.Get(1, 1, 0), n[4])
	require.Equal(t, m.Get(1, 1, 2), n[5])

	corner := m.Neighbors6(0, 0, 0, -1)
	require.Equal(t, -1, corner[0])
	require.Equal(t, -1, corner[2])
	require.Equal(t, -1, corner[4])
}
