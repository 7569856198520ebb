package connectivity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashalon/logic-circuit/label"
	"github.com/hashalon/logic-circuit/vec3"
	"github.com/hashalon/logic-circuit/voxelgrid"
)

func TestBuildThresholdGating(t *testing.T) {
	// Two 3x1x1 rows: label 1 at x=0..2,y=0, label 2 at x=0..2,y=1,
	// touching along their full length, which gives 3 shared faces >=
	// default threshold.
	m := voxelgrid.New[label.Label](vec3.New(3, 2, 1), 0)
	for x := 0; x < 3; x++ {
		m.Set(x, 0, 0, 1)
		m.Set(x, 1, 0, 2)
	}

	g := Build(m, 2, DefaultThreshold)
	require.Equal(t, []label.Label{2}, g.Neighbors(1))
	require.Equal(t, []label.Label{1}, g.Neighbors(2))
}

func TestBuildBelowThresholdNoEdge(t *testing.T) {
	// Only a single shared face between the two labels.
	m := voxelgrid.New[label.Label](vec3.New(2, 2, 1), 0)
	m.Set(0, 0, 0, 1)
	m.Set(1, 0, 0, 1)
	m.Set(0, 1, 0, 2) // touches (0,0,0) only: 1 shared face

	g := Build(m, 2, DefaultThreshold)
	require.Empty(t, g.Neighbors(1))
	require.Empty(t, g.Neighbors(2))
}

func TestBuildReverseNeighbors(t *testing.T) {
	m := voxelgrid.New[label.Label](vec3.New(3, 2, 1), 0)
	for x := 0; x < 3; x++ {
		m.Set(x, 0, 0, 1)
		m.Set(x, 1, 0, 2)
	}

	g := Build(m, 2, DefaultThreshold)
	require.Equal(t, []label.Label{1}, g.ReverseNeighbors(2))
	require.Equal(t, []label.Label{2}, g.ReverseNeighbors(1))
}
