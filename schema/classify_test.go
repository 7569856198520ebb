package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashalon/logic-circuit/circuit"
)

func TestDefaultClassifierWire(t *testing.T) {
	c := DefaultClassifier(1, 1)
	require.Equal(t, WireKind, c.Kind)
	require.EqualValues(t, 0, c.Channel)

	c = DefaultClassifier(16, 1)
	require.Equal(t, WireKind, c.Kind)
	require.EqualValues(t, 15, c.Channel)
}

func TestDefaultClassifierGates(t *testing.T) {
	cases := []struct {
		value int
		want  circuit.Operator
	}{
		{17, circuit.Or}, {18, circuit.And}, {19, circuit.Nor}, {20, circuit.Nand},
		{21, circuit.Add}, {22, circuit.Mul}, {23, circuit.Min}, {24, circuit.Max},
	}
	for _, tc := range cases {
		c := DefaultClassifier(tc.value, 1)
		require.Equal(t, Gate, c.Kind)
		require.Equal(t, tc.want, c.Operator)
	}
}

func TestDefaultClassifierMuxDemuxBusInput(t *testing.T) {
	require.Equal(t, Mux, DefaultClassifier(25, 1).Kind)

	demux := DefaultClassifier(26, 1)
	require.Equal(t, Demux, demux.Kind)
	require.EqualValues(t, 1, demux.Data)

	require.Equal(t, Bus, DefaultClassifier(28, 1).Kind)
	require.Equal(t, Input, DefaultClassifier(29, 1).Kind)
}

func TestDefaultClassifierFixedVolume(t *testing.T) {
	fixed := DefaultClassifier(27, 10)
	require.Equal(t, Fixed, fixed.Kind)
	require.EqualValues(t, 6, fixed.Data)

	// Volumes under 4 cells map to Fixed(0) rather than underflowing.
	tiny := DefaultClassifier(27, 2)
	require.Equal(t, Fixed, tiny.Kind)
	require.EqualValues(t, 0, tiny.Data)
}

func TestDefaultClassifierUnknownIsEmpty(t *testing.T) {
	require.Equal(t, Empty, DefaultClassifier(0, 1).Kind)
	require.Equal(t, Empty, DefaultClassifier(99, 1).Kind)
}
