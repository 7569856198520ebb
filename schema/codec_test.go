package schema

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashalon/logic-circuit/circuit"
	"github.com/hashalon/logic-circuit/vec3"
)

// TestEncodeDecodeRoundTrip checks spec property 5: verification is
// idempotent across a serialize/deserialize round trip.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := buildTwoComponentSchema(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, original))

	decoded, err := Decode(&buf)
	require.NoError(t, err)

	require.Equal(t, original, decoded)
	require.Equal(t, Verify(original), Verify(decoded))
}

func TestEncodeDecodeComponentPayloads(t *testing.T) {
	s := &Schema{
		Wires: []WireData{{Channel: 2}, {Channel: 5}},
		Components: []CompData{
			{Kind: CompKind{Tag: CompBus}, PinsIn: []int{0}, PinsOut: []int{1}},
			{Kind: CompKind{Tag: CompDemux, Data: 0x0003}, PinsIn: []int{0}, PinsOut: []int{1}},
			{Kind: CompKind{Tag: CompFixed, Data: 0x00A5}, PinsIn: []int{}, PinsOut: []int{}},
			{Kind: CompKind{Tag: CompGate, Operator: circuit.Nand}, PinsIn: []int{0, 1}, PinsOut: []int{}},
			{Kind: CompKind{Tag: CompMux}, PinsIn: []int{}, PinsOut: []int{}},
			{Kind: CompKind{Tag: CompInput}, PinsIn: []int{}, PinsOut: []int{}},
		},
		Models: []Model{{Size: vec3.New(2, 1, 1), Occupancy: []byte{0b11}}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, s, decoded)
}
