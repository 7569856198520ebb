package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashalon/logic-circuit/circuit"
	"github.com/hashalon/logic-circuit/schema"
)

func writeSchemaFile(t *testing.T, s *schema.Schema) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, schema.Encode(&buf, s))

	path := filepath.Join(t.TempDir(), "model.schema")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestRunValidSchemaExitsOK(t *testing.T) {
	s := &schema.Schema{
		Wires: []schema.WireData{{Channel: 0}},
		Components: []schema.CompData{
			{Kind: schema.CompKind{Tag: schema.CompFixed, Data: 1}, PinsOut: []int{0}},
		},
		// Both ModelAttr.Index default to 0, which needs one model.
		Models: []schema.Model{{}},
	}
	path := writeSchemaFile(t, s)

	require.Equal(t, exitOK, run(path, 2))
}

func TestRunDanglingPinExitsVerify(t *testing.T) {
	s := &schema.Schema{
		Wires: []schema.WireData{{Channel: 0}},
		Components: []schema.CompData{
			{Kind: schema.CompKind{Tag: schema.CompGate, Operator: circuit.Or}, PinsIn: []int{0, 7}},
		},
	}
	path := writeSchemaFile(t, s)

	require.Equal(t, exitVerify, run(path, 1))
}

func TestRunMissingFileExitsOpen(t *testing.T) {
	require.Equal(t, exitOpen, run(filepath.Join(t.TempDir(), "missing.xraw"), 1))
}
